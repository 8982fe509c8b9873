package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/arcadia-tracker/arcadia-ui/internal/logger"
	"github.com/arcadia-tracker/arcadia-ui/internal/model"
)

// DefaultPublicSettings returns the settings in effect before the backend
// has sent any: every flag off, factors at 100%, empty lists.
func DefaultPublicSettings() model.PublicArcadiaSettings {
	return model.PublicArcadiaSettings{
		OpenSignups:                  false,
		GlobalDownloadFactor:         100,
		GlobalUploadFactor:           100,
		LogoSubtitle:                 nil,
		BonusPointsAlias:             "",
		BonusPointsDecimalPlaces:     0,
		DisplayedTopBarStats:         []model.DisplayedTopBarStat{},
		DisplayableUserStats:         []model.DisplayableUserStat{},
		TorrentRequestVoteCurrencies: []model.TorrentRequestVoteCurrency{},
		EmailsEnabled:                false,
		DisplayImageHostDragAndDrop:  false,
	}
}

// PublicSettings holds the public site settings
type PublicSettings struct {
	settings model.PublicArcadiaSettings
	mu       sync.RWMutex
	onUpdate func(model.PublicArcadiaSettings)
	log      logger.Logger
}

// NewPublicSettings creates a container holding DefaultPublicSettings
func NewPublicSettings(log logger.Logger) *PublicSettings {
	return &PublicSettings{
		settings: DefaultPublicSettings(),
		log:      logger.OrNop(log),
	}
}

// SetUpdateCallback sets the function called with a copy of the new settings
// after every change
func (p *PublicSettings) SetUpdateCallback(callback func(model.PublicArcadiaSettings)) {
	p.mu.Lock()
	p.onUpdate = callback
	p.mu.Unlock()
}

// Settings returns a copy of the current settings
func (p *PublicSettings) Settings() model.PublicArcadiaSettings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings.Clone()
}

// SetSettings replaces every field with the value from s
func (p *PublicSettings) SetSettings(s model.PublicArcadiaSettings) {
	p.store(s.Clone())
	p.log.Debug("public settings replaced")
}

// MergeJSON applies a settings payload on top of the current value. Keys
// absent from the payload keep their current value; a malformed payload
// leaves the settings untouched.
func (p *PublicSettings) MergeJSON(data []byte) error {
	p.mu.Lock()
	merged := p.settings.Clone()
	if err := json.Unmarshal(data, &merged); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("decode settings: %w", err)
	}
	// Clone turns null lists in the payload back into empty ones
	p.settings = merged.Clone()
	snapshot, callback := p.settings.Clone(), p.onUpdate
	p.mu.Unlock()

	p.log.Debug("public settings merged", logger.Int("bytes", len(data)))
	notify(callback, snapshot)
	return nil
}

// RemoveSettings restores DefaultPublicSettings
func (p *PublicSettings) RemoveSettings() {
	p.store(DefaultPublicSettings())
	p.log.Debug("public settings reset")
}

func (p *PublicSettings) store(s model.PublicArcadiaSettings) {
	p.mu.Lock()
	p.settings = s
	snapshot, callback := p.settings.Clone(), p.onUpdate
	p.mu.Unlock()

	notify(callback, snapshot)
}
