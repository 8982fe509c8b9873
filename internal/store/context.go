package store

import (
	"github.com/google/uuid"

	"github.com/arcadia-tracker/arcadia-ui/internal/logger"
)

// AppContext owns the UI state of one application session
type AppContext struct {
	// SessionID identifies the session in logs; it changes on Logout
	SessionID     uuid.UUID
	Notifications *Notifications
	Settings      *PublicSettings
	Logger        logger.Logger
}

// NewAppContext creates a context with default state and a fresh session id
func NewAppContext(log logger.Logger) *AppContext {
	log = logger.OrNop(log)
	return &AppContext{
		SessionID:     newSessionID(),
		Notifications: NewNotifications(log),
		Settings:      NewPublicSettings(log),
		Logger:        log,
	}
}

// Logout clears the counters, restores the default settings and starts a
// new session id. Update callbacks stay registered.
func (c *AppContext) Logout() {
	ended := c.SessionID
	c.Notifications.Reset()
	c.Settings.RemoveSettings()
	c.SessionID = newSessionID()
	c.Logger.Info("session ended",
		logger.String("session", ended.String()),
		logger.String("next_session", c.SessionID.String()))
}

// newSessionID returns a time-ordered id, or a random one if the clock
// sequence cannot be read
func newSessionID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
