package store

import "github.com/arcadia-tracker/arcadia-ui/internal/model"

// NotificationStore defines the operations on the unread counters.
type NotificationStore interface {
	SetUpdateCallback(func(NotificationCounts))
	Counts() NotificationCounts
	Get(kind NotificationKind) int
	Set(kind NotificationKind, n int)
	Replace(counts NotificationCounts)
	Reset()
}

// SettingsStore defines the operations on the public site settings.
type SettingsStore interface {
	SetUpdateCallback(func(model.PublicArcadiaSettings))
	Settings() model.PublicArcadiaSettings
	SetSettings(s model.PublicArcadiaSettings)
	MergeJSON(data []byte) error
	RemoveSettings()
}

var (
	_ NotificationStore = (*Notifications)(nil)
	_ SettingsStore     = (*PublicSettings)(nil)
)
