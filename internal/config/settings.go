package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage             = "app_language"
	KeyTimeZone             = "time_zone"
	KeyLogLevel             = "log_level"
	KeyShowBonusDecimals    = "show_bonus_point_decimals"
	KeyBonusDisplayDecimals = "bonus_point_display_decimals"
)

// Default values
const (
	DefaultLanguage             = "system"
	DefaultTimeZone             = "Local"
	DefaultLogLevel             = "info"
	DefaultShowBonusDecimals    = false
	DefaultBonusDisplayDecimals = 2
)

// MaxBonusDisplayDecimals bounds the fractional digits a user may request
const MaxBonusDisplayDecimals = 6

// Settings manages per-user display preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetTimeZone returns the IANA zone name dates are rendered in
func (s *Settings) GetTimeZone() string {
	return s.app.Preferences().StringWithFallback(KeyTimeZone, DefaultTimeZone)
}

// SetTimeZone sets the zone dates are rendered in. Unknown zones are
// rejected and the previous value is kept.
func (s *Settings) SetTimeZone(name string) bool {
	if name == "" {
		name = DefaultTimeZone
	}
	if !IsValidTimeZone(name) {
		return false
	}
	s.app.Preferences().SetString(KeyTimeZone, name)
	return true
}

// IsValidTimeZone reports whether name is "Local" or a known IANA zone
func IsValidTimeZone(name string) bool {
	_, err := time.LoadLocation(name)
	return err == nil
}

// Location resolves the configured time zone, falling back to time.Local
func (s *Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.GetTimeZone())
	if err != nil {
		return time.Local
	}
	return loc
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetShowBonusDecimals returns whether bonus points are shown with fractional digits
func (s *Settings) GetShowBonusDecimals() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowBonusDecimals, DefaultShowBonusDecimals)
}

// SetShowBonusDecimals sets whether bonus points are shown with fractional digits
func (s *Settings) SetShowBonusDecimals(show bool) {
	s.app.Preferences().SetBool(KeyShowBonusDecimals, show)
}

// GetBonusDisplayDecimals returns how many fractional digits are shown
func (s *Settings) GetBonusDisplayDecimals() int {
	return s.app.Preferences().IntWithFallback(KeyBonusDisplayDecimals, DefaultBonusDisplayDecimals)
}

// SetBonusDisplayDecimals sets how many fractional digits are shown
func (s *Settings) SetBonusDisplayDecimals(digits int) {
	if digits < 0 {
		digits = 0
	}
	if digits > MaxBonusDisplayDecimals {
		digits = MaxBonusDisplayDecimals
	}
	s.app.Preferences().SetInt(KeyBonusDisplayDecimals, digits)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fr":     "Français",
	}
}
