package ui

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jeandeaual/go-locale"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/arcadia-tracker/arcadia-ui/internal/logger"
	"github.com/arcadia-tracker/arcadia-ui/internal/model"
	"github.com/arcadia-tracker/arcadia-ui/internal/store"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

// SystemLanguage selects the operating system language
const SystemLanguage = "system"

// Text keys for localization
const (
	KeyAppTitle          = "app.title"
	KeyLibraryChart      = "app.library_chart"
	KeyNotifications     = "app.notifications"
	KeySampleValues      = "app.sample_values"
	KeySettings          = "app.settings"
	KeyFile              = "app.file"
	KeyLanguage          = "app.language"
	KeyTimeZone          = "app.time_zone"
	KeyLogLevel          = "app.log_level"
	KeyShowBonusDecimals = "app.show_bonus_decimals"
	KeyBonusDecimals     = "app.bonus_decimals"
	KeySave              = "app.save"
	KeyCancel            = "app.cancel"
	KeySettingsSaved     = "app.settings_saved"
	KeyInvalidTimeZone   = "app.invalid_time_zone"
	KeyLogout            = "app.logout"
	KeySession           = "app.session"

	KeySampleUploaded    = "sample.uploaded"
	KeySampleSeedingTime = "sample.seeding_time"
	KeySampleBonusPoints = "sample.bonus_points"
	KeySampleLastSeen    = "sample.last_seen"
	KeySampleJoined      = "sample.joined"
	KeySampleEdition     = "sample.edition"
)

// ContentTypeKey returns the key of a content type's plural display name
func ContentTypeKey(ct model.ContentType) string {
	return "content_type." + ct.String()
}

// NotificationKey returns the key of a notification counter's display name
func NotificationKey(kind store.NotificationKind) string {
	switch kind {
	case store.UnreadAnnouncements:
		return "notification.announcements"
	case store.UnreadConversations:
		return "notification.conversations"
	case store.UnreadForumThreadPosts:
		return "notification.forum_thread_posts"
	case store.UnreadTitleGroupComments:
		return "notification.title_group_comments"
	case store.UnreadTorrentRequestComments:
		return "notification.torrent_request_comments"
	case store.UnreadStaffPMs:
		return "notification.staff_pms"
	default:
		return kind.String()
	}
}

// Localization manages UI text translations
type Localization struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   language.Tag
	log       logger.Logger
}

// NewLocalization loads the embedded message files. English is the
// fallback for keys missing from the selected language.
func NewLocalization(log logger.Logger) (*Localization, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.Glob(localeFiles, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	for _, name := range files {
		data, err := localeFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", path.Base(name), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(name)); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", path.Base(name), err)
		}
	}

	l := &Localization{
		bundle: bundle,
		log:    logger.OrNop(log),
	}
	l.use(language.English)
	return l, nil
}

func (l *Localization) use(tag language.Tag) {
	l.current = tag
	l.localizer = i18n.NewLocalizer(l.bundle, tag.String(), language.English.String())
}

// SetLanguage sets the current language. "system" picks the operating
// system language. Unavailable languages fall back to English.
func (l *Localization) SetLanguage(lang string) {
	if lang == "" || lang == SystemLanguage {
		detected, err := locale.GetLanguage()
		if err != nil {
			l.log.Debug("system language unavailable", logger.Error(err))
			detected = language.English.String()
		}
		lang = detected
	}

	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		l.log.Debug("invalid language", logger.String("language", lang), logger.Error(err))
		tag = language.English
	}

	matcher := language.NewMatcher(l.bundle.LanguageTags())
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		l.use(language.English)
		return
	}
	l.use(l.bundle.LanguageTags()[index])
}

// GetText returns localized text for the given key, the English text when
// the current language lacks it, or the key itself
func (l *Localization) GetText(key string) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil || text == "" {
		l.log.Debug("missing translation", logger.String("key", key), logger.String("language", l.current.String()))
		return key
	}
	return text
}

// Translate adapts GetText to a plain function
func (l *Localization) Translate() func(string) string {
	return l.GetText
}

// Tag returns the current language
func (l *Localization) Tag() language.Tag {
	return l.current
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	base, _ := l.current.Base()
	return base.String()
}

// GetAvailableLanguages returns the codes of the loaded message files
func (l *Localization) GetAvailableLanguages() []string {
	tags := l.bundle.LanguageTags()
	codes := make([]string, 0, len(tags))
	for _, tag := range tags {
		codes = append(codes, tag.String())
	}
	sort.Strings(codes)
	return codes
}
