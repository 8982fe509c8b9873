package ui

import (
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/arcadia-tracker/arcadia-ui/internal/format"
	"github.com/arcadia-tracker/arcadia-ui/internal/lookup"
	"github.com/arcadia-tracker/arcadia-ui/internal/model"
	"github.com/arcadia-tracker/arcadia-ui/internal/store"
)

func newTestLocalization(t *testing.T) *Localization {
	t.Helper()
	l, err := NewLocalization(nil)
	require.NoError(t, err)
	return l
}

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := newTestLocalization(t)

	assert.Equal(t, language.English, l.Tag())
	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Arcadia", l.GetText(KeyAppTitle))
	assert.Equal(t, "Ascending", l.GetText(lookup.KeyAscending))
	assert.Equal(t, []string{"en", "fr"}, l.GetAvailableLanguages())
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := newTestLocalization(t)

	l.SetLanguage("fr")
	assert.Equal(t, "fr", l.GetCurrentLanguage())
	assert.Equal(t, "Paramètres", l.GetText(KeySettings))

	l.SetLanguage("fr_CA")
	assert.Equal(t, "fr", l.GetCurrentLanguage())

	// Unavailable and malformed languages fall back to English
	l.SetLanguage("de")
	assert.Equal(t, "Settings", l.GetText(KeySettings))
	l.SetLanguage("???")
	assert.Equal(t, "en", l.GetCurrentLanguage())
}

func TestLocalization_SystemLanguage(t *testing.T) {
	l := newTestLocalization(t)

	l.SetLanguage(SystemLanguage)

	assert.Contains(t, l.GetAvailableLanguages(), l.GetCurrentLanguage())
}

func TestLocalization_MissingKeyReturnsKey(t *testing.T) {
	l := newTestLocalization(t)
	l.SetLanguage("fr")

	assert.Equal(t, "no.such.key", l.GetText("no.such.key"))
}

func TestLocalization_OrderByDirection(t *testing.T) {
	l := newTestLocalization(t)
	l.SetLanguage("fr")

	options := lookup.OrderByDirectionOptions(l.Translate())

	require.Len(t, options, 2)
	assert.Equal(t, "Croissant", options[0].Label)
	assert.Equal(t, model.OrderByAsc, options[0].Value)
	assert.Equal(t, "Décroissant", options[1].Label)
}

func TestLocalization_MonthNamesForFormatter(t *testing.T) {
	l := newTestLocalization(t)
	l.SetLanguage("fr")
	f := format.New(format.WithLocation(time.UTC), format.WithTranslator(l))

	got := f.AbsoluteTime(time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC))

	assert.Equal(t, "5 mars 2024, 14:07", got)
}

func TestLocalization_KeysCovered(t *testing.T) {
	l := newTestLocalization(t)

	var keys []string
	for _, ct := range model.AllContentTypes() {
		keys = append(keys, ContentTypeKey(ct))
	}
	for _, kind := range store.AllNotificationKinds() {
		keys = append(keys, NotificationKey(kind))
	}

	for _, lang := range l.GetAvailableLanguages() {
		l.SetLanguage(lang)
		for _, key := range keys {
			assert.NotEqual(t, key, l.GetText(key), "%s missing %s", lang, key)
		}
	}
}

func flattenMessages(prefix string, node map[string]any, out map[string]bool) {
	for key, value := range node {
		id := key
		if prefix != "" {
			id = prefix + "." + key
		}
		if child, ok := value.(map[string]any); ok {
			flattenMessages(id, child, out)
			continue
		}
		out[id] = true
	}
}

func TestLocaleFiles_SameKeys(t *testing.T) {
	load := func(name string) map[string]bool {
		data, err := localeFiles.ReadFile(path.Join("locales", name))
		require.NoError(t, err)
		var raw map[string]any
		require.NoError(t, yaml.Unmarshal(data, &raw))
		ids := map[string]bool{}
		flattenMessages("", raw, ids)
		return ids
	}

	en, fr := load("en.yaml"), load("fr.yaml")

	assert.Equal(t, en, fr)
}
