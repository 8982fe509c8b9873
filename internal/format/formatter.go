package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Translator resolves a message key to display text. Implementations return
// the key itself when no translation exists.
type Translator interface {
	GetText(key string) string
}

// Formatter renders values for one user: their clock, zone and language
type Formatter struct {
	now      func() time.Time
	location *time.Location
	lang     language.Tag
	tr       Translator
	printer  *message.Printer
}

// Option configures a Formatter
type Option func(*Formatter)

// WithNow overrides the clock used for relative times
func WithNow(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLocation sets the zone absolute dates and local dates are rendered in
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// WithLanguage sets the language used for number grouping
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) {
		f.lang = tag
	}
}

// WithTranslator sets the source of localized month names
func WithTranslator(tr Translator) Option {
	return func(f *Formatter) {
		f.tr = tr
	}
}

// New creates a formatter. Without options it uses time.Now, time.Local,
// English number formatting and English month names.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		now:      time.Now,
		location: time.Local,
		lang:     language.English,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.printer = message.NewPrinter(f.lang)
	return f
}

// Location returns the zone the formatter renders local dates in
func (f *Formatter) Location() *time.Location {
	return f.location
}

// Language returns the language used for number formatting
func (f *Formatter) Language() language.Tag {
	return f.lang
}

// Month name translation keys: month.long.january, month.short.january, ...
const (
	monthLongKeyPrefix  = "month.long."
	monthShortKeyPrefix = "month.short."
)

func (f *Formatter) monthName(m time.Month) string {
	return f.translated(monthLongKeyPrefix+strings.ToLower(m.String()), m.String())
}

func (f *Formatter) shortMonthName(m time.Month) string {
	return f.translated(monthShortKeyPrefix+strings.ToLower(m.String()), m.String()[:3])
}

func (f *Formatter) translated(key, fallback string) string {
	if f.tr == nil {
		return fallback
	}
	text := f.tr.GetText(key)
	if text == "" || text == key {
		return fallback
	}
	return text
}
