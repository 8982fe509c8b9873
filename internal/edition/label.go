// Package edition builds the one-line label shown for an edition group.
package edition

import (
	"strings"

	"github.com/arcadia-tracker/arcadia-ui/internal/model"
)

// Separators used in edition labels
const (
	DateSeparator      = " - "
	AttributeSeparator = " / "
	RangeWord          = " to "
)

func releaseDate(date string, onlyYearKnown bool) string {
	if onlyYearKnown && len(date) >= 4 {
		return date[:4]
	}
	return date
}

// Label renders g as "{date} - {attr} / {attr} ...". The date part is
// "{from} to {release} ({first} to {last})" with each range present only
// when both ends are known. Without a release date the label is just the
// joined attributes, and a date with no attributes stands alone.
func Label(g model.EditionGroupInfoLite) string {
	info := g.Info()

	// attributes[0] is the date slot; it stays empty when there is no release date
	attributes := []string{""}
	if g.ReleaseDate != "" {
		var b strings.Builder
		if info.DateFrom != "" {
			b.WriteString(releaseDate(info.DateFrom, g.ReleaseDateOnlyYearKnown))
			b.WriteString(RangeWord)
		}
		b.WriteString(releaseDate(g.ReleaseDate, g.ReleaseDateOnlyYearKnown))
		if info.FirstItem != "" && info.LastItem != "" {
			b.WriteString(" (" + info.FirstItem + RangeWord + info.LastItem + ")")
		}
		attributes[0] = b.String()
	}

	for _, attr := range []string{
		g.Name,
		info.Format,
		info.Label,
		info.CatalogueNumber,
		info.ISBN13,
		string(g.Source),
		g.Distributor,
	} {
		if attr != "" {
			attributes = append(attributes, attr)
		}
	}

	rest := strings.Join(attributes[1:], AttributeSeparator)
	switch {
	case attributes[0] == "":
		return rest
	case rest == "":
		return attributes[0]
	default:
		return attributes[0] + DateSeparator + rest
	}
}
