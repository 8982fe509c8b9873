package model

// EditionGroupInfoLite is the edition data shown next to a torrent listing.
// Empty strings mean the field is absent.
type EditionGroupInfoLite struct {
	ReleaseDate              string                 `json:"release_date,omitempty"`
	ReleaseDateOnlyYearKnown bool                   `json:"release_date_only_year_known"`
	Name                     string                 `json:"name,omitempty"`
	AdditionalInformation    *AdditionalInformation `json:"additional_information,omitempty"`
	Source                   Source                 `json:"source,omitempty"`
	Distributor              string                 `json:"distributor,omitempty"`
}

// AdditionalInformation holds the optional, content-type specific edition details
type AdditionalInformation struct {
	Format          string `json:"format,omitempty"`
	Label           string `json:"label,omitempty"`
	CatalogueNumber string `json:"catalogue_number,omitempty"`
	ISBN13          string `json:"isbn_13,omitempty"`
	FirstItem       string `json:"first_item,omitempty"`
	LastItem        string `json:"last_item,omitempty"`
	DateFrom        string `json:"date_from,omitempty"`
}

// Info returns the additional information, or an empty record when absent
func (g *EditionGroupInfoLite) Info() AdditionalInformation {
	if g.AdditionalInformation == nil {
		return AdditionalInformation{}
	}
	return *g.AdditionalInformation
}
