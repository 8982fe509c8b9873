package model

// ContentType is the kind of media a title group catalogues. It parameterizes
// which sources, extras, roles and torrent attributes apply.
type ContentType string

const (
	ContentTypeMovie      ContentType = "movie"
	ContentTypeVideo      ContentType = "video"
	ContentTypeTVShow     ContentType = "tv_show"
	ContentTypeMusic      ContentType = "music"
	ContentTypePodcast    ContentType = "podcast"
	ContentTypeSoftware   ContentType = "software"
	ContentTypeBook       ContentType = "book"
	ContentTypeCollection ContentType = "collection"
)

// AllContentTypes returns every content type in selection order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentTypeMovie,
		ContentTypeVideo,
		ContentTypeTVShow,
		ContentTypeMusic,
		ContentTypePodcast,
		ContentTypeSoftware,
		ContentTypeBook,
		ContentTypeCollection,
	}
}

// String returns the wire value of the content type
func (ct ContentType) String() string {
	return string(ct)
}

// IsValid reports whether ct is one of the known content types
func (ct ContentType) IsValid() bool {
	for _, known := range AllContentTypes() {
		if ct == known {
			return true
		}
	}
	return false
}

// IsVideo returns true for content types that carry a video stream
func (ct ContentType) IsVideo() bool {
	return ct == ContentTypeMovie || ct == ContentTypeTVShow || ct == ContentTypeVideo
}

// CollageCategory groups collages on the collage pages
type CollageCategory string

const (
	CollageCategoryExternal   CollageCategory = "External"
	CollageCategoryPersonal   CollageCategory = "Personal"
	CollageCategoryStaffPicks CollageCategory = "Staff Picks"
	CollageCategoryTheme      CollageCategory = "Theme"
)

// StatsInterval is the bucket size of a statistics series
type StatsInterval string

const (
	StatsIntervalYear  StatsInterval = "Year"
	StatsIntervalMonth StatsInterval = "Month"
	StatsIntervalWeek  StatsInterval = "Week"
	StatsIntervalDay   StatsInterval = "Day"
	StatsIntervalHour  StatsInterval = "Hour"
)

// OrderByDirection is the sort direction of a listing
type OrderByDirection string

const (
	OrderByAsc  OrderByDirection = "asc"
	OrderByDesc OrderByDirection = "desc"
)
