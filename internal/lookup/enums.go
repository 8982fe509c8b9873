package lookup

import (
	"slices"

	"github.com/arcadia-tracker/arcadia-ui/internal/model"
)

var languages = []string{
	"English", "Albanian", "Arabic", "Belarusian", "Bengali", "Bosnian",
	"Bulgarian", "Cantonese", "Catalan", "Chinese", "Croatian", "Czech",
	"Danish", "Dutch", "Estonian", "Finnish", "French", "German", "Greek",
	"Hebrew", "Hindi", "Hungarian", "Icelandic", "Indonesian", "Italian",
	"Japanese", "Kannada", "Korean", "Macedonian", "Malayalam", "Mandarin",
	"Nepali", "Norwegian", "Persian", "Polish", "Portuguese", "Romanian",
	"Russian", "Serbian", "Spanish", "Swedish", "Tamil", "Tagalog", "Telugu",
	"Thai", "Turkish", "Ukrainian", "Vietnamese", "Wolof", "Other",
}

var containers = []string{
	// video
	"mkv", "mp4", "avi", "mov", "wmv", "flv", "webm", "m4v", "3gp", "ogv",
	"ts", "mts", "m2ts", "vob",
	// disc images
	"iso", "img", "bin", "cue",
	// audio
	"flac", "mp3", "wav", "aac", "ogg", "m4a", "wma", "opus",
	// documents
	"pdf", "epub", "mobi", "azw3", "cbz", "cbr",
	// archives
	"zip", "rar", "7z", "tar", "gz", "bz2", "xz",
}

// Languages returns the spoken languages selectable on torrents, English first
func Languages() []string {
	return slices.Clone(languages)
}

// Platforms returns the operating systems software can target
func Platforms() []string {
	return []string{"Linux", "MacOS", "Windows"}
}

// Containers returns the file extensions accepted as a torrent's main container
func Containers() []string {
	return slices.Clone(containers)
}

// SelectableContentTypes returns the content types offered on upload forms
func SelectableContentTypes() []model.ContentType {
	return model.AllContentTypes()
}

// CollageCategories returns the collage categories in display order
func CollageCategories() []model.CollageCategory {
	return []model.CollageCategory{
		model.CollageCategoryExternal,
		model.CollageCategoryPersonal,
		model.CollageCategoryStaffPicks,
		model.CollageCategoryTheme,
	}
}

// VideoCodecs returns the selectable video codecs
func VideoCodecs() []model.VideoCodec { return model.AllVideoCodecs() }

// VideoResolutions returns the selectable video resolutions
func VideoResolutions() []model.VideoResolution { return model.AllVideoResolutions() }

// AudioCodecs returns the selectable audio codecs
func AudioCodecs() []model.AudioCodec { return model.AllAudioCodecs() }

// AudioBitrateSamplings returns the selectable audio bitrate/sampling classes
func AudioBitrateSamplings() []model.AudioBitrateSampling { return model.AllAudioBitrateSamplings() }

// AudioChannels returns the selectable audio channel layouts
func AudioChannels() []model.AudioChannels { return model.AllAudioChannels() }

// Option is a labelled select value
type Option[T any] struct {
	Label string
	Value T
}

// Translation keys of the sort direction labels
const (
	KeyAscending  = "general.ascending"
	KeyDescending = "general.descending"
)

// OrderByDirectionOptions returns the sort direction choices labelled through t
func OrderByDirectionOptions(t func(key string) string) []Option[model.OrderByDirection] {
	return []Option[model.OrderByDirection]{
		{Label: t(KeyAscending), Value: model.OrderByAsc},
		{Label: t(KeyDescending), Value: model.OrderByDesc},
	}
}

var publicRoutes = []string{"/login", "/register", "/apply", "/home/index.html"}

// IsRouteProtected reports whether path requires a signed-in user
func IsRouteProtected(path string) bool {
	return !slices.Contains(publicRoutes, path)
}
