package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-tracker/arcadia-ui/internal/model"
)

func TestSources_Book(t *testing.T) {
	t.Parallel()

	sources := Sources(model.ContentTypeBook)

	assert.Equal(t, []model.Source{
		model.SourceWeb, model.SourcePhysicalBook, model.SourceCD, model.SourceMixed,
	}, sources)
}

func TestSources_Music(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []model.Source{
		"Web", "Vinyl", "Blu-Ray", "CD", "Soundboard", "SACD", "DAT", "Cassette", "Mixed",
	}, Sources(model.ContentTypeMusic))
}

func TestSources_VideoTypesShareList(t *testing.T) {
	t.Parallel()

	expected := []model.Source{
		"Web", "Blu-Ray", "DVD", "HD-DVD", "HD-TV", "PDTV", "VHS", "TV", "LaserDisc", "Mixed",
	}
	for _, ct := range []model.ContentType{model.ContentTypeMovie, model.ContentTypeTVShow, model.ContentTypeVideo} {
		assert.Equal(t, expected, Sources(ct), "Sources(%s)", ct)
	}
}

func TestSources_Collection(t *testing.T) {
	t.Parallel()

	sources := Sources(model.ContentTypeCollection)
	require.Len(t, sources, 17)
	assert.Equal(t, model.SourceWeb, sources[0])
	assert.Equal(t, model.SourceLaserDisc, sources[8])
	assert.Equal(t, model.SourcePhysicalBook, sources[9])
	assert.Equal(t, model.SourceMixed, sources[16])
}

func TestSources_WebAndMixedOnly(t *testing.T) {
	t.Parallel()

	for _, ct := range []model.ContentType{model.ContentTypePodcast, model.ContentTypeSoftware, "unknown"} {
		assert.Equal(t, []model.Source{model.SourceWeb, model.SourceMixed}, Sources(ct), "Sources(%s)", ct)
	}
}

func TestSources_FreshSlices(t *testing.T) {
	t.Parallel()

	first := Sources(model.ContentTypeBook)
	first[1] = model.SourceVHS
	assert.Equal(t, model.SourcePhysicalBook, Sources(model.ContentTypeBook)[1])
}

func TestFeatures(t *testing.T) {
	t.Parallel()

	videoFeatures := []model.Feature{"HDR", "HDR 10", "HDR 10+", "DV", "Commentary", "Remux", "3D"}

	tests := []struct {
		name     string
		ct       model.ContentType
		format   string
		source   model.Source
		expected []model.Feature
	}{
		{"empty for software", model.ContentTypeSoftware, "", "", []model.Feature{}},
		{"scanned book", model.ContentTypeBook, "", model.SourcePhysicalBook, []model.Feature{model.FeatureOCR}},
		{"audiobook", model.ContentTypeBook, AudiobookFormat, model.SourceCD, []model.Feature{model.FeatureCue}},
		{"scanned audiobook", model.ContentTypeBook, AudiobookFormat, model.SourcePhysicalBook,
			[]model.Feature{model.FeatureOCR, model.FeatureCue}},
		{"music", model.ContentTypeMusic, "", model.SourceVinyl, []model.Feature{model.FeatureCue}},
		{"movie", model.ContentTypeMovie, "", model.SourceBluRay, videoFeatures},
		{"tv show", model.ContentTypeTVShow, "", model.SourceWeb, videoFeatures},
		{"plain video has none", model.ContentTypeVideo, "", model.SourceWeb, []model.Feature{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Features(tt.ct, tt.format, tt.source))
		})
	}
}

func TestSelectableExtras(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []model.Extra{"booklet", "other"}, SelectableExtras(model.ContentTypeBook))
	assert.Equal(t, []model.Extra{"booklet", "other"}, SelectableExtras(model.ContentTypeMusic))
	assert.Equal(t, []model.Extra{"behind_the_scenes", "deleted_scenes", "featurette", "trailer", "other"},
		SelectableExtras(model.ContentTypeMovie))
	assert.Equal(t, []model.Extra{"behind_the_scenes", "deleted_scenes", "trailer", "other"},
		SelectableExtras(model.ContentTypeTVShow))
	assert.Equal(t, []model.Extra{"booklet", "behind_the_scenes", "deleted_scenes", "featurette", "trailer", "other"},
		SelectableExtras(model.ContentTypeVideo))
	assert.Equal(t, []model.Extra{"other"}, SelectableExtras(model.ContentTypeSoftware))
}

func TestArtistRoles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []model.ArtistRole{"main", "guest", "producer", "writer", "host"},
		ArtistRoles(model.ContentTypePodcast))
	assert.Equal(t, []model.ArtistRole{"main", "guest", "author", "writer", "illustrator", "editor"},
		ArtistRoles(model.ContentTypeBook))
	assert.Equal(t, []model.ArtistRole{"main", "guest"}, ArtistRoles("unknown"))
	assert.Equal(t, ArtistRoles(model.ContentTypeMovie), ArtistRoles(model.ContentTypeTVShow))
	assert.Len(t, ArtistRoles(model.ContentTypeVideo), 13)
}

// Every content type must have an explicit entry in each table.
func TestTablesCoverAllContentTypes(t *testing.T) {
	t.Parallel()

	for _, ct := range model.AllContentTypes() {
		roles := ArtistRoles(ct)
		assert.Greater(t, len(roles), 2, "ArtistRoles(%s) only has the common roles", ct)
		assert.Equal(t, []model.ArtistRole{model.RoleMain, model.RoleGuest}, roles[:2])

		sources := Sources(ct)
		assert.Equal(t, model.SourceWeb, sources[0], "Sources(%s)", ct)
		assert.Equal(t, model.SourceMixed, sources[len(sources)-1], "Sources(%s)", ct)

		extras := SelectableExtras(ct)
		assert.Equal(t, model.ExtraOther, extras[len(extras)-1], "SelectableExtras(%s)", ct)
	}
}

func TestIsAttributeUsed(t *testing.T) {
	t.Parallel()

	assert.False(t, IsAttributeUsed(model.AttrVideoCodec, model.ContentTypeMusic))
	assert.True(t, IsAttributeUsed(model.AttrVideoCodec, model.ContentTypeMovie))
	assert.True(t, IsAttributeUsed("unknown_attr", model.ContentTypeMusic))

	assert.True(t, IsAttributeUsed(model.AttrAudioCodec, model.ContentTypePodcast))
	assert.False(t, IsAttributeUsed(model.AttrAudioCodec, model.ContentTypeBook))
	assert.False(t, IsAttributeUsed(model.AttrAudioChannels, model.ContentTypeMusic))
	assert.True(t, IsAttributeUsed(model.AttrVideoResolutionOtherY, model.ContentTypeCollection))
	assert.False(t, IsAttributeUsed(model.AttrSubtitleLanguages, model.ContentTypeSoftware))
}

// Subtitle languages key on tv_show like the other video attributes; the
// hyphenated "tv-show" spelling is not a content type.
func TestIsAttributeUsed_SubtitlesApplyToTVShows(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAttributeUsed(model.AttrSubtitleLanguages, model.ContentTypeTVShow))
	assert.False(t, IsAttributeUsed(model.AttrSubtitleLanguages, model.ContentType("tv-show")))
	assert.Equal(t,
		IsAttributeUsed(model.AttrVideoCodec, model.ContentTypeTVShow),
		IsAttributeUsed(model.AttrSubtitleLanguages, model.ContentTypeTVShow))
}

func TestIsReleaseDateRequired(t *testing.T) {
	t.Parallel()

	required := map[model.ContentType]bool{
		model.ContentTypeMovie:      true,
		model.ContentTypeTVShow:     true,
		model.ContentTypeMusic:      true,
		model.ContentTypePodcast:    true,
		model.ContentTypeSoftware:   true,
		model.ContentTypeBook:       false,
		model.ContentTypeVideo:      false,
		model.ContentTypeCollection: false,
	}
	for ct, want := range required {
		assert.Equal(t, want, IsReleaseDateRequired(ct), "IsReleaseDateRequired(%s)", ct)
	}
}
