package lookup

import (
	"slices"

	"github.com/arcadia-tracker/arcadia-ui/internal/model"
)

var (
	videoSources = []model.Source{
		model.SourceBluRay, model.SourceDVD, model.SourceHDDVD, model.SourceHDTV,
		model.SourcePDTV, model.SourceVHS, model.SourceTV, model.SourceLaserDisc,
	}
	musicSources = []model.Source{
		model.SourceVinyl, model.SourceBluRay, model.SourceCD, model.SourceSoundboard,
		model.SourceSACD, model.SourceDAT, model.SourceCassette,
	}
	bookSources = []model.Source{model.SourcePhysicalBook, model.SourceCD}
	// Collections list the video media first, then everything physical that
	// is not already covered.
	collectionSources = []model.Source{
		model.SourceBluRay, model.SourceDVD, model.SourceHDDVD, model.SourceHDTV,
		model.SourcePDTV, model.SourceVHS, model.SourceTV, model.SourceLaserDisc,
		model.SourcePhysicalBook, model.SourceVinyl, model.SourceCD, model.SourceSoundboard,
		model.SourceSACD, model.SourceDAT, model.SourceCassette,
	}

	videoFeatures = []model.Feature{
		model.FeatureHDR, model.FeatureHDR10, model.FeatureHDR10Plus, model.FeatureDV,
		model.FeatureCommentary, model.FeatureRemux, model.Feature3D,
	}
)

// AudiobookFormat is the edition format that marks a book as an audiobook
const AudiobookFormat = "audiobook"

// Sources returns the sources selectable for ct, always starting with Web
// and ending with Mixed.
func Sources(ct model.ContentType) []model.Source {
	sources := []model.Source{model.SourceWeb}
	switch ct {
	case model.ContentTypeBook:
		sources = append(sources, bookSources...)
	case model.ContentTypeMusic:
		sources = append(sources, musicSources...)
	case model.ContentTypeVideo, model.ContentTypeMovie, model.ContentTypeTVShow:
		sources = append(sources, videoSources...)
	case model.ContentTypeCollection:
		sources = append(sources, collectionSources...)
	case model.ContentTypePodcast, model.ContentTypeSoftware:
		// Web only
	}
	return append(sources, model.SourceMixed)
}

// Features returns the features selectable for a torrent. OCR applies to
// scans of physical books; Cue to music and audiobooks; the video features
// to movies and TV shows.
func Features(ct model.ContentType, format string, source model.Source) []model.Feature {
	features := []model.Feature{}
	if source == model.SourcePhysicalBook {
		features = append(features, model.FeatureOCR)
	}
	if (ct == model.ContentTypeBook && format == AudiobookFormat) || ct == model.ContentTypeMusic {
		features = append(features, model.FeatureCue)
	} else if ct == model.ContentTypeTVShow || ct == model.ContentTypeMovie {
		features = append(features, videoFeatures...)
	}
	return features
}

// SelectableExtras returns the extras selectable for ct, always ending with other
func SelectableExtras(ct model.ContentType) []model.Extra {
	extras := []model.Extra{}
	switch ct {
	case model.ContentTypeBook, model.ContentTypeMusic:
		extras = append(extras, model.ExtraBooklet)
	case model.ContentTypeMovie:
		extras = append(extras, model.ExtraBehindTheScenes, model.ExtraDeletedScenes,
			model.ExtraFeaturette, model.ExtraTrailer)
	case model.ContentTypeTVShow:
		extras = append(extras, model.ExtraBehindTheScenes, model.ExtraDeletedScenes,
			model.ExtraTrailer)
	case model.ContentTypeVideo:
		extras = append(extras, model.ExtraBooklet, model.ExtraBehindTheScenes,
			model.ExtraDeletedScenes, model.ExtraFeaturette, model.ExtraTrailer)
	case model.ContentTypePodcast, model.ContentTypeSoftware, model.ContentTypeCollection:
		// only other
	}
	return append(extras, model.ExtraOther)
}

// ArtistRoles returns the roles an artist can hold for ct. Every content
// type, known or not, allows main and guest.
func ArtistRoles(ct model.ContentType) []model.ArtistRole {
	roles := []model.ArtistRole{model.RoleMain, model.RoleGuest}
	switch ct {
	case model.ContentTypeMovie, model.ContentTypeTVShow:
		return append(roles, model.RoleProducer, model.RoleDirector, model.RoleCinematographer,
			model.RoleActor, model.RoleWriter, model.RoleComposer)
	case model.ContentTypeVideo:
		return append(roles, model.RoleCreator, model.RolePerformer, model.RolePresenter,
			model.RoleContributor, model.RoleProducer, model.RoleDirector,
			model.RoleCinematographer, model.RoleActor, model.RoleWriter,
			model.RoleComposer, model.RoleRemixer)
	case model.ContentTypeMusic:
		return append(roles, model.RoleProducer, model.RoleComposer, model.RoleConductor,
			model.RoleDJCompiler, model.RoleRemixer, model.RoleArranger, model.RoleWriter)
	case model.ContentTypePodcast:
		return append(roles, model.RoleProducer, model.RoleWriter, model.RoleHost)
	case model.ContentTypeBook:
		return append(roles, model.RoleAuthor, model.RoleWriter, model.RoleIllustrator,
			model.RoleEditor)
	case model.ContentTypeSoftware:
		return append(roles, model.RoleDeveloper, model.RoleDesigner, model.RoleProducer,
			model.RoleWriter)
	case model.ContentTypeCollection:
		return append(roles, model.RoleProducer, model.RoleDirector, model.RoleComposer,
			model.RoleAuthor, model.RoleWriter, model.RoleEditor)
	default:
		return roles
	}
}

// Content types for which each attribute is meaningful. Attributes missing
// from the table apply to every content type.
var attributeContentTypes = map[model.Attribute][]model.ContentType{
	model.AttrVideoCodec:            videoAndCollection,
	model.AttrVideoResolution:       videoAndCollection,
	model.AttrVideoResolutionOtherX: videoAndCollection,
	model.AttrVideoResolutionOtherY: videoAndCollection,
	model.AttrAudioChannels:         videoAndCollection,
	model.AttrSubtitleLanguages:     videoAndCollection,
	model.AttrAudioBitrateSampling:  audible,
	model.AttrAudioCodec:            audible,
}

var (
	videoAndCollection = []model.ContentType{
		model.ContentTypeMovie, model.ContentTypeTVShow, model.ContentTypeVideo, model.ContentTypeCollection,
	}
	audible = []model.ContentType{
		model.ContentTypeMovie, model.ContentTypeTVShow, model.ContentTypeVideo,
		model.ContentTypeMusic, model.ContentTypePodcast, model.ContentTypeCollection,
	}
)

// IsAttributeUsed reports whether a torrent attribute applies to ct
func IsAttributeUsed(attr model.Attribute, ct model.ContentType) bool {
	allowed, ok := attributeContentTypes[attr]
	if !ok {
		return true
	}
	return slices.Contains(allowed, ct)
}

var releaseDateRequired = []model.ContentType{
	model.ContentTypeMovie, model.ContentTypeTVShow, model.ContentTypeMusic,
	model.ContentTypePodcast, model.ContentTypeSoftware,
}

// IsReleaseDateRequired reports whether editions of ct must carry a release date
func IsReleaseDateRequired(ct model.ContentType) bool {
	return slices.Contains(releaseDateRequired, ct)
}
