package model

// Source is the medium a release was taken from
type Source string

const (
	SourceWeb          Source = "Web"
	SourcePhysicalBook Source = "Physical Book"
	SourceCD           Source = "CD"
	SourceVinyl        Source = "Vinyl"
	SourceBluRay       Source = "Blu-Ray"
	SourceSoundboard   Source = "Soundboard"
	SourceSACD         Source = "SACD"
	SourceDAT          Source = "DAT"
	SourceCassette     Source = "Cassette"
	SourceDVD          Source = "DVD"
	SourceHDDVD        Source = "HD-DVD"
	SourceHDTV         Source = "HD-TV"
	SourcePDTV         Source = "PDTV"
	SourceVHS          Source = "VHS"
	SourceTV           Source = "TV"
	SourceLaserDisc    Source = "LaserDisc"
	SourceMixed        Source = "Mixed"
)

// Feature is an optional quality marker of a torrent
type Feature string

const (
	FeatureHDR        Feature = "HDR"
	FeatureHDR10      Feature = "HDR 10"
	FeatureHDR10Plus  Feature = "HDR 10+"
	FeatureDV         Feature = "DV"
	FeatureCommentary Feature = "Commentary"
	FeatureRemux      Feature = "Remux"
	Feature3D         Feature = "3D"
	FeatureOCR        Feature = "OCR"
	FeatureCue        Feature = "Cue"
)

// Extra is bonus material shipped with a torrent
type Extra string

const (
	ExtraBooklet         Extra = "booklet"
	ExtraManual          Extra = "manual"
	ExtraBehindTheScenes Extra = "behind_the_scenes"
	ExtraDeletedScenes   Extra = "deleted_scenes"
	ExtraFeaturette      Extra = "featurette"
	ExtraTrailer         Extra = "trailer"
	ExtraOther           Extra = "other"
)

// ArtistRole is the part an artist played in a title group
type ArtistRole string

const (
	RoleMain            ArtistRole = "main"
	RoleGuest           ArtistRole = "guest"
	RoleProducer        ArtistRole = "producer"
	RoleDirector        ArtistRole = "director"
	RoleCinematographer ArtistRole = "cinematographer"
	RoleActor           ArtistRole = "actor"
	RoleWriter          ArtistRole = "writer"
	RoleComposer        ArtistRole = "composer"
	RoleCreator         ArtistRole = "creator"
	RolePerformer       ArtistRole = "performer"
	RolePresenter       ArtistRole = "presenter"
	RoleContributor     ArtistRole = "contributor"
	RoleRemixer         ArtistRole = "remixer"
	RoleConductor       ArtistRole = "conductor"
	RoleDJCompiler      ArtistRole = "dj_compiler"
	RoleArranger        ArtistRole = "arranger"
	RoleHost            ArtistRole = "host"
	RoleAuthor          ArtistRole = "author"
	RoleIllustrator     ArtistRole = "illustrator"
	RoleEditor          ArtistRole = "editor"
	RoleDeveloper       ArtistRole = "developer"
	RoleDesigner        ArtistRole = "designer"
)

// Attribute names a torrent field whose relevance depends on the content type
type Attribute string

const (
	AttrVideoCodec            Attribute = "video_codec"
	AttrVideoResolution       Attribute = "video_resolution"
	AttrVideoResolutionOtherX Attribute = "video_resolution_other_x"
	AttrVideoResolutionOtherY Attribute = "video_resolution_other_y"
	AttrAudioChannels         Attribute = "audio_channels"
	AttrAudioBitrateSampling  Attribute = "audio_bitrate_sampling"
	AttrAudioCodec            Attribute = "audio_codec"
	AttrSubtitleLanguages     Attribute = "subtitle_languages"
)
