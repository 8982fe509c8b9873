package model

// The following vocabularies mirror the enum values accepted by the tracker
// API. Order matches the backend schema and is what select inputs display.

// VideoCodec is the codec (or disc layout) of the main video stream
type VideoCodec string

const (
	VideoCodecMpeg1  VideoCodec = "mpeg1"
	VideoCodecMpeg2  VideoCodec = "mpeg2"
	VideoCodecXviD   VideoCodec = "XviD"
	VideoCodecDivX   VideoCodec = "DivX"
	VideoCodecH264   VideoCodec = "h264"
	VideoCodecH265   VideoCodec = "h265"
	VideoCodecVC1    VideoCodec = "vc-1"
	VideoCodecVP9    VideoCodec = "vp9"
	VideoCodecBD50   VideoCodec = "BD50"
	VideoCodecUHD100 VideoCodec = "UHD100"
	VideoCodecDVD5   VideoCodec = "DVD5"
	VideoCodecDVD9   VideoCodec = "DVD9"
	VideoCodecVP6    VideoCodec = "VP6"
	VideoCodecRV40   VideoCodec = "RV40"
)

// AllVideoCodecs returns every video codec in schema order
func AllVideoCodecs() []VideoCodec {
	return []VideoCodec{
		VideoCodecMpeg1, VideoCodecMpeg2, VideoCodecXviD, VideoCodecDivX,
		VideoCodecH264, VideoCodecH265, VideoCodecVC1, VideoCodecVP9,
		VideoCodecBD50, VideoCodecUHD100, VideoCodecDVD5, VideoCodecDVD9,
		VideoCodecVP6, VideoCodecRV40,
	}
}

// VideoResolution is the vertical resolution (or broadcast standard)
type VideoResolution string

const (
	VideoResolutionNTSC  VideoResolution = "NTSC"
	VideoResolutionPAL   VideoResolution = "PAL"
	VideoResolutionOther VideoResolution = "Other"
	VideoResolution360p  VideoResolution = "360p"
	VideoResolution480p  VideoResolution = "480p"
	VideoResolution480i  VideoResolution = "480i"
	VideoResolution576i  VideoResolution = "576i"
	VideoResolution576p  VideoResolution = "576p"
	VideoResolution720p  VideoResolution = "720p"
	VideoResolution1080p VideoResolution = "1080p"
	VideoResolution1080i VideoResolution = "1080i"
	VideoResolution1440p VideoResolution = "1440p"
	VideoResolution2160p VideoResolution = "2160p"
	VideoResolution4320p VideoResolution = "4320p"
)

// AllVideoResolutions returns every video resolution in schema order
func AllVideoResolutions() []VideoResolution {
	return []VideoResolution{
		VideoResolutionNTSC, VideoResolutionPAL, VideoResolutionOther,
		VideoResolution360p, VideoResolution480p, VideoResolution480i,
		VideoResolution576i, VideoResolution576p, VideoResolution720p,
		VideoResolution1080p, VideoResolution1080i, VideoResolution1440p,
		VideoResolution2160p, VideoResolution4320p,
	}
}

// AudioCodec is the codec of the main audio stream
type AudioCodec string

const (
	AudioCodecMp2    AudioCodec = "mp2"
	AudioCodecMp3    AudioCodec = "mp3"
	AudioCodecAac    AudioCodec = "aac"
	AudioCodecAc3    AudioCodec = "ac3"
	AudioCodecDts    AudioCodec = "dts"
	AudioCodecFlac   AudioCodec = "flac"
	AudioCodecPcm    AudioCodec = "pcm"
	AudioCodecTrueHD AudioCodec = "true-hd"
	AudioCodecOpus   AudioCodec = "opus"
	AudioCodecDsd    AudioCodec = "dsd"
	AudioCodecCook   AudioCodec = "cook"
)

// AllAudioCodecs returns every audio codec in schema order
func AllAudioCodecs() []AudioCodec {
	return []AudioCodec{
		AudioCodecMp2, AudioCodecMp3, AudioCodecAac, AudioCodecAc3,
		AudioCodecDts, AudioCodecFlac, AudioCodecPcm, AudioCodecTrueHD,
		AudioCodecOpus, AudioCodecDsd, AudioCodecCook,
	}
}

// AudioBitrateSampling is the bitrate or sampling class of an audio stream
type AudioBitrateSampling string

const (
	AudioBitrate64         AudioBitrateSampling = "64"
	AudioBitrate128        AudioBitrateSampling = "128"
	AudioBitrate192        AudioBitrateSampling = "192"
	AudioBitrate256        AudioBitrateSampling = "256"
	AudioBitrate320        AudioBitrateSampling = "320"
	AudioBitrateApsVbr     AudioBitrateSampling = "APS (VBR)"
	AudioBitrateV2Vbr      AudioBitrateSampling = "V2 (VBR)"
	AudioBitrateV1Vbr      AudioBitrateSampling = "V1 (VBR)"
	AudioBitrateApxVbr     AudioBitrateSampling = "APX (VBR)"
	AudioBitrateV0Vbr      AudioBitrateSampling = "V0 (VBR)"
	AudioBitrateLossless   AudioBitrateSampling = "Lossless"
	AudioBitrate24Lossless AudioBitrateSampling = "24bit Lossless"
	AudioBitrateDsd64      AudioBitrateSampling = "DSD64"
	AudioBitrateDsd128     AudioBitrateSampling = "DSD128"
	AudioBitrateDsd256     AudioBitrateSampling = "DSD256"
	AudioBitrateDsd512     AudioBitrateSampling = "DSD512"
	AudioBitrateOther      AudioBitrateSampling = "Other"
)

// AllAudioBitrateSamplings returns every bitrate/sampling class in schema order
func AllAudioBitrateSamplings() []AudioBitrateSampling {
	return []AudioBitrateSampling{
		AudioBitrate64, AudioBitrate128, AudioBitrate192, AudioBitrate256,
		AudioBitrate320, AudioBitrateApsVbr, AudioBitrateV2Vbr, AudioBitrateV1Vbr,
		AudioBitrateApxVbr, AudioBitrateV0Vbr, AudioBitrateLossless,
		AudioBitrate24Lossless, AudioBitrateDsd64, AudioBitrateDsd128,
		AudioBitrateDsd256, AudioBitrateDsd512, AudioBitrateOther,
	}
}

// AudioChannels is the channel layout of an audio stream
type AudioChannels string

const (
	AudioChannels10 AudioChannels = "1.0"
	AudioChannels20 AudioChannels = "2.0"
	AudioChannels21 AudioChannels = "2.1"
	AudioChannels50 AudioChannels = "5.0"
	AudioChannels51 AudioChannels = "5.1"
	AudioChannels71 AudioChannels = "7.1"
)

// AllAudioChannels returns every channel layout in schema order
func AllAudioChannels() []AudioChannels {
	return []AudioChannels{
		AudioChannels10, AudioChannels20, AudioChannels21,
		AudioChannels50, AudioChannels51, AudioChannels71,
	}
}
