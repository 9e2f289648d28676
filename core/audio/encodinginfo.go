package audio

import "fmt"

const (
	// CaptureSampleRate is the rate the agent expects for microphone
	// frames sent over the wire.
	CaptureSampleRate = 16000
	// PlaybackSampleRate is the rate the agent synthesizes speech at.
	PlaybackSampleRate = 24000

	DefaultFormat = "linear16"
)

func GetCaptureEncodingInfo() EncodingInfo {
	return EncodingInfo{SampleRate: CaptureSampleRate, Format: encodingFormat(DefaultFormat)}
}

func GetPlaybackEncodingInfo() EncodingInfo {
	return EncodingInfo{SampleRate: PlaybackSampleRate, Format: encodingFormat(DefaultFormat)}
}

type EncodingInfo struct {
	SampleRate int
	Format     encodingFormat
}

func (e EncodingInfo) IsZero() bool {
	return e.SampleRate == 0 || e.Format.Name() == ""
}

// MimeType renders the encoding the way inline media declares it on
// the wire, e.g. "audio/pcm;rate=16000".
func (e EncodingInfo) MimeType() string {
	return fmt.Sprintf("audio/pcm;rate=%d", e.SampleRate)
}

type encodingFormat string

func (e encodingFormat) Name() string {
	return string(e)
}

func (e encodingFormat) ByteSize() int {
	switch e {
	case EncodingMulaw, EncodingALaw:
		return 1
	case EncodingLinear16:
		return 2
	}
	return -1
}

const (
	EncodingMulaw    encodingFormat = "mulaw"
	EncodingALaw     encodingFormat = "alaw"
	EncodingLinear16 encodingFormat = "linear16"
)
