package events

const (
	// KindPlaybackFrame identifies decoded inbound audio handed to playback.
	KindPlaybackFrame Kind = "playback.frame"
	// KindCaptureError identifies a media device failure.
	KindCaptureError Kind = "capture.error"
)

// PlaybackFrame carries one decoded PCM buffer in arrival order.
type PlaybackFrame struct {
	Base
	Audio []byte
}

// NewPlaybackFrame creates a playback frame event.
func NewPlaybackFrame(audio []byte) PlaybackFrame {
	return PlaybackFrame{Base: NewBase(KindPlaybackFrame), Audio: audio}
}

// CaptureError reports a media device that failed to start or became
// unavailable. The affected feature stays off until retried.
type CaptureError struct {
	Base
	Device string
	Err    error
}

// NewCaptureError creates a capture error event.
func NewCaptureError(device string, err error) CaptureError {
	return CaptureError{Base: NewBase(KindCaptureError), Device: device, Err: err}
}
