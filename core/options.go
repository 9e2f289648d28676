package session

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/koscakluka/bidi-core/core/events"
)

var (
	ErrAudioInputNotConfigured  = errors.New("audio input not configured")
	ErrAudioOutputNotConfigured = errors.New("audio output not configured")
	ErrCameraNotConfigured      = errors.New("camera source not configured")
)

type Option func(*Session)

// AudioInput is a capture source yielding fixed-size PCM frames via
// callback, e.g. [miniaudio.Client] or [portaudio.Client].
type AudioInput interface {
	StartCapture(ctx context.Context, onAudio func(audio []byte)) error
	StopCapture() error
}

func WithAudioInput(client AudioInput) Option {
	return func(s *Session) { s.micClient = client }
}

// AudioOutput is a playback sink that accepts PCM buffers for
// scheduled, gap-free output.
type AudioOutput interface {
	StartPlayback(ctx context.Context) error
	StopPlayback() error
	SendAudio(audio []byte) error
	ClearBuffer()
}

func WithAudioOutput(client AudioOutput) Option {
	return func(s *Session) { s.playbackClient = client }
}

// CameraSource yields a single still frame on demand.
type CameraSource interface {
	CaptureStill(ctx context.Context) (image.Image, error)
}

func WithCameraSource(camera CameraSource) Option {
	return func(s *Session) { s.camera = camera }
}

// WithEventEmitter subscribes the display layer to session events.
func WithEventEmitter(emit func(events.Event)) Option {
	return func(s *Session) {
		if emit == nil {
			emit = noopEventEmitter
		}
		s.emit = emit
	}
}

// WithTopic seeds the configuration handshake sent on every
// connection open.
func WithTopic(topic, title string) Option {
	return func(s *Session) {
		s.topic = topic
		s.title = title
	}
}

// WithInsecure uses ws:// instead of wss://.
func WithInsecure() Option {
	return func(s *Session) { s.insecure = true }
}

// WithReconnectDelay overrides the fixed delay between reconnect
// attempts. The default is 5 seconds.
func WithReconnectDelay(delay time.Duration) Option {
	return func(s *Session) { s.reconnectDelay = delay }
}

// WithLogCapacity bounds the diagnostic session log.
func WithLogCapacity(capacity int) Option {
	return func(s *Session) { s.logCapacity = capacity }
}
