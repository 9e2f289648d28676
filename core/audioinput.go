package session

import (
	"context"
	"sync/atomic"

	"github.com/koscakluka/bidi-core/core/events"
)

// audioInput is the outbound microphone pipeline: every captured PCM
// frame is sent immediately as a raw binary frame while capture is
// active and the channel is open. Frames produced outside that window
// are dropped, never buffered.
type audioInput struct {
	client AudioInput
	emit   eventEmitter
	send   func(frame []byte)

	active atomic.Bool
}

func newAudioInput(client AudioInput, emit eventEmitter, send func([]byte)) *audioInput {
	if emit == nil {
		emit = noopEventEmitter
	}
	return &audioInput{client: client, emit: emit, send: send}
}

func (a *audioInput) isConfigured() bool {
	return a != nil && a.client != nil
}

// Enable starts microphone capture. Idempotent and guarded: a second
// enable while already active is a no-op. Device failures surface as
// capture events and leave the feature off until retried.
func (a *audioInput) Enable(ctx context.Context) error {
	if !a.isConfigured() {
		a.emit(events.NewCaptureError("microphone", ErrAudioInputNotConfigured))
		return ErrAudioInputNotConfigured
	}

	if !a.active.CompareAndSwap(false, true) {
		return nil
	}

	if err := a.client.StartCapture(ctx, a.onAudio); err != nil {
		a.active.Store(false)
		logger.Warn("Failed to start microphone capture", "error", err)
		a.emit(events.NewCaptureError("microphone", err))
		return err
	}
	return nil
}

// Disable stops capture and releases the device.
func (a *audioInput) Disable() error {
	if !a.isConfigured() || !a.active.Swap(false) {
		return nil
	}
	return a.client.StopCapture()
}

func (a *audioInput) IsCapturing() bool {
	return a != nil && a.active.Load()
}

func (a *audioInput) onAudio(frame []byte) {
	// The capture device may deliver a few frames after Disable; the
	// toggle decides, not the device.
	if !a.active.Load() || a.send == nil {
		return
	}
	a.send(frame)
}
