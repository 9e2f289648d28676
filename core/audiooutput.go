package session

import (
	"context"
	"sync/atomic"
)

// audioOutput is the inbound playback pipeline: decoded PCM frames are
// handed to the playback sink in arrival order. The sink owns gapless
// rendering; no resampling, mixing, or jitter smoothing happens here.
//
// NOTE: methods do best-effort forwarding and treat playback as a
// non-fatal side effect; a frame that cannot be rendered is dropped,
// never queued.
type audioOutput struct {
	client  AudioOutput
	started atomic.Bool
}

func newAudioOutput(client AudioOutput) *audioOutput {
	return &audioOutput{client: client}
}

func (a *audioOutput) isConfigured() bool {
	return a != nil && a.client != nil
}

// Start initializes the playback sink. Playback must be explicitly
// started before any inbound media event can be rendered.
func (a *audioOutput) Start(ctx context.Context) error {
	if !a.isConfigured() {
		return ErrAudioOutputNotConfigured
	}
	if err := a.client.StartPlayback(ctx); err != nil {
		return err
	}
	a.started.Store(true)
	return nil
}

func (a *audioOutput) Stop() error {
	if !a.isConfigured() || !a.started.Swap(false) {
		return nil
	}
	return a.client.StopPlayback()
}

// Enqueue forwards one decoded frame to the sink. Frames arriving
// before the sink is started are dropped.
func (a *audioOutput) Enqueue(pcm []byte) {
	if !a.isConfigured() || !a.started.Load() {
		return
	}
	if err := a.client.SendAudio(pcm); err != nil {
		logger.Debug("Dropping playback frame", "error", err)
	}
}

// Clear flushes audio the sink has buffered but not yet rendered.
func (a *audioOutput) Clear() {
	if !a.isConfigured() {
		return
	}
	a.client.ClearBuffer()
}
