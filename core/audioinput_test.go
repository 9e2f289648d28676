package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/koscakluka/bidi-core/core/events"
)

type captureClientStub struct {
	mu      sync.Mutex
	starts  int
	stops   int
	onAudio func([]byte)
	fail    error
}

func (c *captureClientStub) StartCapture(_ context.Context, onAudio func(audio []byte)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return c.fail
	}
	c.starts++
	c.onAudio = onAudio
	return nil
}

func (c *captureClientStub) StopCapture() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stops++
	c.onAudio = nil
	return nil
}

func (c *captureClientStub) startCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.starts
}

func (c *captureClientStub) deliver(frame []byte) {
	c.mu.Lock()
	onAudio := c.onAudio
	c.mu.Unlock()
	if onAudio != nil {
		onAudio(frame)
	}
}

func TestAudioInputEnableIsIdempotent(t *testing.T) {
	client := &captureClientStub{}
	mic := newAudioInput(client, nil, func([]byte) {})

	if err := mic.Enable(context.Background()); err != nil {
		t.Fatalf("expected enable to succeed, got %v", err)
	}
	if err := mic.Enable(context.Background()); err != nil {
		t.Fatalf("expected repeated enable to be a no-op, got %v", err)
	}

	if got := client.startCalls(); got != 1 {
		t.Fatalf("expected one capture start, got %d", got)
	}
}

func TestAudioInputForwardsFramesWhileActive(t *testing.T) {
	client := &captureClientStub{}
	sent := [][]byte{}
	mic := newAudioInput(client, nil, func(frame []byte) { sent = append(sent, frame) })

	if err := mic.Enable(context.Background()); err != nil {
		t.Fatalf("expected enable to succeed, got %v", err)
	}
	client.deliver([]byte{0x01})

	if len(sent) != 1 {
		t.Fatalf("expected one forwarded frame, got %d", len(sent))
	}
}

func TestAudioInputDropsFramesAfterDisable(t *testing.T) {
	client := &captureClientStub{}
	sent := [][]byte{}
	mic := newAudioInput(client, nil, func(frame []byte) { sent = append(sent, frame) })

	if err := mic.Enable(context.Background()); err != nil {
		t.Fatalf("expected enable to succeed, got %v", err)
	}
	onAudio := mic.onAudio
	if err := mic.Disable(); err != nil {
		t.Fatalf("expected disable to succeed, got %v", err)
	}

	// A late frame from the device after the toggle flips is dropped.
	onAudio([]byte{0x01})

	if len(sent) != 0 {
		t.Fatalf("expected late frames to be dropped, got %d", len(sent))
	}
}

func TestAudioInputDeviceFailureSurfacesAndAllowsRetry(t *testing.T) {
	deviceErr := errors.New("permission denied")
	client := &captureClientStub{fail: deviceErr}

	captured := []events.Event{}
	mic := newAudioInput(client, func(event events.Event) { captured = append(captured, event) }, func([]byte) {})

	if err := mic.Enable(context.Background()); !errors.Is(err, deviceErr) {
		t.Fatalf("expected device error to propagate, got %v", err)
	}
	if mic.IsCapturing() {
		t.Fatalf("expected capture to stay off after device failure")
	}

	if len(captured) != 1 {
		t.Fatalf("expected one capture error event, got %d", len(captured))
	}
	captureErr, ok := captured[0].(events.CaptureError)
	if !ok {
		t.Fatalf("expected capture error event, got %T", captured[0])
	}
	if captureErr.Device != "microphone" {
		t.Fatalf("unexpected device tag: %q", captureErr.Device)
	}

	// The feature stays unavailable until retried; a retry may succeed.
	client.mu.Lock()
	client.fail = nil
	client.mu.Unlock()
	if err := mic.Enable(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
}

func TestAudioInputUnconfiguredEnableFails(t *testing.T) {
	captured := []events.Event{}
	mic := newAudioInput(nil, func(event events.Event) { captured = append(captured, event) }, nil)

	if err := mic.Enable(context.Background()); !errors.Is(err, ErrAudioInputNotConfigured) {
		t.Fatalf("expected not-configured error, got %v", err)
	}
	if len(captured) != 1 {
		t.Fatalf("expected a capture error event, got %d", len(captured))
	}
}
