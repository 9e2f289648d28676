package session

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/koscakluka/bidi-core/core/events"
)

type cameraSourceStub struct {
	fail error
}

func (c *cameraSourceStub) CaptureStill(context.Context) (image.Image, error) {
	if c.fail != nil {
		return nil, c.fail
	}
	still := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			still.Set(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), A: 255})
		}
	}
	return still, nil
}

func TestSendImageEmitsLocalEcho(t *testing.T) {
	captured := []events.Event{}
	session := New("example.com", "u1",
		WithCameraSource(&cameraSourceStub{}),
		WithEventEmitter(func(event events.Event) { captured = append(captured, event) }),
	)
	defer session.Close()

	// The channel is not open; the send is dropped but the local echo
	// must still appear without waiting for any acknowledgment.
	if err := session.SendImage(context.Background()); err != nil {
		t.Fatalf("expected capture to succeed, got %v", err)
	}

	if len(captured) != 1 {
		t.Fatalf("expected one echoed message event, got %d", len(captured))
	}
	echo, ok := captured[0].(events.ImageMessageOpened)
	if !ok {
		t.Fatalf("expected image message event, got %T", captured[0])
	}
	if echo.Speaker != events.SpeakerUser {
		t.Fatalf("expected echoed image to speak as user, got %q", echo.Speaker)
	}
	if echo.MimeType != "image/jpeg" {
		t.Fatalf("unexpected mime type: %q", echo.MimeType)
	}
	if !bytes.HasPrefix(echo.Data, []byte{0xFF, 0xD8}) {
		t.Fatalf("expected JPEG payload, got prefix %v", echo.Data[:2])
	}

	if got := session.Log().Len(); got != 1 {
		t.Fatalf("expected the outgoing image to be logged, got %d entries", got)
	}
}

func TestSendImageWithoutCameraFails(t *testing.T) {
	captured := []events.Event{}
	session := New("example.com", "u1",
		WithEventEmitter(func(event events.Event) { captured = append(captured, event) }),
	)
	defer session.Close()

	if err := session.SendImage(context.Background()); !errors.Is(err, ErrCameraNotConfigured) {
		t.Fatalf("expected not-configured error, got %v", err)
	}
	if len(captured) != 1 {
		t.Fatalf("expected a capture error event, got %d", len(captured))
	}
}

func TestSendImageDeviceFailureSurfaces(t *testing.T) {
	deviceErr := errors.New("camera unavailable")
	captured := []events.Event{}
	session := New("example.com", "u1",
		WithCameraSource(&cameraSourceStub{fail: deviceErr}),
		WithEventEmitter(func(event events.Event) { captured = append(captured, event) }),
	)
	defer session.Close()

	if err := session.SendImage(context.Background()); !errors.Is(err, deviceErr) {
		t.Fatalf("expected device error to propagate, got %v", err)
	}

	if len(captured) != 1 {
		t.Fatalf("expected a capture error event, got %d", len(captured))
	}
	if _, ok := captured[0].(events.CaptureError); !ok {
		t.Fatalf("expected capture error event, got %T", captured[0])
	}
}
