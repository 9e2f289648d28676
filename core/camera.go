package session

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"

	"github.com/google/uuid"
	"github.com/koscakluka/bidi-core/core/events"
	"github.com/koscakluka/bidi-core/core/protocol"
)

const jpegQuality = 85

// SendImage captures one still frame, sends it over the channel, and
// synthesizes the local echo immediately: the sent message shows up
// without waiting for server acknowledgment.
func (s *Session) SendImage(ctx context.Context) error {
	if s.camera == nil {
		s.emit(events.NewCaptureError("camera", ErrCameraNotConfigured))
		return ErrCameraNotConfigured
	}

	still, err := s.camera.CaptureStill(ctx)
	if err != nil {
		logger.Warn("Failed to capture still frame", "error", err)
		s.emit(events.NewCaptureError("camera", err))
		return fmt.Errorf("failed to capture still frame: %w", err)
	}

	encoded := bytes.Buffer{}
	if err := jpeg.Encode(&encoded, still, &jpeg.Options{Quality: jpegQuality}); err != nil {
		s.emit(events.NewCaptureError("camera", err))
		return fmt.Errorf("failed to encode still frame: %w", err)
	}

	message := protocol.NewImageMessage(encoded.Bytes(), "image/jpeg")
	s.conn.SendJSON(message)
	s.log.Record(DirectionOutbound,
		fmt.Sprintf("image/jpeg (%d bytes)", encoded.Len()), len(message.Data))

	s.emit(events.NewImageMessageOpened(uuid.NewString(), events.SpeakerUser, "image/jpeg", encoded.Bytes()))
	return nil
}
