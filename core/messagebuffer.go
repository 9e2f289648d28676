package session

import (
	"strings"

	"github.com/google/uuid"
	"github.com/koscakluka/bidi-core/core/events"
)

// messageBuffer accumulates fragments of one in-progress message. Each
// buffer owns a stable handle assigned when it opens; display layers
// address updates by handle, never by list position.
//
// Lifecycle per direction: Closed -> Open (first fragment) -> Closed
// (finished flag, turn complete, or interruption). A fragment arriving
// while closed legally opens a fresh buffer rather than erroring.
type messageBuffer struct {
	handle  string
	speaker events.Speaker
	chunks  []string
}

func newMessageBuffer(speaker events.Speaker) *messageBuffer {
	return &messageBuffer{
		handle:  uuid.NewString(),
		speaker: speaker,
	}
}

func (b *messageBuffer) Append(chunk string) {
	b.chunks = append(b.chunks, chunk)
}

func (b *messageBuffer) Text() string {
	return strings.Join(b.chunks, "")
}
