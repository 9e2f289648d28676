package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/koscakluka/bidi-core/core/events"
)

func TestNewGeneratesUniqueSessionIDs(t *testing.T) {
	first := New("example.com", "u1")
	second := New("example.com", "u1")
	defer first.Close()
	defer second.Close()

	if first.SessionID() == "" {
		t.Fatalf("expected a generated session ID")
	}
	if first.SessionID() == second.SessionID() {
		t.Fatalf("expected session IDs to be unique per session")
	}
	if first.UserID() != "u1" {
		t.Fatalf("unexpected user ID: %q", first.UserID())
	}
}

func TestOpenSendsConfigHandshake(t *testing.T) {
	server := newWireServer(t)

	session := New(server.Host(), "u1",
		WithInsecure(),
		WithTopic("Math", "Fractions"),
	)
	defer session.Close()

	session.Open(context.Background())

	select {
	case frame := <-server.frames:
		var config struct {
			Type  string `json:"type"`
			Topic string `json:"topic"`
			Title string `json:"title"`
		}
		if err := json.Unmarshal(frame, &config); err != nil {
			t.Fatalf("expected a JSON handshake frame, got %q: %v", frame, err)
		}
		if config.Type != "config" || config.Topic != "Math" || config.Title != "Fractions" {
			t.Fatalf("unexpected handshake: %+v", config)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected the configuration handshake on open")
	}
}

func TestInboundEventsReachTheEngine(t *testing.T) {
	server := newWireServer(t)

	emitted := make(chan events.Event, 16)
	session := New(server.Host(), "u1",
		WithInsecure(),
		WithEventEmitter(func(event events.Event) { emitted <- event }),
	)
	defer session.Close()

	session.Open(context.Background())

	select {
	case event := <-emitted:
		if _, ok := event.(events.ConnectionOpened); !ok {
			t.Fatalf("expected connection opened first, got %T", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a connection opened event")
	}

	// Drain the handshake, then stream an assistant fragment.
	<-server.frames

	server.mu.Lock()
	conn := server.conns[0]
	server.mu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"content":{"parts":[{"text":"Hi"}]}}`)); err != nil {
		t.Fatalf("failed to write server frame: %v", err)
	}

	select {
	case event := <-emitted:
		opened, ok := event.(events.MessageOpened)
		if !ok {
			t.Fatalf("expected a message opened event, got %T", event)
		}
		if opened.Text != "Hi" || opened.Speaker != events.SpeakerAssistant {
			t.Fatalf("unexpected message: %+v", opened)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected the inbound fragment to open a message")
	}
}

func TestSendTextWhileDisconnectedIsSilent(t *testing.T) {
	session := New("example.com", "u1")
	defer session.Close()

	// Must not panic and must not open any buffers.
	session.SendText("dropped")

	if session.engine.assistantText != nil || session.engine.inputTranscript != nil {
		t.Fatalf("expected no buffer state change from an outbound send")
	}
}

func TestMicrophoneFramesReachTheServer(t *testing.T) {
	server := newWireServer(t)

	client := &captureClientStub{}
	opened := make(chan events.Event, 16)
	session := New(server.Host(), "u1",
		WithInsecure(),
		WithAudioInput(client),
		WithEventEmitter(func(event events.Event) { opened <- event }),
	)
	defer session.Close()

	session.Open(context.Background())

	select {
	case event := <-opened:
		if _, ok := event.(events.ConnectionOpened); !ok {
			t.Fatalf("expected connection opened, got %T", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected the channel to open")
	}
	<-server.frames // handshake

	if err := session.EnableMicrophone(context.Background()); err != nil {
		t.Fatalf("expected microphone enable to succeed, got %v", err)
	}
	client.deliver([]byte{0x01, 0x02, 0x03})

	select {
	case frame := <-server.frames:
		if len(frame) != 3 {
			t.Fatalf("expected the raw 3-byte PCM frame, got %d bytes", len(frame))
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected the captured frame on the wire")
	}
}
