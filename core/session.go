// Package session implements the client core of a real-time,
// bidirectional multimodal chat: one persistent duplex channel to a
// streaming conversational agent, outbound text/audio/image input, and
// reassembly of fragmented inbound events into coherent messages and
// synchronized audio playback.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/koscakluka/bidi-core/core/events"
	"github.com/koscakluka/bidi-core/core/protocol"
)

// Session identifies one logical conversation. It exclusively owns the
// duplex channel; every other component only calls its send operations
// or observes its state.
type Session struct {
	userID    string
	sessionID string

	topic string
	title string

	insecure       bool
	reconnectDelay time.Duration
	logCapacity    int

	emit eventEmitter

	micClient      AudioInput
	playbackClient AudioOutput
	camera         CameraSource

	conn     *connection
	engine   *reassembler
	mic      *audioInput
	playback *audioOutput
	log      *SessionLog
}

// New assembles a session for the given host and user. The session ID
// is generated once here and never reused. Media capabilities are
// injected through options and resolved once; a missing capability
// leaves that feature unavailable without affecting the rest.
func New(host, userID string, opts ...Option) *Session {
	s := &Session{
		userID:         userID,
		sessionID:      uuid.NewString(),
		reconnectDelay: defaultReconnectDelay,
		emit:           noopEventEmitter,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log = newSessionLog(s.logCapacity)
	s.playback = newAudioOutput(s.playbackClient)
	s.engine = newReassembler(func(event events.Event) { s.emit(event) }, s.playback, s.log)

	url := sessionURL(host, userID, s.sessionID, s.insecure)
	s.conn = newConnection(url, connectionHandlers{
		onOpen:    s.onOpen,
		onMessage: s.onMessage,
		onClose:   s.onClose,
		onError:   s.onError,
	}, s.reconnectDelay)

	s.mic = newAudioInput(s.micClient, func(event events.Event) { s.emit(event) }, s.conn.SendBinary)

	return s
}

func (s *Session) UserID() string    { return s.userID }
func (s *Session) SessionID() string { return s.sessionID }

// Log exposes the diagnostic session log for display layers.
func (s *Session) Log() *SessionLog { return s.log }

// Open starts connecting. It never blocks: connection outcomes are
// reported through session events.
func (s *Session) Open(ctx context.Context) {
	_, span := tracer.Start(ctx, "session.open")
	defer span.End()

	s.conn.Connect()
}

// Close ends the session: cancels any pending reconnect, stops active
// capture and playback, and releases the channel. The only terminal
// transition; everything else is recoverable.
func (s *Session) Close() {
	s.conn.Close()
	if err := s.mic.Disable(); err != nil {
		logger.Warn("Failed to stop microphone on close", "error", err)
	}
	if err := s.playback.Stop(); err != nil {
		logger.Warn("Failed to stop playback on close", "error", err)
	}
}

// SendText packages typed user input for the wire. Silently dropped
// when the channel is not open.
func (s *Session) SendText(text string) {
	message := protocol.NewTextMessage(text)
	s.conn.SendJSON(message)
	s.log.Record(DirectionOutbound, "text: "+text, len(text))
}

// EnableMicrophone starts streaming captured PCM frames to the agent.
// Idempotent while already active.
func (s *Session) EnableMicrophone(ctx context.Context) error {
	return s.mic.Enable(ctx)
}

// DisableMicrophone stops capture; frames produced while disabled are
// dropped, never buffered.
func (s *Session) DisableMicrophone() error {
	return s.mic.Disable()
}

// StartPlayback initializes the inbound audio pipeline. Frames that
// arrive before this is called are dropped.
func (s *Session) StartPlayback(ctx context.Context) error {
	return s.playback.Start(ctx)
}

func (s *Session) onOpen() {
	s.emit(events.NewConnectionOpened(s.conn.url))
	s.log.Record(DirectionOutbound, fmt.Sprintf("config: %s / %s", s.topic, s.title), 0)

	// The server waits for the configuration handshake before it
	// starts streaming; sent on every (re)connect.
	s.conn.SendJSON(protocol.NewConfigMessage(s.topic, s.title))
}

func (s *Session) onMessage(messageType int, data []byte) {
	if messageType != websocket.TextMessage {
		// Binary inbound frames are not part of the protocol.
		s.log.Record(DirectionInbound, "binary frame", len(data))
		return
	}
	s.engine.ingest(data)
}

func (s *Session) onClose(err error) {
	reconnecting := s.conn.State() != stateClosed
	logger.Debug("Channel closed", "error", err, "reconnecting", reconnecting)
	s.emit(events.NewConnectionClosed(reconnecting))
}

func (s *Session) onError(err error) {
	// Transport errors drive reconnection; they are never fatal.
	logger.Warn("Connection error", "error", err)
	s.log.Record(DirectionInbound, "connection error: "+err.Error(), 0)
	s.emit(events.NewConnectionError(err))
}
