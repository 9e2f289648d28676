package events

const (
	// KindSessionReady identifies the server's configuration acknowledgment.
	KindSessionReady Kind = "session.ready"
	// KindSessionEnded identifies the server's end-of-conversation signal.
	KindSessionEnded Kind = "session.ended"
	// KindServerError identifies a server-side rejection of a frame.
	KindServerError Kind = "session.server_error"
)

// SessionReady reports that the server acknowledged the configuration
// handshake and will start streaming.
type SessionReady struct {
	Base
	Status  string
	Message string
	Topic   string
	Title   string
}

// NewSessionReady creates a session ready event.
func NewSessionReady(status, message, topic, title string) SessionReady {
	return SessionReady{Base: NewBase(KindSessionReady), Status: status, Message: message, Topic: topic, Title: title}
}

// SessionEnded reports the server's end-of-conversation signal.
type SessionEnded struct {
	Base
	Reason  string
	Message string
}

// NewSessionEnded creates a session ended event.
func NewSessionEnded(reason, message string) SessionEnded {
	return SessionEnded{Base: NewBase(KindSessionEnded), Reason: reason, Message: message}
}

// ServerError reports a frame the server rejected.
type ServerError struct {
	Base
	Message string
}

// NewServerError creates a server error event.
func NewServerError(message string) ServerError {
	return ServerError{Base: NewBase(KindServerError), Message: message}
}
