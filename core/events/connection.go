package events

const (
	// KindConnectionOpened identifies an established duplex channel.
	KindConnectionOpened Kind = "connection.opened"
	// KindConnectionClosed identifies a dropped channel.
	KindConnectionClosed Kind = "connection.closed"
	// KindConnectionError identifies a transport-level failure.
	KindConnectionError Kind = "connection.error"
)

// ConnectionOpened marks an established duplex channel.
type ConnectionOpened struct {
	Base
	URL string
}

// NewConnectionOpened creates a connection opened event.
func NewConnectionOpened(url string) ConnectionOpened {
	return ConnectionOpened{Base: NewBase(KindConnectionOpened), URL: url}
}

// ConnectionClosed marks a dropped channel. Reconnecting reports
// whether another attempt is scheduled.
type ConnectionClosed struct {
	Base
	Reconnecting bool
}

// NewConnectionClosed creates a connection closed event.
func NewConnectionClosed(reconnecting bool) ConnectionClosed {
	return ConnectionClosed{Base: NewBase(KindConnectionClosed), Reconnecting: reconnecting}
}

// ConnectionError carries a transport-level failure. Never fatal to
// the session.
type ConnectionError struct {
	Base
	Err error
}

// NewConnectionError creates a connection error event.
func NewConnectionError(err error) ConnectionError {
	return ConnectionError{Base: NewBase(KindConnectionError), Err: err}
}
