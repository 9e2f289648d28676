// Package events defines the typed session event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - connection.*
//   - message.*
//   - turn.*
//   - playback.*
//   - capture.*
//   - session.*
//
// Semantics used across the package:
//
//   - Handle: stable identifier assigned when a message opens; every
//     later update and the final close carry the same handle, so
//     display layers never address messages by list position.
//   - Partial: a message still being appended to, not yet finalized.
//   - Frame: binary audio payload, transient, never replayed.
//
// connection events
//
//   - ConnectionOpened (connection.opened): duplex channel established.
//   - ConnectionClosed (connection.closed): channel dropped; a
//     reconnect attempt is scheduled unless the session was closed.
//   - ConnectionError (connection.error): transport-level failure.
//
// message events
//
//   - MessageOpened (message.opened): a new message started; carries
//     speaker, handle, and initial text.
//   - MessageUpdated (message.updated): the full concatenated text of
//     an open message changed.
//   - MessageFinalized (message.finalized): no further appends will
//     follow for this handle.
//
// turn events
//
//   - TurnCompleted (turn.completed): the assistant utterance ended.
//   - TurnInterrupted (turn.interrupted): the utterance was cut short
//     by new user input; a marker, never a rollback of emitted text.
//
// playback events
//
//   - PlaybackFrame (playback.frame): decoded inbound PCM handed to
//     the playback sink.
//
// capture events
//
//   - CaptureError (capture.error): a media device failed to start or
//     became unavailable; the feature stays off until retried.
//
// session events
//
//   - SessionReady (session.ready): server acknowledged the
//     configuration handshake and will start streaming.
//   - SessionEnded (session.ended): server signalled the end of the
//     conversation.
//   - ServerError (session.server_error): server rejected a frame.
package events
