package session

import (
	"github.com/koscakluka/bidi-core/core/events"
	"github.com/koscakluka/bidi-core/core/protocol"
	"github.com/koscakluka/bidi-core/internal/textutil"
)

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

// reassembler folds the stream of partial, interleaved server events
// into coherent messages. It is strictly event-driven: the connection
// read loop serializes calls to ingest, so no two frames can interleave
// mid-mutation of a buffer.
type reassembler struct {
	emit     eventEmitter
	playback *audioOutput
	log      *SessionLog

	// At most one open buffer of each kind at any time.
	assistantText    *messageBuffer
	inputTranscript  *messageBuffer
	outputTranscript *messageBuffer
}

func newReassembler(emit eventEmitter, playback *audioOutput, log *SessionLog) *reassembler {
	if emit == nil {
		emit = noopEventEmitter
	}
	return &reassembler{emit: emit, playback: playback, log: log}
}

// ingest processes one inbound frame to completion. No failure inside
// is fatal: unparseable frames are logged and dropped.
func (r *reassembler) ingest(raw []byte) {
	event, err := protocol.ParseServerEvent(raw)
	if err != nil {
		// Not an event, a transport artifact; log-only.
		logger.Debug("Ignoring unparseable frame", "error", err, "size", len(raw))
		r.log.Record(DirectionInbound, "unparseable frame", len(raw))
		return
	}

	r.log.Record(DirectionInbound, event.Summary(), len(raw))

	// Classification by field presence, in priority order.
	switch {
	case event.TurnComplete:
		r.closeTurn()
		r.emit(events.NewTurnCompleted())

	case event.Interrupted:
		r.closeTurn()
		// Truncation marker only: emitted text stays, queued audio goes.
		r.playback.Clear()
		r.emit(events.NewTurnInterrupted())

	case event.InputTranscription != nil:
		r.inputTranscript = r.ingestTranscription(r.inputTranscript, events.SpeakerUser, *event.InputTranscription)

	case event.OutputTranscription != nil:
		r.outputTranscript = r.ingestTranscription(r.outputTranscript, events.SpeakerAssistant, *event.OutputTranscription)

	case event.Content != nil:
		for _, part := range event.Content.Parts {
			r.ingestPart(part)
		}

	case event.Type != "":
		r.ingestControl(event)
	}
}

// closeTurn flushes the open assistant-side buffers. The input
// transcript is left alone: the user may still be speaking.
func (r *reassembler) closeTurn() {
	for _, buffer := range []**messageBuffer{&r.assistantText, &r.outputTranscript} {
		if *buffer == nil {
			continue
		}
		r.emit(events.NewMessageFinalized((*buffer).handle, (*buffer).speaker, r.displayText(*buffer)))
		*buffer = nil
	}
}

// ingestTranscription routes one transcript fragment to its
// accumulator, opening a fresh buffer when none is open. A finished
// fragment closes the buffer after this emission; the next fragment of
// the same kind starts a new message.
func (r *reassembler) ingestTranscription(buffer *messageBuffer, speaker events.Speaker, fragment protocol.Transcription) *messageBuffer {
	if buffer == nil {
		buffer = newMessageBuffer(speaker)
		buffer.Append(fragment.Text)
		r.emit(events.NewMessageOpened(buffer.handle, speaker, r.displayText(buffer), true))
	} else {
		buffer.Append(fragment.Text)
		r.emit(events.NewMessageUpdated(buffer.handle, speaker, r.displayText(buffer)))
	}

	if fragment.Finished {
		r.emit(events.NewMessageFinalized(buffer.handle, speaker, r.displayText(buffer)))
		return nil
	}
	return buffer
}

// ingestPart handles one content part. Inline audio goes straight to
// the playback pipeline and never touches the text buffers; text parts
// grow the assistant message, which closes only on a turn boundary.
func (r *reassembler) ingestPart(part protocol.Part) {
	if part.InlineData != nil {
		if !part.InlineData.IsAudio() {
			logger.Debug("Ignoring non-audio inline data", "mimeType", part.InlineData.MimeType)
			return
		}
		decoded, err := protocol.DecodeInlineData(part.InlineData.Data)
		if err != nil {
			logger.Warn("Failed to decode inline audio", "error", err)
			return
		}
		r.emit(events.NewPlaybackFrame(decoded))
		r.playback.Enqueue(decoded)
		return
	}

	if part.Text == nil || *part.Text == "" {
		return
	}

	if r.assistantText == nil {
		r.assistantText = newMessageBuffer(events.SpeakerAssistant)
		r.assistantText.Append(*part.Text)
		r.emit(events.NewMessageOpened(r.assistantText.handle, events.SpeakerAssistant, r.displayText(r.assistantText), true))
		return
	}
	r.assistantText.Append(*part.Text)
	r.emit(events.NewMessageUpdated(r.assistantText.handle, events.SpeakerAssistant, r.displayText(r.assistantText)))
}

func (r *reassembler) ingestControl(event *protocol.ServerEvent) {
	switch event.Type {
	case protocol.TypeConfigAck:
		r.emit(events.NewSessionReady(event.Status, event.Message, event.Topic, event.Title))
	case protocol.TypeConversationEnd:
		r.closeTurn()
		r.emit(events.NewSessionEnded(event.Reason, event.Message))
	case protocol.TypeError:
		r.emit(events.NewServerError(event.Message))
	default:
		logger.Debug("Ignoring unknown control message", "type", event.Type)
	}
}

// displayText renders a buffer's concatenated text with CJK-aware
// whitespace collapsing applied before every emission.
func (r *reassembler) displayText(buffer *messageBuffer) string {
	return textutil.CollapseCJKSpaces(buffer.Text())
}
