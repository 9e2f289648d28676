package protocol

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
)

const summaryPreviewWidth = 60

// Summary renders a one-line human-readable description of the event
// for diagnostic display: long text fields are truncated to a preview,
// inline media is reported by estimated decoded byte size.
func (e *ServerEvent) Summary() string {
	switch {
	case e.TurnComplete:
		return "turn complete"
	case e.Interrupted:
		return "interrupted"
	case e.InputTranscription != nil:
		return transcriptionSummary("input transcription", *e.InputTranscription)
	case e.OutputTranscription != nil:
		return transcriptionSummary("output transcription", *e.OutputTranscription)
	case e.Content != nil:
		return contentSummary(*e.Content)
	case e.Type != "":
		return controlSummary(e)
	}
	return "empty event"
}

func transcriptionSummary(label string, t Transcription) string {
	state := "partial"
	if t.Finished {
		state = "final"
	}
	return fmt.Sprintf("%s (%s): %s", label, state, preview(t.Text))
}

func contentSummary(content Content) string {
	pieces := make([]string, 0, len(content.Parts))
	for _, part := range content.Parts {
		switch {
		case part.Text != nil:
			pieces = append(pieces, fmt.Sprintf("text %q", preview(*part.Text)))
		case part.InlineData != nil:
			pieces = append(pieces, fmt.Sprintf("%s (~%d bytes)",
				part.InlineData.MimeType, decodedSizeEstimate(part.InlineData.Data)))
		default:
			pieces = append(pieces, "empty part")
		}
	}
	return "content: " + strings.Join(pieces, ", ")
}

func controlSummary(e *ServerEvent) string {
	switch e.Type {
	case TypeConfigAck:
		return fmt.Sprintf("config ack (%s): %s", e.Status, preview(e.Message))
	case TypeConversationEnd:
		return fmt.Sprintf("conversation end (%s): %s", e.Reason, preview(e.Message))
	case TypeError:
		return "server error: " + preview(e.Message)
	}
	return e.Type
}

func preview(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return truncate.StringWithTail(text, summaryPreviewWidth, "…")
}
