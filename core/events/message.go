package events

// Speaker identifies which side of the conversation a message belongs to.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

const (
	// KindMessageOpened identifies the start of a new message.
	KindMessageOpened Kind = "message.opened"
	// KindMessageUpdated identifies a text update to an open message.
	KindMessageUpdated Kind = "message.updated"
	// KindMessageFinalized identifies the close of a message.
	KindMessageFinalized Kind = "message.finalized"
	// KindImageMessageOpened identifies a locally echoed sent image.
	KindImageMessageOpened Kind = "message.image_opened"
)

// MessageOpened starts a new message. Handle is the stable identifier
// carried by every later update to the same message.
type MessageOpened struct {
	Base
	Handle  string
	Speaker Speaker
	Text    string
	Partial bool
}

// NewMessageOpened creates a message opened event.
func NewMessageOpened(handle string, speaker Speaker, text string, partial bool) MessageOpened {
	return MessageOpened{Base: NewBase(KindMessageOpened), Handle: handle, Speaker: speaker, Text: text, Partial: partial}
}

// MessageUpdated carries the full concatenated text of an open message.
type MessageUpdated struct {
	Base
	Handle  string
	Speaker Speaker
	Text    string
}

// NewMessageUpdated creates a message updated event.
func NewMessageUpdated(handle string, speaker Speaker, text string) MessageUpdated {
	return MessageUpdated{Base: NewBase(KindMessageUpdated), Handle: handle, Speaker: speaker, Text: text}
}

// MessageFinalized closes a message; no further appends follow.
type MessageFinalized struct {
	Base
	Handle  string
	Speaker Speaker
	Text    string
}

// NewMessageFinalized creates a message finalized event.
func NewMessageFinalized(handle string, speaker Speaker, text string) MessageFinalized {
	return MessageFinalized{Base: NewBase(KindMessageFinalized), Handle: handle, Speaker: speaker, Text: text}
}

// ImageMessageOpened is the local echo of a sent image: it is
// synthesized client-side the moment the frame leaves, without waiting
// for server acknowledgment.
type ImageMessageOpened struct {
	Base
	Handle   string
	Speaker  Speaker
	MimeType string
	Data     []byte
}

// NewImageMessageOpened creates a locally echoed image message event.
func NewImageMessageOpened(handle string, speaker Speaker, mimeType string, data []byte) ImageMessageOpened {
	return ImageMessageOpened{Base: NewBase(KindImageMessageOpened), Handle: handle, Speaker: speaker, MimeType: mimeType, Data: data}
}
