// Package protocol defines the JSON wire format spoken over the duplex
// channel: the server event union received from the agent and the
// client frames sent back to it.
package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Control message types the server sends outside of the streaming
// event union.
const (
	TypeConfigAck       = "config_ack"
	TypeError           = "error"
	TypeConversationEnd = "conversation_end"
)

// Transcription is a partial or final transcript fragment for one
// direction of the conversation.
type Transcription struct {
	Text     string `json:"text"`
	Finished bool   `json:"finished"`
}

// InlineData is a binary payload embedded into an event, base64
// encoded for transport.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// IsAudio reports whether the payload declares an audio MIME type.
func (d InlineData) IsAudio() bool {
	return strings.HasPrefix(d.MimeType, "audio/")
}

// Part is one element of a content event: either text or inline data,
// never both.
type Part struct {
	Text       *string     `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// Content carries the streamed parts of the assistant's response.
type Content struct {
	Parts []Part `json:"parts"`
}

// ServerEvent is one decoded unit received from the wire. Exactly one
// of the classification fields is expected to be meaningful; consumers
// classify by field presence, not by a discriminator.
type ServerEvent struct {
	Type   string `json:"type,omitempty"`
	Author string `json:"author,omitempty"`

	TurnComplete bool `json:"turnComplete,omitempty"`
	Interrupted  bool `json:"interrupted,omitempty"`

	InputTranscription  *Transcription `json:"inputTranscription,omitempty"`
	OutputTranscription *Transcription `json:"outputTranscription,omitempty"`

	Content *Content `json:"content,omitempty"`

	// Control message payloads (config_ack, error, conversation_end).
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Topic   string `json:"topic,omitempty"`
	Title   string `json:"title,omitempty"`
}

// ParseServerEvent decodes a raw text frame. Frames that are not valid
// JSON are transport artifacts, not events; callers are expected to
// log and drop them.
func ParseServerEvent(raw []byte) (*ServerEvent, error) {
	var event ServerEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("failed to parse server event: %w", err)
	}
	return &event, nil
}

// TextMessage is the outbound frame carrying typed user input.
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextMessage packages user text for the wire.
func NewTextMessage(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

// ImageMessage is the outbound frame carrying a captured still image.
type ImageMessage struct {
	Type     string `json:"type"`
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// NewImageMessage packages an encoded image for the wire.
func NewImageMessage(data []byte, mimeType string) ImageMessage {
	return ImageMessage{Type: "image", Data: EncodeInlineData(data), MimeType: mimeType}
}

// ConfigMessage is the handshake frame the server waits for before it
// starts streaming; topic and title seed the agent's instructions.
type ConfigMessage struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
	Title string `json:"title"`
}

// NewConfigMessage packages the session configuration handshake.
func NewConfigMessage(topic, title string) ConfigMessage {
	return ConfigMessage{Type: "config", Topic: topic, Title: title}
}
