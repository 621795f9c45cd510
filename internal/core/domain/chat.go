package domain

import "time"

// ChatMessage is an entry of the internal chat. SenderName and SenderAvatarURL are
// snapshots taken when the message was sent and are never rewritten afterwards.
type ChatMessage struct {
	ID              int       `json:"id" yaml:"id"`
	SenderID        int       `json:"senderId" yaml:"senderId"`
	SenderName      string    `json:"senderName" yaml:"senderName"`
	SenderAvatarURL string    `json:"senderAvatarUrl" yaml:"senderAvatarUrl"`
	Text            string    `json:"text" yaml:"text"`
	Timestamp       time.Time `json:"timestamp" yaml:"timestamp"`
}

// CreativeType is the kind of content produced by the generative assistant.
type CreativeType string

const (
	CreativeText  CreativeType = "text"
	CreativeImage CreativeType = "image"
)

// Valid reports whether t is a known creative content type.
func (t CreativeType) Valid() bool {
	return t == CreativeText || t == CreativeImage
}

// CreativeHistoryItem records one generation. Result holds text or a data URL.
type CreativeHistoryItem struct {
	ID        int          `json:"id"`
	Type      CreativeType `json:"type"`
	Prompt    string       `json:"prompt"`
	Result    string       `json:"result"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewCreativeHistoryItem holds every history field except id and timestamp.
type NewCreativeHistoryItem struct {
	Type   CreativeType
	Prompt string
	Result string
}
