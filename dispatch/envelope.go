package dispatch

import (
	"github.com/viant/mcp-get/internal/conv"
)

// ContentTypeText is the only content type produced.
const ContentTypeText = "text"

// Content is one entry of an envelope.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Envelope is the uniform response of a dispatched call. It always holds
// exactly one content entry; IsError is set only on failure.
type Envelope struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Text returns the text of the single content entry.
func (e *Envelope) Text() string {
	if e == nil || len(e.Content) == 0 {
		return ""
	}
	return e.Content[0].Text
}

// Success wraps v as indented JSON.
func Success(v interface{}) *Envelope {
	text, err := conv.Indent(v)
	if err != nil {
		return Failure(err)
	}
	return &Envelope{Content: []Content{{Type: ContentTypeText, Text: text}}}
}

// Failure wraps err as an error envelope with "Error: " prefixed message.
func Failure(err error) *Envelope {
	return &Envelope{
		Content: []Content{{Type: ContentTypeText, Text: "Error: " + err.Error()}},
		IsError: true,
	}
}
