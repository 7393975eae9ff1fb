package plugin

import "encoding/json"

// MessageType tags one emission of a tool invocation.
type MessageType string

const (
	// MessageTypeJSON carries a structured record.
	MessageTypeJSON MessageType = "json"
	// MessageTypeText carries a bare string.
	MessageTypeText MessageType = "text"
)

// Message is one item of the ordered emission a tool invocation
// produces for the host framework.
type Message struct {
	Type  MessageType     `json:"type"`
	Value json.RawMessage `json:"value"`
}

// TextMessage wraps a bare string emission.
func TextMessage(text string) Message {
	encoded, _ := json.Marshal(text)
	return Message{Type: MessageTypeText, Value: encoded}
}

// JSONMessage wraps a structured record emission.
func JSONMessage(v any) (Message, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: MessageTypeJSON, Value: encoded}, nil
}

// Text returns the string payload of a text message.
func (m Message) Text() (string, error) {
	var text string
	if err := json.Unmarshal(m.Value, &text); err != nil {
		return "", err
	}
	return text, nil
}
