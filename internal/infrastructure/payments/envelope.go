package payments

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// upayEnvelope is the {code, message, data} wrapper of every gateway response.
// Code and message stay raw so a non-string value classifies as a failure
// instead of aborting the decode.
type upayEnvelope struct {
	RawCode    json.RawMessage `json:"code"`
	RawMessage json.RawMessage `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnvelope(body []byte) (*upayEnvelope, error) {
	var env upayEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *upayEnvelope) Code() string {
	s, _ := rawString(e.RawCode)
	return s
}

func (e *upayEnvelope) Message() string {
	if s, ok := rawString(e.RawMessage); ok {
		return s
	}
	trimmed := strings.TrimSpace(string(e.RawMessage))
	if trimmed == "null" {
		return ""
	}
	return trimmed
}

func (e *upayEnvelope) DataOrNil() json.RawMessage {
	if len(e.Data) == 0 || bytes.Equal(bytes.TrimSpace(e.Data), []byte("null")) {
		return nil
	}
	return e.Data
}

func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
