package entity

import (
	"bytes"
	"encoding/json"
)

// jsonNumber returns the value of raw when it holds a JSON number.
// Strings, null and absent values report false.
func jsonNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}

	f, ok := v.(float64)

	return f, ok
}

func jsonNumberPtr(raw json.RawMessage) *float64 {
	if f, ok := jsonNumber(raw); ok {
		return &f
	}

	return nil
}
