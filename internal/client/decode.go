package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The commerce API is inconsistent about wrapping collections: some
// versions return a bare JSON array, others wrap it in an object. All
// shape tolerance lives here so call sites stay free of ad-hoc checks.
func decodeList(data []byte, out interface{}, keys ...string) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '[' {
		return json.Unmarshal(data, out)
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("unexpected response shape: %w", err)
	}
	for _, key := range keys {
		if raw, ok := wrapper[key]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return json.Unmarshal(raw, out)
		}
	}
	return fmt.Errorf("unexpected response shape: none of %v present", keys)
}

func decodeObject(data []byte, out interface{}) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("unexpected empty response")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unexpected response shape: %w", err)
	}
	return nil
}
