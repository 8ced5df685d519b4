package utils

import (
	"encoding/json"
	"fmt"
)

// Encode serializes v to JSON text.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to encode value: %w", err)
	}
	return string(data), nil
}

// Decode parses JSON text into a freshly allocated T, so the result carries
// T's full method set rather than being a bag of untyped fields.
func Decode[T any](s string) (*T, error) {
	v := new(T)
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return nil, fmt.Errorf("unable to decode value: %w", err)
	}
	return v, nil
}
