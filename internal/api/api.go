// Package api holds one module per backend resource. Each exported function
// shapes exactly one HTTP call and returns its decoded body; failures from
// the client propagate untouched so the store layer can own user-facing
// error handling.
package api

import (
	"encoding/json"
	"fmt"
)

// decode unwraps the envelope data field into T. It is the single place the
// response shape contract lives for plain resources.
func decode[T any](raw json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if len(raw) == 0 {
		return out, nil
	}
	if uerr := json.Unmarshal(raw, &out); uerr != nil {
		return out, fmt.Errorf("decode response: %w", uerr)
	}
	return out, nil
}

// decodeNested unwraps the extra data wrapper the chat endpoints put inside
// the envelope. Only chat responses carry this shape; do not generalize it.
func decodeNested[T any](raw json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	var inner struct {
		Data json.RawMessage `json:"data"`
	}
	if uerr := json.Unmarshal(raw, &inner); uerr != nil {
		return out, fmt.Errorf("decode response: %w", uerr)
	}
	return decode[T](inner.Data, nil)
}
