package dto

import (
	"encoding/json"
	"errors"
	"io"
)

// DecodeStrict decodes a single JSON value from r into v and rejects payloads
// carrying fields the target does not enumerate. Update requests go through
// here so disallowed keys (identity, owner references) are refused outright
// instead of silently stripped.
func DecodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
