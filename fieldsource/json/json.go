// Package json implements a FieldSource over a single top-level JSON
// object using encoding/json. Keys are yielded in document order, so
// duplicate keys reach the decoder and can be flagged there.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Source streams the keys of one JSON object. Numbers are materialized as
// json.Number (UseNumber) so integer precision survives the trip.
type Source struct {
	dec     *json.Decoder
	started bool
	done    bool
	pending bool
}

// NewReader wraps an io.Reader holding a JSON object.
func NewReader(r io.Reader) *Source {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Source{dec: dec}
}

// NewBytes wraps a byte slice holding a JSON object.
func NewBytes(b []byte) *Source { return NewReader(bytes.NewReader(b)) }

func (s *Source) NextKey() (string, bool, error) {
	if s.done {
		return "", false, nil
	}
	if s.pending {
		return "", false, fmt.Errorf("fieldsource/json: value not consumed")
	}
	if !s.started {
		tok, err := s.dec.Token()
		if err != nil {
			return "", false, err
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return "", false, fmt.Errorf("fieldsource/json: expected object, got %v", tok)
		}
		s.started = true
	}
	tok, err := s.dec.Token()
	if err != nil {
		return "", false, err
	}
	if d, ok := tok.(json.Delim); ok && d == '}' {
		s.done = true
		return "", false, nil
	}
	key, ok := tok.(string)
	if !ok {
		return "", false, fmt.Errorf("fieldsource/json: expected key, got %v", tok)
	}
	s.pending = true
	return key, true, nil
}

func (s *Source) NextValue() (any, error) {
	if !s.pending {
		return nil, fmt.Errorf("fieldsource/json: no pending value")
	}
	s.pending = false
	var v any
	if err := s.dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Source) Skip() error {
	if !s.pending {
		return fmt.Errorf("fieldsource/json: no pending value")
	}
	s.pending = false
	var raw json.RawMessage
	return s.dec.Decode(&raw)
}
