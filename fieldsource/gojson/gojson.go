// Package gojson implements the JSON FieldSource on top of goccy/go-json,
// plus a SourceDriver so callers can route JSONBytes/JSONReader through it
// via mapdec.SetSourceDriver.
package gojson

import (
	"bytes"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	mapdec "github.com/mapdec/mapdec"
)

// Driver returns a mapdec.SourceDriver backed by goccy/go-json.
func Driver() mapdec.SourceDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) mapdec.FieldSource { return NewReader(r) }
func (driverGoJSON) NewBytes(b []byte) mapdec.FieldSource     { return NewBytes(b) }
func (driverGoJSON) Name() string                             { return "go-json" }

// Source streams the keys of one JSON object using the go-json decoder.
type Source struct {
	dec     *j.Decoder
	started bool
	done    bool
	pending bool
}

// NewReader wraps an io.Reader holding a JSON object.
func NewReader(r io.Reader) *Source {
	dec := j.NewDecoder(r)
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
		return "", false, fmt.Errorf("fieldsource/gojson: value not consumed")
	}
	if !s.started {
		tok, err := s.dec.Token()
		if err != nil {
			return "", false, err
		}
		if d, ok := tok.(j.Delim); !ok || d != '{' {
			return "", false, fmt.Errorf("fieldsource/gojson: expected object, got %v", tok)
		}
		s.started = true
	}
	tok, err := s.dec.Token()
	if err != nil {
		return "", false, err
	}
	if d, ok := tok.(j.Delim); ok && d == '}' {
		s.done = true
		return "", false, nil
	}
	key, ok := tok.(string)
	if !ok {
		return "", false, fmt.Errorf("fieldsource/gojson: expected key, got %v", tok)
	}
	s.pending = true
	return key, true, nil
}

func (s *Source) NextValue() (any, error) {
	if !s.pending {
		return nil, fmt.Errorf("fieldsource/gojson: no pending value")
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
		return fmt.Errorf("fieldsource/gojson: no pending value")
	}
	s.pending = false
	var raw j.RawMessage
	return s.dec.Decode(&raw)
}
