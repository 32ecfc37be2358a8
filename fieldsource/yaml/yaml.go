// Package yaml implements a FieldSource over a single top-level YAML
// mapping using gopkg.in/yaml.v3. Walking the node tree keeps mapping
// entries in document order, duplicate keys included.
package yaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Source walks the entries of one YAML mapping.
type Source struct {
	entries []yaml.Node // flat [k0, v0, k1, v1, ...]
	next    int
	pending bool
	err     error
}

// NewBytes parses b and positions the source at the document's top-level
// mapping. Parse and shape errors are deferred to the first NextKey call.
func NewBytes(b []byte) *Source {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return &Source{err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return &Source{err: fmt.Errorf("fieldsource/yaml: empty document")}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return &Source{err: fmt.Errorf("fieldsource/yaml: expected mapping, got %v", root.Tag)}
	}
	out := make([]yaml.Node, len(root.Content))
	for i, n := range root.Content {
		out[i] = *n
	}
	return &Source{entries: out}
}

// NewReader reads all of r and parses it like NewBytes.
func NewReader(r io.Reader) *Source {
	b, err := io.ReadAll(r)
	if err != nil {
		return &Source{err: err}
	}
	return NewBytes(b)
}

func (s *Source) NextKey() (string, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	if s.pending {
		return "", false, fmt.Errorf("fieldsource/yaml: value not consumed")
	}
	if s.next >= len(s.entries) {
		return "", false, nil
	}
	k := s.entries[s.next]
	if k.Kind != yaml.ScalarNode {
		return "", false, fmt.Errorf("fieldsource/yaml: non-scalar mapping key at line %d", k.Line)
	}
	s.pending = true
	return k.Value, true, nil
}

func (s *Source) NextValue() (any, error) {
	if !s.pending {
		return nil, fmt.Errorf("fieldsource/yaml: no pending value")
	}
	s.pending = false
	v := s.entries[s.next+1]
	s.next += 2
	var out any
	if err := v.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Source) Skip() error {
	if !s.pending {
		return fmt.Errorf("fieldsource/yaml: no pending value")
	}
	s.pending = false
	s.next += 2
	return nil
}
