package mapdec

import (
	"fmt"
	"sort"
)

// KV is one ordered key/value pair for FromPairs.
type KV struct {
	Key   string
	Value any
}

// pairSource walks a fixed list of pairs. It is the in-memory way to express
// an exact key order, including duplicate keys.
type pairSource struct {
	pairs   []KV
	next    int
	pending bool
}

// FromPairs builds a FieldSource over the pairs in the given order.
func FromPairs(pairs ...KV) FieldSource {
	return &pairSource{pairs: pairs}
}

// FromMap builds a FieldSource over a map, yielding keys in ascending order
// so that decoding is deterministic.
func FromMap(m map[string]any) FieldSource {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]KV, 0, len(m))
	for _, k := range keys {
		pairs = append(pairs, KV{Key: k, Value: m[k]})
	}
	return &pairSource{pairs: pairs}
}

func (s *pairSource) NextKey() (string, bool, error) {
	if s.pending {
		return "", false, fmt.Errorf("mapdec: value for %q not consumed", s.pairs[s.next].Key)
	}
	if s.next >= len(s.pairs) {
		return "", false, nil
	}
	s.pending = true
	return s.pairs[s.next].Key, true, nil
}

func (s *pairSource) NextValue() (any, error) {
	if !s.pending {
		return nil, fmt.Errorf("mapdec: no pending value")
	}
	v := s.pairs[s.next].Value
	s.pending = false
	s.next++
	return v, nil
}

func (s *pairSource) Skip() error {
	if !s.pending {
		return fmt.Errorf("mapdec: no pending value")
	}
	s.pending = false
	s.next++
	return nil
}
