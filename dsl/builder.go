// Package dsl provides fluent construction of mapdec record schemas.
//
//	schema, err := dsl.Record().
//		Field("id", dsl.Int64()).
//		Field("tags", dsl.String().Repeated()).
//		Field("status", dsl.Enum(statusTable).DefaultName("ACTIVE")).
//		Build()
package dsl

import (
	"fmt"

	mapdec "github.com/mapdec/mapdec"
)

// RecordBuilder accumulates field declarations in order.
type RecordBuilder struct {
	fields []mapdec.FieldSchema
	err    error
}

// Record creates a new record schema builder.
func Record() *RecordBuilder { return &RecordBuilder{} }

// Field registers a named field from its spec. Declaration order is the
// schema order, which drives narrowing and error reporting order.
func (b *RecordBuilder) Field(name string, spec *FieldSpec) *RecordBuilder {
	if b.err != nil {
		return b
	}
	if spec == nil {
		b.err = fmt.Errorf("dsl: nil spec for field %q", name)
		return b
	}
	if spec.err != nil {
		b.err = fmt.Errorf("dsl: field %q: %w", name, spec.err)
		return b
	}
	f := spec.f
	f.Name = name
	b.fields = append(b.fields, f)
	return b
}

// Build validates and constructs the schema.
func (b *RecordBuilder) Build() (*mapdec.RecordSchema, error) {
	if b.err != nil {
		return nil, b.err
	}
	return mapdec.NewRecordSchema(b.fields...)
}

// MustBuild is Build panicking on error, for package-level schema variables.
func (b *RecordBuilder) MustBuild() *mapdec.RecordSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// FieldSpec describes one field before it is named into a record.
type FieldSpec struct {
	f   mapdec.FieldSchema
	err error
}

// String declares a string scalar field.
func String() *FieldSpec {
	return &FieldSpec{f: mapdec.FieldSchema{Kind: mapdec.KindScalar, Scalar: mapdec.ScalarString}}
}

// Bool declares a bool scalar field.
func Bool() *FieldSpec {
	return &FieldSpec{f: mapdec.FieldSchema{Kind: mapdec.KindScalar, Scalar: mapdec.ScalarBool}}
}

// Int64 declares an int64 scalar field.
func Int64() *FieldSpec {
	return &FieldSpec{f: mapdec.FieldSchema{Kind: mapdec.KindScalar, Scalar: mapdec.ScalarInt64}}
}

// Uint64 declares a uint64 scalar field.
func Uint64() *FieldSpec {
	return &FieldSpec{f: mapdec.FieldSchema{Kind: mapdec.KindScalar, Scalar: mapdec.ScalarUint64}}
}

// Float64 declares a float64 scalar field.
func Float64() *FieldSpec {
	return &FieldSpec{f: mapdec.FieldSchema{Kind: mapdec.KindScalar, Scalar: mapdec.ScalarFloat64}}
}

// Enum declares an enumeration field over the given name table.
func Enum(table mapdec.EnumTable) *FieldSpec {
	s := &FieldSpec{f: mapdec.FieldSchema{Kind: mapdec.KindEnum, Enum: table}}
	if len(table) == 0 {
		s.err = fmt.Errorf("empty enum table")
	}
	return s
}

// Bytes declares a base64 byte-buffer field.
func Bytes() *FieldSpec {
	return &FieldSpec{f: mapdec.FieldSchema{Kind: mapdec.KindBytes}}
}

// Repeated marks the field as repeated. An absent repeated field narrows to
// the empty sequence, never an error.
func (s *FieldSpec) Repeated() *FieldSpec {
	s.f.Repeated = true
	return s
}

// Lenient lets a shape mismatch on this field fall back to its default
// instead of failing.
func (s *FieldSpec) Lenient() *FieldSpec {
	s.f.Lenient = true
	return s
}

// Default sets the field's default literal. The value must match the field's
// internal representation; common convenience conversions (int to the
// declared numeric type, int to enum code) are applied here, at definition
// time.
func (s *FieldSpec) Default(v any) *FieldSpec {
	if s.err != nil {
		return s
	}
	nv, err := normalizeDefault(&s.f, v)
	if err != nil {
		s.err = err
		return s
	}
	s.f.Default = nv
	s.f.HasDefault = true
	return s
}

// DefaultName sets an enum field's default by variant name, resolved through
// the table at definition time.
func (s *FieldSpec) DefaultName(name string) *FieldSpec {
	if s.err != nil {
		return s
	}
	if s.f.Kind != mapdec.KindEnum {
		s.err = fmt.Errorf("DefaultName on non-enum field")
		return s
	}
	code, ok := s.f.Enum[name]
	if !ok {
		s.err = fmt.Errorf("default %q is not a variant", name)
		return s
	}
	if s.f.Repeated {
		s.f.Default = []int32{code}
	} else {
		s.f.Default = code
	}
	s.f.HasDefault = true
	return s
}

func normalizeDefault(f *mapdec.FieldSchema, v any) (any, error) {
	if f.Repeated {
		return normalizeRepeatedDefault(f, v)
	}
	switch f.Kind {
	case mapdec.KindEnum:
		switch n := v.(type) {
		case int32:
			return n, nil
		case int:
			return int32(n), nil
		}
	case mapdec.KindBytes:
		if b, ok := v.([]byte); ok {
			return b, nil
		}
	default:
		switch f.Scalar {
		case mapdec.ScalarString:
			if s, ok := v.(string); ok {
				return s, nil
			}
		case mapdec.ScalarBool:
			if b, ok := v.(bool); ok {
				return b, nil
			}
		case mapdec.ScalarInt64:
			switch n := v.(type) {
			case int64:
				return n, nil
			case int:
				return int64(n), nil
			}
		case mapdec.ScalarUint64:
			switch n := v.(type) {
			case uint64:
				return n, nil
			case int:
				if n >= 0 {
					return uint64(n), nil
				}
			}
		case mapdec.ScalarFloat64:
			switch n := v.(type) {
			case float64:
				return n, nil
			case int:
				return float64(n), nil
			}
		}
	}
	return nil, fmt.Errorf("default %T does not match field type", v)
}

func normalizeRepeatedDefault(f *mapdec.FieldSchema, v any) (any, error) {
	switch f.Kind {
	case mapdec.KindEnum:
		if vv, ok := v.([]int32); ok {
			return vv, nil
		}
	case mapdec.KindBytes:
		if vv, ok := v.([][]byte); ok {
			return vv, nil
		}
	default:
		switch f.Scalar {
		case mapdec.ScalarString:
			if vv, ok := v.([]string); ok {
				return vv, nil
			}
		case mapdec.ScalarBool:
			if vv, ok := v.([]bool); ok {
				return vv, nil
			}
		case mapdec.ScalarInt64:
			switch vv := v.(type) {
			case []int64:
				return vv, nil
			case []int:
				out := make([]int64, len(vv))
				for i, n := range vv {
					out[i] = int64(n)
				}
				return out, nil
			}
		case mapdec.ScalarUint64:
			if vv, ok := v.([]uint64); ok {
				return vv, nil
			}
		case mapdec.ScalarFloat64:
			if vv, ok := v.([]float64); ok {
				return vv, nil
			}
		}
	}
	return nil, fmt.Errorf("default %T does not match repeated field type", v)
}
