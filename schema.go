package mapdec

import (
	"fmt"
	"sync"

	eng "github.com/mapdec/mapdec/internal/engine"
)

// Kind is the semantic category of a field, governing its conversion rule.
type Kind int

const (
	KindScalar Kind = iota // Passthrough of the declared scalar type.
	KindEnum               // String name looked up in the field's EnumTable.
	KindBytes              // Base64 string decoded into a byte buffer.
)

// ScalarType is the natural type a scalar field decodes to.
type ScalarType int

const (
	ScalarString ScalarType = iota
	ScalarBool
	ScalarInt64
	ScalarUint64
	ScalarFloat64
)

// EnumTable maps enum names to their integer codes. A table is owned by the
// field schema and shared read-only across any number of decode calls.
type EnumTable map[string]int32

// FieldSchema is the static description of one record field. Instances are
// immutable once the RecordSchema owning them is built.
type FieldSchema struct {
	Name     string
	Kind     Kind
	Scalar   ScalarType // Used when Kind is KindScalar.
	Repeated bool
	Enum     EnumTable // Used when Kind is KindEnum.
	// Default is the literal substituted under the lenient and
	// default-for-missing paths, expressed in the field's internal
	// representation (int32 code for enums, []byte for bytes).
	Default    any
	HasDefault bool
	// Lenient lets a shape mismatch on this field fall back to Default
	// instead of failing, independent of the call-level option.
	Lenient bool
}

// Record is the finished decode result, keyed by field name. Scalars carry
// their declared Go type, repeated fields a typed slice, enums int32, bytes
// []byte.
type Record map[string]any

// RecordSchema is an ordered sequence of FieldSchema with unique names.
// It is immutable after construction and safe to share across concurrent
// decode calls; the compiled engine program is built once on first use.
type RecordSchema struct {
	fields []FieldSchema

	once sync.Once
	prog *eng.Program
}

// NewRecordSchema validates the field list and builds the schema. Duplicate
// or empty field names and enum fields without a table are definition-time
// errors, never decode-time ones.
func NewRecordSchema(fields ...FieldSchema) (*RecordSchema, error) {
	names := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("mapdec: field with empty name")
		}
		if _, dup := names[f.Name]; dup {
			return nil, fmt.Errorf("mapdec: duplicate field name %q in schema", f.Name)
		}
		names[f.Name] = struct{}{}
		if f.Kind == KindEnum && len(f.Enum) == 0 {
			return nil, fmt.Errorf("mapdec: enum field %q has no enum table", f.Name)
		}
	}
	fs := make([]FieldSchema, len(fields))
	copy(fs, fields)
	return &RecordSchema{fields: fs}, nil
}

// MustRecordSchema is NewRecordSchema panicking on error, for package-level
// schema variables.
func MustRecordSchema(fields ...FieldSchema) *RecordSchema {
	s, err := NewRecordSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the schema's fields in declaration order.
func (s *RecordSchema) Fields() []FieldSchema {
	out := make([]FieldSchema, len(s.fields))
	copy(out, s.fields)
	return out
}

// program compiles the schema lazily; repeated decodes share the resolver
// index.
func (s *RecordSchema) program() *eng.Program {
	s.once.Do(func() {
		fields := make([]eng.Field, len(s.fields))
		for i, f := range s.fields {
			fields[i] = eng.Field{
				Name:       f.Name,
				Kind:       toEngineKind(f.Kind),
				Scalar:     toEngineScalar(f.Scalar),
				Repeated:   f.Repeated,
				Enum:       f.Enum,
				Default:    f.Default,
				HasDefault: f.HasDefault,
				Lenient:    f.Lenient,
			}
		}
		s.prog = eng.Compile(fields)
	})
	return s.prog
}

func toEngineKind(k Kind) eng.Kind {
	switch k {
	case KindEnum:
		return eng.KindEnum
	case KindBytes:
		return eng.KindBytes
	default:
		return eng.KindScalar
	}
}

func toEngineScalar(t ScalarType) eng.ScalarType {
	switch t {
	case ScalarBool:
		return eng.ScalarBool
	case ScalarInt64:
		return eng.ScalarInt64
	case ScalarUint64:
		return eng.ScalarUint64
	case ScalarFloat64:
		return eng.ScalarFloat64
	default:
		return eng.ScalarString
	}
}
