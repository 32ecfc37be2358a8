package engine

// Kind enumerates field decode kinds.
type Kind int

const (
	KindScalar Kind = iota
	KindEnum
	KindBytes
)

// ScalarType enumerates the natural types a scalar field may declare.
type ScalarType int

const (
	ScalarString ScalarType = iota
	ScalarBool
	ScalarInt64
	ScalarUint64
	ScalarFloat64
)

func (t ScalarType) String() string {
	switch t {
	case ScalarString:
		return "string"
	case ScalarBool:
		return "bool"
	case ScalarInt64:
		return "int64"
	case ScalarUint64:
		return "uint64"
	case ScalarFloat64:
		return "float64"
	default:
		return "scalar"
	}
}

// Field is the compiled form of one record field.
type Field struct {
	Name       string
	Kind       Kind
	Scalar     ScalarType
	Repeated   bool
	Enum       map[string]int32
	Default    any
	HasDefault bool
	Lenient    bool
}

// Options controls one decode run.
type Options struct {
	Lenient              bool
	UseDefaultForMissing bool
	IgnoreUnknown        bool
}

// Source is the minimal key/value stream interface required by the engine.
// NextKey reports ok=false on exhaustion. NextValue materializes the raw
// value for the most recent key; Skip discards it. Exactly one of the two
// must be called per key.
type Source interface {
	NextKey() (key string, ok bool, err error)
	NextValue() (any, error)
	Skip() error
}

// Presence bits per field, mirrored into the public PresenceMap.
const (
	PresenceSeen uint8 = 1 << iota
	PresenceDefaultApplied
)

// SimpleIssue is a lightweight issue record produced by the engine.
type SimpleIssue struct {
	Code    string
	Field   string
	Message string
	Params  map[string]any
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

func issuef(code, field, msg string, params map[string]any) error {
	return IssueError{SimpleIssue{Code: code, Field: field, Message: msg, Params: params}}
}

// Program is a compiled record schema: fields in declaration order plus the
// name index used by key resolution. Programs are immutable after Compile and
// safe for concurrent Run calls.
type Program struct {
	fields []Field
	index  map[string]int
}

// Compile builds a Program from fields. Field names are assumed unique; the
// public schema constructor enforces that before compiling.
func Compile(fields []Field) *Program {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f.Name] = i
	}
	return &Program{fields: fields, index: idx}
}

// Run performs one decode pass: accumulate every key from src into per-field
// slots, then narrow the slots into the finished record in declaration order.
// The returned presence slice is indexed like the compiled fields.
func (p *Program) Run(src Source, opt Options) (map[string]any, []uint8, error) {
	slots := make([]any, len(p.fields))
	seen := make([]bool, len(p.fields))
	pres := make([]uint8, len(p.fields))

	for {
		key, ok, err := src.NextKey()
		if err != nil {
			return nil, nil, issuef("parse_error", "", err.Error(), nil)
		}
		if !ok {
			break
		}
		i, known := p.index[key]
		if !known {
			if opt.IgnoreUnknown {
				if err := src.Skip(); err != nil {
					return nil, nil, issuef("parse_error", key, err.Error(), nil)
				}
				continue
			}
			return nil, nil, issuef("unknown_field", key, "field '"+key+"' is not part of the schema", nil)
		}
		if seen[i] {
			return nil, nil, issuef("duplicate_field", key, "field '"+key+"' duplicated", nil)
		}
		v, err := decodeField(src, &p.fields[i], opt)
		if err != nil {
			return nil, nil, err
		}
		slots[i] = v
		seen[i] = true
		pres[i] |= PresenceSeen
	}

	out := make(map[string]any, len(p.fields))
	for i := range p.fields {
		f := &p.fields[i]
		switch {
		case seen[i]:
			out[f.Name] = slots[i]
		case f.Repeated:
			out[f.Name] = emptyRepeated(f)
		case opt.UseDefaultForMissing && f.HasDefault:
			out[f.Name] = f.Default
			pres[i] |= PresenceDefaultApplied
		default:
			return nil, nil, issuef("required", f.Name, "field '"+f.Name+"' missing", nil)
		}
	}
	return out, pres, nil
}
