package engine

import (
	"encoding/json"
	"strconv"

	"github.com/mapdec/mapdec/codec"
)

// decodeField converts the raw value for one key into the field's internal
// representation. Shape failures (value present but of the wrong shape) are
// the only ones eligible for the lenient fallback; enum-name and base64
// failures are content errors and stay fatal regardless of options.
func decodeField(src Source, f *Field, opt Options) (any, error) {
	raw, err := src.NextValue()
	if err != nil {
		return nil, issuef("parse_error", f.Name, err.Error(), nil)
	}
	lenient := opt.Lenient || f.Lenient

	switch f.Kind {
	case KindEnum:
		if f.Repeated {
			names, err := readStrings(f, raw)
			if err != nil {
				return recoverRepeated(f, lenient, err)
			}
			out := make([]int32, 0, len(names))
			for _, name := range names {
				code, ok := f.Enum[name]
				if !ok {
					return nil, enumIssue(f, name)
				}
				out = append(out, code)
			}
			return out, nil
		}
		name, err := readString(f, raw)
		if err != nil {
			return recoverScalar(f, lenient, err)
		}
		code, ok := f.Enum[name]
		if !ok {
			return nil, enumIssue(f, name)
		}
		return code, nil

	case KindBytes:
		if f.Repeated {
			ss, err := readStrings(f, raw)
			if err != nil {
				return recoverRepeated(f, lenient, err)
			}
			out := make([][]byte, 0, len(ss))
			for _, s := range ss {
				b, err := codec.Base64.Decode(s)
				if err != nil {
					return nil, bytesIssue(f, s, err)
				}
				out = append(out, b)
			}
			return out, nil
		}
		s, err := readString(f, raw)
		if err != nil {
			return recoverScalar(f, lenient, err)
		}
		b, err := codec.Base64.Decode(s)
		if err != nil {
			return nil, bytesIssue(f, s, err)
		}
		return b, nil

	default: // KindScalar
		if f.Repeated {
			items, err := readSlice(f, raw)
			if err != nil {
				return recoverRepeated(f, lenient, err)
			}
			return coerceScalars(f, items, lenient)
		}
		v, err := coerceScalar(f, raw)
		if err != nil {
			return recoverScalar(f, lenient, err)
		}
		return v, nil
	}
}

// recoverScalar applies the lenient escape hatch for a non-repeated shape
// error: substitute the default when one exists, otherwise surface the error.
func recoverScalar(f *Field, lenient bool, err error) (any, error) {
	if lenient && f.HasDefault {
		return f.Default, nil
	}
	return nil, err
}

// recoverRepeated applies the lenient escape hatch for a repeated shape
// error: the configured default sequence when present, else the empty one.
func recoverRepeated(f *Field, lenient bool, err error) (any, error) {
	if !lenient {
		return nil, err
	}
	if f.HasDefault {
		return f.Default, nil
	}
	return emptyRepeated(f), nil
}

func enumIssue(f *Field, name string) error {
	return issuef("invalid_enum", f.Name, "name '"+name+"' is not a variant of field '"+f.Name+"'",
		map[string]any{"value": name})
}

func bytesIssue(f *Field, raw string, cause error) error {
	return issuef("invalid_base64", f.Name, "field '"+f.Name+"': "+cause.Error(),
		map[string]any{"value": raw})
}

func typeIssue(f *Field, expected string, got any) error {
	return issuef("invalid_type", f.Name, "field '"+f.Name+"' expects "+expected,
		map[string]any{"expected": expected, "got": typeName(got)})
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number:
		return "number"
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any, []string:
		return "sequence"
	case map[string]any:
		return "object"
	default:
		return "value"
	}
}

func readString(f *Field, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", typeIssue(f, "string", raw)
	}
	return s, nil
}

func readStrings(f *Field, raw any) ([]string, error) {
	switch vv := raw.(type) {
	case []string:
		return vv, nil
	case []any:
		out := make([]string, 0, len(vv))
		for _, v := range vv {
			s, ok := v.(string)
			if !ok {
				return nil, typeIssue(f, "sequence of string", v)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, typeIssue(f, "sequence of string", raw)
	}
}

func readSlice(f *Field, raw any) ([]any, error) {
	switch vv := raw.(type) {
	case []any:
		return vv, nil
	case []string:
		out := make([]any, len(vv))
		for i, s := range vv {
			out[i] = s
		}
		return out, nil
	default:
		return nil, typeIssue(f, "sequence of "+f.Scalar.String(), raw)
	}
}

// coerceScalar narrows a raw value to the field's declared scalar type.
// json.Number is the canonical numeric wire shape (sources run with
// UseNumber); plain Go numerics are accepted for in-memory sources.
func coerceScalar(f *Field, raw any) (any, error) {
	switch f.Scalar {
	case ScalarString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case ScalarBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case ScalarInt64:
		switch n := raw.(type) {
		case int:
			return int64(n), nil
		case int32:
			return int64(n), nil
		case int64:
			return n, nil
		case json.Number:
			if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
				return i, nil
			}
		case float64:
			if float64(int64(n)) == n {
				return int64(n), nil
			}
		}
	case ScalarUint64:
		switch n := raw.(type) {
		case uint:
			return uint64(n), nil
		case uint64:
			return n, nil
		case int:
			if n >= 0 {
				return uint64(n), nil
			}
		case int64:
			if n >= 0 {
				return uint64(n), nil
			}
		case json.Number:
			// ParseUint rejects negatives and fractions outright.
			if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
				return u, nil
			}
		case float64:
			if n >= 0 && float64(uint64(n)) == n {
				return uint64(n), nil
			}
		}
	case ScalarFloat64:
		switch n := raw.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case json.Number:
			if fv, err := strconv.ParseFloat(n.String(), 64); err == nil {
				return fv, nil
			}
		}
	}
	return nil, typeIssue(f, f.Scalar.String(), raw)
}

func coerceScalars(f *Field, items []any, lenient bool) (any, error) {
	switch f.Scalar {
	case ScalarString:
		out := make([]string, 0, len(items))
		for _, v := range items {
			c, err := coerceScalar(f, v)
			if err != nil {
				return recoverRepeated(f, lenient, err)
			}
			out = append(out, c.(string))
		}
		return out, nil
	case ScalarBool:
		out := make([]bool, 0, len(items))
		for _, v := range items {
			c, err := coerceScalar(f, v)
			if err != nil {
				return recoverRepeated(f, lenient, err)
			}
			out = append(out, c.(bool))
		}
		return out, nil
	case ScalarInt64:
		out := make([]int64, 0, len(items))
		for _, v := range items {
			c, err := coerceScalar(f, v)
			if err != nil {
				return recoverRepeated(f, lenient, err)
			}
			out = append(out, c.(int64))
		}
		return out, nil
	case ScalarUint64:
		out := make([]uint64, 0, len(items))
		for _, v := range items {
			c, err := coerceScalar(f, v)
			if err != nil {
				return recoverRepeated(f, lenient, err)
			}
			out = append(out, c.(uint64))
		}
		return out, nil
	default: // ScalarFloat64
		out := make([]float64, 0, len(items))
		for _, v := range items {
			c, err := coerceScalar(f, v)
			if err != nil {
				return recoverRepeated(f, lenient, err)
			}
			out = append(out, c.(float64))
		}
		return out, nil
	}
}

// emptyRepeated yields the typed empty sequence a repeated field narrows to
// when absent from the source.
func emptyRepeated(f *Field) any {
	switch f.Kind {
	case KindEnum:
		return []int32{}
	case KindBytes:
		return [][]byte{}
	default:
		switch f.Scalar {
		case ScalarBool:
			return []bool{}
		case ScalarInt64:
			return []int64{}
		case ScalarUint64:
			return []uint64{}
		case ScalarFloat64:
			return []float64{}
		default:
			return []string{}
		}
	}
}
