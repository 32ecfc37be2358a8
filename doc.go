package mapdec

// Package mapdec reconstructs strongly-typed records from loosely-typed
// map-of-fields input, driven by a protocol-buffer-style field schema.
//
// It provides:
//
// - RecordSchema/FieldSchema describing per-field decoding (scalar, enum
//   name lookup, base64 bytes; optional repeated modifier, default, lenient
//   flag)
// - A fail-fast decode engine with duplicate and required-field tracking
// - A stable error model via Issues (field, code, message)
// - Presence metadata through the DecodeWithMeta API
// - Pluggable FieldSource inputs (encoding/json by default, go-json and
//   YAML under fieldsource/, in-memory maps and pair lists)
//
// Design policy:
// - Keep only public APIs in the root package; put the engine under internal/.
// - Place the schema builder under dsl/, codecs under codec/, and concrete
//   sources under fieldsource/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := mapdec.MustRecordSchema(
//		mapdec.FieldSchema{Name: "id", Kind: mapdec.KindScalar, Scalar: mapdec.ScalarInt64},
//		mapdec.FieldSchema{Name: "tags", Kind: mapdec.KindScalar, Scalar: mapdec.ScalarString, Repeated: true},
//	)
//	rec, err := mapdec.Decode(ctx, schema, mapdec.JSONBytes(data))
//	dm, err := mapdec.DecodeWithMeta(ctx, schema, mapdec.JSONBytes(data))
