package mapdec

// DecodeOpt bundles decoding options. All knobs default to false, matching
// strict schema validation.
type DecodeOpt struct {
	// LenientOnTypeError lets a scalar shape mismatch fall back to the
	// field's default (or the empty sequence for repeated fields) instead
	// of failing. Enum-name and base64 failures are content errors and are
	// never covered by this escape hatch.
	LenientOnTypeError bool
	// UseDefaultForMissing narrows an absent non-repeated field to its
	// configured default instead of raising a required error.
	UseDefaultForMissing bool
	// IgnoreUnknownFields skips keys that resolve to no schema field
	// instead of failing; skipped pairs have no narrowing effect.
	IgnoreUnknownFields bool
}
