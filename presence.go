package mapdec

// Presence is the bit flag collected by the WithMeta API.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the source.
	PresenceDefaultApplied                      // Default value was applied at narrowing.
)

// PresenceMap maps "/field" paths to Presence flags. The root path "/" is
// always marked seen for a completed decode.
type PresenceMap map[string]Presence

// DecodedRecord carries the finished record along with presence metadata.
type DecodedRecord struct {
	Value    Record
	Presence PresenceMap
}

// Seen reports whether the named field appeared in the source.
func (pm PresenceMap) Seen(name string) bool {
	return pm["/"+name]&PresenceSeen != 0
}

// DefaultApplied reports whether the named field was narrowed to its default.
func (pm PresenceMap) DefaultApplied(name string) bool {
	return pm["/"+name]&PresenceDefaultApplied != 0
}
