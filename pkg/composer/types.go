package composer

// VersionField is the record field holding the release identifier.
const VersionField = "version"

// UnsetSentinel is the literal value a delta record uses to delete a field
// from the accumulated record. It is dictated by the Composer v2 wire format.
// A field legitimately holding this exact string cannot be distinguished from
// a deletion marker; that ambiguity is inherent to the protocol.
const UnsetSentinel = "__unset"

// VersionRecord is one release's metadata: a mapping from field name to
// value. The "version" field is guaranteed by the registry for well-formed
// data but must not be assumed present. All other fields, including nested
// structures, are opaque to this package and pass through unexamined.
type VersionRecord map[string]any

// Version returns the record's version string. ok is false when the field is
// absent or not string-typed.
func (r VersionRecord) Version() (string, bool) {
	v, ok := r[VersionField].(string)
	return v, ok
}

// clone returns a shallow copy of the record. Nested values are shared;
// callers only ever add or remove top-level keys.
func (r VersionRecord) clone() VersionRecord {
	out := make(VersionRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// VersionList is an ordered sequence of version records, one per release, in
// registry emission order. Order carries no release-precedence meaning but is
// preserved for deterministic first-match lookups.
type VersionList []VersionRecord
