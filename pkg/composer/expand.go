package composer

// ExpandMinified reconstructs full version records from a minified delta
// sequence.
//
// The first record is taken verbatim as the base snapshot: it is copied, not
// merged, and the "__unset" sentinel is NOT processed in it. That matches the
// wire contract, which defines the first record as already complete. Every
// subsequent record is shallow-merged over the running accumulator (incoming
// fields overwrite, absent fields are inherited), after which any top-level
// field whose value is exactly [UnsetSentinel] is removed.
//
// The returned list has the same length and order as the input, and every
// element is an independent shallow copy: later merge steps never mutate
// records already appended.
//
// ExpandMinified never fails. Records without a version field, or with
// otherwise malformed content, propagate into the output unexamined;
// validation is the transport layer's concern.
func ExpandMinified(deltas []VersionRecord) VersionList {
	if len(deltas) == 0 {
		return VersionList{}
	}

	out := make(VersionList, 0, len(deltas))
	current := deltas[0].clone()
	out = append(out, current.clone())

	for _, delta := range deltas[1:] {
		for k, v := range delta {
			current[k] = v
		}
		for k, v := range current {
			if s, ok := v.(string); ok && s == UnsetSentinel {
				delete(current, k)
			}
		}
		out = append(out, current.clone())
	}
	return out
}
