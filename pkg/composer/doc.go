// Package composer implements the Composer v2 metadata model: expansion of
// minified ("delta-compressed") version metadata into full version records,
// and resolution of a release from an expanded version list.
//
// # Minified metadata
//
// Packagist-style registries transmit version history as a sequence of delta
// records: the first record is a full snapshot, and every later record carries
// only the fields that changed relative to the previous expanded record. A
// field set to the literal string "__unset" marks the field as deleted in
// that record. [ExpandMinified] reconstructs the full records:
//
//	full := composer.ExpandMinified(deltas)
//
// # Resolution
//
// A [Resolver] answers "which record is the latest release" and "which record
// matches this exact version string" over an expanded [VersionList]. Version
// ordering and stability classification are delegated to an [Oracle]; the
// default oracle lives in the version subpackage.
//
//	r := composer.NewResolver(nil)
//	rec, err := r.FindLatestRelease(full, false)
//
// Both operations are pure reads: no I/O, no shared state, safe for
// concurrent use over distinct lists.
package composer
