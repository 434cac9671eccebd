package composer

import "errors"

// Sentinel errors for release resolution. Both are terminal for the request:
// retrying cannot change a logical absence.
var (
	// ErrNoReleasedVersion is returned when no record in the list carries a
	// string-typed version field.
	ErrNoReleasedVersion = errors.New("no released version found")

	// ErrInvalidVersion is returned when an exact-match lookup finds no
	// record for the requested version string.
	ErrInvalidVersion = errors.New("invalid version")
)
