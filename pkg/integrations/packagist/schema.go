package packagist

import (
	"errors"
	"fmt"
)

// ErrMalformedPayload is returned when a registry response decodes as JSON
// but does not match the expected metadata shape.
var ErrMalformedPayload = errors.New("malformed registry payload")

// validateMetadata checks the shape of a p2 response: the top-level packages
// object must exist and carry an entry for the requested package. The
// delta records themselves stay opaque; the composer package handles their
// semantics and the expansion stage never fails on record contents.
//
// An empty version array is valid: a package can exist with no releases on
// the requested channel.
func validateMetadata(pkg string, resp *p2Response) error {
	if resp.Packages == nil {
		return fmt.Errorf("%w: missing packages object", ErrMalformedPayload)
	}
	if _, ok := resp.Packages[pkg]; !ok {
		return fmt.Errorf("%w: missing entry for %s", ErrMalformedPayload, pkg)
	}
	return nil
}
