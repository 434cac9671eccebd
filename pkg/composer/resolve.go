package composer

import (
	"fmt"

	"github.com/packista/packista/pkg/composer/version"
)

// Oracle compares version strings under registry-specific precedence rules.
// The resolver treats it as a black box: it only needs stability
// classification and a "greatest of" selection.
type Oracle interface {
	// IsStable reports whether v denotes a stable release, as opposed to a
	// dev/alpha/beta/RC build.
	IsStable(v string) bool

	// Latest returns the greatest version string in versions under full
	// ordering. For compare-equal candidates the earliest occurrence wins.
	// Returns "" for an empty input.
	Latest(versions []string) string
}

// Resolver answers release-lookup questions over an expanded [VersionList].
// The zero value is not usable; construct with [NewResolver].
type Resolver struct {
	oracle Oracle
}

// NewResolver creates a Resolver using the given ordering oracle.
// A nil oracle selects the default Composer oracle from the version package.
func NewResolver(oracle Oracle) *Resolver {
	if oracle == nil {
		oracle = version.Default()
	}
	return &Resolver{oracle: oracle}
}

// FindLatestRelease returns the record representing the latest release.
//
// Records without a string-typed version field are ignored. When none remain,
// it fails with [ErrNoReleasedVersion]. With includePrereleases false, the
// latest stable version wins; if the package has no stable release at all,
// the overall latest (including prereleases) is used instead, so a package
// that only ever shipped prereleases still resolves. With includePrereleases
// true, the overall latest always wins.
//
// The returned record is the first one in list order whose version field
// equals the winning string exactly; duplicate version strings therefore
// resolve deterministically to the earliest occurrence.
func (r *Resolver) FindLatestRelease(versions VersionList, includePrereleases bool) (VersionRecord, error) {
	candidates := make([]string, 0, len(versions))
	for _, rec := range versions {
		if v, ok := rec.Version(); ok {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoReleasedVersion
	}

	latest := r.oracle.Latest(candidates)
	if !includePrereleases {
		stable := candidates[:0:0]
		for _, v := range candidates {
			if r.oracle.IsStable(v) {
				stable = append(stable, v)
			}
		}
		if len(stable) > 0 {
			latest = r.oracle.Latest(stable)
		}
	}

	rec, ok := lookup(versions, latest)
	if !ok {
		// The oracle returned a string not present in its input.
		return nil, fmt.Errorf("%w: %q", ErrNoReleasedVersion, latest)
	}
	return rec, nil
}

// FindSpecifiedVersion returns the first record in list order whose version
// field equals v by exact string comparison. It fails with
// [ErrInvalidVersion] when no record matches.
func (r *Resolver) FindSpecifiedVersion(versions VersionList, v string) (VersionRecord, error) {
	rec, ok := lookup(versions, v)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	return rec, nil
}

func lookup(versions VersionList, want string) (VersionRecord, bool) {
	for _, rec := range versions {
		if v, ok := rec.Version(); ok && v == want {
			return rec, true
		}
	}
	return nil, false
}
