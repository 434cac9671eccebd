package version

import (
	"strconv"
	"strings"
)

// Stability classifies a version string by release maturity.
// The ordinal values define precedence between otherwise-equal versions.
type Stability int

// Stability levels, in ascending precedence.
const (
	Dev Stability = iota
	Alpha
	Beta
	RC
	Stable
	Patch
)

// String returns the Composer name of the stability level.
func (s Stability) String() string {
	switch s {
	case Dev:
		return "dev"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case RC:
		return "RC"
	case Patch:
		return "patch"
	default:
		return "stable"
	}
}

// parsed is the normalized form of a version string.
type parsed struct {
	segments  []int
	stability Stability
	modNum    int    // number attached to the stability modifier (RC2 -> 2)
	branch    bool   // no leading numeric part (e.g. "dev-master")
	raw       string // lowercased input, for branch ordering
}

// parse normalizes a version string. It never fails: anything without a
// numeric prefix is treated as a branch version with dev stability.
func parse(v string) parsed {
	raw := strings.ToLower(strings.TrimSpace(v))
	p := parsed{stability: Stable, raw: raw}

	s := raw
	s = strings.TrimPrefix(s, "dev-")
	if s != raw {
		p.stability = Dev
	}
	if strings.HasSuffix(s, "-dev") || strings.HasSuffix(s, ".x") {
		p.stability = Dev
		s = strings.TrimSuffix(s, "-dev")
	}

	// One leading "v" is tolerated ("v1.1"); "vv1.1" is a branch.
	if len(s) > 1 && s[0] == 'v' && s[1] >= '0' && s[1] <= '9' {
		s = s[1:]
	}

	num, rest := splitNumeric(s)
	if num == "" {
		p.branch = true
		p.stability = Dev
		return p
	}
	for _, seg := range strings.Split(num, ".") {
		n, err := strconv.Atoi(seg)
		if err != nil {
			// "1.x" style wildcard segment marks a dev branch alias.
			p.stability = Dev
			break
		}
		p.segments = append(p.segments, n)
	}

	if mod, n, ok := splitModifier(rest); ok {
		// An explicit modifier overrides the default, but never upgrades a
		// version already flagged as dev.
		if p.stability != Dev || mod == Dev {
			p.stability = mod
		}
		p.modNum = n
	}
	return p
}

// splitNumeric splits s into its leading dotted-digit part and the remainder.
func splitNumeric(s string) (num, rest string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != 'x' && c != '*' {
			break
		}
		i++
	}
	return strings.Trim(s[:i], "."), s[i:]
}

// splitModifier decodes a stability modifier and its trailing number from the
// remainder of a version string, e.g. "-beta2" or "rc1" or ".pl3".
func splitModifier(s string) (Stability, int, bool) {
	s = strings.TrimLeft(s, ".-_")
	if s == "" {
		return Stable, 0, false
	}

	for _, m := range modifiers {
		if !strings.HasPrefix(s, m.name) {
			continue
		}
		rest := strings.TrimLeft(s[len(m.name):], ".-")
		// Reject partial word matches like "beta" consuming "betax".
		if rest != "" && !isDigits(rest) {
			continue
		}
		n, _ := strconv.Atoi(rest)
		return m.stability, n, true
	}
	// Unknown suffix: treat as dev, matching Composer's conservative default
	// for unparsable modifiers.
	return Dev, 0, true
}

// modifiers in match order: longer names first so "beta" wins over "b".
var modifiers = []struct {
	name      string
	stability Stability
}{
	{"stable", Stable},
	{"patch", Patch},
	{"alpha", Alpha},
	{"beta", Beta},
	{"dev", Dev},
	{"rc", RC},
	{"pl", Patch},
	{"a", Alpha},
	{"b", Beta},
	{"p", Patch},
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// Compare returns -1, 0, or 1 as a orders before, equal to, or after b.
//
// Numeric versions always order above branch versions. Branch versions order
// lexically among themselves. Numeric versions compare segment-wise with
// missing segments as zero, then by stability, then by modifier number.
func Compare(a, b string) int {
	return compare(parse(a), parse(b))
}

func compare(pa, pb parsed) int {
	switch {
	case pa.branch && pb.branch:
		return strings.Compare(pa.raw, pb.raw)
	case pa.branch:
		return -1
	case pb.branch:
		return 1
	}

	n := max(len(pa.segments), len(pb.segments))
	for i := 0; i < n; i++ {
		var sa, sb int
		if i < len(pa.segments) {
			sa = pa.segments[i]
		}
		if i < len(pb.segments) {
			sb = pb.segments[i]
		}
		if sa != sb {
			return sign(sa - sb)
		}
	}
	if pa.stability != pb.stability {
		return sign(int(pa.stability) - int(pb.stability))
	}
	return sign(pa.modNum - pb.modNum)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// IsStable reports whether v denotes a stable release. Patch releases
// ("1.0.0-pl1") count as stable; dev, alpha, beta and RC builds do not.
func IsStable(v string) bool {
	return parse(v).stability >= Stable
}

// Classify returns the stability level of a version string.
func Classify(v string) Stability {
	return parse(v).stability
}

// Latest returns the greatest version in versions under [Compare]. Ties keep
// the earliest occurrence, so callers relying on first-match semantics get
// deterministic results. Returns "" for an empty slice.
func Latest(versions []string) string {
	if len(versions) == 0 {
		return ""
	}
	best := versions[0]
	bp := parse(best)
	for _, v := range versions[1:] {
		if pv := parse(v); compare(pv, bp) > 0 {
			best, bp = v, pv
		}
	}
	return best
}

// Oracle adapts the package-level functions to the resolver's oracle
// interface. The zero value is ready to use.
type Oracle struct{}

// Default returns the Composer ordering oracle.
func Default() Oracle { return Oracle{} }

// IsStable implements the oracle interface.
func (Oracle) IsStable(v string) bool { return IsStable(v) }

// Latest implements the oracle interface.
func (Oracle) Latest(versions []string) string { return Latest(versions) }
