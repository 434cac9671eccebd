// Package version implements Composer version ordering and stability
// classification.
//
// Composer versions are dotted numeric segments (up to four, e.g. "6.3.5.1")
// with an optional leading "v" and an optional stability modifier: dev,
// alpha/a, beta/b, RC, or patch/pl/p, each optionally followed by a number.
// Branch versions ("dev-master", "2.x-dev") have dev stability and rank below
// every numeric version.
//
// Precedence compares numeric segments first (missing segments count as
// zero), then stability (dev < alpha < beta < RC < stable < patch), then the
// modifier number. "1.0.0" therefore ranks above "1.0.0-RC5" and below
// "1.0.0-patch1".
package version
