// Package matchers finds substrings and patterns inside password candidates.
//
// Every matcher reports whether it matched and the byte offsets of the first
// match, so callers can point at the offending part of a candidate.
package matchers

//go:generate counterfeiter . Matcher

type Matcher interface {
	Match([]byte) (bool, int, int)
}
