package matchers

import "bytes"

// Multi matches when any of its matchers does. Matchers are tried in order and
// the first hit wins.
func Multi(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
	}
}

// LowercasedMulti is Multi applied to the lowercased candidate. The submatchers
// must be written in lowercase.
func LowercasedMulti(matchers ...Matcher) Matcher {
	return &multi{
		matchers:  matchers,
		lowercase: true,
	}
}

type multi struct {
	matchers  []Matcher
	lowercase bool
}

func (m *multi) Match(line []byte) (bool, int, int) {
	if m.lowercase {
		line = bytes.ToLower(line)
	}

	for _, matcher := range m.matchers {
		if match, start, end := matcher.Match(line); match {
			return true, start, end
		}
	}

	return false, 0, 0
}
