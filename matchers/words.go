package matchers

import "strings"

// Words matches a candidate that contains any of the given words, ignoring
// case. Words are used as given, whitespace included. Empty words are dropped;
// an empty substring would match everything.
func Words(words ...string) Matcher {
	subs := make([]Matcher, 0, len(words))

	for _, w := range words {
		w = strings.ToLower(w)
		if w == "" {
			continue
		}

		subs = append(subs, Substring(w))
	}

	return LowercasedMulti(subs...)
}
