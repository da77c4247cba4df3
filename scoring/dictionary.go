package scoring

import (
	"bytes"
	"strings"
)

// Dictionary is a set of lowercase words that must not appear inside a
// password.
type Dictionary map[string]struct{}

func NewDictionary(words ...string) Dictionary {
	d := make(Dictionary, len(words))
	for _, w := range words {
		d.Add(w)
	}
	return d
}

// Add stores word lowercased. Empty words are dropped since an empty
// substring would be found in every password.
func (d Dictionary) Add(word string) {
	word = strings.ToLower(word)
	if word == "" {
		return
	}
	d[word] = struct{}{}
}

func (d Dictionary) Contains(word string) bool {
	_, found := d[strings.ToLower(word)]
	return found
}

func (d Dictionary) Merge(other Dictionary) {
	for w := range other {
		d[w] = struct{}{}
	}
}

func (d Dictionary) Words() []string {
	words := make([]string, 0, len(d))
	for w := range d {
		words = append(words, w)
	}
	return words
}

// Match reports the first dictionary word found inside candidate, ignoring
// case. It satisfies matchers.Matcher without building a matcher per word.
func (d Dictionary) Match(candidate []byte) (bool, int, int) {
	if len(d) == 0 {
		return false, 0, 0
	}

	lowered := bytes.ToLower(candidate)

	for w := range d {
		if start := bytes.Index(lowered, []byte(w)); start != -1 {
			return true, start, start + len(w)
		}
	}

	return false, 0, 0
}
