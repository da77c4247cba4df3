// Package entropy estimates how hard a password is to guess.
//
// Bits is the alphabet-size approximation: length * log2(alphabet), where the
// alphabet is the union of the character classes the password uses. It is an
// upper bound that assumes every character was drawn uniformly at random, not
// a measure of the password's real information content. Measure gives a
// pattern-aware second opinion.
package entropy

import (
	"math"
	"unicode/utf8"
)

const (
	lowerAlphabet  = 26
	upperAlphabet  = 26
	digitAlphabet  = 10
	symbolAlphabet = 32
)

// Symbols is the punctuation counted as the symbol class.
const Symbols = `!@#$%^&*()_-+=[]{}|;:'",.<>?/\`

type Classes struct {
	Lower  bool
	Upper  bool
	Digit  bool
	Symbol bool
}

func ClassesOf(password string) Classes {
	var c Classes

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lower = true
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= '0' && r <= '9':
			c.Digit = true
		case isSymbol(r):
			c.Symbol = true
		}
	}

	return c
}

// Count is the number of classes present.
func (c Classes) Count() int {
	n := 0
	for _, present := range []bool{c.Lower, c.Upper, c.Digit, c.Symbol} {
		if present {
			n++
		}
	}
	return n
}

// AlphabetSize never returns less than 1 so that log2 stays defined.
func (c Classes) AlphabetSize() int {
	size := 0
	if c.Lower {
		size += lowerAlphabet
	}
	if c.Upper {
		size += upperAlphabet
	}
	if c.Digit {
		size += digitAlphabet
	}
	if c.Symbol {
		size += symbolAlphabet
	}

	if size == 0 {
		return 1
	}
	return size
}

func AlphabetSize(password string) int {
	return ClassesOf(password).AlphabetSize()
}

// Bits measures length in runes.
func Bits(password string) float64 {
	length := utf8.RuneCountInString(password)
	return float64(length) * math.Log2(float64(AlphabetSize(password)))
}

func isSymbol(r rune) bool {
	for _, s := range Symbols {
		if r == s {
			return true
		}
	}
	return false
}
