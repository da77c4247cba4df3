package wordlist

import (
	"bufio"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"
)

var ErrEmptyWordlist = errors.New("wordlist is empty")

// ReadDiceware accepts the EFF layout ("11111<tab>abacus"), where the word is
// the second field, as well as plain one-word-per-line lists.
func ReadDiceware(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())

		switch len(fields) {
		case 0:
			continue
		case 1:
			words = append(words, fields[0])
		default:
			words = append(words, fields[1])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// Passphrase joins n words drawn uniformly, with replacement, using the
// system's cryptographic random source.
func Passphrase(words []string, n int, separator string) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyWordlist
	}
	if n < 1 {
		return "", errors.New("passphrase needs at least one word")
	}

	max := big.NewInt(int64(len(words)))
	chosen := make([]string, n)

	for i := range chosen {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		chosen[i] = words[idx.Int64()]
	}

	return strings.Join(chosen, separator), nil
}
