package entropy

import (
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

// Measurement is zxcvbn's view of a password: it discounts dictionary words,
// keyboard walks, repeats and dates that the alphabet estimate ignores.
type Measurement struct {
	Bits      float64
	Score     int
	CrackTime string
}

func Measure(password string, userInputs []string) Measurement {
	match := zxcvbn.PasswordStrength(password, userInputs)

	return Measurement{
		Bits:      match.Entropy,
		Score:     match.Score,
		CrackTime: match.CrackTimeDisplay,
	}
}

func IsPasswordSuspect(candidate string) bool {
	length := utf8.RuneCountInString(candidate)
	if length == 0 {
		return false
	}

	match := zxcvbn.PasswordStrength(candidate, []string{})

	entropyPerChar := match.Entropy / float64(length)

	return entropyPerChar > 3.7 // magic magic magic
}

// MeetsMinimum returns nil when the password carries at least minBits by
// go-password-validator's estimate. The error text says what to add.
func MeetsMinimum(password string, minBits float64) error {
	if minBits <= 0 {
		return nil
	}

	return passwordvalidator.Validate(password, minBits)
}
