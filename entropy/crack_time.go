package entropy

import (
	"fmt"
	"math"
)

// GuessesPerSecond models an offline attack on a fast hash with a GPU rig.
const GuessesPerSecond = 1e10

const (
	minute  = 60.0
	hour    = 3600.0
	day     = 86400.0
	year    = 31536000.0
	century = 3153600000.0
)

// CrackTime renders the time to exhaust 2^bits guesses.
func CrackTime(bits float64) string {
	seconds := math.Pow(2, bits) / GuessesPerSecond

	switch {
	case seconds < minute:
		return "< 1 minute"
	case seconds < hour:
		return fmt.Sprintf("%d minutes", int64(math.Round(seconds/minute)))
	case seconds < day:
		return fmt.Sprintf("%d hours", int64(math.Round(seconds/hour)))
	case seconds < year:
		return fmt.Sprintf("%d days", int64(math.Round(seconds/day)))
	case seconds < century:
		return fmt.Sprintf("%d years", int64(math.Round(seconds/year)))
	default:
		return "> 100 years"
	}
}
