package scoring

// Levels maps a score to its strength label. Scores 7 and 8 share the top
// label.
var Levels = [MaxScore + 1]string{
	"Very Weak",
	"Weak",
	"Fair",
	"Good",
	"Strong",
	"Very Strong",
	"Excellent",
	"Unbreakable",
	"Unbreakable",
}

const MaxScore = 8

type BreachStatus int

const (
	NotChecked BreachStatus = iota
	Clean
	Breached
	Unknown
)

func (s BreachStatus) String() string {
	switch s {
	case Clean:
		return "clean"
	case Breached:
		return "breached"
	case Unknown:
		return "unknown"
	default:
		return "not checked"
	}
}

const (
	LengthFeedback       = "Use at least 8 characters (15+ is best)"
	DiversityFeedback    = "Mix uppercase, lowercase, numbers, symbols"
	PatternFeedback      = "Avoid common patterns"
	DictionaryFeedback   = "Avoid common words"
	PersonalInfoFeedback = "Don't use personal info"
	BreachFeedback       = "This password appears in a breach—do not use it!"
)

type Result struct {
	Score    int
	Strength string
	// Entropy is Bits rendered with one decimal.
	Entropy  string
	Bits     float64
	Feedback []string
	Breached bool

	BreachStatus BreachStatus
	// BreachErr is the oracle failure behind an Unknown status.
	BreachErr error
}

// Percent is the share of the strength bar the score fills.
func (r Result) Percent() float64 {
	return float64(r.Score) * 12.5
}
