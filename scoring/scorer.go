// Package scoring rates a password from 0 to 8 and says how to improve it.
//
// The local checks (length, character classes, entropy, common patterns,
// dictionary words, personal info) are pure. The only blocking step is the
// optional breach oracle, and a breach always forces the score to 0.
package scoring

import (
	"context"
	"fmt"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/breach"
	"github.com/pivotal-cf/pass-alert/entropy"
	"github.com/pivotal-cf/pass-alert/lgctx"
	"github.com/pivotal-cf/pass-alert/matchers"
)

var commonPatterns = matchers.LowercasedMulti(
	matchers.Substring("qwerty"),
	matchers.Substring("123456"),
	matchers.Substring("password"),
	matchers.Substring("asdfgh"),
)

const (
	penalty = 2

	highEntropyBits   = 60
	mediumEntropyBits = 40
)

// ScorePassword never fails. dictionary and personalInfo may be nil, and a nil
// oracle skips the breach check. An oracle failure leaves the score alone and
// is reported through BreachStatus and BreachErr.
func ScorePassword(
	ctx context.Context,
	password string,
	dictionary Dictionary,
	personalInfo []string,
	oracle breach.Oracle,
) Result {
	score := 0
	feedback := []string{}

	length := utf8.RuneCountInString(password)
	switch {
	case length >= 15:
		score += 3
	case length >= 12:
		score += 2
	case length >= 8:
		score += 1
	default:
		feedback = append(feedback, LengthFeedback)
	}

	diversity := entropy.ClassesOf(password).Count()
	if diversity == 1 {
		feedback = append(feedback, DiversityFeedback)
	}
	score += diversity

	bits := entropy.Bits(password)
	switch {
	case bits > highEntropyBits:
		score += 2
	case bits > mediumEntropyBits:
		score += 1
	}

	candidate := []byte(password)

	if match, _, _ := commonPatterns.Match(candidate); match {
		feedback = append(feedback, PatternFeedback)
		score -= penalty
	}

	if match, _, _ := dictionary.Match(candidate); match {
		feedback = append(feedback, DictionaryFeedback)
		score -= penalty
	}

	if match, _, _ := matchers.Words(personalInfo...).Match(candidate); match {
		feedback = append(feedback, PersonalInfoFeedback)
		score -= penalty
	}

	score = clamp(score)

	result := Result{
		Entropy: fmt.Sprintf("%.1f", bits),
		Bits:    bits,
	}

	if oracle != nil {
		result.BreachStatus, result.BreachErr = checkBreach(ctx, oracle, password)
	}

	if result.BreachStatus == Breached {
		feedback = append(feedback, BreachFeedback)
		result.Breached = true
		score = 0
	}

	result.Score = score
	result.Strength = Levels[score]
	result.Feedback = feedback

	return result
}

func checkBreach(ctx context.Context, oracle breach.Oracle, password string) (BreachStatus, error) {
	logger := lgctx.WithSession(ctx, "score-password")

	breached, err := oracle.Check(lgctx.NewContext(ctx, logger), password)
	if err != nil {
		logger.Error("breach-status-unknown", err)
		return Unknown, err
	}

	logger.Debug("breach-checked", lager.Data{"breached": breached})

	if breached {
		return Breached, nil
	}
	return Clean, nil
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
