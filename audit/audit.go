// Package audit scores every candidate in a password file and reports the
// ones that are too weak or have been breached.
package audit

import (
	"context"
	"fmt"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/pass-alert/lgctx"
	"github.com/pivotal-cf/pass-alert/scanners"
	"github.com/pivotal-cf/pass-alert/scoring"
)

type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *scanners.Line
	Err() error
}

type Auditor interface {
	Audit(context.Context, Scanner, FindingHandlerFunc) (Summary, error)
}

type Finding struct {
	Line   scanners.Line
	Result scoring.Result
}

type FindingHandlerFunc func(lager.Logger, Finding) error

// ScoreFunc is scoring.ScorePassword with the dictionary, personal info and
// oracle already bound.
type ScoreFunc func(ctx context.Context, password string) scoring.Result

type Summary struct {
	Candidates int
	Findings   int
	Unknown    int
}

type auditor struct {
	score    ScoreFunc
	minScore int
}

// NewAuditor reports candidates scoring below minScore, and every breached
// candidate regardless of score.
func NewAuditor(score ScoreFunc, minScore int) Auditor {
	return &auditor{
		score:    score,
		minScore: minScore,
	}
}

func (a *auditor) Audit(
	ctx context.Context,
	scanner Scanner,
	handleFinding FindingHandlerFunc,
) (Summary, error) {
	logger := lgctx.WithSession(ctx, "audit")
	logger.Debug("starting")

	ctx = lgctx.NewContext(ctx, logger)

	var (
		summary    Summary
		result     error
		unknownErr error
	)

	for scanner.Scan(logger) {
		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			break
		}

		line := scanner.Line(logger)
		if len(line.Content) == 0 {
			continue
		}

		summary.Candidates++

		scored := a.score(ctx, line.Candidate())

		if scored.BreachStatus == scoring.Unknown {
			summary.Unknown++
			if unknownErr == nil {
				unknownErr = scored.BreachErr
			}
		}

		if !scored.Breached && scored.Score >= a.minScore {
			continue
		}

		summary.Findings++

		err := handleFinding(logger, Finding{Line: *line, Result: scored})
		if err != nil {
			logger.Error("failed", err, lager.Data{"path": line.Path, "line": line.LineNumber})
			result = multierror.Append(result, err)
		}
	}

	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, err)
	}

	if summary.Unknown > 0 {
		result = multierror.Append(result, fmt.Errorf("breach status unknown for %d candidates: %w", summary.Unknown, unknownErr))
	}

	logger.Debug("done", lager.Data{
		"candidates": summary.Candidates,
		"findings":   summary.Findings,
		"unknown":    summary.Unknown,
	})

	return summary, result
}
