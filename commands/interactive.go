package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pivotal-cf/pass-alert/lgctx"
	"github.com/pivotal-cf/pass-alert/scoring"
	"github.com/pivotal-cf/pass-alert/session"
)

type InteractiveCommand struct {
	ScoringOptions
}

func (command *InteractiveCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := command.buildLogger("interactive")
	clean := newCleanup()

	score, err := command.buildScorer(logger)
	if err != nil {
		return err
	}

	tracker := session.New(session.ScoreFunc(score))
	defer tracker.Close()

	ctx := lgctx.NewContext(clean.Context(), logger)

	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSuffix(scanner.Text(), "\r")
		}
	}()

	// Results only ever carries the newest submission, so once input ends
	// the next update received is the last one worth showing.
	var waiting bool

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				if !waiting {
					return nil
				}
				lines = nil
				continue
			}

			tracker.Submit(ctx, line)
			waiting = line != ""

		case update := <-tracker.Results():
			waiting = false
			showUpdate(update.Result)

			if lines == nil {
				return nil
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func showUpdate(result scoring.Result) {
	breach := colorForBreach(result.BreachStatus)(result.BreachStatus.String())

	fmt.Printf("%s %s  %s bits  breach: %s\n", strengthBar(result), colorForScore(result.Score)(result.Strength), result.Entropy, breach)

	for _, feedback := range result.Feedback {
		fmt.Println("  -", feedback)
	}
}
