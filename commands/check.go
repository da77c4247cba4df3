package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"
	"golang.org/x/term"

	"github.com/pivotal-cf/pass-alert/entropy"
	"github.com/pivotal-cf/pass-alert/lgctx"
	"github.com/pivotal-cf/pass-alert/scoring"
)

type CheckCommand struct {
	ScoringOptions

	Stdin      bool    `long:"stdin" description:"read the password from the first line of STDIN"`
	MinScore   int     `long:"min-score" description:"exit with status 3 when the score is below this (0-8)" value-name:"SCORE"`
	MinEntropy float64 `long:"min-entropy" description:"exit with status 3 when the password carries fewer bits than this" value-name:"BITS"`
	Detailed   bool    `long:"detailed" description:"also show the pattern-aware zxcvbn estimate"`

	Args struct {
		Password string `positional-arg-name:"PASSWORD" description:"password to check; prompted for (or read from STDIN) when omitted"`
	} `positional-args:"yes"`
}

func (command *CheckCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := command.buildLogger("check")
	clean := newCleanup()

	password, err := command.readPassword()
	if err != nil {
		return err
	}

	score, err := command.buildScorer(logger)
	if err != nil {
		return err
	}

	ctx := lgctx.NewContext(clean.Context(), logger)
	result := score(ctx, password)
	logger.Debug("scored", debugData(result))

	showResult(result)

	if command.Detailed {
		showMeasurement(password, command.PersonalInfo)
	}

	failed := result.Breached || result.Score < command.MinScore

	if err := entropy.MeetsMinimum(password, command.MinEntropy); err != nil {
		fmt.Println()
		fmt.Println(red("[WEAK]"), err.Error())
		failed = true
	}

	if result.BreachStatus == scoring.Unknown {
		logger.Error("breach-lookup-failed", result.BreachErr)
	}

	if failed {
		showPasswordWarning()
		clean.exit(findingsExitCode)
	}

	return nil
}

func (command *CheckCommand) readPassword() (string, error) {
	if command.Args.Password != "" {
		return command.Args.Password, nil
	}

	fd := int(os.Stdin.Fd())
	if !command.Stdin && term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}

		return string(raw), nil
	}

	return readFirstLine(os.Stdin)
}

func readFirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

const barWidth = 16

func strengthBar(result scoring.Result) string {
	filled := result.Score * barWidth / scoring.MaxScore

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return colorForScore(result.Score)(bar)
}

func showResult(result scoring.Result) {
	fmt.Printf("Strength:      %s %s (%.1f%%)\n", strengthBar(result), colorForScore(result.Score)(result.Strength), result.Percent())
	fmt.Printf("Entropy:       %s bits\n", result.Entropy)
	fmt.Printf("Crack time:    %s\n", entropy.CrackTime(result.Bits))
	fmt.Printf("Breach status: %s\n", colorForBreach(result.BreachStatus)(result.BreachStatus.String()))

	if result.BreachStatus == scoring.Unknown {
		fmt.Println(yellow("[WARN]"), "Could not reach the breach database; this password has not been checked.")
	}

	if len(result.Feedback) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Suggestions:")
	for _, feedback := range result.Feedback {
		fmt.Println("  -", feedback)
	}
}

func showMeasurement(password string, personalInfo []string) {
	measurement := entropy.Measure(password, personalInfo)

	fmt.Println()
	fmt.Printf("Pattern-aware: %.1f bits, score %d/4, cracked in %s\n", measurement.Bits, measurement.Score, measurement.CrackTime)

	if entropy.IsPasswordSuspect(password) {
		fmt.Println("Looks randomly generated.")
	}
}

func showPasswordWarning() {
	fmt.Println()
	fmt.Println("Yikes! This password should not be used.")
	fmt.Println()
	fmt.Println("A few ways to fix that:")
	fmt.Println()
	fmt.Println("1. If it appears in a breach, attackers already have it in their")
	fmt.Println("   wordlists. Pick a new one and change it everywhere it was used.")
	fmt.Println()
	fmt.Println("2. Length beats cleverness. Four or five random words, for example")
	fmt.Println("   from `pass-alert generate`, are stronger than a short scramble.")
	fmt.Println()
	fmt.Println("3. Keep names, birthdays and other personal details out of it.")
}

func debugData(result scoring.Result) lager.Data {
	return lager.Data{
		"score":         result.Score,
		"breach-status": result.BreachStatus.String(),
	}
}
