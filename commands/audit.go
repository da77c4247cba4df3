package commands

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/audit"
	"github.com/pivotal-cf/pass-alert/lgctx"
	"github.com/pivotal-cf/pass-alert/scanners/filescanner"
	"github.com/pivotal-cf/pass-alert/scoring"
)

type AuditCommand struct {
	ScoringOptions

	File          string `short:"f" long:"file" description:"newline-delimited password file to audit; STDIN when omitted" value-name:"FILE"`
	MinScore      int    `long:"min-score" default:"4" description:"report passwords scoring below this (0-8)" value-name:"SCORE"`
	ShowPasswords bool   `long:"show-passwords" description:"allow passwords to be shown in output"`
}

func (command *AuditCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := command.buildLogger("audit")
	clean := newCleanup()

	score, err := command.buildScorer(logger)
	if err != nil {
		return err
	}

	scanner := filescanner.New(os.Stdin, "STDIN")

	if command.File != "" {
		file, err := os.Open(command.File)
		if err != nil {
			return err
		}
		defer file.Close()
		clean.register(func() { file.Close() })

		scanner = filescanner.New(file, command.File)
	}

	handler := newFindingCounter(command.ShowPasswords)
	auditor := audit.NewAuditor(audit.ScoreFunc(score), command.MinScore)

	ctx := lgctx.NewContext(clean.Context(), logger)
	summary, err := auditor.Audit(ctx, scanner, handler.HandleFinding)

	fmt.Println()
	fmt.Printf("Audited %d passwords: %d to replace", summary.Candidates, summary.Findings)
	if summary.Unknown > 0 {
		fmt.Printf(", %s", yellow(fmt.Sprintf("%d not checked against breaches", summary.Unknown)))
	}
	fmt.Println()

	if err != nil {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), err.Error())
	}

	if handler.count > 0 {
		showPasswordWarning()
		clean.exit(findingsExitCode)
	}

	if err != nil {
		clean.exit(1)
	}

	return nil
}

func newFindingCounter(showPasswords bool) *findingCounter {
	return &findingCounter{
		showPasswords: showPasswords,
	}
}

type findingCounter struct {
	count         int
	showPasswords bool
}

func (c *findingCounter) HandleFinding(logger lager.Logger, finding audit.Finding) error {
	line := finding.Line
	result := finding.Result
	c.count++

	tag := yellow("[WEAK]")
	if result.Breached {
		tag = red("[PWNED]")
	}

	output := fmt.Sprintf("%s %s:%d %s (%d/%d)", tag, line.Path, line.LineNumber, result.Strength, result.Score, scoring.MaxScore)
	if c.showPasswords {
		output = output + fmt.Sprintf(" [%s]", line.Candidate())
	}
	fmt.Println(output)

	logger.Debug("finding", lager.Data{"path": line.Path, "line": line.LineNumber, "count": c.count, "score": result.Score})

	return nil
}
