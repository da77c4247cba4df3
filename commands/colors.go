package commands

import (
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/pass-alert/scoring"
)

var (
	red    = ansi.ColorFunc("red+b")
	yellow = ansi.ColorFunc("yellow+b")
	green  = ansi.ColorFunc("green+b")
)

func colorForScore(score int) func(string) string {
	switch {
	case score > 5:
		return green
	case score > 3:
		return yellow
	default:
		return red
	}
}

func colorForBreach(status scoring.BreachStatus) func(string) string {
	switch status {
	case scoring.Breached:
		return red
	case scoring.Unknown:
		return yellow
	case scoring.Clean:
		return green
	default:
		return func(s string) string { return s }
	}
}
