package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/breach"
	"github.com/pivotal-cf/pass-alert/net"
	"github.com/pivotal-cf/pass-alert/scoring"
	"github.com/pivotal-cf/pass-alert/wordlist"
)

type ScoringOptions struct {
	Dictionaries        []string      `short:"d" long:"dictionary" description:"newline-delimited list of weak passwords; .gz, .tgz and .zip are unpacked (repeatable)" value-name:"PATH"`
	NoDefaultDictionary bool          `long:"no-default-dictionary" description:"do not use the built-in list of common passwords"`
	PersonalInfo        []string      `short:"p" long:"personal-info" description:"name, birthday or other personal detail that must not appear in the password (repeatable)" value-name:"TEXT"`
	Offline             bool          `long:"offline" description:"skip the breach lookup"`
	RangeURL            string        `long:"range-url" env:"PASS_ALERT_RANGE_URL" default:"https://api.pwnedpasswords.com" description:"base URL of the k-anonymity range API" value-name:"URL"`
	Timeout             time.Duration `long:"timeout" env:"PASS_ALERT_TIMEOUT" default:"10s" description:"give up on the breach lookup after this long" value-name:"DURATION"`
	Debug               bool          `long:"debug" description:"enables debug logging"`
}

func (o *ScoringOptions) buildLogger(component string) lager.Logger {
	logger := lager.NewLogger(component)

	if o.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	}

	return logger
}

func (o *ScoringOptions) buildDictionary(logger lager.Logger) (scoring.Dictionary, error) {
	dictionary := scoring.NewDictionary()

	if !o.NoDefaultDictionary {
		dictionary.Merge(wordlist.DefaultDictionary())
	}

	if len(o.Dictionaries) == 0 {
		return dictionary, nil
	}

	loaded, err := wordlist.LoadDictionary(logger, o.Dictionaries...)
	dictionary.Merge(loaded)

	return dictionary, err
}

func (o *ScoringOptions) buildOracle() breach.Oracle {
	if o.Offline {
		return nil
	}

	client := net.NewRetryingClient(&http.Client{}, clock.NewClock())

	return breach.NewPwnedOracle(client, o.RangeURL)
}

// buildScorer binds everything but the password. Each call gets its own
// breach lookup deadline.
func (o *ScoringOptions) buildScorer(logger lager.Logger) (func(context.Context, string) scoring.Result, error) {
	dictionary, err := o.buildDictionary(logger)
	if err != nil {
		return nil, fmt.Errorf("loading dictionaries: %w", err)
	}

	personalInfo := o.PersonalInfo
	oracle := o.buildOracle()

	return func(ctx context.Context, password string) scoring.Result {
		if o.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, o.Timeout)
			defer cancel()
		}

		return scoring.ScorePassword(ctx, password, dictionary, personalInfo, oracle)
	}, nil
}
