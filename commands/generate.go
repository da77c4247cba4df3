package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/pivotal-cf/pass-alert/scoring"
	"github.com/pivotal-cf/pass-alert/wordlist"
)

type GenerateCommand struct {
	Wordlist  string `short:"w" long:"wordlist" required:"true" description:"diceware wordlist, EFF layout or one word per line" value-name:"PATH"`
	Words     int    `short:"n" long:"words" default:"5" description:"number of words in the passphrase"`
	Separator string `long:"separator" default:"-" description:"string placed between words"`
	NoScore   bool   `long:"no-score" description:"print only the passphrase"`
}

func (command *GenerateCommand) Execute(args []string) error {
	file, err := os.Open(command.Wordlist)
	if err != nil {
		return err
	}
	defer file.Close()

	words, err := wordlist.ReadDiceware(file)
	if err != nil {
		return err
	}

	passphrase, err := wordlist.Passphrase(words, command.Words, command.Separator)
	if err != nil {
		return err
	}

	fmt.Println(passphrase)

	if command.NoScore {
		return nil
	}

	// Looking a fresh passphrase up would only leak its hash prefix.
	result := scoring.ScorePassword(context.Background(), passphrase, nil, nil, nil)

	fmt.Println()
	showResult(result)

	return nil
}
