package commands

type PassAlertCommand struct {
	Check       CheckCommand       `command:"check" description:"Score a password and look it up in breach corpora"`
	Audit       AuditCommand       `command:"audit" description:"Score every password in a file, or STDIN, one per line"`
	Interactive InteractiveCommand `command:"interactive" description:"Score passwords from STDIN as they arrive, showing only the newest result"`
	Generate    GenerateCommand    `command:"generate" description:"Generate a diceware passphrase"`
	Update      UpdateCommand      `command:"update" description:"Update pass-alert to the latest version"`
	Version     VersionCommand     `command:"version" description:"Displays pass-alert version" alias:"V"`
}

var PassAlert PassAlertCommand

// Exit status used when a password is breached or too weak.
const findingsExitCode = 3
