package scanners

// Line is one password candidate read from a file.
type Line struct {
	Path       string
	LineNumber int
	Content    []byte
}

func (l Line) Candidate() string {
	return string(l.Content)
}
