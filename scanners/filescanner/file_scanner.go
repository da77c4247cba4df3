package filescanner

import (
	"bufio"
	"io"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/scanners"
)

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
}

func New(r io.Reader, filename string) *fileScanner {
	bufioScanner := bufio.NewScanner(r)
	return &fileScanner{
		path:         filename,
		bufioScanner: bufioScanner,
	}
}

func (s *fileScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("file-scanner")

	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Error("bufio-error", err, lager.Data{"path": s.path, "line": s.lineNumber + 1})
		return false
	}

	if success {
		s.lineNumber++
	}
	return success
}

// Line strips a trailing carriage return so CRLF files yield the same
// candidates as LF ones.
func (s *fileScanner) Line(logger lager.Logger) *scanners.Line {
	content := strings.TrimSuffix(s.bufioScanner.Text(), "\r")

	return &scanners.Line{
		Content:    []byte(content),
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *fileScanner) Err() error {
	return s.bufioScanner.Err()
}
