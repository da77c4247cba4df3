package mimetype

import (
	"path/filepath"
	"strings"
)

type Kind int

const (
	Text Kind = iota
	Tgz
	Zip
	Gzip
)

func (k Kind) String() string {
	switch k {
	case Tgz:
		return "application/x-tar"
	case Zip:
		return "application/zip"
	case Gzip:
		return "application/gzip"
	default:
		return "text/plain"
	}
}

// Detect classifies a wordlist by its file name. Anything that is not a known
// archive is read as plain text.
func Detect(filename string) Kind {
	name := strings.ToLower(filepath.Base(filename))

	switch {
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return Tgz
	case strings.HasSuffix(name, ".zip"):
		return Zip
	case strings.HasSuffix(name, ".gz"):
		return Gzip
	default:
		return Text
	}
}
