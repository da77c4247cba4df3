// Package wordlist loads the word lists the scorer and the passphrase
// generator work from: newline-delimited dictionaries of known-weak passwords,
// optionally archived, and diceware lists.
package wordlist

import (
	"bufio"
	"compress/gzip"
	_ "embed"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/archiver/extractor"
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/pass-alert/mimetype"
	"github.com/pivotal-cf/pass-alert/scoring"
)

//go:embed common-passwords.txt
var commonPasswords string

// DefaultDictionary is a small built-in list of the most breached passwords.
func DefaultDictionary() scoring.Dictionary {
	dictionary, _ := ReadDictionary(strings.NewReader(commonPasswords))
	return dictionary
}

// ReadDictionary reads one word per line. Blank lines and lines starting with
// '#' are skipped.
func ReadDictionary(r io.Reader) (scoring.Dictionary, error) {
	dictionary := scoring.NewDictionary()

	if err := readInto(dictionary, r); err != nil {
		return nil, err
	}

	return dictionary, nil
}

func readInto(dictionary scoring.Dictionary, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dictionary.Add(line)
	}

	return scanner.Err()
}

// LoadDictionary merges every file at paths into one dictionary. Zip, tgz and
// gzip files are unpacked first. Files that fail to load are skipped and their
// errors returned together with whatever did load.
func LoadDictionary(logger lager.Logger, paths ...string) (scoring.Dictionary, error) {
	logger = logger.Session("load-dictionary")
	logger.Debug("starting")
	defer logger.Debug("done")

	dictionary := scoring.NewDictionary()
	var result error

	for _, path := range paths {
		if err := loadPath(logger, dictionary, path); err != nil {
			logger.Error("failed", err, lager.Data{"path": path})
			result = multierror.Append(result, fmt.Errorf("loading %s: %w", path, err))
		}
	}

	logger.Debug("loaded", lager.Data{"words": len(dictionary)})

	return dictionary, result
}

func loadPath(logger lager.Logger, dictionary scoring.Dictionary, path string) error {
	kind := mimetype.Detect(path)
	logger.Debug("loading", lager.Data{"path": path, "type": kind.String()})

	switch kind {
	case mimetype.Tgz:
		return loadArchive(dictionary, path, extractor.NewTgz())
	case mimetype.Zip:
		return loadArchive(dictionary, path, extractor.NewZip())
	case mimetype.Gzip:
		return loadGzip(dictionary, path)
	default:
		return loadText(dictionary, path)
	}
}

func loadText(dictionary scoring.Dictionary, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return readInto(dictionary, f)
}

func loadGzip(dictionary scoring.Dictionary, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gz.Close()

	return readInto(dictionary, gz)
}

func loadArchive(dictionary scoring.Dictionary, path string, ex extractor.Extractor) error {
	inflateDir, err := ioutil.TempDir("", "pass-alert-wordlist")
	if err != nil {
		return err
	}
	defer os.RemoveAll(inflateDir)

	if err := ex.Extract(path, inflateDir); err != nil {
		return err
	}

	var result error

	walkErr := filepath.Walk(inflateDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		if err := loadText(dictionary, p); err != nil {
			rel, _ := filepath.Rel(inflateDir, p)
			result = multierror.Append(result, fmt.Errorf("%s: %w", rel, err))
		}

		return nil
	})
	if walkErr != nil {
		result = multierror.Append(result, walkErr)
	}

	return result
}
