package wordlist_test

import (
	"archive/zip"
	"compress/gzip"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/archiver/compressor"
	"code.cloudfoundry.org/lager/lagertest"
	"github.com/hashicorp/go-multierror"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-alert/wordlist"
)

var _ = Describe("ReadDictionary", func() {
	It("lowercases and trims every word", func() {
		dictionary, err := wordlist.ReadDictionary(strings.NewReader("Dragon\n  MONKEY  \r\n"))
		Expect(err).NotTo(HaveOccurred())

		Expect(dictionary.Contains("dragon")).To(BeTrue())
		Expect(dictionary.Contains("monkey")).To(BeTrue())
		Expect(dictionary).To(HaveLen(2))
	})

	It("skips blank lines and comments", func() {
		dictionary, err := wordlist.ReadDictionary(strings.NewReader("# header\n\n\nletmein\n"))
		Expect(err).NotTo(HaveOccurred())

		Expect(dictionary.Words()).To(ConsistOf("letmein"))
	})
})

var _ = Describe("DefaultDictionary", func() {
	It("contains the usual suspects", func() {
		dictionary := wordlist.DefaultDictionary()

		Expect(dictionary.Contains("password")).To(BeTrue())
		Expect(dictionary.Contains("letmein")).To(BeTrue())
		Expect(dictionary.Contains("")).To(BeFalse())
	})
})

var _ = Describe("LoadDictionary", func() {
	var (
		logger *lagertest.TestLogger
		inDir  string
		outDir string
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("wordlist")

		var err error
		inDir, err = ioutil.TempDir("", "wordlist-in")
		Expect(err).NotTo(HaveOccurred())

		outDir, err = ioutil.TempDir("", "wordlist-out")
		Expect(err).NotTo(HaveOccurred())

		Expect(ioutil.WriteFile(filepath.Join(inDir, "first.txt"), []byte("dragon\nmonkey\n"), 0644)).To(Succeed())
		Expect(ioutil.WriteFile(filepath.Join(inDir, "second.txt"), []byte("sunshine\n"), 0644)).To(Succeed())
	})

	AfterEach(func() {
		os.RemoveAll(inDir)
		os.RemoveAll(outDir)
	})

	It("merges plain text files", func() {
		dictionary, err := wordlist.LoadDictionary(logger,
			filepath.Join(inDir, "first.txt"),
			filepath.Join(inDir, "second.txt"),
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(dictionary.Words()).To(ConsistOf("dragon", "monkey", "sunshine"))
	})

	It("reads gzipped lists", func() {
		path := filepath.Join(outDir, "list.txt.gz")
		f, err := os.Create(path)
		Expect(err).NotTo(HaveOccurred())

		gz := gzip.NewWriter(f)
		_, err = gz.Write([]byte("trustno1\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(gz.Close()).To(Succeed())
		Expect(f.Close()).To(Succeed())

		dictionary, err := wordlist.LoadDictionary(logger, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(dictionary.Words()).To(ConsistOf("trustno1"))
	})

	It("reads every file inside a tgz", func() {
		path := filepath.Join(outDir, "lists.tgz")
		Expect(compressor.NewTgz().Compress(inDir, path)).To(Succeed())

		dictionary, err := wordlist.LoadDictionary(logger, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(dictionary.Words()).To(ConsistOf("dragon", "monkey", "sunshine"))
	})

	It("reads every file inside a zip", func() {
		path := filepath.Join(outDir, "lists.zip")
		f, err := os.Create(path)
		Expect(err).NotTo(HaveOccurred())

		archive := zip.NewWriter(f)
		w, err := archive.Create("nested/list.txt")
		Expect(err).NotTo(HaveOccurred())
		_, err = w.Write([]byte("qwerty\nabc123\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(archive.Close()).To(Succeed())
		Expect(f.Close()).To(Succeed())

		dictionary, err := wordlist.LoadDictionary(logger, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(dictionary.Words()).To(ConsistOf("qwerty", "abc123"))
	})

	Context("when some files cannot be read", func() {
		It("returns what loaded along with every failure", func() {
			dictionary, err := wordlist.LoadDictionary(logger,
				filepath.Join(inDir, "missing-one.txt"),
				filepath.Join(inDir, "first.txt"),
				filepath.Join(inDir, "missing-two.txt"),
			)

			Expect(dictionary.Words()).To(ConsistOf("dragon", "monkey"))

			merr, ok := err.(*multierror.Error)
			Expect(ok).To(BeTrue())
			Expect(merr.Errors).To(HaveLen(2))
			Expect(err.Error()).To(ContainSubstring("missing-one.txt"))
			Expect(err.Error()).To(ContainSubstring("missing-two.txt"))
		})

		It("logs each failure", func() {
			wordlist.LoadDictionary(logger, filepath.Join(inDir, "missing.txt"))

			Expect(logger.LogMessages()).To(ContainElement("wordlist.load-dictionary.failed"))
		})
	})
})
