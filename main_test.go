package main_test

import (
	"io/ioutil"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
	"github.com/onsi/gomega/ghttp"
)

const (
	strongPassword = "Tr0ub4dor&3xyzAB"

	// SHA-1 of "password" is 5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8.
	passwordSuffix = "1E4C9B93F3F0682250B6CF8331B7EE68FD8"
)

var _ = Describe("Main", func() {
	var (
		cmdArgs  []string
		stdin    string
		binary   string
		session  *gexec.Session
		server   *ghttp.Server
		workDir  string
		rangeHit = regexp.MustCompile(`^/range/[0-9A-F]{5}$`)
	)

	BeforeEach(func() {
		stdin = ""
		cmdArgs = []string{}
		binary = cliPath

		server = ghttp.NewServer()
		server.RouteToHandler("GET", rangeHit, ghttp.RespondWith(http.StatusOK,
			"0018A45C4D1DEF81644B54AB7F969B88D65:0\r\n"+
				passwordSuffix+":3730471\r\n"+
				"011053FD0102E94D6AE2F8B83D76FAF94F6:1\r\n",
		))

		var err error
		workDir, err = ioutil.TempDir("", "pass-alert-main")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
		Expect(os.RemoveAll(workDir)).To(Succeed())
	})

	run := func(subcommand string) {
		finalArgs := append([]string{subcommand}, cmdArgs...)
		cmd := exec.Command(binary, finalArgs...)
		cmd.Env = append(os.Environ(), "PASS_ALERT_RANGE_URL="+server.URL())
		cmd.Stdin = strings.NewReader(stdin)

		var err error
		session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
	}

	writeFile := func(name, content string) string {
		path := filepath.Join(workDir, name)
		Expect(ioutil.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	Describe("CheckCommand", func() {
		JustBeforeEach(func() {
			run("check")
		})

		Context("when given a strong password offline", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--offline", strongPassword}
			})

			It("shows the top strength label", func() {
				Eventually(session.Out).Should(gbytes.Say("Unbreakable"))
			})

			It("does not pretend the password was looked up", func() {
				Eventually(session.Out).Should(gbytes.Say("not checked"))
			})

			It("exits with status 0", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(server.ReceivedRequests()).To(BeEmpty())
			})
		})

		Context("when the password is read from STDIN", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--offline", "--stdin"}
				stdin = strongPassword + "\n"
			})

			It("scores the first line", func() {
				Eventually(session.Out).Should(gbytes.Say("Unbreakable"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when the password is short", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--offline", "abc"}
			})

			It("suggests a longer one", func() {
				Eventually(session.Out).Should(gbytes.Say("Use at least 8 characters"))
				Eventually(session).Should(gexec.Exit(0))
			})

			Context("and a minimum score is required", func() {
				BeforeEach(func() {
					cmdArgs = append([]string{"--min-score", "4"}, cmdArgs...)
				})

				It("exits with status 3", func() {
					Eventually(session).Should(gexec.Exit(3))
					Expect(session.Out).To(gbytes.Say("Yikes"))
				})
			})
		})

		Context("when a minimum entropy is required", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--offline", "--min-entropy", "500", strongPassword}
			})

			It("explains the shortfall and exits with status 3", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[WEAK\]`))
				Eventually(session).Should(gexec.Exit(3))
			})
		})

		Context("when the password appears in a breach", func() {
			BeforeEach(func() {
				cmdArgs = []string{"password"}
			})

			It("asks the range endpoint about the hash prefix only", func() {
				Eventually(session).Should(gexec.Exit(3))

				requests := server.ReceivedRequests()
				Expect(requests).To(HaveLen(1))
				Expect(requests[0].URL.Path).To(Equal("/range/5BAA6"))
				Expect(requests[0].Header.Get("Add-Padding")).To(Equal("true"))
			})

			It("reports the breach", func() {
				Eventually(session.Out).Should(gbytes.Say("Very Weak"))
				Eventually(session.Out).Should(gbytes.Say("breached"))
				Eventually(session.Out).Should(gbytes.Say("appears in a breach"))
			})

			It("exits with status 3", func() {
				Eventually(session).Should(gexec.Exit(3))
			})
		})

		Context("when the password is not in the breach corpus", func() {
			BeforeEach(func() {
				cmdArgs = []string{strongPassword}
			})

			It("reports it as clean", func() {
				Eventually(session.Out).Should(gbytes.Say("clean"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when the range endpoint cannot answer", func() {
			BeforeEach(func() {
				server.RouteToHandler("GET", rangeHit, ghttp.RespondWith(http.StatusNotFound, ""))
				cmdArgs = []string{strongPassword}
			})

			It("says the status is unknown instead of clean", func() {
				Eventually(session.Out).Should(gbytes.Say("unknown"))
				Eventually(session.Out).Should(gbytes.Say("has not been checked"))
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).NotTo(gbytes.Say("clean"))
			})
		})

		Context("when given a dictionary", func() {
			BeforeEach(func() {
				dictionary := writeFile("words.txt", "xyzab\n")
				cmdArgs = []string{"--offline", "-d", dictionary, strongPassword}
			})

			It("flags words from it", func() {
				Eventually(session.Out).Should(gbytes.Say("Avoid common words"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when the dictionary does not exist", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--offline", "-d", "/does/not/exist", strongPassword}
			})

			It("exits with status 1", func() {
				Eventually(session).Should(gexec.Exit(1))
				Expect(session.Err).To(gbytes.Say("/does/not/exist"))
			})
		})

		Context("when given personal info", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--offline", "-p", "Margaret", "margaret-rules-2024"}
			})

			It("flags it", func() {
				Eventually(session.Out).Should(gbytes.Say("Don't use personal info"))
			})
		})

		Context("when asked for details", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--offline", "--detailed", strongPassword}
			})

			It("shows the pattern-aware estimate", func() {
				Eventually(session.Out).Should(gbytes.Say("Pattern-aware"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when the executable is old", func() {
			BeforeEach(func() {
				binary = oldCliPath
				cmdArgs = []string{"--offline", strongPassword}
			})

			It("suggests updating", func() {
				Eventually(session.Err).Should(gbytes.Say("Executable is old"))
			})
		})

		Context("when the executable is new", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--offline", strongPassword}
			})

			It("does not warn", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Err).NotTo(gbytes.Say("Executable is old"))
			})
		})
	})

	Describe("AuditCommand", func() {
		JustBeforeEach(func() {
			run("audit")
		})

		Context("when given a file", func() {
			var path string

			BeforeEach(func() {
				path = writeFile("passwords.txt", "abc\n"+strongPassword+"\nqwerty\n")
				cmdArgs = []string{"--offline", "-f", path}
			})

			It("reports each weak password by location", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[WEAK\]\S* ` + regexp.QuoteMeta(path) + `:1 `))
				Eventually(session.Out).Should(gbytes.Say(`\[WEAK\]\S* ` + regexp.QuoteMeta(path) + `:3 `))
			})

			It("summarises the run", func() {
				Eventually(session.Out).Should(gbytes.Say("Audited 3 passwords: 2 to replace"))
			})

			It("does not print the passwords", func() {
				Eventually(session).Should(gexec.Exit(3))
				Expect(session.Out.Contents()).NotTo(ContainSubstring("qwerty"))
			})

			It("exits with status 3", func() {
				Eventually(session).Should(gexec.Exit(3))
			})

			Context("and passwords may be shown", func() {
				BeforeEach(func() {
					cmdArgs = append(cmdArgs, "--show-passwords")
				})

				It("shows them", func() {
					Eventually(session.Out).Should(gbytes.Say(`\[qwerty\]`))
				})
			})
		})

		Context("when a password in the file has been breached", func() {
			BeforeEach(func() {
				path := writeFile("passwords.txt", strongPassword+"\npassword\n")
				cmdArgs = []string{"-f", path}
			})

			It("marks it as pwned", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[PWNED\]\S* .*:2 `))
				Eventually(session).Should(gexec.Exit(3))
			})
		})

		Context("when every password is fine", func() {
			BeforeEach(func() {
				path := writeFile("passwords.txt", strongPassword+"\n")
				cmdArgs = []string{"--offline", "-f", path}
			})

			It("exits with status 0", func() {
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when given content on stdin", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--offline"}
				stdin = "abc\n"
			})

			It("audits stdin", func() {
				Eventually(session.Out).Should(gbytes.Say(`\[WEAK\]\S* STDIN:1`))
				Eventually(session).Should(gexec.Exit(3))
			})
		})
	})

	Describe("InteractiveCommand", func() {
		BeforeEach(func() {
			cmdArgs = []string{"--offline"}
			stdin = "abc\n" + strongPassword + "\n"
		})

		JustBeforeEach(func() {
			run("interactive")
		})

		It("shows the result for the last password entered", func() {
			Eventually(session.Out).Should(gbytes.Say("Unbreakable"))
			Eventually(session).Should(gexec.Exit(0))
		})
	})

	Describe("GenerateCommand", func() {
		JustBeforeEach(func() {
			run("generate")
		})

		Context("when given a wordlist", func() {
			BeforeEach(func() {
				path := writeFile("eff.txt", "11111\tabacus\n11112\tabdomen\n")
				cmdArgs = []string{"-w", path, "--words", "4", "--separator", "."}
			})

			It("prints a passphrase drawn from it", func() {
				Eventually(session.Out).Should(gbytes.Say(`(abacus|abdomen)(\.(abacus|abdomen)){3}\n`))
				Eventually(session).Should(gexec.Exit(0))
			})

			It("scores the passphrase", func() {
				Eventually(session.Out).Should(gbytes.Say("Strength:"))
			})

			Context("and scoring is not wanted", func() {
				BeforeEach(func() {
					cmdArgs = append(cmdArgs, "--no-score")
				})

				It("prints only the passphrase", func() {
					Eventually(session).Should(gexec.Exit(0))
					Expect(session.Out.Contents()).NotTo(ContainSubstring("Strength:"))
				})
			})
		})

		Context("when the wordlist is empty", func() {
			BeforeEach(func() {
				path := writeFile("empty.txt", "\n")
				cmdArgs = []string{"-w", path}
			})

			It("exits with status 1", func() {
				Eventually(session).Should(gexec.Exit(1))
				Expect(session.Err).To(gbytes.Say("wordlist is empty"))
			})
		})

		Context("when no wordlist is given", func() {
			It("exits with status 1", func() {
				Eventually(session).Should(gexec.Exit(1))
			})
		})
	})

	Describe("VersionCommand", func() {
		JustBeforeEach(func() {
			run("version")
		})

		It("prints the version", func() {
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).Should(gbytes.Say("dev"))
		})
	})
})
