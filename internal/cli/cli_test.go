// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/gausselim/internal/config"
)

const (
	workedText   = "3\n9 3 4 7\n4 3 4 8\n1 1 1 3\n"
	workedOutput = "X₀ = -.2\n\nX₁ = 4.0\n\nX₂ = -.8\n\n"
)

// run executes a fresh root command with the given stdin and arguments.
func run(stdin string, args ...string) (stdout, stderr string, err error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

var _ = Describe("gauss", func() {
	var dir string

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(body), 0o600)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "gauss-cli-")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	Context("prompt mode", func() {
		It("solves the file named on stdin", func() {
			path := write("worked.txt", workedText)

			out, _, err := run(path + "\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(promptText + workedOutput))
		})

		It("accepts a filename without a trailing newline", func() {
			path := write("worked.txt", workedText)

			out, _, err := run(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveSuffix(workedOutput))
		})

		It("reports contradictions", func() {
			path := write("bad.txt", "2\n1 1 3\n1 1 5\n")

			out, _, err := run(path + "\r\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(promptText + "\nNo Solution\n"))
		})

		It("reports dependent systems", func() {
			path := write("dep.yaml", "rows:\n  - [1, 1, 3]\n  - [2, 2, 6]\n")

			out, _, err := run(path + "\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(promptText + "\nInfinitely many Solutions\n"))
		})

		It("prints File not found for a missing file and succeeds", func() {
			path := filepath.Join(dir, "missing.txt")

			out, _, err := run(path + "\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(promptText + "\nFile not found: " + path + " (no such file or directory)\n"))
		})

		It("fails on a malformed file", func() {
			path := write("junk.txt", "two\n")

			_, stderr, err := run(path + "\n")
			Expect(err).To(HaveOccurred())
			Expect(stderr).To(ContainSubstring("bad equation count"))
		})

		It("fails when stdin is empty", func() {
			_, _, err := run("")
			Expect(err).To(MatchError(errNoFilename))
		})

		It("rejects positional arguments", func() {
			_, _, err := run("", "extra")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("solve", func() {
		It("prints a single result without a header", func() {
			path := write("worked.txt", workedText)

			out, _, err := run("", "solve", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(workedOutput))
		})

		It("prints results in argument order with headers", func() {
			a := write("a.txt", workedText)
			b := write("b.txt", "1\n2 8\n")
			c := write("c.txt", "2\n1 1 3\n1 1 5\n")

			out, _, err := run("", "solve", a, b, c, "--concurrency", "2")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(
				"== " + a + "\n" + workedOutput +
					"== " + b + "\n" + "X₀ = 4.0\n\n" +
					"== " + c + "\n" + "\nNo Solution\n"))
		})

		It("honours --decimals", func() {
			path := write("third.txt", "1\n3 1\n")

			out, _, err := run("", "solve", "--decimals", "3", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("X₀ = .333\n\n"))
		})

		It("honours --infinite-policy", func() {
			path := write("zero.txt", "2\n1 0 0\n0 1 2\n")

			out, _, err := run("", "solve", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("X₀ = .0\n\nX₁ = 2.0\n\n"))

			out, _, err = run("", "solve", "--infinite-policy", "exact-zero", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("\nInfinitely many Solutions\n"))
		})

		It("honours --epsilon", func() {
			path := write("near.txt", "2\n1 2 3\n2 4 6.0000000001\n")

			out, _, err := run("", "solve", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("\nInfinitely many Solutions\n"))

			out, _, err = run("", "solve", "--epsilon", "1e-12", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("\nNo Solution\n"))
		})

		It("reads settings from --config", func() {
			cfgPath := write("gauss.yaml", "decimals: 2\n")
			path := write("worked.txt", workedText)

			out, _, err := run("", "--config", cfgPath, "solve", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("X₀ = -.20\n\nX₁ = 4.00\n\nX₂ = -.80\n\n"))
		})

		It("rejects invalid settings", func() {
			path := write("worked.txt", workedText)

			_, _, err := run("", "solve", "--infinite-policy", "sometimes", path)
			Expect(err).To(MatchError(config.ErrInvalid))
		})

		It("names the file that failed to load", func() {
			path := filepath.Join(dir, "missing.txt")

			_, _, err := run("", "solve", path)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix(path + ":"))
		})

		It("rejects non-finite values", func() {
			path := write("nan.txt", "1\nNaN 1\n")

			_, _, err := run("", "solve", path)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("NaN or Inf"))
		})

		It("requires at least one file", func() {
			_, _, err := run("", "solve")
			Expect(err).To(HaveOccurred())
		})

		It("logs pivots to stderr with --debug", func() {
			path := write("worked.txt", workedText)

			out, stderr, err := run("", "solve", "--debug", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(workedOutput))
			Expect(stderr).To(ContainSubstring("pivot selected"))
			Expect(stderr).To(ContainSubstring("system solved"))
		})

		It("stays quiet on stderr without --debug", func() {
			path := write("worked.txt", workedText)

			_, stderr, err := run("", "solve", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(stderr).To(BeEmpty())
		})
	})

	Context("check", func() {
		It("reports a tiny residual for a unique solution", func() {
			path := write("worked.txt", workedText)

			out, _, err := run("", "check", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HavePrefix("kind: unique\nresidual: "))
		})

		It("reports free variables and the particular residual", func() {
			path := write("dep.txt", "2\n1 1 3\n2 2 6\n")

			out, _, err := run("", "check", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("kind: infinite\nfree: [1]\nresidual: 0\n"))
		})

		It("prints only the kind when there is no solution", func() {
			path := write("bad.txt", "2\n1 1 3\n1 1 5\n")

			out, _, err := run("", "check", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("kind: inconsistent\n"))
		})

		It("takes exactly one file", func() {
			_, _, err := run("", "check")
			Expect(err).To(HaveOccurred())
		})
	})
})
