// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/katalvlaran/gausselim/format"
	"github.com/katalvlaran/gausselim/gauss"
	"github.com/katalvlaran/gausselim/loader"
	"github.com/spf13/cobra"
)

const promptText = "Enter the filename: "

var errNoFilename = errors.New("no filename given")

// runPrompt asks for one filename, then solves and prints that file.
// A missing file is reported on stdout and is not an error.
func (a *app) runPrompt(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	if _, err := io.WriteString(out, promptText); err != nil {
		return err
	}

	name, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if name == "" {
		return errNoFilename
	}
	name = strings.TrimRight(name, "\r\n")

	sys, err := loader.Load(name)
	if err != nil {
		var pe *fs.PathError
		if errors.Is(err, fs.ErrNotExist) && errors.As(err, &pe) {
			_, err = fmt.Fprintf(out, "\nFile not found: %s (%v)\n", pe.Path, pe.Err)
		}
		return err
	}
	a.log.V(1).Info("system loaded", "file", name, "equations", sys.N)

	res, err := gauss.Solve(sys, a.solverOptions()...)
	if err != nil {
		return err
	}

	return format.Write(out, res, a.cfg.FormatOptions()...)
}
