// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gausselim/gauss"
)

// MaxEquations bounds n so that n·(n+1) stays a sane allocation.
const MaxEquations = 1 << 14

// preallocCap caps the initial value buffer for large declared n.
const preallocCap = 1 << 12

// Read parses the text format from r.
//
// Blank lines before the count are skipped. Tokens after the first
// n·(n+1) values are ignored.
//
// Errors:
//   - ErrEmptyInput when r holds only whitespace.
//   - ErrBadEquationCount when the first token is not an integer in
//     [1, MaxEquations].
//   - ErrBadValue (with the 1-based value index) for a non-numeric token.
//   - ErrTooFewValues when r ends early.
func Read(r io.Reader) (gauss.System, error) {
	br := bufio.NewReader(r)

	n, err := readCount(br)
	if err != nil {
		return gauss.System{}, loaderErrorf(opRead, err)
	}

	want := n * (n + 1)
	vals := make([]float64, 0, min(want, preallocCap))
	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	var v float64
	for len(vals) < want && sc.Scan() {
		tok := sc.Text()
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return gauss.System{}, loaderErrorf(opRead, fmt.Errorf("value %d %q: %w", len(vals)+1, tok, ErrBadValue))
		}
		vals = append(vals, v)
	}
	if err = sc.Err(); err != nil {
		return gauss.System{}, loaderErrorf(opRead, err)
	}
	if len(vals) < want {
		return gauss.System{}, loaderErrorf(opRead, fmt.Errorf("want %d values for n=%d, got %d: %w", want, n, len(vals), ErrTooFewValues))
	}

	return gauss.System{N: n, Values: vals}, nil
}

// readCount consumes lines up to and including the first non-blank one and
// parses its first field as the equation count.
func readCount(br *bufio.Reader) (int, error) {
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			n, perr := strconv.Atoi(fields[0])
			if perr != nil || n < 1 || n > MaxEquations {
				return 0, fmt.Errorf("%q: %w", fields[0], ErrBadEquationCount)
			}

			return n, nil
		}
		if err != nil {
			return 0, ErrEmptyInput
		}
	}
}
