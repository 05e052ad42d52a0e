// SPDX-License-Identifier: MIT

// Package format renders solver results in the classic console layout:
//
//	X₀ = -.2
//
//	X₁ = 4.0
//
// Infinite and Inconsistent results print a single label line instead.
package format

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/gausselim/gauss"
)

// DefaultDecimals is the number of fraction digits Decimal renders by default.
const DefaultDecimals = 1

const (
	labelInfinite     = "\nInfinitely many Solutions\n"
	labelInconsistent = "\nNo Solution\n"
	variablePrefix    = "X"

	subscriptZero = '₀'

	panicDecimalsInvalid = "format: WithDecimals: d must be in [0, 15]"
	maxDecimals          = 15
)

// Option configures Write.
type Option func(*options)

type options struct {
	decimals int
}

// WithDecimals sets the number of fraction digits. Panics outside [0, 15].
func WithDecimals(d int) Option {
	if d < 0 || d > maxDecimals {
		panic(panicDecimalsInvalid)
	}

	return func(o *options) { o.decimals = d }
}

// Subscript renders the decimal digits of i as Unicode subscript digits.
// Negative i keeps a plain minus sign.
func Subscript(i int) string {
	digits := strconv.Itoa(i)
	var b strings.Builder
	b.Grow(len(digits) * 3)
	for _, ch := range digits {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(subscriptZero + (ch - '0'))
			continue
		}
		b.WriteRune(ch)
	}

	return b.String()
}

// Decimal formats x with exactly decimals fraction digits and no leading
// zero before the point: 4 → "4.0", -0.2 → "-.2", 0.04 → ".0".
// With decimals == 0 there is no point at all and zero renders as "0".
// Infinities render as "∞" and "-∞", NaN as "NaN".
func Decimal(x float64, decimals int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	}
	s := strconv.FormatFloat(x, 'f', decimals, 64)
	if decimals == 0 {
		return s
	}
	if rest, ok := strings.CutPrefix(s, "-0."); ok {
		return "-." + rest
	}
	if rest, ok := strings.CutPrefix(s, "0."); ok {
		return "." + rest
	}

	return s
}

// Write renders res to w.
//
//	Unique:       "X<i> = <Decimal(x[i])>" then an empty line, per variable
//	Infinite:     "\nInfinitely many Solutions\n"
//	Inconsistent: "\nNo Solution\n"
func Write(w io.Writer, res gauss.Result, opts ...Option) error {
	o := options{decimals: DefaultDecimals}
	for _, set := range opts {
		set(&o)
	}

	switch res.Kind {
	case gauss.Inconsistent:
		_, err := io.WriteString(w, labelInconsistent)
		return err
	case gauss.Infinite:
		_, err := io.WriteString(w, labelInfinite)
		return err
	case gauss.Unique:
	default:
		return fmt.Errorf("format: Write: unknown result kind %v", res.Kind)
	}

	var b strings.Builder
	for i, v := range res.X {
		fmt.Fprintf(&b, "%s%s = %s\n\n", variablePrefix, Subscript(i), Decimal(v, o.decimals))
	}
	_, err := io.WriteString(w, b.String())

	return err
}
