// SPDX-License-Identifier: MIT
// Package loader: sentinel error set.
// Every message is prefixed with "loader: ..."; call sites add the operation
// and position with %w so callers still match with errors.Is. A missing file
// surfaces the os error unchanged (errors.Is(err, fs.ErrNotExist)).

package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input holds no data at all.
	ErrEmptyInput = errors.New("loader: empty input")

	// ErrBadEquationCount is returned when the equation count is not an
	// integer in [1, MaxEquations] or disagrees with the rows given.
	ErrBadEquationCount = errors.New("loader: bad equation count")

	// ErrTooFewValues is returned when the input ends before n·(n+1) values.
	ErrTooFewValues = errors.New("loader: too few values")

	// ErrBadValue is returned when a token is not a number.
	ErrBadValue = errors.New("loader: bad value")

	// ErrShape is returned when YAML rows do not form an n×(n+1) matrix.
	ErrShape = errors.New("loader: rows do not form an n×(n+1) matrix")
)

const (
	opRead     = "Read"
	opReadYAML = "ReadYAML"
	opLoad     = "Load"
)

// loaderErrorf wraps err with an operation tag.
func loaderErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
