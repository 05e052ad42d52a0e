// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/gausselim/gauss"
	"gopkg.in/yaml.v3"
)

// ReadYAML parses the YAML format from r. Unknown keys are rejected.
//
// Errors:
//   - ErrEmptyInput for an empty document or one without rows.
//   - ErrBadValue when the document does not decode (syntax, types).
//   - ErrBadEquationCount when equations disagrees with len(rows).
//   - ErrShape when a row does not hold len(rows)+1 values.
func ReadYAML(r io.Reader) (gauss.System, error) {
	var dto YAMLSystem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil {
		if errors.Is(err, io.EOF) {
			return gauss.System{}, loaderErrorf(opReadYAML, ErrEmptyInput)
		}
		return gauss.System{}, loaderErrorf(opReadYAML, fmt.Errorf("%w: %w", ErrBadValue, err))
	}

	return MapYAML(dto)
}

// MapYAML converts a decoded document into a System.
func MapYAML(dto YAMLSystem) (gauss.System, error) {
	if len(dto.Rows) == 0 {
		return gauss.System{}, loaderErrorf(opReadYAML, ErrEmptyInput)
	}
	if dto.Equations != nil && *dto.Equations != len(dto.Rows) {
		return gauss.System{}, loaderErrorf(opReadYAML,
			fmt.Errorf("equations=%d but %d rows: %w", *dto.Equations, len(dto.Rows), ErrBadEquationCount))
	}
	if len(dto.Rows) > MaxEquations {
		return gauss.System{}, loaderErrorf(opReadYAML, fmt.Errorf("%d rows: %w", len(dto.Rows), ErrBadEquationCount))
	}
	sys, err := gauss.NewSystem(dto.Rows)
	if err != nil {
		return gauss.System{}, loaderErrorf(opReadYAML, fmt.Errorf("%w: %w", ErrShape, err))
	}

	return sys, nil
}
