// SPDX-License-Identifier: MIT

package loader

// YAMLSystem is the on-disk YAML shape of a system.
type YAMLSystem struct {
	Equations *int        `yaml:"equations"`
	Rows      [][]float64 `yaml:"rows"`
}
