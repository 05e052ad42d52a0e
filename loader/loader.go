// SPDX-License-Identifier: MIT

package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gausselim/gauss"
)

// Load reads the system stored at path, choosing the format by extension.
// A missing file returns the *fs.PathError from os.Open, wrapped.
func Load(path string) (gauss.System, error) {
	f, err := os.Open(path)
	if err != nil {
		return gauss.System{}, loaderErrorf(opLoad, err)
	}
	defer f.Close()

	var sys gauss.System
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		sys, err = ReadYAML(f)
	default:
		sys, err = Read(f)
	}
	if err != nil {
		return gauss.System{}, loaderErrorf(opLoad, err)
	}

	return sys, nil
}
