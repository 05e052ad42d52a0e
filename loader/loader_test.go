// SPDX-License-Identifier: MIT

package loader_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gausselim/gauss"
	"github.com/katalvlaran/gausselim/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workedValues = []float64{9, 3, 4, 7, 4, 3, 4, 8, 1, 1, 1, 3}

func TestRead_Layouts(t *testing.T) {
	cases := map[string]string{
		"one row per line": "3\n9 3 4 7\n4 3 4 8\n1 1 1 3\n",
		"single line":      "3\n9 3 4 7 4 3 4 8 1 1 1 3",
		"ragged breaks":    "3 ignored trailing words\n9 3\n4 7 4\n3 4 8 1 1\n1 3\n",
		"leading blanks":   "\n  \n3\n9\t3 4 7\r\n4 3 4 8\r\n1 1 1 3 99 100\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			sys, err := loader.Read(strings.NewReader(in))
			require.NoError(t, err)
			assert.Equal(t, 3, sys.N)
			assert.Equal(t, workedValues, sys.Values)
		})
	}
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", loader.ErrEmptyInput},
		{"whitespace", " \n\t\n", loader.ErrEmptyInput},
		{"count not a number", "x\n1 2\n", loader.ErrBadEquationCount},
		{"count zero", "0\n", loader.ErrBadEquationCount},
		{"count negative", "-2\n1 2 3\n", loader.ErrBadEquationCount},
		{"count fractional", "1.5\n1 2\n", loader.ErrBadEquationCount},
		{"count huge", "99999999\n", loader.ErrBadEquationCount},
		{"short", "2\n1 2 3\n4 5\n", loader.ErrTooFewValues},
		{"no values", "1", loader.ErrTooFewValues},
		{"bad value", "1\n2 two\n", loader.ErrBadValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRead_BadValuePosition(t *testing.T) {
	_, err := loader.Read(strings.NewReader("1\n2 two\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value 2 "two"`)
}

// TestRead_NonFinitePassesThrough: the solver, not the loader, rejects NaN.
func TestRead_NonFinitePassesThrough(t *testing.T) {
	sys, err := loader.Read(strings.NewReader("1\nNaN 1\n"))
	require.NoError(t, err)

	_, err = gauss.NewSolver(sys.N, sys.Values)
	assert.ErrorIs(t, err, gauss.ErrNonFinite)
}

func TestReadYAML(t *testing.T) {
	sys, err := loader.ReadYAML(strings.NewReader("equations: 1\nrows:\n  - [2, 8]\n"))
	require.NoError(t, err)
	assert.Equal(t, gauss.System{N: 1, Values: []float64{2, 8}}, sys)
}

func TestReadYAML_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", loader.ErrEmptyInput},
		{"no rows", "equations: 2\n", loader.ErrEmptyInput},
		{"count mismatch", "equations: 2\nrows:\n  - [2, 8]\n", loader.ErrBadEquationCount},
		{"ragged", "rows:\n  - [1, 2, 3]\n  - [1, 2]\n", loader.ErrShape},
		{"not a number", "rows:\n  - [1, x]\n", loader.ErrBadValue},
		{"unknown key", "rows:\n  - [1, 2]\nsolver: fast\n", loader.ErrBadValue},
		{"syntax", "rows: [[1, 2]\n", loader.ErrBadValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.ReadYAML(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := loader.ReadYAML(strings.NewReader("rows:\n  - [1, 2, 3]\n  - [1, 2]\n"))
	assert.ErrorIs(t, err, gauss.ErrShape, "the gauss cause stays reachable")
}

func TestLoad_Testdata(t *testing.T) {
	cases := []struct {
		file string
		kind gauss.Kind
	}{
		{"worked.txt", gauss.Unique},
		{"worked.yaml", gauss.Unique},
		{"inconsistent.txt", gauss.Inconsistent},
		{"infinite.yml", gauss.Infinite},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			sys, err := loader.Load(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			res, err := gauss.Solve(sys)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, res.Kind)
		})
	}

	txt, err := loader.Load(filepath.Join("testdata", "worked.txt"))
	require.NoError(t, err)
	yml, err := loader.Load(filepath.Join("testdata", "worked.yaml"))
	require.NoError(t, err)
	assert.Equal(t, txt, yml)
}

func TestLoad_Errors(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = loader.Load(filepath.Join("testdata", "ragged.yaml"))
	assert.ErrorIs(t, err, loader.ErrShape)
	assert.Contains(t, err.Error(), "Load: ReadYAML")
}

func TestLoad_ExtensionCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SYSTEM.YML")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - [2, 8]\n"), 0o600))

	sys, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 8}, sys.Values)
}
