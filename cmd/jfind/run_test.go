// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jarena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `{"a": {"b": 1}, "c": [10, 20, {"d": 30.5}], "s": "x\"y", "n": null}`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestRunStdin(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"a.b", "1"},
		{"c.#.d", "30.5"},
		{"c.#.", "10"},
		{"s", `"x\"y"`},
		{"n", "null"},
		{"a", "object (1 members)"},
		{"c", "array (3 elements)"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			var out bytes.Buffer
			cfg := config{Path: tc.path, Tokens: 16}
			require.NoError(t, run(cfg, strings.NewReader(testDoc), &out))
			assert.Equal(t, tc.want+"\n", out.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		err := run(config{Path: "x", Tokens: 16}, strings.NewReader(testDoc), new(bytes.Buffer))
		assert.ErrorIs(t, err, errNotFound)
	})
	t.Run("InvalidPath", func(t *testing.T) {
		err := run(config{Path: "c.#", Tokens: 16}, strings.NewReader(testDoc), new(bytes.Buffer))
		assert.ErrorContains(t, err, "invalid path")
	})
	t.Run("BadTokens", func(t *testing.T) {
		err := run(config{Path: "a", Tokens: -1}, strings.NewReader(testDoc), new(bytes.Buffer))
		assert.Error(t, err)
	})
	t.Run("Malformed", func(t *testing.T) {
		err := run(config{Path: "a", Tokens: 16}, strings.NewReader(`{"a":1,}`), new(bytes.Buffer))
		assert.ErrorIs(t, err, jarena.ErrMalformed)
		var serr *jarena.SyntaxError
		assert.True(t, errors.As(err, &serr))
	})
	t.Run("OutOfTokens", func(t *testing.T) {
		err := run(config{Path: "a", Tokens: 2}, strings.NewReader(testDoc), new(bytes.Buffer))
		assert.ErrorIs(t, err, jarena.ErrOutOfTokens)
		assert.Equal(t, jarena.OutOfTokens, jarena.StatusOf(err))
	})
}

func TestRunJWCC(t *testing.T) {
	const input = `{
  // comment
  "a": [1, 2, 3,],
}`
	var out bytes.Buffer
	require.Error(t, run(config{Path: "a", Tokens: 16}, strings.NewReader(input), &out))

	require.NoError(t, run(config{Path: "a", Tokens: 16, JWCC: true}, strings.NewReader(input), &out))
	assert.Equal(t, "array (3 elements)\n", out.String())
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFile(t, dir, "one.json", `{"id": 1}`)
	f2 := writeFile(t, dir, "two.json", `{"id": "two"}`)
	f3 := writeFile(t, dir, "three.json", `[{"id": 3}]`)

	t.Run("Single", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(config{Path: "id", Tokens: 8, Files: []string{f1}}, nil, &out))
		assert.Equal(t, "1\n", out.String())
	})

	t.Run("Several", func(t *testing.T) {
		var out bytes.Buffer
		cfg := config{Path: "id", Tokens: 8, Workers: 2, Files: []string{f1, f2}}
		require.NoError(t, run(cfg, nil, &out))
		assert.Equal(t, f1+": 1\n"+f2+": \"two\"\n", out.String())
	})

	t.Run("PartialFailure", func(t *testing.T) {
		var out bytes.Buffer
		missing := filepath.Join(dir, "missing.json")
		cfg := config{Path: "id", Tokens: 8, Files: []string{f1, f3, missing}}
		err := run(cfg, nil, &out)
		assert.ErrorContains(t, err, "2 of 3 documents failed")
		assert.Equal(t, f1+": 1\n", out.String())
	})
}
