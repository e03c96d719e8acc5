package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taxel/everybody-codes-2024/harness"
)

func writeInput(t *testing.T, dir string, day, part int, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, harness.InputPath(day, part)), []byte(body), 0o600))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(registry())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var elapsed = regexp.MustCompile(` - elapsed: \S+`)

func TestRoot_SolvesSelectedDays(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 8, 1, "13\n")
	writeInput(t, dir, 10, 3, "whatever")

	out, err := run(t, "--input-dir", dir, "8", "10")
	require.NoError(t, err)

	got := elapsed.ReplaceAllString(out, "")
	assert.Equal(t, strings.Join([]string{
		"Day 8 Part 1: 21",
		"Day 8 Part 2: No input",
		"Day 8 Part 3: No input",
		"Day 10 Part 1: No input",
		"Day 10 Part 2: No input",
		"Day 10 Part 3: No solution",
	}, "\n")+"\n", got)
}

func TestRoot_FailedPartExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 7, 2, "A:+,=\n\nS+\n  ")

	out, err := run(t, "--input-dir", dir, "--part", "2", "7")
	assert.ErrorIs(t, err, harness.ErrFailed)
	assert.Contains(t, out, "Day 7 Part 2: Failed: ")
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 4, 3, "2\n4\n5\n6\n8\n")
	cfgPath := filepath.Join(dir, "ec.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: "+dir+"\ndays: [4]\nparts: [3]\n"), 0o600))

	out, err := run(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Day 4 Part 3: 8\n", elapsed.ReplaceAllString(out, ""))
}

func TestRoot_BadArgs(t *testing.T) {
	_, err := run(t, "--input-dir", t.TempDir(), "six")
	assert.ErrorIs(t, err, harness.ErrUnknownDay)

	_, err = run(t, "--input-dir", t.TempDir(), "6")
	assert.ErrorIs(t, err, harness.ErrUnknownDay)
}
