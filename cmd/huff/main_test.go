package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atiedebee/huff/internal/huffman"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, bytes.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-d", "-o", "out", "-f", "-p", "-r", "-v", "-m", "m.prom", "in"})
	require.NoError(t, err)
	require.Equal(t, options{
		mode:        DecompressMode,
		finName:     "in",
		foutName:    "out",
		metricsName: "m.prom",
		doPrintTree: true,
		framed:      true,
		ratio:       true,
		verbose:     true,
	}, opts)
	require.Equal(t, map[string]any{
		"codec.framed": true,
		"report.ratio": true,
		"logger.level": "debug",
		"metrics.file": "m.prom",
	}, opts.overrides())
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-o"},
		{"-C"},
		{"-x"},
		{"a", "b"},
	} {
		_, err := parseArgs(args)
		require.ErrorIs(t, err, errUsage, "args %v", args)
	}
}

func TestCompressDecompressFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "compress-me")
	packed := filepath.Join(dir, "compressed")
	out := filepath.Join(dir, "decompressed")
	text := []byte(strings.Repeat("abracadabra ", 50))
	require.NoError(t, os.WriteFile(in, text, 0o644))

	_, stderr, err := runArgs(t, nil, "-c", "-r", "-o", packed, in)
	require.NoError(t, err)
	require.Contains(t, stderr, "before: 600bytes")

	_, _, err = runArgs(t, nil, "-d", "-o", out, packed)
	require.NoError(t, err)

	back, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, text, back)
}

func TestStdinStdout(t *testing.T) {
	stdout, _, err := runArgs(t, []byte("abracadabra"))
	require.NoError(t, err)

	want, err := huffman.Compress([]byte("abracadabra"))
	require.NoError(t, err)
	require.Equal(t, string(want), stdout)

	plain, _, err := runArgs(t, []byte(stdout), "-d")
	require.NoError(t, err)
	require.Equal(t, "abracadabra", plain)
}

func TestFramed(t *testing.T) {
	stdout, _, err := runArgs(t, []byte("hello, hello"), "-f")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "HUF1"))

	plain, _, err := runArgs(t, []byte(stdout), "-d", "-f")
	require.NoError(t, err)
	require.Equal(t, "hello, hello", plain)

	_, _, err = runArgs(t, []byte(stdout[:len(stdout)-1]), "-d", "-f")
	require.ErrorIs(t, err, huffman.ErrCorruptStream)
}

func TestFramedFromConfigFile(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "huff.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("codec:\n  framed: true\n"), 0o644))

	stdout, _, err := runArgs(t, []byte("abc"), "-C", conf)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "HUF1"))
}

func TestPrintTree(t *testing.T) {
	_, stderr, err := runArgs(t, []byte("aab"), "-p")
	require.NoError(t, err)
	require.Contains(t, stderr, "    /--'b'\n---<\n    \\--'a'\n")

	packed, err := huffman.Compress([]byte("aab"))
	require.NoError(t, err)
	_, stderr, err = runArgs(t, packed, "-d", "-p")
	require.NoError(t, err)
	require.Contains(t, stderr, "---<\n")
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huff.prom")
	_, _, err := runArgs(t, []byte("abracadabra"), "-m", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `huff_operations_total{op="compress"} 1`)
}

func TestEmptyInputWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "compressed")
	_, _, err := runArgs(t, nil, "-o", out)
	require.ErrorIs(t, err, huffman.ErrEmptyInput)

	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
}

func TestMissingInputFile(t *testing.T) {
	_, _, err := runArgs(t, nil, filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
