package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		r       Ratio
		percent float64
		text    string
	}{
		{Ratio{11, 10}, 9.1, "before: 11bytes, after: 10bytes, compression 9.1%"},
		{Ratio{100, 25}, 75, "before: 100bytes, after: 25bytes, compression 75.0%"},
		{Ratio{1, 3}, -200, "before: 1bytes, after: 3bytes, compression -200.0%"},
		{Ratio{0, 3}, 0, "before: 0bytes, after: 3bytes, compression 0.0%"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.percent, tt.r.Percent())
		require.Equal(t, tt.text, tt.r.String())
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(in, make([]byte, 40), 0o644))
	require.NoError(t, os.WriteFile(out, make([]byte, 10), 0o644))

	r, err := Files(in, out)
	require.NoError(t, err)
	require.Equal(t, Ratio{Before: 40, After: 10}, r)

	_, err = Files(in, filepath.Join(dir, "missing"))
	require.Error(t, err)
}
