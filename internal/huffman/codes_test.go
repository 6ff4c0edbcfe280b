package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCodesAbracadabra(t *testing.T) {
	tree, err := BuildTree(Count([]byte("abracadabra")))
	require.NoError(t, err)
	codes := BuildCodes(tree)

	want := map[Symbol]string{
		'a': "0",
		'c': "100",
		'd': "101",
		'b': "110",
		'r': "111",
	}
	require.Equal(t, len(want), codes.Len())
	for s, code := range want {
		got, ok := codes.Code(s)
		require.True(t, ok, "symbol %q", s)
		require.Equal(t, code, got.String(), "symbol %q", s)
	}

	_, ok := codes.Code('z')
	require.False(t, ok)
}

func TestBuildCodesSingleSymbol(t *testing.T) {
	tree, err := BuildTree(Count([]byte("zzz")))
	require.NoError(t, err)
	codes := BuildCodes(tree)

	code, ok := codes.Code('z')
	require.True(t, ok)
	require.Zero(t, code.Len())
	require.Equal(t, []Symbol{'z'}, codes.Symbols())
}

func TestCodesArePrefixFree(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"two symbols", []byte("ab")},
		{"text", []byte("the quick brown fox jumps over the lazy dog")},
		{"skewed", append(make([]byte, 1000), 1, 2, 3, 4, 5, 6, 7)},
		{"random small alphabet", randomInput(1, 500, 8)},
		{"random full alphabet", randomInput(2, 5000, 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := BuildTree(Count(tt.input))
			require.NoError(t, err)
			codes := BuildCodes(tree)

			symbols := codes.Symbols()
			strs := make([]string, len(symbols))
			for i, s := range symbols {
				code, _ := codes.Code(s)
				require.NotZero(t, code.Len())
				strs[i] = code.String()
			}
			for i := range strs {
				for j := range strs {
					if i == j {
						continue
					}
					require.False(t, strings.HasPrefix(strs[j], strs[i]),
						"code %s of %q prefixes %s of %q", strs[i], symbols[i], strs[j], symbols[j])
				}
			}
		})
	}
}

func TestPrintCodes(t *testing.T) {
	tree, err := BuildTree(Count([]byte("aab")))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, BuildCodes(tree).PrintCodes(&sb))
	require.Equal(t, "'a' 1\n'b' 0\n", sb.String())
}
