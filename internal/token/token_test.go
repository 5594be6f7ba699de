package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		input    byte
		expected Type
	}{
		{'t', TRUE},
		{'f', FALSE},
		{'n', NULL},
		{'"', STRING},
		{'-', NUMBER},
		{'0', NUMBER},
		{'9', NUMBER},
		{'{', LBRACE},
		{']', RBRACK},
		{':', COLON},
		{0, EOF},
		{'+', ILLEGAL},
		{'x', ILLEGAL},
		{'.', ILLEGAL},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			require.Equal(t, tt.expected, Lookup(tt.input))
		})
	}
}

func TestKeyword(t *testing.T) {
	lit, ok := Keyword(NULL)
	require.True(t, ok)
	require.Equal(t, "null", lit)

	_, ok = Keyword(NUMBER)
	require.False(t, ok)
}

func TestIsWhitespace(t *testing.T) {
	for _, ch := range []byte{' ', '\t', '\r', '\n'} {
		require.True(t, IsWhitespace(ch))
	}
	require.False(t, IsWhitespace('\v'))
	require.False(t, IsWhitespace(0))
}
