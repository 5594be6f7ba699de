package jvalue_test

import (
	"math"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string // compact rendering
	}{
		{"null", "null", "null"},
		{"true", "true", "true"},
		{"false", "false", "false"},
		{"padded number", " \t\r\n42 \n", "42"},
		{"negative fraction", "-0.5", "-0.5"},
		{"exponent", "1e3", "1000"},
		{"overflow saturates", "1e400", "1.7976931348623157e+308"},
		{"leading zeros tolerated", "007", "7"},
		{"string", `"a"`, `"a"`},
		{"unicode escape", `"\u00e9"`, `"é"`},
		{"empty array", "[ ]", "[]"},
		{"empty object", "{ }", "{}"},
		{"nested arrays", "[1,[2,[3]]]", "[1,[2,[3]]]"},
		{"spaced object", `{ "a" : 1 , "b" : 2 }`, `{"a":1,"b":2}`},
		{"duplicate names kept", `{"a":1,"a":2}`, `{"a":1,"a":2}`},
		{"byte order mark", "\xEF\xBB\xBF[1]", "[1]"},
		{"nul terminates", "[1]\x00garbage", "[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := jvalue.ParseString(tt.input)
			require.NoError(t, err)
			out, err := jvalue.PrintUnformatted(n)
			require.NoError(t, err)
			require.Equal(t, tt.expected, string(out))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   error
		offset int
	}{
		{"empty", "", jvalue.ErrSyntax, 0},
		{"only whitespace", "   ", jvalue.ErrSyntax, 2},
		{"unknown character", "x", jvalue.ErrSyntax, 0},
		{"bad literal", "tru", jvalue.ErrSyntax, 0},
		{"lone minus", "-", jvalue.ErrSyntax, 0},
		{"unterminated string", `"abc`, jvalue.ErrSyntax, 3},
		{"lone high surrogate", `"\uD83D"`, jvalue.ErrSyntax, 1},
		{"raw control character", "[\"a\tb\"]", jvalue.ErrSyntax, 3},
		{"missing value", `{"a":}`, jvalue.ErrSyntax, 5},
		{"leading comma", "[,1]", jvalue.ErrSyntax, 1},
		{"number member name", "{1:2}", jvalue.ErrSyntax, 1},
		{"trailing comma in array", "[1,]", jvalue.ErrStructure, 3},
		{"trailing comma in object", `{"a":1,}`, jvalue.ErrStructure, 7},
		{"missing colon", `{"a" 1}`, jvalue.ErrStructure, 5},
		{"missing separator", "[1 2]", jvalue.ErrStructure, 3},
		{"unterminated array", "[1", jvalue.ErrStructure, 1},
		{"open bracket only", "[", jvalue.ErrStructure, 0},
		{"unterminated object", `{"a":1`, jvalue.ErrStructure, 5},
		{"dangling comma", "[1,", jvalue.ErrStructure, 2},
		{"trailing value", "1 2", jvalue.ErrStructure, 2},
		{"trailing garbage", "[1,2]x", jvalue.ErrStructure, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := jvalue.ParseString(tt.input)
			require.Nil(t, n, "no partial tree on failure")
			require.ErrorIs(t, err, tt.kind)

			var perr *jvalue.ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tt.offset, perr.Offset)
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := jvalue.ParseString("{\n  \"a\": tru\n}")
	var perr *jvalue.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 9, perr.Offset)
	require.Equal(t, 2, perr.Line)
	require.Equal(t, 8, perr.Column)
	require.Contains(t, err.Error(), "jvalue: syntax error at line 2, column 8")
}

func TestParse_DepthGuard(t *testing.T) {
	_, err := jvalue.ParseString(strings.Repeat("[", 1001))
	require.ErrorIs(t, err, jvalue.ErrDepthExceeded)
	var perr *jvalue.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 1000, perr.Offset)

	for _, depth := range []int{999, 1000} {
		n, err := jvalue.ParseString(strings.Repeat("[", depth) + strings.Repeat("]", depth))
		require.NoError(t, err)
		require.True(t, n.IsArray())
	}

	_, err = jvalue.ParseString(strings.Repeat(`{"a":`, 1001) + "1" + strings.Repeat("}", 1001))
	require.ErrorIs(t, err, jvalue.ErrDepthExceeded)
}

func TestParseWithOpts(t *testing.T) {
	t.Run("reports end offset", func(t *testing.T) {
		n, end, err := jvalue.ParseWithOpts([]byte(`{"a":1} tail`))
		require.NoError(t, err)
		require.Equal(t, 7, end)
		require.Equal(t, 1.0, n.Get("a").NumberValue())
	})

	t.Run("reports error offset", func(t *testing.T) {
		_, end, err := jvalue.ParseWithOpts([]byte("[1,]"))
		require.ErrorIs(t, err, jvalue.ErrStructure)
		require.Equal(t, 3, end)
	})

	t.Run("require terminated", func(t *testing.T) {
		_, end, err := jvalue.ParseWithOpts([]byte(`{"a":1} tail`), jvalue.RequireTerminated(true))
		require.ErrorIs(t, err, jvalue.ErrStructure)
		require.Equal(t, 8, end)

		_, end, err = jvalue.ParseWithOpts([]byte("[1] \n"), jvalue.RequireTerminated(true))
		require.NoError(t, err)
		require.Equal(t, 5, end)
	})

	t.Run("max depth", func(t *testing.T) {
		_, _, err := jvalue.ParseWithOpts([]byte("[[1]]"), jvalue.MaxDepth(2))
		require.NoError(t, err)
		_, _, err = jvalue.ParseWithOpts([]byte("[[[1]]]"), jvalue.MaxDepth(2))
		require.ErrorIs(t, err, jvalue.ErrDepthExceeded)
		_, _, err = jvalue.ParseWithOpts([]byte("1"), jvalue.MaxDepth(0))
		require.ErrorIs(t, err, jvalue.ErrInvalidArgument)
	})

	t.Run("byte order mark", func(t *testing.T) {
		_, _, err := jvalue.ParseWithOpts([]byte("\xEF\xBB\xBFnull"), jvalue.AllowBOM(false))
		require.ErrorIs(t, err, jvalue.ErrSyntax)
	})

	t.Run("strict numbers", func(t *testing.T) {
		_, _, err := jvalue.ParseWithOpts([]byte("007"), jvalue.StrictNumbers())
		require.ErrorIs(t, err, jvalue.ErrSyntax)
		n, _, err := jvalue.ParseWithOpts([]byte("-1.5e3"), jvalue.StrictNumbers())
		require.NoError(t, err)
		require.Equal(t, -1500.0, n.NumberValue())
	})
}

func TestParseWithLength(t *testing.T) {
	data := []byte("[1,2]garbage")
	n, err := jvalue.ParseWithLength(data, 5)
	require.NoError(t, err)
	require.Equal(t, 2, n.Len())

	_, err = jvalue.ParseWithLength(data, 3)
	require.ErrorIs(t, err, jvalue.ErrStructure)

	_, err = jvalue.ParseWithLength(data, len(data)+1)
	require.ErrorIs(t, err, jvalue.ErrInvalidArgument)
	_, err = jvalue.ParseWithLength(data, -1)
	require.ErrorIs(t, err, jvalue.ErrInvalidArgument)
}

func TestParse_SurrogatePair(t *testing.T) {
	n, err := jvalue.ParseString(`"\uD83D\uDE00"`)
	require.NoError(t, err)
	require.Equal(t, "😀", n.StringValue())
	require.Len(t, n.StringValue(), 4)

	_, err = jvalue.ParseString(`"\uD83D"`)
	require.ErrorIs(t, err, jvalue.ErrSyntax)
}

func TestParse_Number(t *testing.T) {
	n := jvalue.MustParse("-1e400")
	require.Equal(t, -math.MaxFloat64, n.NumberValue())
}

func TestMustParse(t *testing.T) {
	require.NotPanics(t, func() { jvalue.MustParse("[]") })
	require.Panics(t, func() { jvalue.MustParse("[") })
}
