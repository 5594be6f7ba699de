package jvalue_test

import (
	"testing"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/stretchr/testify/require"
)

func TestMinify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace", `{ "a" : [ 1 , 2 ] }`, `{"a":[1,2]}`},
		{"line breaks and tabs", "{\n\t\"a b\": \"c d\"\r\n}", `{"a b":"c d"}`},
		{"escaped quote", `{"a": "x\" y"}`, `{"a":"x\" y"}`},
		{"escaped backslash", `["a\\", "b"]`, `["a\\","b"]`},
		{"line comment", "[1, // one\n 2]", "[1,2]"},
		{"line comment at end", "[1] // done", "[1]"},
		{"block comment", "[1, /* two\n */ 2]", "[1,2]"},
		{"comment markers in string", `{"url": "http://x/*y*/"}`, `{"url":"http://x/*y*/"}`},
		{"unterminated block comment", "[1 /* open", "[1"},
		{"unterminated string", `["a b`, `["a b`},
		{"lone slash kept", "1 / 2", "1/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte(tt.input)
			out := jvalue.Minify(buf)
			require.Equal(t, tt.expected, string(out))
			if len(out) > 0 {
				require.Same(t, &buf[0], &out[0], "minify works in place")
			}
		})
	}
}

func TestMinify_Idempotent(t *testing.T) {
	inputs := []string{
		`{ "a" : [ 1 , 2 ], "s": "x \" // not a comment" }`,
		"[\n\ttrue,\n\tnull\n]",
		`"  spaced  "`,
	}
	for _, input := range inputs {
		once := string(jvalue.Minify([]byte(input)))
		twice := string(jvalue.Minify([]byte(once)))
		require.Equal(t, once, twice)

		n, err := jvalue.ParseString(once)
		require.NoError(t, err)
		require.Equal(t, once, compact(t, n))
	}
}
