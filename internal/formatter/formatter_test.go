package formatter_test

import (
	"math"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-jvalue/internal/formatter"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Growable(t *testing.T) {
	require.Equal(t, formatter.DefaultBufferSize, formatter.NewGrowable(0).Cap())

	b := formatter.NewGrowable(4)
	require.NoError(t, b.WriteString("abc"))
	require.Equal(t, 4, b.Cap())

	require.NoError(t, b.WriteString("de"))
	require.Equal(t, 8, b.Cap(), "capacity doubles")

	require.NoError(t, b.WriteString(strings.Repeat("x", 20)))
	require.Equal(t, 25, b.Cap(), "grows to the exact need when doubling is not enough")
	require.Equal(t, "abcde"+strings.Repeat("x", 20), string(b.Bytes()))
	require.Equal(t, 25, b.Len())
}

func TestBuffer_Fixed(t *testing.T) {
	dst := make([]byte, 5)
	b := formatter.NewFixed(dst)
	require.NoError(t, b.WriteString("abc"))
	n, err := b.Write([]byte("de"))
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "abcde", string(dst), "writes land in caller storage")

	require.ErrorIs(t, b.WriteByte('f'), formatter.ErrOverflow)
	require.Equal(t, 5, b.Len())

	b = formatter.NewFixed(make([]byte, 3))
	require.ErrorIs(t, formatter.New(b, "").Quoted("ab"), formatter.ErrOverflow)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", `""`},
		{"plain", "hello", `"hello"`},
		{"quote and backslash", `a"b\c`, `"a\"b\\c"`},
		{"short escapes", "\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"other control bytes", "\x01\x1f", `"\u0001\u001f"`},
		{"slash passes", "a/b", `"a/b"`},
		{"del passes", "\x7f", "\"\x7f\""},
		{"utf8 passes", "日本😀", `"日本😀"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, formatter.Quote(tt.input))

			b := formatter.NewGrowable(0)
			require.NoError(t, formatter.New(b, "").Quoted(tt.input))
			require.Equal(t, tt.expected, string(b.Bytes()))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	a, b := 0.1, 0.2
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{1, "1"},
		{-17, "-17"},
		{1.5, "1.5"},
		{a + b, "0.30000000000000004"},
		{0.30000000000000004, "0.30000000000000004"},
		{123456789.125, "123456789.125"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-1e21, "-1e+21"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e300, "1.5e+300"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.NaN(), "0"},
		{math.Inf(1), "0"},
		{math.Inf(-1), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, formatter.FormatNumber(tt.input))
		})
	}
}

// writeSample emits {"a":[1,2],"b":{}} token by token.
func writeSample(f *formatter.Formatter) error {
	steps := []func() error{
		func() error { return f.Open('{') },
		func() error { return f.Item(0) },
		func() error { return f.Quoted("a") },
		f.Colon,
		func() error { return f.Open('[') },
		func() error { return f.Item(0) },
		func() error { return f.Number(1) },
		func() error { return f.Item(1) },
		func() error { return f.Number(2) },
		func() error { return f.Close(']', false) },
		func() error { return f.Item(1) },
		func() error { return f.Quoted("b") },
		f.Colon,
		func() error { return f.Open('{') },
		func() error { return f.Close('}', true) },
		func() error { return f.Close('}', false) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func TestFormatter_Indentation(t *testing.T) {
	tests := []struct {
		name     string
		indent   string
		expected string
	}{
		{"compact", "", `{"a":[1,2],"b":{}}`},
		{"tab", formatter.DefaultIndent, "{\n\t\"a\": [\n\t\t1,\n\t\t2\n\t],\n\t\"b\": {}\n}"},
		{"two spaces", "  ", "{\n  \"a\": [\n    1,\n    2\n  ],\n  \"b\": {}\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := formatter.NewGrowable(0)
			f := formatter.New(b, tt.indent)
			require.NoError(t, writeSample(f))
			require.Equal(t, tt.expected, string(b.Bytes()))
		})
	}
}

func TestFormatter_FixedOverflow(t *testing.T) {
	b := formatter.NewFixed(make([]byte, 10))
	err := writeSample(formatter.New(b, ""))
	require.ErrorIs(t, err, formatter.ErrOverflow)
}
