package main

import (
	"bytes"
	"testing"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/stretchr/testify/require"
)

func TestCompareDocs(t *testing.T) {
	a := jvalue.MustParse(`{"a": 1, "b": [true]}`)
	b := jvalue.MustParse(`{"A": 1, "b": [true]}`)

	var buf bytes.Buffer
	same, err := compareDocs(&buf, a, a.Duplicate(true), true, false)
	require.NoError(t, err)
	require.True(t, same)
	require.Empty(t, buf.String())

	same, err = compareDocs(&buf, a, b, false, false)
	require.NoError(t, err)
	require.True(t, same)

	same, err = compareDocs(&buf, a, b, true, true)
	require.NoError(t, err)
	require.False(t, same)
	require.Empty(t, buf.String())

	same, err = compareDocs(&buf, a, b, true, false)
	require.NoError(t, err)
	require.False(t, same)
	require.Equal(t, " {\n-\t\"a\": 1,\n+\t\"A\": 1,\n \t\"b\": [\n \t\ttrue\n \t]\n }\n", buf.String())
}

func TestLineDiff(t *testing.T) {
	require.Equal(t, " x\n y\n", lineDiff("x\ny\n", "x\ny\n"))
	require.Equal(t, " x\n-y\n+z\n", lineDiff("x\ny\n", "x\nz\n"))
	require.Equal(t, " x\n+y\n", lineDiff("x\n", "x\ny"))
}
