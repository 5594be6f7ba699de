package jvalue_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/stretchr/testify/require"
)

// treeGen builds random trees of owned nodes.
type treeGen struct {
	r *rand.Rand
}

const alphabet = "ab Z09\"\\/\b\f\n\r\t\x00\x1f\x7fé日😀"

func (g *treeGen) text() string {
	runes := []rune(alphabet)
	n := g.r.IntN(8)
	out := make([]rune, n)
	for i := range out {
		out[i] = runes[g.r.IntN(len(runes))]
	}
	return string(out)
}

func (g *treeGen) number() float64 {
	switch g.r.IntN(4) {
	case 0:
		return float64(g.r.IntN(2000) - 1000)
	case 1:
		return g.r.NormFloat64()
	case 2:
		return g.r.NormFloat64() * math.Pow(10, float64(g.r.IntN(600)-300))
	}
	return math.Float64frombits(g.r.Uint64()&^(0x7FF<<52) | uint64(g.r.IntN(2046)+1)<<52)
}

func (g *treeGen) node(depth int) *jvalue.Node {
	k := g.r.IntN(8)
	if depth <= 0 && k >= 6 {
		k = g.r.IntN(6)
	}
	switch k {
	case 0:
		return jvalue.NewNull()
	case 1:
		return jvalue.NewTrue()
	case 2:
		return jvalue.NewFalse()
	case 3, 4:
		return jvalue.NewNumber(g.number())
	case 5:
		return jvalue.NewString(g.text())
	case 6:
		arr := jvalue.NewArray()
		for range g.r.IntN(5) {
			if err := arr.Append(g.node(depth - 1)); err != nil {
				panic(err)
			}
		}
		return arr
	}
	obj := jvalue.NewObject()
	for range g.r.IntN(5) {
		if err := obj.Add("k"+g.text(), g.node(depth-1)); err != nil {
			panic(err)
		}
	}
	return obj
}

func TestRoundTrip(t *testing.T) {
	g := &treeGen{r: rand.New(rand.NewPCG(1, 2))}
	for i := 0; i < 500; i++ {
		tree := g.node(5)
		for _, formatted := range []bool{true, false} {
			out, err := jvalue.PrintBuffered(tree, 0, formatted)
			require.NoError(t, err)
			back, err := jvalue.Parse(out)
			require.NoError(t, err, "%s", out)
			require.True(t, jvalue.Compare(tree, back, true), "%s", out)
		}
	}
}

func TestRoundTrip_PrintedMinifies(t *testing.T) {
	g := &treeGen{r: rand.New(rand.NewPCG(3, 4))}
	for i := 0; i < 200; i++ {
		tree := g.node(4)
		pretty, err := jvalue.Print(tree)
		require.NoError(t, err)
		flat, err := jvalue.PrintUnformatted(tree)
		require.NoError(t, err)
		require.Equal(t, string(flat), string(jvalue.Minify(pretty)))
	}
}
