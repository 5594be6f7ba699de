package jvalue

import (
	"github.com/fatih/color"
)

// ColorAttr selects which part of a value a color applies to.
type ColorAttr int

const (
	// ValueColor paints scalar values.
	ValueColor ColorAttr = iota
	// NameColor paints object member names.
	NameColor
)

// Colorable identifies a colored element of printed output.
type Colorable struct {
	Kind Kind
	Attr ColorAttr
}

// Colors maps printed elements to ANSI color functions. Elements without
// an entry use Default.
type Colors struct {
	Default func(string) string
	Map     map[Colorable]func(string) string
}

// NewColors returns the default palette. Output is only colored while
// color.NoColor is false, which fatih/color decides from the terminal.
func NewColors() *Colors {
	c := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string) string{},
	}
	c.Map[Colorable{Kind: Null, Attr: ValueColor}] = paint(color.RGB(168, 0, 196))
	c.Map[Colorable{Kind: True, Attr: ValueColor}] = paint(color.New(color.FgCyan))
	c.Map[Colorable{Kind: False, Attr: ValueColor}] = paint(color.New(color.FgCyan))
	c.Map[Colorable{Kind: Number, Attr: ValueColor}] = paint(color.RGB(128, 216, 236))
	c.Map[Colorable{Kind: String, Attr: ValueColor}] = paint(color.RGB(8, 196, 16))
	c.Map[Colorable{Kind: Raw, Attr: ValueColor}] = paint(color.RGB(198, 198, 46))
	c.Map[Colorable{Kind: Object, Attr: NameColor}] = paint(color.RGB(128, 168, 196))
	return c
}

func paint(c *color.Color) func(string) string {
	return func(s string) string { return c.Sprint(s) }
}

func colorDefault(s string) string { return s }

// Color applies the color for kind k and attribute a to s.
func (c *Colors) Color(k Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

// Get returns the color function for kind k and attribute a.
func (c *Colors) Get(k Kind, a ColorAttr) func(string) string {
	if f := c.Map[Colorable{Kind: k, Attr: a}]; f != nil {
		return f
	}
	if c.Default != nil {
		return c.Default
	}
	return colorDefault
}
