package jvalue

import (
	"io"
	"slices"

	"github.com/KimNorgaard/go-jvalue/internal/formatter"
	"github.com/pkg/errors"
)

type printer struct {
	f      *formatter.Formatter
	colors *Colors
}

func newPrinter(buf *formatter.Buffer, formatted bool, indent string, colors *Colors) *printer {
	if !formatted {
		indent = ""
	}
	return &printer{f: formatter.New(buf, indent), colors: colors}
}

func (p *printer) print(n *Node) error {
	switch n.Kind() {
	case Null:
		return p.scalar(Null, "null")
	case True:
		return p.scalar(True, "true")
	case False:
		return p.scalar(False, "false")
	case Number:
		if p.colors == nil {
			return p.f.Number(n.num)
		}
		return p.scalar(Number, formatter.FormatNumber(n.num))
	case String:
		if p.colors == nil {
			return p.f.Quoted(n.text)
		}
		return p.scalar(String, formatter.Quote(n.text))
	case Raw:
		return p.scalar(Raw, n.text)
	case Array:
		return p.printArray(n)
	case Object:
		return p.printObject(n)
	}
	return errors.Wrap(ErrInvalidArgument, "print invalid node")
}

func (p *printer) scalar(k Kind, text string) error {
	if p.colors != nil {
		text = p.colors.Color(k, ValueColor, text)
	}
	return p.f.Raw(text)
}

func (p *printer) printArray(n *Node) error {
	items := n.items()
	if err := p.f.Open('['); err != nil {
		return err
	}
	for i, c := range items {
		if err := p.f.Item(i); err != nil {
			return err
		}
		if err := p.print(c); err != nil {
			return err
		}
	}
	return p.f.Close(']', len(items) == 0)
}

func (p *printer) printObject(n *Node) error {
	items := n.items()
	if err := p.f.Open('{'); err != nil {
		return err
	}
	for i, c := range items {
		if err := p.f.Item(i); err != nil {
			return err
		}
		if err := p.printName(c.name); err != nil {
			return err
		}
		if err := p.f.Colon(); err != nil {
			return err
		}
		if err := p.print(c); err != nil {
			return err
		}
	}
	return p.f.Close('}', len(items) == 0)
}

func (p *printer) printName(name string) error {
	if p.colors == nil {
		return p.f.Quoted(name)
	}
	return p.f.Raw(p.colors.Color(Object, NameColor, formatter.Quote(name)))
}

// Print renders n as formatted text, one element or member per line and
// indented with tabs.
func Print(n *Node) ([]byte, error) {
	return PrintBuffered(n, formatter.DefaultBufferSize, true)
}

// PrintUnformatted renders n as compact text without whitespace.
func PrintUnformatted(n *Node) ([]byte, error) {
	return PrintBuffered(n, formatter.DefaultBufferSize, false)
}

// PrintBuffered renders n into a buffer with an initial capacity of
// prebuffer bytes. The buffer grows as needed; a good estimate of the
// final size avoids reallocation.
func PrintBuffered(n *Node, prebuffer int, formatted bool) ([]byte, error) {
	if prebuffer < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative prebuffer %d", prebuffer)
	}
	buf := formatter.NewGrowable(prebuffer)
	if err := newPrinter(buf, formatted, formatter.DefaultIndent, nil).print(n); err != nil {
		return nil, err
	}
	return slices.Clip(buf.Bytes()), nil
}

// PrintPreallocated renders n into buf without allocating and returns the
// number of bytes written. Output that does not fit fails with
// ErrBufferTooSmall, leaving the content of buf unspecified. Sizing buf 5
// bytes beyond the expected output is enough for any rendering.
func PrintPreallocated(n *Node, buf []byte, formatted bool) (int, error) {
	if buf == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "nil buffer")
	}
	out := formatter.NewFixed(buf)
	if err := newPrinter(out, formatted, formatter.DefaultIndent, nil).print(n); err != nil {
		return 0, err
	}
	return out.Len(), nil
}

// Fprint renders n to w. Output is formatted with tabs unless options say
// otherwise.
func Fprint(w io.Writer, n *Node, opts ...PrintOption) error {
	o, err := newPrintOptions(opts)
	if err != nil {
		return err
	}
	buf := formatter.NewGrowable(o.bufferSize)
	if err := newPrinter(buf, o.formatted, o.indent, o.colors).print(n); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return errors.Wrap(err, "jvalue: write output")
}

// String returns the compact text of n, or "" if n cannot be printed.
func (n *Node) String() string {
	out, err := PrintUnformatted(n)
	if err != nil {
		return ""
	}
	return string(out)
}
