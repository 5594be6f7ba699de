package formatter

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultBufferSize is the initial capacity of a growable buffer.
	DefaultBufferSize = 256
	// DefaultIndent is one level of indentation in formatted output.
	DefaultIndent = "\t"
)

// ErrOverflow is returned when a write does not fit a fixed buffer.
var ErrOverflow = errors.New("jvalue: buffer too small")

// Buffer is the printer output. A growable buffer reallocates on demand; a
// fixed buffer writes into caller storage and fails once it is full.
type Buffer struct {
	buf   []byte
	fixed bool
}

// NewGrowable returns a growable buffer with the given initial capacity.
// A size below one selects DefaultBufferSize.
func NewGrowable(size int) *Buffer {
	if size < 1 {
		size = DefaultBufferSize
	}
	return &Buffer{buf: make([]byte, 0, size)}
}

// NewFixed returns a buffer that writes into dst and never grows past
// len(dst).
func NewFixed(dst []byte) *Buffer {
	return &Buffer{buf: dst[:0:len(dst)], fixed: true}
}

// ensure makes room for n more bytes. A growable buffer doubles its
// capacity, or grows to exactly the required size when doubling is not
// enough.
func (b *Buffer) ensure(n int) error {
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return nil
	}
	if b.fixed {
		return ErrOverflow
	}
	size := 2 * cap(b.buf)
	if size < need {
		size = need
	}
	grown := make([]byte, len(b.buf), size)
	copy(grown, b.buf)
	b.buf = grown
	return nil
}

// WriteByte appends c.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.ensure(1); err != nil {
		return err
	}
	b.buf = append(b.buf, c)
	return nil
}

// WriteString appends s.
func (b *Buffer) WriteString(s string) error {
	if err := b.ensure(len(s)); err != nil {
		return err
	}
	b.buf = append(b.buf, s...)
	return nil
}

// Write appends p. It implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.ensure(len(p)); err != nil {
		return 0, err
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Bytes returns the content written so far.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the current capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Formatter writes JSON tokens into a Buffer, tracking the nesting depth
// for formatted output.
type Formatter struct {
	buf    *Buffer
	indent string
	depth  int
}

// New returns a formatter writing to buf. An empty indent selects compact
// output.
func New(buf *Buffer, indent string) *Formatter {
	return &Formatter{buf: buf, indent: indent}
}

// Formatted reports whether the formatter emits line breaks and indentation.
func (f *Formatter) Formatted() bool { return f.indent != "" }

func (f *Formatter) writeIndent() error {
	for i := 0; i < f.depth; i++ {
		if err := f.buf.WriteString(f.indent); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) newline() error {
	if !f.Formatted() {
		return nil
	}
	if err := f.buf.WriteByte('\n'); err != nil {
		return err
	}
	return f.writeIndent()
}

// Open writes an opening delimiter and enters a nesting level.
func (f *Formatter) Open(delim byte) error {
	f.depth++
	return f.buf.WriteByte(delim)
}

// Close leaves a nesting level and writes a closing delimiter. A container
// with no children closes on the same line.
func (f *Formatter) Close(delim byte, empty bool) error {
	f.depth--
	if !empty {
		if err := f.newline(); err != nil {
			return err
		}
	}
	return f.buf.WriteByte(delim)
}

// Item starts the i-th element or member of the current container.
func (f *Formatter) Item(i int) error {
	if i > 0 {
		if err := f.buf.WriteByte(','); err != nil {
			return err
		}
	}
	return f.newline()
}

// Colon separates a member name from its value.
func (f *Formatter) Colon() error {
	if f.Formatted() {
		return f.buf.WriteString(": ")
	}
	return f.buf.WriteByte(':')
}

// Raw writes s verbatim.
func (f *Formatter) Raw(s string) error {
	return f.buf.WriteString(s)
}

// Quoted writes s as a quoted, escaped string literal.
func (f *Formatter) Quoted(s string) error {
	if !needsEscape(s) {
		if err := f.buf.ensure(len(s) + 2); err != nil {
			return err
		}
		f.buf.buf = append(f.buf.buf, '"')
		f.buf.buf = append(f.buf.buf, s...)
		f.buf.buf = append(f.buf.buf, '"')
		return nil
	}
	return f.buf.WriteString(Quote(s))
}

// Number writes v using FormatNumber.
func (f *Formatter) Number(v float64) error {
	var scratch [32]byte
	_, err := f.buf.Write(AppendNumber(scratch[:0], v))
	return err
}

const hex = "0123456789abcdef"

func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c == '"' || c == '\\' {
			return true
		}
	}
	return false
}

// Quote returns s as a JSON string literal. Quotes, backslashes and
// control bytes are escaped; every other byte passes through.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hex[c>>4])
				sb.WriteByte(hex[c&0xF])
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// AppendNumber appends the JSON text for v to dst: the shortest decimal
// that parses back to v, in plain notation for magnitudes in [1e-6, 1e21)
// and in exponent notation otherwise. NaN and infinities have no JSON
// literal and print as 0.
func AppendNumber(dst []byte, v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return append(dst, '0')
	}
	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, v, format, -1, 64)
	if format == 'e' {
		// e-07 becomes e-7
		if n := len(dst); n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

// FormatNumber returns the JSON text for v.
func FormatNumber(v float64) string {
	return string(AppendNumber(nil, v))
}
