package jvalue

import (
	"io"

	"github.com/pkg/errors"
)

// Decoder reads a JSON value from an input stream.
type Decoder struct {
	r    io.Reader
	opts []ParseOption
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options configure parsing, such as a maximum nesting depth
// with the MaxDepth option.
func NewDecoder(r io.Reader, opts ...ParseOption) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads all of the input and parses it as one value. Trailing data
// other than whitespace is an error unless the options relax it.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode() (*Node, error) {
	if d.r == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, errors.Wrap(err, "jvalue: read input")
	}
	opts := append([]ParseOption{RequireTerminated(true)}, d.opts...)
	n, _, err := ParseWithOpts(data, opts...)
	return n, err
}

// Encoder writes JSON values to an output stream.
type Encoder struct {
	w    io.Writer
	opts []PrintOption
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...PrintOption) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the text of n to the stream.
func (e *Encoder) Encode(n *Node) error {
	return Fprint(e.w, n, e.opts...)
}
