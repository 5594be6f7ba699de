package jvalue

import (
	"github.com/pkg/errors"
)

// Parse parses data into a tree. The whole input, apart from trailing
// whitespace, must be one JSON value. On failure the error is a
// *ParseError and no tree is returned.
func Parse(data []byte) (*Node, error) {
	n, _, err := ParseWithOpts(data, RequireTerminated(true))
	return n, err
}

// ParseString is like Parse for a string.
func ParseString(s string) (*Node, error) {
	return Parse([]byte(s))
}

// ParseWithLength parses the first length bytes of data. Data after the
// value is not an error.
func ParseWithLength(data []byte, length int) (*Node, error) {
	if length < 0 || length > len(data) {
		return nil, errors.Wrapf(ErrInvalidArgument, "length %d out of range [0, %d]", length, len(data))
	}
	n, _, err := ParseWithOpts(data[:length])
	return n, err
}

// ParseWithOpts parses data and reports the offset where parsing stopped.
// On failure the offset is where the error was detected. By default data
// after the value is not an error; see RequireTerminated.
func ParseWithOpts(data []byte, opts ...ParseOption) (*Node, int, error) {
	o, err := newParseOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	return newParser(data, o).parse()
}

// MustParse is like Parse but panics on failure. It simplifies building
// trees from literals in tests and initializers.
func MustParse(s string) *Node {
	n, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return n
}
