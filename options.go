package jvalue

import (
	"strings"

	"github.com/KimNorgaard/go-jvalue/internal/formatter"
	"github.com/pkg/errors"
)

const defaultMaxDepth = 1000

// A ParseOption configures ParseWithOpts.
type ParseOption func(*parseOptions) error

type parseOptions struct {
	maxDepth          int
	requireTerminated bool
	allowBOM          bool
	strictNumbers     bool
}

func newParseOptions(opts []ParseOption) (*parseOptions, error) {
	o := &parseOptions{
		maxDepth: defaultMaxDepth,
		allowBOM: true,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth returns a ParseOption that sets the maximum nesting depth of
// arrays and objects. This bounds the recursion of the parser on
// adversarial input. The default is 1000.
//
// The depth n must be a positive integer.
func MaxDepth(n int) ParseOption {
	return func(o *parseOptions) error {
		if n <= 0 {
			return errors.Wrap(ErrInvalidArgument, "max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// RequireTerminated returns a ParseOption that makes trailing data after
// the value, other than whitespace, an ErrStructure failure.
func RequireTerminated(b bool) ParseOption {
	return func(o *parseOptions) error {
		o.requireTerminated = b
		return nil
	}
}

// AllowBOM returns a ParseOption that controls whether a leading UTF-8
// byte order mark is skipped. It is skipped by default.
func AllowBOM(b bool) ParseOption {
	return func(o *parseOptions) error {
		o.allowBOM = b
		return nil
	}
}

// StrictNumbers returns a ParseOption that rejects number text not
// matching the JSON grammar exactly, such as leading zeros or a bare
// trailing dot.
func StrictNumbers() ParseOption {
	return func(o *parseOptions) error {
		o.strictNumbers = true
		return nil
	}
}

// A PrintOption configures Fprint.
type PrintOption func(*printOptions) error

type printOptions struct {
	formatted  bool
	indent     string
	colors     *Colors
	bufferSize int
}

func newPrintOptions(opts []PrintOption) (*printOptions, error) {
	o := &printOptions{
		formatted: true,
		indent:    formatter.DefaultIndent,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Formatted returns a PrintOption that selects formatted output, one
// element or member per line, or compact output.
func Formatted(b bool) PrintOption {
	return func(o *printOptions) error {
		o.formatted = b
		return nil
	}
}

// Indent returns a PrintOption that indents formatted output with n spaces
// per level instead of a tab.
//
// The indent n must be a positive integer.
func Indent(n int) PrintOption {
	return func(o *printOptions) error {
		if n <= 0 {
			return errors.Wrap(ErrInvalidArgument, "indent must be a positive integer")
		}
		o.indent = strings.Repeat(" ", n)
		return nil
	}
}

// WithColors returns a PrintOption that decorates output with the ANSI
// colors of c.
func WithColors(c *Colors) PrintOption {
	return func(o *printOptions) error {
		o.colors = c
		return nil
	}
}

// BufferSize returns a PrintOption that sets the initial capacity of the
// output buffer.
func BufferSize(n int) PrintOption {
	return func(o *printOptions) error {
		if n < 0 {
			return errors.Wrap(ErrInvalidArgument, "buffer size must not be negative")
		}
		o.bufferSize = n
		return nil
	}
}
