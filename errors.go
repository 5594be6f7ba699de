package jvalue

import (
	"bytes"
	"fmt"

	"github.com/KimNorgaard/go-jvalue/internal/formatter"
	"github.com/pkg/errors"
)

var (
	// ErrSyntax reports a malformed token: an unexpected character, a bad
	// escape or surrogate, or bad number text.
	ErrSyntax = errors.New("jvalue: syntax error")
	// ErrStructure reports a malformed container or document: an
	// unterminated array or object, a trailing comma, a missing separator or
	// trailing data.
	ErrStructure = errors.New("jvalue: structural error")
	// ErrDepthExceeded reports nesting deeper than the parser allows.
	ErrDepthExceeded = errors.New("jvalue: nesting depth exceeded")
	// ErrBufferTooSmall reports that printed output does not fit a fixed
	// buffer.
	ErrBufferTooSmall = formatter.ErrOverflow
	// ErrInvalidArgument reports an operation applied to a nil node, a node
	// of the wrong kind, a borrowed container or an item that cannot be
	// linked.
	ErrInvalidArgument = errors.New("jvalue: invalid argument")
)

// A ParseError describes where and why parsing failed. It unwraps to its
// Kind, one of ErrSyntax, ErrStructure or ErrDepthExceeded.
type ParseError struct {
	Kind   error
	Offset int // byte offset into the input
	Line   int // 1-based
	Column int // 1-based, in bytes
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Line, e.Column, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// newParseError builds a ParseError for data at offset. An offset past the
// last byte is reported as the last byte.
func newParseError(kind error, data []byte, offset int, msg string) *ParseError {
	if offset >= len(data) && len(data) > 0 {
		offset = len(data) - 1
	}
	if offset < 0 {
		offset = 0
	}
	line := 1 + bytes.Count(data[:offset], []byte{'\n'})
	col := offset + 1
	if i := bytes.LastIndexByte(data[:offset], '\n'); i >= 0 {
		col = offset - i
	}
	return &ParseError{Kind: kind, Offset: offset, Line: line, Column: col, Msg: msg}
}
