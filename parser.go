package jvalue

import (
	"fmt"

	"github.com/KimNorgaard/go-jvalue/internal/lexer"
	"github.com/KimNorgaard/go-jvalue/internal/token"
	"github.com/pkg/errors"
)

// parser builds a Node tree by recursive descent. Recursion is bounded by
// maxDepth.
type parser struct {
	l     *lexer.Lexer
	data  []byte
	opts  *parseOptions
	depth int
}

func newParser(data []byte, opts *parseOptions) *parser {
	return &parser{l: lexer.New(data), data: data, opts: opts}
}

// parse reads one value and returns it with the offset where parsing
// stopped. On failure the offset is that of the error.
func (p *parser) parse() (*Node, int, error) {
	if p.opts.allowBOM {
		p.l.SkipBOM()
	}
	n, err := p.parseValue()
	if err != nil {
		return nil, errorOffset(err), err
	}
	if p.opts.requireTerminated {
		p.l.SkipWhitespace()
		if !p.l.AtEnd() {
			n.release()
			err := p.errorf(ErrStructure, p.l.Pos(), "unexpected trailing data %q", p.l.Peek())
			return nil, errorOffset(err), err
		}
	}
	return n, p.l.Pos(), nil
}

func errorOffset(err error) int {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Offset
	}
	return 0
}

func (p *parser) errorf(kind error, offset int, format string, args ...any) error {
	return newParseError(kind, p.data, offset, fmt.Sprintf(format, args...))
}

// lexError converts a token error into a syntax error.
func (p *parser) lexError(err error) error {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return newParseError(ErrSyntax, p.data, lerr.Offset, lerr.Msg)
	}
	return p.errorf(ErrSyntax, p.l.Pos(), "%v", err)
}

func (p *parser) parseValue() (*Node, error) {
	p.l.SkipWhitespace()
	switch t := p.l.Next(); t {
	case token.NULL, token.TRUE, token.FALSE:
		return p.parseKeyword(t)
	case token.STRING:
		s, err := p.l.ReadString()
		if err != nil {
			return nil, p.lexError(err)
		}
		return NewString(s), nil
	case token.NUMBER:
		f, err := p.l.ReadNumber(p.opts.strictNumbers)
		if err != nil {
			return nil, p.lexError(err)
		}
		return NewNumber(f), nil
	case token.LBRACK:
		return p.parseArray()
	case token.LBRACE:
		return p.parseObject()
	case token.EOF:
		return nil, p.errorf(ErrSyntax, p.l.Pos(), "unexpected end of input")
	default:
		return nil, p.errorf(ErrSyntax, p.l.Pos(), "unexpected character %q", p.l.Peek())
	}
}

func (p *parser) parseKeyword(t token.Type) (*Node, error) {
	if err := p.l.ReadKeyword(t); err != nil {
		return nil, p.lexError(err)
	}
	switch t {
	case token.TRUE:
		return NewTrue(), nil
	case token.FALSE:
		return NewFalse(), nil
	}
	return NewNull(), nil
}

// enter counts one level of nesting.
func (p *parser) enter() error {
	if p.depth >= p.opts.maxDepth {
		return p.errorf(ErrDepthExceeded, p.l.Pos(), "nesting deeper than %d", p.opts.maxDepth)
	}
	p.depth++
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) parseArray() (*Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.l.Advance() // consume '['
	arr := NewArray()
	p.l.SkipWhitespace()
	switch p.l.Next() {
	case token.RBRACK:
		p.l.Advance()
		return arr, nil
	case token.EOF:
		return nil, p.errorf(ErrStructure, p.l.Pos(), "unterminated array")
	}

	for {
		item, err := p.parseValue()
		if err != nil {
			arr.release()
			return nil, err
		}
		arr.link(item)

		p.l.SkipWhitespace()
		switch p.l.Next() {
		case token.COMMA:
			p.l.Advance()
			p.l.SkipWhitespace()
			switch p.l.Next() {
			case token.RBRACK:
				arr.release()
				return nil, p.errorf(ErrStructure, p.l.Pos(), "trailing comma in array")
			case token.EOF:
				arr.release()
				return nil, p.errorf(ErrStructure, p.l.Pos(), "unterminated array")
			}
		case token.RBRACK:
			p.l.Advance()
			return arr, nil
		case token.EOF:
			arr.release()
			return nil, p.errorf(ErrStructure, p.l.Pos(), "unterminated array")
		default:
			arr.release()
			return nil, p.errorf(ErrStructure, p.l.Pos(), "expected ',' or ']' in array, got %q", p.l.Peek())
		}
	}
}

func (p *parser) parseObject() (*Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.l.Advance() // consume '{'
	obj := NewObject()
	p.l.SkipWhitespace()
	if p.l.Next() == token.RBRACE {
		p.l.Advance()
		return obj, nil
	}

	for {
		member, err := p.parseMember()
		if err != nil {
			obj.release()
			return nil, err
		}
		obj.link(member)

		p.l.SkipWhitespace()
		switch p.l.Next() {
		case token.COMMA:
			p.l.Advance()
			p.l.SkipWhitespace()
			switch p.l.Next() {
			case token.RBRACE:
				obj.release()
				return nil, p.errorf(ErrStructure, p.l.Pos(), "trailing comma in object")
			case token.EOF:
				obj.release()
				return nil, p.errorf(ErrStructure, p.l.Pos(), "unterminated object")
			}
		case token.RBRACE:
			p.l.Advance()
			return obj, nil
		case token.EOF:
			obj.release()
			return nil, p.errorf(ErrStructure, p.l.Pos(), "unterminated object")
		default:
			obj.release()
			return nil, p.errorf(ErrStructure, p.l.Pos(), "expected ',' or '}' in object, got %q", p.l.Peek())
		}
	}
}

// parseMember reads `"name" : value`.
func (p *parser) parseMember() (*Node, error) {
	p.l.SkipWhitespace()
	switch p.l.Next() {
	case token.STRING:
	case token.EOF:
		return nil, p.errorf(ErrStructure, p.l.Pos(), "unterminated object")
	default:
		return nil, p.errorf(ErrSyntax, p.l.Pos(), "expected string member name, got %q", p.l.Peek())
	}
	name, err := p.l.ReadString()
	if err != nil {
		return nil, p.lexError(err)
	}

	p.l.SkipWhitespace()
	if p.l.Next() != token.COLON {
		return nil, p.errorf(ErrStructure, p.l.Pos(), "expected ':' after member name %q", name)
	}
	p.l.Advance()

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	value.name = name
	return value, nil
}
