package lexer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/KimNorgaard/go-jvalue/internal/token"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Error describes a malformed token at a byte offset of the input.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

// Lexer is a byte cursor over JSON source. It never allocates for input
// that contains no escape sequences.
type Lexer struct {
	input []byte
	pos   int // current position in input (points to current byte)
}

// New creates and returns a new Lexer positioned at the start of input.
func New(input []byte) *Lexer {
	return &Lexer{input: input}
}

// Pos returns the current byte offset.
func (l *Lexer) Pos() int { return l.pos }

// Peek returns the current byte, or 0 at the end of input.
func (l *Lexer) Peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// Next returns the token class of the current byte without consuming it.
func (l *Lexer) Next() token.Type {
	return token.Lookup(l.Peek())
}

// Advance consumes one byte.
func (l *Lexer) Advance() {
	if l.pos < len(l.input) {
		l.pos++
	}
}

// AtEnd reports whether the cursor is at the end of input or at a NUL
// terminator.
func (l *Lexer) AtEnd() bool {
	return l.pos >= len(l.input) || l.input[l.pos] == 0
}

// SkipWhitespace consumes spaces, tabs, carriage returns and line feeds.
func (l *Lexer) SkipWhitespace() {
	for l.pos < len(l.input) && token.IsWhitespace(l.input[l.pos]) {
		l.pos++
	}
}

// SkipBOM consumes a UTF-8 byte order mark at the start of input.
func (l *Lexer) SkipBOM() bool {
	if l.pos != 0 || len(l.input) < len(bom) {
		return false
	}
	if string(l.input[:len(bom)]) != string(bom) {
		return false
	}
	l.pos = len(bom)
	return true
}

// ReadKeyword consumes the literal for a keyword token. On mismatch the
// cursor does not move.
func (l *Lexer) ReadKeyword(t token.Type) error {
	lit, ok := token.Keyword(t)
	if !ok {
		return &Error{Offset: l.pos, Msg: fmt.Sprintf("%s is not a keyword", t)}
	}
	end := l.pos + len(lit)
	if end > len(l.input) || string(l.input[l.pos:end]) != lit {
		return &Error{Offset: l.pos, Msg: fmt.Sprintf("invalid literal, expected %q", lit)}
	}
	l.pos = end
	return nil
}

// ReadString consumes a string literal. The cursor must be on the opening
// quote; on success it is left after the closing quote.
func (l *Lexer) ReadString() (string, error) {
	l.pos++ // consume opening quote

	// Fast path: no escapes between the quotes.
	for i := l.pos; i < len(l.input); i++ {
		ch := l.input[i]
		if ch == '"' {
			s := string(l.input[l.pos:i])
			l.pos = i + 1
			return s, nil
		}
		if ch == '\\' {
			break
		}
		if ch < 0x20 {
			return "", &Error{Offset: i, Msg: fmt.Sprintf("invalid control character U+%04X in string", ch)}
		}
	}

	var buf strings.Builder
	for {
		if l.pos >= len(l.input) {
			return "", &Error{Offset: len(l.input), Msg: "unterminated string"}
		}
		ch := l.input[l.pos]
		switch {
		case ch == '"':
			l.pos++ // consume closing quote
			return buf.String(), nil
		case ch == '\\':
			if err := l.readEscapeSequence(&buf); err != nil {
				return "", err
			}
		case ch < 0x20:
			return "", &Error{Offset: l.pos, Msg: fmt.Sprintf("invalid control character U+%04X in string", ch)}
		default:
			buf.WriteByte(ch)
			l.pos++
		}
	}
}

// readEscapeSequence decodes one escape starting at the backslash.
func (l *Lexer) readEscapeSequence(buf *strings.Builder) error {
	at := l.pos
	l.pos++ // consume backslash
	if l.pos >= len(l.input) {
		return &Error{Offset: at, Msg: "unterminated escape sequence"}
	}
	ch := l.input[l.pos]
	switch ch {
	case 'b', 'f', 'n', 'r', 't', '"', '\\', '/':
		buf.WriteByte(unescape(ch))
		l.pos++
		return nil
	case 'u':
		r, err := l.readUnicodeEscape(at)
		if err != nil {
			return err
		}
		buf.WriteRune(r)
		return nil
	default:
		return &Error{Offset: at, Msg: fmt.Sprintf("invalid escape sequence \\%c", ch)}
	}
}

// readUnicodeEscape decodes \uXXXX, joining a surrogate pair into one
// scalar. The cursor is on the 'u' and at is the offset of the backslash.
func (l *Lexer) readUnicodeEscape(at int) (rune, error) {
	l.pos++ // consume 'u'
	first, ok := l.readHex(4)
	if !ok {
		return 0, &Error{Offset: at, Msg: "invalid unicode escape"}
	}
	switch {
	case first >= 0xDC00 && first <= 0xDFFF:
		return 0, &Error{Offset: at, Msg: "unpaired low surrogate"}
	case first < 0xD800 || first > 0xDBFF:
		return first, nil
	}

	if l.pos+1 >= len(l.input) || l.input[l.pos] != '\\' || l.input[l.pos+1] != 'u' {
		return 0, &Error{Offset: at, Msg: "unpaired high surrogate"}
	}
	l.pos += 2 // consume "\u"
	second, ok := l.readHex(4)
	if !ok {
		return 0, &Error{Offset: at, Msg: "invalid unicode escape"}
	}
	if second < 0xDC00 || second > 0xDFFF {
		return 0, &Error{Offset: at, Msg: "invalid low surrogate"}
	}
	return utf16.DecodeRune(first, second), nil
}

func (l *Lexer) readHex(n int) (rune, bool) {
	if l.pos+n > len(l.input) {
		return 0, false
	}
	var val rune
	for range n {
		ch := l.input[l.pos]
		var d rune
		switch {
		case '0' <= ch && ch <= '9':
			d = rune(ch - '0')
		case 'a' <= ch && ch <= 'f':
			d = rune(ch-'a') + 10
		case 'A' <= ch && ch <= 'F':
			d = rune(ch-'A') + 10
		default:
			return 0, false
		}
		val = val*16 + d
		l.pos++
	}
	return val, true
}

// ReadNumber consumes a number. Any run of digits, signs, dots and
// exponent markers is handed to strconv; with strict set the run must also
// match the JSON number grammar exactly. Overflow saturates to the largest
// finite float64.
func (l *Lexer) ReadNumber(strict bool) (float64, error) {
	start := l.pos
	for l.pos < len(l.input) && isNumberChar(l.input[l.pos]) {
		l.pos++
	}
	lit := string(l.input[start:l.pos])
	if strict && !IsNumber(lit) {
		l.pos = start
		return 0, &Error{Offset: start, Msg: fmt.Sprintf("invalid number format: %s", lit)}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return saturate(f), nil
		}
		l.pos = start
		return 0, &Error{Offset: start, Msg: fmt.Sprintf("could not parse %q as number", lit)}
	}
	return f, nil
}

func saturate(f float64) float64 {
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	}
	return f
}

func isNumberChar(ch byte) bool {
	return isDigit(ch) || ch == '+' || ch == '-' || ch == '.' || ch == 'e' || ch == 'E'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func unescape(ch byte) byte {
	switch ch {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	}
	return ch // '"', '\\' and '/' stand for themselves
}

func consumeDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func parseIntegerPart(s string, i int) (newIndex int, ok bool) {
	integerStart := i
	i = consumeDigits(s, i)
	if i == integerStart {
		return i, false // No digits found.
	}
	if i-integerStart > 1 && s[integerStart] == '0' {
		return i, false // Leading zeros are not allowed.
	}
	return i, true
}

func parseFractionalPart(s string, i int) (newIndex int, ok bool) {
	if i >= len(s) || s[i] != '.' {
		return i, true
	}
	i++ // Consume '.'.
	fractionStart := i
	i = consumeDigits(s, i)
	return i, i != fractionStart
}

func parseExponentPart(s string, i int) (newIndex int, ok bool) {
	if i >= len(s) || (s[i] != 'e' && s[i] != 'E') {
		return i, true
	}
	i++ // Consume 'e' or 'E'.
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	exponentStart := i
	i = consumeDigits(s, i)
	return i, i != exponentStart
}

// IsNumber reports whether s matches the JSON number grammar exactly.
func IsNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	var ok bool
	if i, ok = parseIntegerPart(s, i); !ok {
		return false
	}
	if i, ok = parseFractionalPart(s, i); !ok {
		return false
	}
	if i, ok = parseExponentPart(s, i); !ok {
		return false
	}
	return i == len(s)
}
