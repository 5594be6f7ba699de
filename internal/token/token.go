package token

// Type is the class of a lookahead byte.
type Type string

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // a byte no value can start with
	EOF     Type = "EOF"     // end of input or a NUL terminator

	// Values
	NUMBER Type = "NUMBER" // '-' or a digit
	STRING Type = "STRING" // '"'

	// Delimiters
	LBRACE Type = "{"
	RBRACE Type = "}"
	LBRACK Type = "["
	RBRACK Type = "]"
	COMMA  Type = ","
	COLON  Type = ":"

	// Keywords, recognized by their first byte
	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"
	NULL  Type = "NULL"
)

var keywords = map[Type]string{
	TRUE:  "true",
	FALSE: "false",
	NULL:  "null",
}

// Keyword returns the full literal text for a keyword token type.
// It reports false for every other type.
func Keyword(t Type) (string, bool) {
	lit, ok := keywords[t]
	return lit, ok
}

// Lookup classifies the byte a value or delimiter starts with.
func Lookup(ch byte) Type {
	switch ch {
	case 0:
		return EOF
	case '{', '}', '[', ']', ',', ':':
		return Type(ch)
	case '"':
		return STRING
	case 't':
		return TRUE
	case 'f':
		return FALSE
	case 'n':
		return NULL
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return NUMBER
	}
	return ILLEGAL
}

// IsWhitespace reports whether ch is insignificant JSON whitespace.
func IsWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
