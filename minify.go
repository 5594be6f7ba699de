package jvalue

// Minify removes whitespace, // line comments and /* */ block comments
// outside string literals from buf in place. It returns buf shortened to
// the remaining text.
func Minify(buf []byte) []byte {
	w := 0
	for r := 0; r < len(buf); {
		switch c := buf[r]; c {
		case ' ', '\t', '\r', '\n':
			r++
		case '/':
			switch {
			case r+1 < len(buf) && buf[r+1] == '/':
				r = skipLineComment(buf, r+2)
			case r+1 < len(buf) && buf[r+1] == '*':
				r = skipBlockComment(buf, r+2)
			default:
				buf[w] = c
				w++
				r++
			}
		case '"':
			end := stringEnd(buf, r)
			w += copy(buf[w:], buf[r:end])
			r = end
		default:
			buf[w] = c
			w++
			r++
		}
	}
	return buf[:w]
}

// skipLineComment returns the offset after the newline ending the comment.
func skipLineComment(buf []byte, i int) int {
	for i < len(buf) {
		if buf[i] == '\n' {
			return i + 1
		}
		i++
	}
	return i
}

// skipBlockComment returns the offset after the closing */.
func skipBlockComment(buf []byte, i int) int {
	for i+1 < len(buf) {
		if buf[i] == '*' && buf[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(buf)
}

// stringEnd returns the offset after the quote closing the string literal
// that starts at i. An escaped quote does not close it.
func stringEnd(buf []byte, i int) int {
	for i++; i < len(buf); i++ {
		switch buf[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(buf)
}
