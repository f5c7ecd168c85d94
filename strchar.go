package edn

import (
	"strconv"

	"github.com/edn-lang/edn/value"
)

// readString reads a string literal's contents after the opening '"' has
// already been consumed, per spec.md §4.5.
func readString(src *Source) (value.Value, error) {
	var out []rune
	for {
		r, ok := src.Read()
		if !ok {
			return nil, unexpectedEOF("Unexpected EOF while reading string")
		}
		switch r {
		case '"':
			return value.String(string(out)), nil
		case '\\':
			decoded, err := readStringEscape(src)
			if err != nil {
				return nil, err
			}
			out = append(out, decoded)
		default:
			out = append(out, r)
		}
	}
}

func readStringEscape(src *Source) (rune, error) {
	r, ok := src.Read()
	if !ok {
		return 0, unexpectedEOF("Unexpected EOF while reading string")
	}
	switch r {
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case 'n':
		return '\n', nil
	case '\\':
		return '\\', nil
	case '"':
		return '"', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'u':
		return readUnicodeEscape(src)
	case '0', '1', '2', '3':
		return readOctalEscape(src, r)
	default:
		return 0, lexicalError("Unsupported escape character: \\%c", r)
	}
}

func readUnicodeEscape(src *Source) (rune, error) {
	var digits [4]rune
	for i := 0; i < 4; i++ {
		r, ok := src.Read()
		if !ok {
			return 0, unexpectedEOF("Unexpected EOF while reading string")
		}
		if !isHexDigit(r) {
			return 0, lexicalError("Invalid unicode escape: \\u%s", string(digits[:i+1]))
		}
		digits[i] = r
	}
	code, err := strconv.ParseInt(string(digits[:]), 16, 32)
	if err != nil {
		return 0, lexicalError("Invalid unicode escape: \\u%s", string(digits[:]))
	}
	if code >= 0xD800 && code <= 0xDFFF {
		return 0, lexicalError("Invalid character constant: \\u%s", string(digits[:]))
	}
	return rune(code), nil
}

func readOctalEscape(src *Source, first rune) (rune, error) {
	digits := []rune{first}
	for len(digits) < 3 {
		r, ok := src.Peek()
		if !ok || !isOctalDigit(r) {
			break
		}
		src.Read()
		digits = append(digits, r)
	}
	code, err := strconv.ParseInt(string(digits), 8, 32)
	if err != nil || code > 0o377 {
		return 0, lexicalError("Octal escape sequence must be in range [0, 377]")
	}
	return rune(code), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// charNames maps the special character literal names EDN recognizes to
// their scalar value, per spec.md §4.5.
var charNames = map[string]rune{
	"newline":   '\n',
	"space":     ' ',
	"tab":       '\t',
	"backspace": '\b',
	"formfeed":  '\f',
	"return":    '\r',
}

// readChar reads a character literal after the leading '\' has already been
// consumed, per spec.md §4.5.
func readChar(src *Source) (value.Value, error) {
	first, ok := src.Read()
	if !ok {
		return nil, unexpectedEOF("Unexpected EOF while reading character")
	}
	// If the very next rune after `first` is a token boundary or
	// non-constituent, `first` IS the char literal (so `\ `, `\)`, `\\`
	// alone, `\a@`, etc. are valid, with the terminator left unread).
	la, haveLA := src.Peek()
	if !haveLA || isTokenBoundary(la) || isNonConstituent(la) {
		return value.Char(first), nil
	}

	var sofar []rune
	sofar = append(sofar, first)
	for {
		r, ok := src.Peek()
		if !ok || isTokenBoundary(r) || isNonConstituent(r) {
			break
		}
		src.Read()
		sofar = append(sofar, r)
	}
	token := string(sofar)
	if len([]rune(token)) == 1 {
		return value.Char(sofar[0]), nil
	}
	if name, ok := charNames[token]; ok {
		return value.Char(name), nil
	}
	if sofar[0] == 'u' && len(sofar) == 5 {
		code, err := strconv.ParseInt(string(sofar[1:]), 16, 32)
		if err == nil {
			if code >= 0xD800 && code <= 0xDFFF {
				return nil, lexicalError("Invalid character constant: \\%s", token)
			}
			return value.Char(rune(code)), nil
		}
	}
	if sofar[0] == 'o' && len(sofar) >= 2 && len(sofar) <= 4 {
		code, err := strconv.ParseInt(string(sofar[1:]), 8, 32)
		if err == nil && code <= 0o377 {
			return value.Char(rune(code)), nil
		}
	}
	return nil, lexicalError("Unsupported character literal: \\%s", token)
}
