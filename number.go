package edn

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/edn-lang/edn/value"
)

// isNumberStart reports whether the reader, having peeked r with la as the
// rune after it (0 if unavailable), should delegate to the number parser:
// a digit, or '+'/'-' immediately followed by a digit.
func isNumberStart(r rune, la rune, haveLA bool) bool {
	if isDigit(r) {
		return true
	}
	if (r == '+' || r == '-') && haveLA && isDigit(la) {
		return true
	}
	return false
}

// readNumber accumulates a number token and decodes it, per spec.md §4.3.
// The terminating non-numeric character (if any) is left unread.
func readNumber(src *Source) (value.Value, error) {
	var sofar []rune
	for {
		r, ok := src.Peek()
		if !ok {
			break
		}
		if isWhitespace(r) || isMacro(r) {
			break
		}
		src.Read()
		sofar = append(sofar, r)
	}
	text := string(sofar)
	v, err := parseNumber(text)
	if err != nil {
		return nil, err
	}
	return v, nil
}

var (
	// intPattern mirrors the real EDN/Clojure int grammar: a bare "0", a
	// decimal with no leading zero, octal (leading 0), hex (0x/0X), or
	// radix (NrDDD), each with an optional trailing N for arbitrary
	// precision. spec.md presents this as two separate numbered rules
	// ("plain digits" then "radix forms"), but a leading-zero digit string
	// like "017" must read as octal 15, not decimal 17 - see DESIGN.md's
	// resolution of this point.
	intPattern = regexp.MustCompile(`^([-+]?)(?:(0)|([1-9][0-9]*)|0[xX]([0-9A-Fa-f]+)|0([0-7]+)|([1-9][0-9]?)[rR]([0-9A-Za-z]+))(N)?$`)

	ratioPattern = regexp.MustCompile(`^([-+]?[0-9]+)/([0-9]+)$`)

	floatPattern = regexp.MustCompile(`^([-+]?)([0-9]+\.[0-9]*|[0-9]+\.?[0-9]*[eE][-+]?[0-9]+|[0-9]+\.?[0-9]*)(M)?$`)
)

func parseNumber(text string) (value.Value, error) {
	if m := intPattern.FindStringSubmatch(text); m != nil {
		return parseIntMatch(text, m)
	}
	if m := ratioPattern.FindStringSubmatch(text); m != nil {
		return parseRatioMatch(m)
	}
	if m := floatPattern.FindStringSubmatch(text); m != nil {
		return parseFloatMatch(text, m)
	}
	return nil, lexicalError("Invalid number format %s.", text)
}

// intPattern groups: 1=sign 2=zero 3=decimal 4=hex 5=octal 6=radixBase 7=radixDigits 8=N
func parseIntMatch(text string, m []string) (value.Value, error) {
	sign, zero, decimal, hexDigits, octDigits, radixBase, radixDigits, nSuffix := m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]

	negative := sign == "-"
	var mag *big.Int

	switch {
	case zero != "":
		mag = big.NewInt(0)
	case decimal != "":
		mag, _ = new(big.Int).SetString(decimal, 10)
	case hexDigits != "":
		mag, _ = new(big.Int).SetString(hexDigits, 16)
	case octDigits != "":
		mag, _ = new(big.Int).SetString(octDigits, 8)
	case radixBase != "":
		base, err := strconv.Atoi(radixBase)
		if err != nil || base < 2 || base > 36 {
			return nil, lexicalError("Invalid number format %s.", text)
		}
		mag, _ = new(big.Int).SetString(radixDigits, base)
		if mag == nil {
			return nil, lexicalError("Invalid number format %s.", text)
		}
	default:
		return nil, lexicalError("Invalid number format %s.", text)
	}
	if mag == nil {
		return nil, lexicalError("Invalid number format %s.", text)
	}
	if negative {
		mag.Neg(mag)
	}
	if nSuffix != "" {
		return value.NewIntegerBig(mag), nil
	}
	if mag.IsInt64() {
		return value.NewIntegerInt64(mag.Int64()), nil
	}
	return value.NewIntegerBig(mag), nil
}

func parseRatioMatch(m []string) (value.Value, error) {
	num, ok := new(big.Int).SetString(m[1], 10)
	if !ok {
		return nil, lexicalError("Invalid number format %s/%s.", m[1], m[2])
	}
	den, ok := new(big.Int).SetString(m[2], 10)
	if !ok {
		return nil, lexicalError("Invalid number format %s/%s.", m[1], m[2])
	}
	if den.Sign() == 0 {
		return nil, lexicalError("Divide by zero")
	}
	return value.NewRatio(num, den), nil
}

// floatPattern groups: 1=sign 2=body 3=M
func parseFloatMatch(text string, m []string) (value.Value, error) {
	body := m[1] + m[2]
	if m[3] != "" {
		f, _, err := big.ParseFloat(body, 10, 200, big.ToNearestEven)
		if err != nil {
			return nil, lexicalError("Invalid number format %s.", text)
		}
		return value.NewBigDecimal(f), nil
	}
	f, err := strconv.ParseFloat(normalizeFloatLiteral(body), 64)
	if err != nil {
		return nil, lexicalError("Invalid number format %s.", text)
	}
	return value.Float(f), nil
}

// normalizeFloatLiteral turns an EDN float body like "1." or "1.e3" (both
// valid per spec.md's grammar but not accepted by strconv.ParseFloat as-is
// in every Go version) into an equivalent Go-parseable literal.
func normalizeFloatLiteral(body string) string {
	if strings.HasSuffix(body, ".") {
		return body + "0"
	}
	return body
}
