package edn

// scanToken reads a symbolic token bounded by whitespace or a terminating
// macro character, per spec.md §4.4. kind names the thing being read, for
// error messages ("symbol", "keyword", "tag", "namespaced map prefix", ...).
//
// validateLeading, if true, rejects a non-constituent leading character.
// Every character encountered, leading or not, is rejected if
// non-constituent.
func scanToken(src *Source, kind string, validateLeading bool) (string, error) {
	first, ok := src.Peek()
	if !ok {
		return "", unexpectedEOF("Unexpected EOF while reading the start of %s", kind)
	}
	if validateLeading && isNonConstituent(first) {
		return "", lexicalError("Invalid leading character at the start of a %s", kind)
	}

	var sofar []rune
	for {
		r, ok := src.Peek()
		if !ok {
			break
		}
		if isTokenBoundary(r) {
			break
		}
		if isNonConstituent(r) {
			return "", lexicalError("Invalid character [%c] in %s starting with [%s]", r, kind, string(sofar))
		}
		src.Read()
		sofar = append(sofar, r)
	}
	if len(sofar) == 0 {
		return "", lexicalError("Invalid character [%c] at the start of a %s", first, kind)
	}
	return string(sofar), nil
}
