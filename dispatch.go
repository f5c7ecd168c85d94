package edn

import (
	"io"

	"github.com/edn-lang/edn/value"
)

type macroReader func(src *Source, opts Options) (value.Value, error)

// macroTable dispatches on the first non-whitespace character of a form,
// per spec.md §4.7. Unmatched closing delimiters are handled directly in
// readFormStep rather than through this table, since they need the specific
// rune that triggered them.
var macroTable map[rune]macroReader

func init() {
	macroTable = map[rune]macroReader{
		'"': func(src *Source, opts Options) (value.Value, error) {
			src.Read()
			return readString(src)
		},
		':': readKeywordMacro,
		';': readLineCommentMacro,
		'^': readMetaMacro,
		'(': func(src *Source, opts Options) (value.Value, error) {
			src.Read()
			return readListMacro(src, opts)
		},
		'[': func(src *Source, opts Options) (value.Value, error) {
			src.Read()
			return readVectorMacro(src, opts)
		},
		'{': func(src *Source, opts Options) (value.Value, error) {
			src.Read()
			return readMapMacro(src, opts)
		},
		'\\': func(src *Source, opts Options) (value.Value, error) {
			src.Read()
			return readChar(src)
		},
		'#': readDispatchMacro,
	}
}

// dispatchTable handles the character immediately after '#', per spec.md
// §4.7. Anything not in this table is treated as the start of a tag name.
var dispatchTable map[rune]macroReader

func init() {
	dispatchTable = map[rune]macroReader{
		'^': readMetaMacro, // deprecated alias for ^
		'{': func(src *Source, opts Options) (value.Value, error) {
			src.Read()
			return readSetMacro(src, opts)
		},
		'_': readDiscardMacro,
		'!': readShebangCommentMacro,
		'<': readUnreadableMacro,
		':': func(src *Source, opts Options) (value.Value, error) {
			src.Read()
			return readNamespacedMapMacro(src, opts)
		},
	}
}

// readFormStep performs exactly one dispatch attempt: skip leading
// whitespace, then read a single form, possibly returning theSentinel for
// comments and discards. It does not itself loop past a sentinel - callers
// that need the next substantive value use readForm instead.
func readFormStep(src *Source, opts Options) (value.Value, error) {
	skipWhitespace(src)
	r, ok := src.Peek()
	if !ok {
		return nil, io.EOF
	}

	if la, haveLA, err := peekSecond(src, r); err != nil {
		return nil, err
	} else if isNumberStart(r, la, haveLA) {
		return readNumber(src)
	}

	switch r {
	case ')', ']', '}':
		src.Read()
		return nil, unmatchedDelimiter(r)
	}

	if fn, ok := macroTable[r]; ok {
		return fn(src, opts)
	}

	token, err := scanToken(src, "symbol", true)
	if err != nil {
		return nil, err
	}
	return classifyBareToken(token)
}

// peekSecond reports the rune following r (which has only been peeked, not
// consumed) using a single bounded read-then-unread, per spec.md §9's note
// that the two-character lookahead needed for a signed number start is
// satisfiable with a depth-1 pushback buffer.
func peekSecond(src *Source, r rune) (rune, bool, error) {
	if r != '+' && r != '-' {
		return 0, false, nil
	}
	consumed, ok := src.Read()
	if !ok {
		return 0, false, nil
	}
	la, haveLA := src.Peek()
	if err := src.Unread(consumed); err != nil {
		return 0, false, err
	}
	return la, haveLA, nil
}

// readForm returns the next substantive value, transparently skipping any
// number of comments and discards, per spec.md §4.7/§4.8. This is the
// function used everywhere a real value (as opposed to "one dispatch step")
// is required: the top-level entry point, metadata targets, discard's own
// payload, and tagged-literal values.
func readForm(src *Source, opts Options) (value.Value, error) {
	for {
		v, err := readFormStep(src, opts)
		if err != nil {
			return nil, err
		}
		if isSentinel(v) {
			continue
		}
		return v, nil
	}
}

func readLineCommentMacro(src *Source, opts Options) (value.Value, error) {
	src.Read() // ';'
	for {
		r, ok := src.Read()
		if !ok || r == '\n' {
			break
		}
	}
	return theSentinel, nil
}

func readShebangCommentMacro(src *Source, opts Options) (value.Value, error) {
	src.Read() // '!'
	for {
		r, ok := src.Read()
		if !ok || r == '\n' {
			break
		}
	}
	return theSentinel, nil
}

func readDiscardMacro(src *Source, opts Options) (value.Value, error) {
	src.Read() // '_'
	if _, err := readForm(src, opts); err != nil {
		return nil, err
	}
	return theSentinel, nil
}

// readUnreadableMacro reads and rejects #<...>, the printed representation
// of a value with no reader syntax, per spec.md §4.7.
func readUnreadableMacro(src *Source, opts Options) (value.Value, error) {
	src.Read() // '<'
	for {
		r, ok := src.Read()
		if !ok {
			return nil, unexpectedEOF("Unexpected EOF while reading unreadable form")
		}
		if r == '>' {
			return nil, lexicalError("Unreadable form")
		}
	}
}

// readMetaMacro reads ^meta form, attaching meta (coerced to a Map) to the
// value that follows, per spec.md §4.7.
func readMetaMacro(src *Source, opts Options) (value.Value, error) {
	src.Read() // '^' (or '^' reached via the deprecated "#^" alias)
	metaForm, err := readForm(src, opts)
	if err != nil {
		return nil, err
	}
	target, err := readForm(src, opts)
	if err != nil {
		return nil, err
	}
	m, err := coerceMeta(metaForm)
	if err != nil {
		return nil, err
	}
	carrier, ok := target.(value.MetadataCarrier)
	if !ok {
		return nil, lexicalError("Metadata can only be applied to symbols and collections")
	}
	return carrier.WithMeta(m), nil
}

// coerceMeta turns a shorthand metadata form into a Map, per spec.md §4.7:
// a keyword k desugars to {k true}; a symbol or string s desugars to
// {:tag s}; a map is used as-is.
func coerceMeta(v value.Value) (*value.Map, error) {
	switch mv := v.(type) {
	case *value.Map:
		return mv, nil
	case value.Keyword:
		m, err := value.NewMap([]value.MapEntry{{Key: mv, Val: value.Bool(true)}})
		if err != nil {
			return nil, lexicalError("%s", err.Error())
		}
		return m, nil
	case value.Symbol, value.String:
		m, err := value.NewMap([]value.MapEntry{{Key: value.NewKeyword("", "tag"), Val: mv}})
		if err != nil {
			return nil, lexicalError("%s", err.Error())
		}
		return m, nil
	default:
		return nil, lexicalError("Metadata must be a symbol, keyword, string, or map")
	}
}

// readKeywordMacro reads :kw or :ns/kw, per spec.md §4.7. A second leading
// colon ("::kw", auto-resolved keyword) is rejected - see DESIGN.md.
func readKeywordMacro(src *Source, opts Options) (value.Value, error) {
	src.Read() // ':'
	if r, ok := src.Peek(); !ok || isWhitespace(r) {
		return nil, lexicalError("A single colon is not a valid keyword")
	}
	if r, ok := src.Peek(); ok && r == ':' {
		return nil, lexicalError("Invalid token: symbols cannot start with two colons")
	}
	token, err := scanToken(src, "keyword", false)
	if err != nil {
		return nil, err
	}
	ns, name, err := splitSymbolToken(token)
	if err != nil {
		return nil, err
	}
	return value.NewKeyword(ns, name), nil
}

// readDispatchMacro reads the form following '#', per spec.md §4.7: a
// registered dispatch character, or else a tag name followed by a value.
func readDispatchMacro(src *Source, opts Options) (value.Value, error) {
	src.Read() // '#'
	r, ok := src.Peek()
	if !ok {
		return nil, unexpectedEOF("Unexpected EOF while reading dispatch macro")
	}
	if fn, ok := dispatchTable[r]; ok {
		return fn(src, opts)
	}
	if isWhitespace(r) || isTerminatingMacro(r) {
		return nil, noDispatchMacro(r)
	}
	return readTaggedLiteral(src, opts)
}

func readTaggedLiteral(src *Source, opts Options) (value.Value, error) {
	tag, err := scanSymbolToken(src, "tag")
	if err != nil {
		return nil, err
	}
	raw, err := readForm(src, opts)
	if err != nil {
		return nil, err
	}
	return resolveTag(tag, raw, opts)
}
