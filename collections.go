package edn

import "github.com/edn-lang/edn/value"

// skipWhitespace consumes a run of whitespace (commas included), per
// spec.md's convention that commas are whitespace.
func skipWhitespace(src *Source) {
	for {
		r, ok := src.Peek()
		if !ok || !isWhitespace(r) {
			return
		}
		src.Read()
	}
}

// readDelimited reads forms up to and including the closing delimiter,
// skipping sentinel-producing forms (comments, discards) along the way, per
// spec.md §4.6.
func readDelimited(src *Source, opts Options, close rune, kind string) ([]value.Value, error) {
	startLine := src.Line()
	var items []value.Value
	for {
		skipWhitespace(src)
		r, ok := src.Peek()
		if !ok {
			return nil, unexpectedEOFInCollection(kind, startLine)
		}
		if r == close {
			src.Read()
			return items, nil
		}
		v, err := readFormStep(src, opts)
		if err != nil {
			return nil, err
		}
		if isSentinel(v) {
			continue
		}
		items = append(items, v)
	}
}

func readListMacro(src *Source, opts Options) (value.Value, error) {
	items, err := readDelimited(src, opts, ')', "list")
	if err != nil {
		return nil, err
	}
	return value.NewList(items), nil
}

func readVectorMacro(src *Source, opts Options) (value.Value, error) {
	items, err := readDelimited(src, opts, ']', "vector")
	if err != nil {
		return nil, err
	}
	return value.NewVector(items), nil
}

func entriesFromPairs(items []value.Value) ([]value.MapEntry, error) {
	if len(items)%2 != 0 {
		return nil, lexicalError("Map literal must contain an even number of forms")
	}
	entries := make([]value.MapEntry, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		entries = append(entries, value.MapEntry{Key: items[i], Val: items[i+1]})
	}
	return entries, nil
}

func readMapMacro(src *Source, opts Options) (value.Value, error) {
	items, err := readDelimited(src, opts, '}', "map")
	if err != nil {
		return nil, err
	}
	entries, err := entriesFromPairs(items)
	if err != nil {
		return nil, err
	}
	m, err := value.NewMap(entries)
	if err != nil {
		return nil, lexicalError("%s", err.Error())
	}
	return m, nil
}

func readSetMacro(src *Source, opts Options) (value.Value, error) {
	items, err := readDelimited(src, opts, '}', "set")
	if err != nil {
		return nil, err
	}
	s, err := value.NewSet(items)
	if err != nil {
		return nil, lexicalError("%s", err.Error())
	}
	return s, nil
}

// readNamespacedMapMacro reads #:ns{...}, qualifying every bare-named
// keyword or symbol key with ns, per spec.md §4.7; keys that are not
// keywords or symbols, or that are already namespaced, are left unchanged.
// #::{...} (auto-resolved namespace) is not supported - see DESIGN.md.
func readNamespacedMapMacro(src *Source, opts Options) (value.Value, error) {
	// The leading ':' of "#:" has already been consumed by the dispatch
	// table lookup itself (it is the table key); nothing more to consume
	// here before the prefix token.
	next, ok := src.Peek()
	if ok && next == ':' {
		return nil, lexicalError("Auto-resolved namespaced maps (#::) are not supported")
	}
	nsSym, err := scanSymbolToken(src, "namespaced map prefix")
	if err != nil {
		return nil, err
	}
	skipWhitespace(src)
	brace, ok := src.Read()
	if !ok {
		return nil, unexpectedEOF("Unexpected EOF while reading namespaced map")
	}
	if brace != '{' {
		return nil, lexicalError("Expected { after namespaced map prefix, found [%c]", brace)
	}
	items, err := readDelimited(src, opts, '}', "map")
	if err != nil {
		return nil, err
	}
	entries, err := entriesFromPairs(items)
	if err != nil {
		return nil, err
	}
	ns := nsSym.String()
	for i, e := range entries {
		switch k := e.Key.(type) {
		case value.Keyword:
			if k.Namespace == "" {
				entries[i].Key = value.NewKeyword(ns, k.Name)
			}
		case value.Symbol:
			if k.Namespace == "" {
				entries[i].Key = value.NewSymbol(ns, k.Name)
			}
		}
	}
	m, err := value.NewMap(entries)
	if err != nil {
		return nil, lexicalError("%s", err.Error())
	}
	return m, nil
}
