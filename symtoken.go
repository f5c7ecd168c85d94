package edn

import (
	"math"
	"strings"

	"github.com/edn-lang/edn/value"
)

// splitSymbolToken splits a scanned token into an optional namespace and a
// name, rejecting malformed shapes, per spec.md §4.7's "[ns/]name" rule. The
// literal token "/" is itself a valid, unnamespaced symbol/keyword name.
func splitSymbolToken(token string) (namespace, name string, err error) {
	if token == "/" {
		return "", "/", nil
	}
	idx := strings.IndexByte(token, '/')
	if idx < 0 {
		return "", token, nil
	}
	namespace, name = token[:idx], token[idx+1:]
	if namespace == "" || name == "" || strings.Contains(name, "/") {
		return "", "", lexicalError("Invalid symbol: %s", token)
	}
	return namespace, name, nil
}

// symbolSpecials maps the reserved bare-symbol tokens to their literal
// values, per spec.md §4.7.
var symbolSpecials = map[string]value.Value{
	"nil":       value.Nil{},
	"true":      value.Bool(true),
	"false":     value.Bool(false),
	"NaN":       value.Float(math.NaN()),
	"-Infinity": value.Float(math.Inf(-1)),
	"+Infinity": value.Float(math.Inf(1)),
	"Infinity":  value.Float(math.Inf(1)),
}

// classifyBareToken turns a scanned bare token into either one of the
// reserved literal values or a Symbol, per spec.md §4.7's final dispatch
// fallback.
func classifyBareToken(token string) (value.Value, error) {
	if v, ok := symbolSpecials[token]; ok {
		return v, nil
	}
	ns, name, err := splitSymbolToken(token)
	if err != nil {
		return nil, err
	}
	return value.NewSymbol(ns, name), nil
}

// scanSymbolToken reads a plain symbol token, used where the grammar
// requires a symbol specifically (tag names, namespaced-map prefixes) and
// the nil/true/false/etc. special-word mapping does not apply.
func scanSymbolToken(src *Source, kind string) (value.Symbol, error) {
	token, err := scanToken(src, kind, true)
	if err != nil {
		return value.Symbol{}, err
	}
	ns, name, err := splitSymbolToken(token)
	if err != nil {
		return value.Symbol{}, err
	}
	return value.NewSymbol(ns, name), nil
}
