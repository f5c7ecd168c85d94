// Package value defines the EDN data model: the tagged union of values a
// reader in the parent edn package produces.
package value

// Kind identifies which variant of the EDN value union a Value implements.
type Kind int

// The variants of the EDN value union, per the data model.
const (
	KindNil Kind = iota
	KindBool
	KindInteger
	KindRatio
	KindFloat
	KindBigDecimal
	KindChar
	KindString
	KindSymbol
	KindKeyword
	KindList
	KindVector
	KindMap
	KindSet
	KindTagged
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindRatio:
		return "ratio"
	case KindFloat:
		return "float"
	case KindBigDecimal:
		return "big-decimal"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindKeyword:
		return "keyword"
	case KindList:
		return "list"
	case KindVector:
		return "vector"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	case KindTagged:
		return "tagged"
	default:
		return "unknown"
	}
}

// Value is the output of a read: one fully-parsed EDN form.
type Value interface {
	// Kind reports which variant of the union this Value implements.
	Kind() Kind
}

// MetadataCarrier is implemented by the Value variants that `^` metadata may
// attach to: collections and symbols. Attaching metadata to any other kind
// of Value is a reader error.
type MetadataCarrier interface {
	Value

	// Meta returns the metadata map attached to this value, or nil if none.
	Meta() *Map

	// WithMeta returns a copy of this value with m merged over any existing
	// metadata, m's keys taking precedence on conflict.
	WithMeta(m *Map) Value
}

// Nil is the EDN nil literal.
type Nil struct{}

// Kind implements Value.
func (Nil) Kind() Kind { return KindNil }

// Bool is the EDN true/false literal.
type Bool bool

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }

// Char is a single Unicode scalar value, e.g. \a, \newline, A.
type Char rune

// Kind implements Value.
func (Char) Kind() Kind { return KindChar }

// String is an EDN string literal's decoded value.
type String string

// Kind implements Value.
func (String) Kind() Kind { return KindString }
