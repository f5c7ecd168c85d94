package value

// Symbol is an EDN symbol: an optional namespace plus a required name. A
// Symbol never begins with ':'.
type Symbol struct {
	Namespace string
	Name      string
	meta      *Map
}

// NewSymbol returns a Symbol with no metadata.
func NewSymbol(namespace, name string) Symbol {
	return Symbol{Namespace: namespace, Name: name}
}

// Kind implements Value.
func (Symbol) Kind() Kind { return KindSymbol }

// Meta implements MetadataCarrier.
func (s Symbol) Meta() *Map { return s.meta }

// WithMeta implements MetadataCarrier.
func (s Symbol) WithMeta(m *Map) Value {
	merged := s.meta.mergeOverriddenBy(m)
	s.meta = merged
	return s
}

// String returns the symbol's textual form, `ns/name` if namespaced.
func (s Symbol) String() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}

// Keyword is an EDN keyword: an optional namespace plus a required name,
// always conceptually prefixed by exactly one ':'. Keywords cannot carry
// metadata.
type Keyword struct {
	Namespace string
	Name      string
}

// NewKeyword returns a Keyword for the given namespace (possibly empty) and
// name.
func NewKeyword(namespace, name string) Keyword {
	return Keyword{Namespace: namespace, Name: name}
}

// Kind implements Value.
func (Keyword) Kind() Kind { return KindKeyword }

// String returns the keyword's textual form, including the leading ':'.
func (k Keyword) String() string {
	if k.Namespace == "" {
		return ":" + k.Name
	}
	return ":" + k.Namespace + "/" + k.Name
}
