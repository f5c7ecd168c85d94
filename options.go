package edn

import "github.com/edn-lang/edn/value"

// TagReader transforms the raw value read after a tag into a domain value.
type TagReader func(value.Value) (value.Value, error)

// DefaultTagReader is consulted when no reader is registered for a tag, via
// Options.Default.
type DefaultTagReader func(tag value.Symbol, v value.Value) (value.Value, error)

// Options configures a single call to Read or ReadString, per spec.md §3.
// The zero value is the documented default: end-of-input raises, no custom
// tag readers, no default tag reader.
type Options struct {
	// EOF, if non-nil, is returned on clean end-of-input instead of
	// raising. A nil EOF (the zero value) means "absent": end-of-input
	// raises, per spec.md's "If absent, end-of-input raises."
	EOF *value.Value

	// Readers maps a tag symbol to a function invoked with the value
	// following "#tag ", consulted before the built-in defaults.
	Readers map[value.Symbol]TagReader

	// Default is consulted when no tag-specific reader matches and no
	// built-in default (inst, uuid) applies.
	Default DefaultTagReader
}

// WithEOF returns a copy of opts configured to return v on end-of-input
// instead of raising.
func (opts Options) WithEOF(v value.Value) Options {
	opts.EOF = &v
	return opts
}
