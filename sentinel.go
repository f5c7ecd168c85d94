package edn

import "github.com/edn-lang/edn/value"

// sentinel is returned by forms that consume input but produce nothing: line
// comments, shebang comments, and #_ discard. It is never equal to any value
// produced by a real form and is recognized by its type (see isSentinel).
type sentinel struct{}

func (sentinel) Kind() value.Kind { return value.Kind(-1) }

var theSentinel value.Value = sentinel{}

func isSentinel(v value.Value) bool {
	_, ok := v.(sentinel)
	return ok
}
