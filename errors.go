package edn

import (
	"errors"
	"fmt"

	"github.com/mitchellh/go-wordwrap"
)

// ErrKind classifies the reason a read failed, per spec.md §7.
type ErrKind int

const (
	// ErrLexical covers malformed tokens, invalid escapes, invalid digits
	// for a base, duplicate set elements, odd map form counts,
	// metadata-not-allowed, and single/double-colon keyword errors.
	ErrLexical ErrKind = iota
	// ErrUnexpectedEOF covers end-of-input reached inside a string, char,
	// collection, dispatch form, or token.
	ErrUnexpectedEOF
	// ErrUnmatchedDelimiter covers a stray ')', ']', or '}'.
	ErrUnmatchedDelimiter
	// ErrNoDispatchMacro covers "#x" where x is not registered and not a
	// valid tag start.
	ErrNoDispatchMacro
	// ErrNoTagReader covers a tag that resolves to no reader function and
	// no default.
	ErrNoTagReader
)

func (k ErrKind) String() string {
	switch k {
	case ErrLexical:
		return "LexicalError"
	case ErrUnexpectedEOF:
		return "UnexpectedEof"
	case ErrUnmatchedDelimiter:
		return "UnmatchedDelimiter"
	case ErrNoDispatchMacro:
		return "NoDispatchMacro"
	case ErrNoTagReader:
		return "NoTagReader"
	default:
		return "ReaderError"
	}
}

// rawFault is the unexported, position-less failure raised at the exact
// point something goes wrong inside the reader. The single outermost entry
// point (Read/ReadString) converts every rawFault it catches into an
// exported *ReaderError, attaching position once. A rawFault that is itself
// already a *ReaderError (e.g. one that escaped a caller-supplied tag
// reader function that itself called back into this package) is rethrown
// unchanged instead of being re-wrapped, per spec.md §4.8.
type rawFault struct {
	kind         ErrKind
	message      string
	cause        error
	delim        rune
	hasStartLine bool
	startLine    int
}

func (f *rawFault) Error() string { return f.message }
func (f *rawFault) Unwrap() error { return f.cause }

func lexicalError(format string, args ...interface{}) *rawFault {
	return &rawFault{kind: ErrLexical, message: fmt.Sprintf(format, args...)}
}

func unexpectedEOF(format string, args ...interface{}) *rawFault {
	return &rawFault{kind: ErrUnexpectedEOF, message: fmt.Sprintf(format, args...)}
}

func unexpectedEOFInCollection(kind string, startLine int) *rawFault {
	return &rawFault{
		kind:         ErrUnexpectedEOF,
		message:      fmt.Sprintf("Unexpected EOF while reading %s, starting at line %d", kind, startLine),
		hasStartLine: true,
		startLine:    startLine,
	}
}

func unmatchedDelimiter(r rune) *rawFault {
	return &rawFault{
		kind:    ErrUnmatchedDelimiter,
		message: fmt.Sprintf("Unmatched delimiter: %c", r),
		delim:   r,
	}
}

func noDispatchMacro(r rune) *rawFault {
	return &rawFault{
		kind:    ErrNoDispatchMacro,
		message: fmt.Sprintf("No dispatch macro for: %c", r),
	}
}

func noTagReader(tag string) *rawFault {
	return &rawFault{
		kind:    ErrNoTagReader,
		message: fmt.Sprintf("No reader function for tag %s", tag),
	}
}

// wrapCause wraps an arbitrary untrusted error (e.g. from a caller-supplied
// tag reader or default function) as a lexical rawFault, preserving it as
// the cause.
func wrapCause(format string, err error) *rawFault {
	return &rawFault{kind: ErrLexical, message: fmt.Sprintf(format, err), cause: err}
}

// ReaderError is the single exported exception type through which every
// reader failure is surfaced, per spec.md §6/§8.
type ReaderError struct {
	Kind    ErrKind
	Message string
	Cause   error

	HasPosition bool
	Line        int
	Column      int
	File        string

	// Delim is set for ErrUnmatchedDelimiter: the offending character.
	Delim rune

	// StartLine is set for an ErrUnexpectedEOF raised while reading a
	// collection: the line the collection began on.
	HasStartLine bool
	StartLine    int
}

// Error implements error. Long messages are word-wrapped for terminal
// display, grounded on the teacher's use of go-wordwrap for generated doc
// comments (xmlinfer.go).
func (e *ReaderError) Error() string {
	msg := e.Message
	if e.HasPosition {
		if e.File != "" {
			msg = fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, msg)
		} else {
			msg = fmt.Sprintf("%d:%d: %s", e.Line, e.Column, msg)
		}
	}
	return wordwrap.WrapString(msg, 100)
}

// Unwrap implements the errors.Unwrap protocol so callers can errors.As /
// errors.Is through a ReaderError to its cause.
func (e *ReaderError) Unwrap() error { return e.Cause }

// wrapTopLevel translates a raw failure from inside the reader into a
// position-tagged ReaderError, per spec.md §4.8/§7. An error that is already
// a *ReaderError is rethrown unchanged.
func wrapTopLevel(src *Source, err error) error {
	if err == nil {
		return nil
	}
	var already *ReaderError
	if errors.As(err, &already) {
		return already
	}
	wrapped := &ReaderError{
		Kind:    ErrLexical,
		Message: err.Error(),
		Cause:   err,
	}
	var rf *rawFault
	if errors.As(err, &rf) {
		wrapped.Kind = rf.kind
		wrapped.Message = rf.message
		wrapped.Delim = rf.delim
		wrapped.HasStartLine = rf.hasStartLine
		wrapped.StartLine = rf.startLine
		if rf.cause != nil {
			wrapped.Cause = rf.cause
		}
	}
	if src.Indexing() {
		wrapped.HasPosition = true
		wrapped.Line = src.Line()
		wrapped.Column = src.Column()
		wrapped.File = src.FileName()
	}
	return wrapped
}
