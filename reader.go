package edn

import (
	"io"

	"github.com/edn-lang/edn/value"
)

// Read reads a single form from source, applying opts, per spec.md §3/§6.
// This is the single outermost entry point: every error it returns is a
// *ReaderError, with position attached when source has indexing enabled.
//
// On clean end-of-input with no form read: if opts.EOF is set, its value is
// returned with a nil error; otherwise an *ReaderError of kind
// ErrUnexpectedEOF is returned.
func Read(opts Options, source *Source) (value.Value, error) {
	v, err := readForm(source, opts)
	if err != nil {
		if err == io.EOF {
			if opts.EOF != nil {
				return *opts.EOF, nil
			}
			return nil, wrapTopLevel(source, unexpectedEOF("Unexpected EOF while reading"))
		}
		return nil, wrapTopLevel(source, err)
	}
	return v, nil
}

// ReadString reads a single form from s, applying opts. An empty string
// returns (nil, nil), per spec.md §6, distinct from an explicit opts.EOF
// value (which only applies when the input contains nothing but whitespace
// and comments).
func ReadString(opts Options, s string) (value.Value, error) {
	if s == "" {
		return nil, nil
	}
	return Read(opts, NewStringSource(s))
}
