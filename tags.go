package edn

import (
	"strings"
	"time"

	"github.com/edn-lang/edn/value"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// instLayouts are tried in order against an #inst literal's string, widest
// (fractional seconds + offset) first.
var instLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02",
}

// readInst implements the built-in #inst tag, producing a
// *timestamppb.Timestamp rather than a bare time.Time so downstream
// protobuf-based consumers of a read value need no further conversion.
func readInst(v value.Value) (value.Value, error) {
	s, ok := v.(value.String)
	if !ok {
		return nil, lexicalError("#inst requires a string, got %s", value.Repr(v))
	}
	var t time.Time
	var err error
	for _, layout := range instLayouts {
		t, err = time.Parse(layout, string(s))
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, lexicalError("Invalid #inst value: %s", string(s))
	}
	return value.Tagged{
		Tag:  value.NewSymbol("", "inst"),
		Raw:  v,
		Prod: timestamppb.New(t),
	}, nil
}

// uuidGroupLens are the hex-digit-run lengths of the canonical 8-4-4-4-12
// UUID string form, per the RFC 4122 layout bitgirder's uuid.go produces.
var uuidGroupLens = [5]int{8, 4, 4, 4, 12}

// readUUID implements the built-in #uuid tag.
func readUUID(v value.Value) (value.Value, error) {
	s, ok := v.(value.String)
	if !ok {
		return nil, lexicalError("#uuid requires a string, got %s", value.Repr(v))
	}
	str := string(s)
	groups := strings.Split(str, "-")
	if len(groups) != len(uuidGroupLens) {
		return nil, lexicalError("Invalid #uuid value: %s", str)
	}
	for i, g := range groups {
		if len(g) != uuidGroupLens[i] || !allHex(g) {
			return nil, lexicalError("Invalid #uuid value: %s", str)
		}
	}
	return value.String(strings.ToLower(str)), nil
}

func allHex(s string) bool {
	for _, r := range s {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

// builtinTagReaders are consulted after opts.Readers and before opts.Default,
// per spec.md §3/§4.7.
var builtinTagReaders = map[string]TagReader{
	"inst": readInst,
	"uuid": readUUID,
}

// resolveTag applies the reader registered for tag to raw, in the order
// documented on Options: caller-supplied opts.Readers, then the built-in
// inst/uuid readers, then opts.Default, else ErrNoTagReader.
func resolveTag(tag value.Symbol, raw value.Value, opts Options) (value.Value, error) {
	if fn, ok := opts.Readers[tag]; ok {
		v, err := fn(raw)
		if err != nil {
			return nil, wrapCause("Error invoking reader for tag "+tag.String()+": %s", err)
		}
		return v, nil
	}
	if tag.Namespace == "" {
		if fn, ok := builtinTagReaders[tag.Name]; ok {
			v, err := fn(raw)
			if err != nil {
				return nil, err
			}
			return v, nil
		}
	}
	if opts.Default != nil {
		v, err := opts.Default(tag, raw)
		if err != nil {
			return nil, wrapCause("Error invoking default reader for tag "+tag.String()+": %s", err)
		}
		return v, nil
	}
	return nil, noTagReader(tag.String())
}
