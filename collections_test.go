package edn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/edn-lang/edn/value"
)

func TestReadNamespacedMap(t *testing.T) {
	tests := []struct {
		name string
		text string
		want value.Value
	}{
		{
			"bare keyword key gets qualified",
			`#:foo{:bar 1}`,
			mustMap(t, value.MapEntry{Key: value.NewKeyword("foo", "bar"), Val: value.NewIntegerInt64(1)}),
		},
		{
			"bare symbol key gets qualified",
			`#:foo{bar 1}`,
			mustMap(t, value.MapEntry{Key: value.NewSymbol("foo", "bar"), Val: value.NewIntegerInt64(1)}),
		},
		{
			"already-namespaced keyword key is left unchanged",
			`#:foo{:other/bar 1}`,
			mustMap(t, value.MapEntry{Key: value.NewKeyword("other", "bar"), Val: value.NewIntegerInt64(1)}),
		},
		{
			"non-symbolic key is left unchanged",
			`#:foo{"bar" 1}`,
			mustMap(t, value.MapEntry{Key: value.String("bar"), Val: value.NewIntegerInt64(1)}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadString(Options{}, tt.text)
			if err != nil {
				t.Fatalf("ReadString(%q) error: %v", tt.text, err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.Comparer(value.Equal), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ReadString(%q) diff (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestReadNamespacedMapRejectsAutoResolve(t *testing.T) {
	_, err := ReadString(Options{}, `#::{:bar 1}`)
	if err == nil {
		t.Fatal("expected an error for #::{...}")
	}
}
