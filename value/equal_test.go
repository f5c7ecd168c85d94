package value

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(Equal),
	cmpopts.EquateEmpty(),
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil equals nil", Nil{}, Nil{}, true},
		{"bool true equals true", Bool(true), Bool(true), true},
		{"bool true not false", Bool(true), Bool(false), false},
		{"same integer", NewIntegerInt64(7), NewIntegerInt64(7), true},
		{"integer across representations", NewIntegerInt64(7), NewIntegerBig(big.NewInt(7)), true},
		{"different integers", NewIntegerInt64(7), NewIntegerInt64(8), false},
		{"ratio reduces", NewRatio(big.NewInt(2), big.NewInt(4)), NewRatio(big.NewInt(1), big.NewInt(2)), true},
		{"float equal", Float(1.5), Float(1.5), true},
		{"kind mismatch never equal", NewIntegerInt64(1), Float(1), false},
		{"symbol with namespace", NewSymbol("a", "b"), NewSymbol("a", "b"), true},
		{"symbol namespace mismatch", NewSymbol("a", "b"), NewSymbol("c", "b"), false},
		{"keyword equal", NewKeyword("", "k"), NewKeyword("", "k"), true},
		{
			"list order matters",
			NewList([]Value{NewIntegerInt64(1), NewIntegerInt64(2)}),
			NewList([]Value{NewIntegerInt64(2), NewIntegerInt64(1)}),
			false,
		},
		{
			"set order does not matter",
			mustSet(t, NewIntegerInt64(1), NewIntegerInt64(2)),
			mustSet(t, NewIntegerInt64(2), NewIntegerInt64(1)),
			true,
		},
		{
			"map key order does not matter",
			mustMap(t, []MapEntry{{NewKeyword("", "a"), NewIntegerInt64(1)}, {NewKeyword("", "b"), NewIntegerInt64(2)}}),
			mustMap(t, []MapEntry{{NewKeyword("", "b"), NewIntegerInt64(2)}, {NewKeyword("", "a"), NewIntegerInt64(1)}}),
			true,
		},
		{
			"list vs vector never equal",
			NewList([]Value{NewIntegerInt64(1)}),
			NewVector([]Value{NewIntegerInt64(1)}),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", Repr(tt.a), Repr(tt.b), got, tt.want)
			}
		})
	}
}

func mustSet(t *testing.T, elems ...Value) *Set {
	t.Helper()
	s, err := NewSet(elems)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return s
}

func mustMap(t *testing.T, entries []MapEntry) *Map {
	t.Helper()
	m, err := NewMap(entries)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	return m
}

func TestNewMapRejectsDuplicateKeys(t *testing.T) {
	_, err := NewMap([]MapEntry{
		{NewKeyword("", "a"), NewIntegerInt64(1)},
		{NewKeyword("", "a"), NewIntegerInt64(2)},
	})
	if err == nil {
		t.Fatal("expected an error for a duplicate key, got nil")
	}
}

func TestNewSetRejectsDuplicateElements(t *testing.T) {
	_, err := NewSet([]Value{NewIntegerInt64(1), NewIntegerInt64(1)})
	if err == nil {
		t.Fatal("expected an error for a duplicate element, got nil")
	}
}

func TestMapWithMetaMergesOverExisting(t *testing.T) {
	base := mustMap(t, []MapEntry{{NewKeyword("", "a"), Bool(true)}})
	override := mustMap(t, []MapEntry{{NewKeyword("", "a"), Bool(false)}, {NewKeyword("", "b"), Bool(true)}})

	withMeta := base.WithMeta(override).(*Map)
	merged := withMeta.Meta()

	got, ok := merged.Get(NewKeyword("", "a"))
	if !ok || !cmp.Equal(got, Value(Bool(false)), cmpOpts...) {
		t.Errorf("merged[:a] = %v, %v; want false, true", got, ok)
	}
	if _, ok := merged.Get(NewKeyword("", "b")); !ok {
		t.Errorf("merged[:b] missing")
	}
}
