package value

import (
	"go/constant"
	"go/token"
)

// Equal reports whether a and b are the same EDN value for the purposes of
// map-key and set-element uniqueness. Metadata is not considered.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Nil:
		return true
	case Bool:
		return av == b.(Bool)
	case Char:
		return av == b.(Char)
	case String:
		return av == b.(String)
	case Symbol:
		bv := b.(Symbol)
		return av.Namespace == bv.Namespace && av.Name == bv.Name
	case Keyword:
		bv := b.(Keyword)
		return av.Namespace == bv.Namespace && av.Name == bv.Name
	case Integer:
		return constant.Compare(av.val, token.EQL, b.(Integer).val)
	case Float:
		return av == b.(Float)
	case Ratio:
		return av.val.Cmp(b.(Ratio).val) == 0
	case BigDecimal:
		return av.val.Cmp(b.(BigDecimal).val) == 0
	case *List:
		return equalSeq(av.Items, b.(*List).Items)
	case *Vector:
		return equalSeq(av.Items, b.(*Vector).Items)
	case *Set:
		return equalUnorderedSet(av.Elems, b.(*Set).Elems)
	case *Map:
		return equalMap(av, b.(*Map))
	case Tagged:
		bv := b.(Tagged)
		return Equal(av.Tag, bv.Tag) && Equal(av.Raw, bv.Raw)
	default:
		return false
	}
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalUnorderedSet(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for j, bv := range b {
			if used[j] {
				continue
			}
			if Equal(av, bv) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func equalMap(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, e := range a.Entries() {
		bv, ok := b.Get(e.Key)
		if !ok || !Equal(e.Val, bv) {
			return false
		}
	}
	return true
}
