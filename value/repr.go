package value

import (
	"fmt"
	"strings"
)

// Repr renders v as a short, human-readable form suitable for embedding in
// an error message (e.g. "Duplicate key: <repr>"). It is not a faithful EDN
// printer; see spec.md's Non-goals.
func Repr(v Value) string {
	switch vv := v.(type) {
	case Nil:
		return "nil"
	case Bool:
		if vv {
			return "true"
		}
		return "false"
	case Char:
		return fmt.Sprintf("\\%c", rune(vv))
	case String:
		return fmt.Sprintf("%q", string(vv))
	case Symbol:
		return vv.String()
	case Keyword:
		return vv.String()
	case Integer:
		return vv.val.ExactString()
	case Float:
		return fmt.Sprintf("%v", float64(vv))
	case Ratio:
		return vv.val.RatString()
	case BigDecimal:
		return vv.val.Text('g', -1) + "M"
	case *List:
		return reprSeq("(", ")", vv.Items)
	case *Vector:
		return reprSeq("[", "]", vv.Items)
	case *Set:
		return reprSeq("#{", "}", vv.Elems)
	case *Map:
		parts := make([]string, 0, vv.Len())
		for _, e := range vv.Entries() {
			parts = append(parts, Repr(e.Key)+" "+Repr(e.Val))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case Tagged:
		return "#" + vv.Tag.String() + " " + Repr(vv.Raw)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func reprSeq(open, close string, items []Value) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, Repr(it))
	}
	return open + strings.Join(parts, " ") + close
}
