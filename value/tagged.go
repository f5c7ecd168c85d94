package value

// Tagged is the result of reading `#tag value`: a producer-supplied opaque
// value resulting from a data-reader function, retaining the original tag
// and the untransformed value it was derived from.
type Tagged struct {
	Tag  Symbol
	Raw  Value
	Prod interface{}
}

// Kind implements Value.
func (Tagged) Kind() Kind { return KindTagged }
