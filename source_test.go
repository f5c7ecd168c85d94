package edn

import "testing"

func TestSourcePeekReadUnread(t *testing.T) {
	src := NewStringSource("ab")

	if r, ok := src.Peek(); !ok || r != 'a' {
		t.Fatalf("Peek() = %q, %v; want 'a', true", r, ok)
	}
	if r, ok := src.Peek(); !ok || r != 'a' {
		t.Fatalf("second Peek() = %q, %v; want 'a', true (peek must not consume)", r, ok)
	}
	r, ok := src.Read()
	if !ok || r != 'a' {
		t.Fatalf("Read() = %q, %v; want 'a', true", r, ok)
	}
	if err := src.Unread(r); err != nil {
		t.Fatalf("Unread() = %v", err)
	}
	if r, ok := src.Peek(); !ok || r != 'a' {
		t.Fatalf("Peek() after Unread = %q, %v; want 'a', true", r, ok)
	}

	r, ok = src.Read()
	if !ok || r != 'a' {
		t.Fatalf("Read() after unread-peek = %q, %v; want 'a', true", r, ok)
	}
	r, ok = src.Read()
	if !ok || r != 'b' {
		t.Fatalf("Read() = %q, %v; want 'b', true", r, ok)
	}
	if _, ok := src.Read(); ok {
		t.Fatalf("Read() at EOF returned ok=true")
	}
}

func TestSourceUnreadBeyondDepthErrors(t *testing.T) {
	src := NewStringSource("a", WithPushbackDepth(1))
	r, _ := src.Read()
	if err := src.Unread(r); err != nil {
		t.Fatalf("first Unread() = %v", err)
	}
	if err := src.Unread(r); err == nil {
		t.Fatalf("second Unread() beyond depth 1 should have errored")
	}
}

func TestSourceUnreadWithoutReadErrors(t *testing.T) {
	src := NewStringSource("a")
	if err := src.Unread('x'); err == nil {
		t.Fatal("Unread() with no prior Read() should have errored")
	}
}

func TestSourceLineColumnTracking(t *testing.T) {
	src := NewStringSource("ab\ncd")
	for i := 0; i < 3; i++ {
		src.Read()
	}
	if src.Line() != 2 || src.Column() != 1 {
		t.Fatalf("after reading past the newline: line=%d col=%d, want line=2 col=1", src.Line(), src.Column())
	}
}

func TestSourceWithoutIndexing(t *testing.T) {
	src := NewStringSource("ab", WithoutIndexing())
	if src.Indexing() {
		t.Fatal("Indexing() = true, want false")
	}
}
