package batch

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/edn-lang/edn/value"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(value.Equal),
	cmpopts.EquateEmpty(),
	cmpopts.IgnoreFields(Result{}, "Err"),
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(%q): %v", path, err)
	}
	return path
}

func TestReadGlob(t *testing.T) {
	dir, err := ioutil.TempDir("", "batch_test")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(dir)

	writeTemp(t, dir, "a.edn", "1 2")
	writeTemp(t, dir, "b.edn", "[:x :y]")
	writeTemp(t, dir, "c.edn", "(unterminated")

	results, err := ReadGlob(context.Background(), filepath.Join(dir, "*.edn"), Options{Concurrency: 2})
	if err != nil {
		t.Fatalf("ReadGlob: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	byPath := make(map[string]Result, len(results))
	for _, r := range results {
		byPath[r.Path] = r
	}

	a := byPath[filepath.Join(dir, "a.edn")]
	want := []value.Value{value.NewIntegerInt64(1), value.NewIntegerInt64(2)}
	if diff := cmp.Diff(want, a.Forms, cmpOpts...); diff != "" {
		t.Errorf("a.edn forms diff (-want +got):\n%s", diff)
	}
	if a.Err != nil {
		t.Errorf("a.edn Err = %v, want nil", a.Err)
	}

	c := byPath[filepath.Join(dir, "c.edn")]
	if c.Err == nil {
		t.Error("c.edn Err = nil, want a non-nil error for an unterminated list")
	}
}

func TestReadGlobInvalidPattern(t *testing.T) {
	_, err := ReadGlob(context.Background(), "[", Options{})
	if err == nil {
		t.Fatal("expected an error for a malformed glob pattern")
	}
}
