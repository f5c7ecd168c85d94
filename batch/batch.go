// Package batch reads every EDN form out of every file matched by a glob
// pattern. Each file is read by a single goroutine; files are fanned out
// across a bounded pool of goroutines.
package batch

import (
	"context"
	"os"

	"github.com/bmatcuk/doublestar"
	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/edn-lang/edn"
	"github.com/edn-lang/edn/value"
)

// Result is the outcome of reading one matched file. A file that fails to
// open or that the reader rejects reports Err, and does not fail the rest of
// the batch; when the reader rejects a file, Forms holds the forms read
// before the failure.
type Result struct {
	Path  string
	Forms []value.Value
	Err   error
}

// Options configures a glob read. Concurrency bounds how many files are read
// at once; a value <= 0 means 1.
type Options struct {
	Concurrency int
	ReadOptions edn.Options
}

// ReadGlob matches pattern against the filesystem and reads every form out
// of every matched file. Per-file errors are collected into the returned
// Result slice rather than aborting the batch; the returned error is
// non-nil only when the glob pattern itself is invalid, matching the
// filesystem fails, or ctx is done before every file has been read.
func ReadGlob(ctx context.Context, pattern string, opts Options) ([]Result, error) {
	paths, err := doublestar.Glob(pattern)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("batch: %d file(s) matched %q", len(paths), pattern)

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-sem }()

			results[i] = readFile(path, opts.ReadOptions)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readFile reads every form out of a single file using its own Source, so
// no Source is shared between goroutines. It replaces any EOF option in
// readOpts with a private end marker and stops at a clean end of file.
func readFile(path string, readOpts edn.Options) Result {
	f, err := os.Open(path)
	if err != nil {
		glog.Warningf("batch: %s: %v", path, err)
		return Result{Path: path, Err: err}
	}
	defer f.Close()

	eofSentinel := value.Value(eofMarker{})
	opts := readOpts.WithEOF(eofSentinel)
	src := edn.NewSource(f, path)

	var forms []value.Value
	for {
		v, err := edn.Read(opts, src)
		if err != nil {
			glog.Warningf("batch: %s: %v", path, err)
			return Result{Path: path, Forms: forms, Err: err}
		}
		if v == eofSentinel {
			return Result{Path: path, Forms: forms}
		}
		forms = append(forms, v)
	}
}

// eofMarker is a private Value type used only to detect the end of a file's
// form stream; it can never be produced by a real read, since the reader
// never returns an unexported type.
type eofMarker struct{}

func (eofMarker) Kind() value.Kind { return value.Kind(-1) }
