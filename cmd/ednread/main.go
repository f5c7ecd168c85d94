// Program ednread reads every EDN form out of the files matched by a glob
// pattern and prints them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/mitchellh/go-wordwrap"
	"github.com/stoewer/go-strcase"

	"github.com/edn-lang/edn"
	"github.com/edn-lang/edn/batch"
	"github.com/edn-lang/edn/value"
)

var cfg = registerFlags(flag.CommandLine)

type config struct {
	edn         string
	print       bool
	eofValue    string
	concurrency int
}

func registerFlags(fs *flag.FlagSet) *config {
	cfg := &config{}
	fs.StringVar(&cfg.edn, "edn", "", "glob pattern of EDN files to read")
	fs.BoolVar(&cfg.print, "print", true, "print each form read")
	fs.StringVar(&cfg.eofValue, "eof_value", "", "if set, an EDN form that must parse; file reads always stop cleanly at end of file, so the form is never returned or printed")
	fs.IntVar(&cfg.concurrency, "concurrency", 4, "number of files to read concurrently")
	return cfg
}

func main() {
	flag.Parse()
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, wordwrap.WrapString(fmt.Sprintf("ednread: %v", err), 100))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if cfg.edn == "" {
		return fmt.Errorf("-edn is required")
	}

	readOpts := edn.Options{
		Default: suggestTagReaderStub,
	}
	if cfg.eofValue != "" {
		eofForm, err := edn.ReadString(edn.Options{}, cfg.eofValue)
		if err != nil {
			return fmt.Errorf("-eof_value: %w", err)
		}
		readOpts = readOpts.WithEOF(eofForm)
	}

	results, err := batch.ReadGlob(ctx, cfg.edn, batch.Options{
		Concurrency: cfg.concurrency,
		ReadOptions: readOpts,
	})
	if err != nil {
		return err
	}

	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
			glog.Errorf("%s: %v", r.Path, r.Err)
			continue
		}
		if cfg.print {
			for _, form := range r.Forms {
				fmt.Printf("%s: %s\n", r.Path, value.Repr(form))
			}
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d file(s) failed to read", failures, len(results))
	}
	return nil
}

// suggestTagReaderStub is the default reader consulted when a tag has no
// registered handler and no built-in applies: rather than just failing, it
// names the Go identifier a caller would plausibly register a reader under.
func suggestTagReaderStub(tag value.Symbol, v value.Value) (value.Value, error) {
	suggestion := strcase.UpperCamelCase(tag.Name)
	return nil, fmt.Errorf("no reader registered for tag %s (consider a reader named like Read%s)", tag.String(), suggestion)
}
