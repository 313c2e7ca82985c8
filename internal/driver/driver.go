// Package driver parses many source files at once for the CLI.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"monkey/internal/ast"
	"monkey/internal/errors"
	"monkey/internal/parser"
)

var log = commonlog.GetLogger("monkey.driver")

type Options struct {
	Modes []parser.Mode
	// Jobs bounds the number of files parsed at once; 0 means GOMAXPROCS.
	Jobs int
	// CrossCheck re-parses every clean file with the reference grammar. It implies
	// parser.StatementValues.
	CrossCheck bool
}

// Result is the outcome for one file. Err is set when the file could not be read; the
// other fields are then empty.
type Result struct {
	Path        string
	Source      string
	Program     *ast.Program
	Diagnostics []errors.CompilerError
	Err         error
}

// Failed reports whether the file produced an I/O error or any diagnostic.
func (r Result) Failed() bool {
	return r.Err != nil || len(r.Diagnostics) > 0
}

// ListFiles expands paths into source files. Files are kept as given; directories are
// walked for files whose extension is in exts, in lexical order.
func ListFiles(paths []string, exts []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		var found []string
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && slices.Contains(exts, filepath.Ext(p)) {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %q: %w", path, err)
		}
		slices.Sort(found)
		files = append(files, found...)
	}
	return files, nil
}

// ParseSource parses one in-memory file.
func ParseSource(path, source string, opts Options) Result {
	modes := opts.Modes
	if opts.CrossCheck {
		modes = append(slices.Clone(modes), parser.StatementValues)
	}

	program, diags := parser.ParseSource(source, modes...)
	if opts.CrossCheck && len(diags) == 0 {
		diags = CrossCheck(path, source, program)
	}

	return Result{Path: path, Source: source, Program: program, Diagnostics: diags}
}

// ParseFile reads and parses one file.
func ParseFile(path string, opts Options) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("failed to read file: %w", err)}
	}
	return ParseSource(path, string(data), opts)
}

// ParseFiles parses files concurrently. Results are in the same order as paths. The only
// error returned is ctx's; per-file failures are reported in each Result.
func ParseFiles(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	log.Debugf("parsing %d files with %d jobs", len(paths), min(jobs, len(paths)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// Each index is written by exactly one goroutine.
			results[i] = ParseFile(path, opts)
			if results[i].Err != nil {
				log.Warningf("%s: %s", path, results[i].Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
