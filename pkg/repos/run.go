package repos

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"iter"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/logging"
	"github.com/arthur-debert/cleaner/pkg/walkers"
)

// Output serializes report lines written by concurrent checks
type Output struct {
	mu      sync.Mutex
	w       io.Writer
	display func(string) string
}

// NewOutput writes lines to w. display renders repository paths; nil shows
// them unchanged.
func NewOutput(w io.Writer, display func(string) string) *Output {
	if display == nil {
		display = func(path string) string { return path }
	}
	return &Output{w: w, display: display}
}

// Println writes line in a single call
func (o *Output) Println(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = io.WriteString(o.w, line+"\n")
}

// ReportError prints err for the repository at path as
// "[prefix ]<path> - Err: <cause>". A trailing " at '<path>'" is removed from
// the cause and unborn branch errors are not printed.
func (o *Output) ReportError(path string, err error) {
	if err == nil || errors.IsErrorCode(err, errors.ErrUnbornBranch) {
		return
	}

	prefix, cause := splitPrefix(err)
	shown := o.display(path)
	if path != "" {
		cause = strings.ReplaceAll(cause, fmt.Sprintf(" at '%s'", path), "")
	}

	line := fmt.Sprintf("%s - Err: %s", shown, strings.TrimSpace(cause))
	if prefix != "" {
		line = prefix + " " + line
	}
	o.Println(line)
}

func splitPrefix(err error) (string, string) {
	var cleanerErr *errors.CleanerError
	if !stderrors.As(err, &cleanerErr) || cleanerErr.Wrapped == nil {
		return "", errors.Message(err)
	}
	return cleanerErr.Message, errors.Message(cleanerErr.Wrapped)
}

// Options tune Run
type Options struct {
	// Workers bounds the repositories checked at once; 0 uses one per CPU
	Workers int

	// OnOpenError handles repositories that failed to open. Returning true
	// counts the repository as found. Nil ignores them.
	OnOpenError func(out *Output, path string, err error) bool

	// NotFound is printed when no repository is found
	NotFound string

	// Display renders repository paths in report lines
	Display func(string) string
}

// Run evaluates check against every repository yielded by entries and
// prints a line for each one found. Repositories are checked in parallel, so
// lines come out in no particular order. It returns whether anything was
// found; only a traversal error is returned as an error.
func Run(ctx context.Context, entries iter.Seq2[walkers.RepoEntry, error], check Check, w io.Writer, opts Options) (bool, error) {
	logger := logging.GetLogger("repos.run")

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	out := NewOutput(w, opts.Display)

	var hit atomic.Bool
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var walkErr error
	for entry, err := range entries {
		if err != nil {
			walkErr = err
			break
		}
		if gctx.Err() != nil {
			break
		}

		if entry.Err != nil {
			logger.Debug().Str("repo", entry.Path).Err(entry.Err).Msg("Repository did not open")
			if opts.OnOpenError != nil && opts.OnOpenError(out, entry.Path, errors.Wrap(entry.Err, errors.ErrRepoOpen, "")) {
				hit.Store(true)
			}
			continue
		}

		g.Go(func() error {
			r := &Repo{Repository: entry.Repo, Path: entry.Path, out: out}
			if report(gctx, r, check) {
				hit.Store(true)
			}
			return nil
		})
	}

	_ = g.Wait()
	if walkErr != nil {
		return hit.Load(), walkErr
	}
	if err := ctx.Err(); err != nil {
		return hit.Load(), err
	}

	if !hit.Load() && opts.NotFound != "" {
		out.Println(opts.NotFound)
	}
	return hit.Load(), nil
}

// report runs check on r and prints its line when found
func report(ctx context.Context, r *Repo, check Check) bool {
	res, err := check(ctx, r)
	if err != nil {
		r.ReportError(err)
		return false
	}
	if !res.Found {
		return false
	}

	shown := r.out.display(r.Path)
	head, err := Head(r.Repository)
	switch {
	case errors.IsErrorCode(err, errors.ErrUnbornBranch):
		r.out.Println(shown)
		return true
	case err != nil:
		r.ReportError(err)
		return true
	}

	line := fmt.Sprintf("%s - %s", shown, HeadLabel(head))
	if res.Message != "" {
		line += "; " + res.Message
	}
	r.out.Println(line)
	return true
}

// PrintOpenError is an OnOpenError that prints the failure and counts the
// repository as found
func PrintOpenError(out *Output, path string, err error) bool {
	out.ReportError(path, err)
	return true
}
