// Copyright 2026 Redpanda Data, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package runner applies license headers to every file of a tree.
package runner

import (
	"context"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/redpanda-data/common-go/headerfmt/boilerplate"
	"github.com/redpanda-data/common-go/headerfmt/dialect"
	"github.com/redpanda-data/common-go/headerfmt/header"
	"github.com/redpanda-data/common-go/headerfmt/internal/output"
	"github.com/redpanda-data/common-go/headerfmt/internal/walk"
)

// Result is the outcome of processing one file. Err is set when the file
// could not be read or written, in which case Action is meaningless.
type Result struct {
	Path   string
	Action header.Action
	Err    error
}

// Summary counts results per outcome.
type Summary struct {
	Added     int
	Replaced  int
	Unchanged int
	Failed    int
}

// Changed is the number of files that were (or in check mode would be)
// rewritten.
func (s Summary) Changed() int {
	return s.Added + s.Replaced
}

func (s *Summary) add(r Result) {
	if r.Err != nil {
		s.Failed++
		return
	}
	switch r.Action {
	case header.Inserted:
		s.Added++
	case header.Replaced:
		s.Replaced++
	default:
		s.Unchanged++
	}
}

// Runner reconciles files against the header rendered for their dialect.
// Headers are rendered once per dialect and shared by all files.
type Runner struct {
	boilerplate boilerplate.Text
	year        int
	concurrency int
	writer      *output.Writer
	logger      *zap.Logger

	mu       sync.Mutex
	rendered map[dialect.Dialect]string
}

// New returns a Runner. A concurrency below one means unbounded.
func New(text boilerplate.Text, year, concurrency int, writer *output.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		boilerplate: text,
		year:        year,
		concurrency: concurrency,
		writer:      writer,
		logger:      logger,
		rendered:    map[dialect.Dialect]string{},
	}
}

// Prerender renders the header of every dialect up front, so files only read
// the shared result. Dialects not listed are rendered on first use.
func (r *Runner) Prerender(dialects ...dialect.Dialect) {
	for _, d := range dialects {
		r.header(d)
	}
	r.logger.Debug("rendered headers", zap.Int("dialects", len(dialects)))
}

func (r *Runner) header(d dialect.Dialect) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	rendered, ok := r.rendered[d]
	if !ok {
		rendered = header.Render(r.boilerplate, d, r.year)
		r.rendered[d] = rendered
	}
	return rendered
}

// Run processes every file received on files until the channel is closed.
// A failing file does not stop the others; all failures are returned
// together.
func (r *Runner) Run(files <-chan walk.File) (Summary, error) {
	var (
		group   errgroup.Group
		mu      sync.Mutex
		summary Summary
		errs    *multierror.Error
	)
	if r.concurrency > 0 {
		group.SetLimit(r.concurrency)
	}

	for f := range files {
		group.Go(func() error {
			result := r.Process(f)

			mu.Lock()
			defer mu.Unlock()
			summary.add(result)
			if result.Err != nil {
				errs = multierror.Append(errs, result.Err)
			}
			return nil
		})
	}

	_ = group.Wait()
	return summary, errs.ErrorOrNil()
}

// Process reconciles a single file and writes it back unless its header is
// already current.
func (r *Runner) Process(f walk.File) Result {
	logger := r.logger.With(zap.String("path", f.Rel))

	data, err := os.ReadFile(f.Path)
	if err != nil {
		logger.Error("failed to read file", zap.Error(err))
		return Result{Path: f.Rel, Err: errors.Wrapf(err, "reading %q", f.Rel)}
	}

	original := string(data)
	updated, action := header.Reconcile(original, r.header(f.Dialect), f.Dialect)

	if action == header.Inserted && header.HasMarker(original) {
		logger.Warn("existing header fragment has no terminal marker, leaving it below the new header")
	}

	if action != header.Skipped {
		if err := r.writer.Write(f.Path, data, []byte(updated), f.Mode); err != nil {
			logger.Error("failed to write file", zap.Error(err))
			return Result{Path: f.Rel, Err: errors.Wrapf(err, "writing %q", f.Rel)}
		}
	}

	logger.Info(action.String(), zap.String("dialect", f.Dialect.Name), zap.Bool("dry-run", r.writer.DryRun()))
	return Result{Path: f.Rel, Action: action}
}

// Options configures Apply.
type Options struct {
	Root        string
	LicenseFile string
	Year        int
	Concurrency int
	Registry    *dialect.Registry
	Ignore      []string
	Writer      *output.Writer
	Logger      *zap.Logger
}

// Apply extracts the boilerplate from the license file, walks the tree and
// reconciles every matching file.
func Apply(ctx context.Context, opts Options) (Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := opts.Registry
	if registry == nil {
		registry = dialect.Default()
	}

	text, found, err := boilerplate.Load(opts.LicenseFile)
	if err != nil {
		return Summary{}, err
	}
	if !found {
		logger.Warn("license boilerplate markers not found, using the whole license file", zap.String("license", opts.LicenseFile))
	}

	walker := &walk.Walker{
		Root:     opts.Root,
		Registry: registry,
		Ignorer:  walk.NewIgnorer(opts.Ignore...),
		Logger:   logger,
	}

	ch := make(chan walk.File, 1000)
	walkErr := make(chan error, 1)
	go func() {
		walkErr <- walker.Walk(ctx, ch)
	}()

	r := New(text, opts.Year, opts.Concurrency, opts.Writer, logger)
	r.Prerender(registry.Dialects()...)
	summary, runErr := r.Run(ch)

	var errs *multierror.Error
	if err := <-walkErr; err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "walking %q", opts.Root))
	}
	if runErr != nil {
		errs = multierror.Append(errs, runErr)
	}

	logger.Info("done",
		zap.Int("added", summary.Added),
		zap.Int("replaced", summary.Replaced),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("failed", summary.Failed),
	)

	return summary, errs.ErrorOrNil()
}
