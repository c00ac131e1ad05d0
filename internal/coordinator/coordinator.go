// Package coordinator drives symbol resolution and summary downloads across
// a batch of tickers, sequentially or on a bounded worker pool.
package coordinator

import (
	"context"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"summaryfetcher/internal/lookup"
	"summaryfetcher/internal/progress"
	"summaryfetcher/internal/summary"
)

// Resolver resolves a free-text query to a canonical symbol. A nil Match
// with a nil error means the query resolved to nothing.
type Resolver interface {
	Resolve(ctx context.Context, query string) (*lookup.Match, error)
}

// Loader fetches and builds the summary page for one symbol.
type Loader interface {
	Load(ctx context.Context, symbol string) (*summary.Page, error)
}

const defaultThreadCount = 5

// Options control one batch call.
type Options struct {
	// UseFuzzySearch validates and canonicalizes symbols before download.
	UseFuzzySearch bool
	// PageNotFoundOK degrades a missing page to a dropped symbol instead of
	// a fatal error. This is the only resilience knob; there are no retries.
	PageNotFoundOK bool
	// WithThreads downloads on a bounded worker pool instead of one at a time.
	WithThreads bool
	// ThreadCount is the pool size when WithThreads is set. Values below 1
	// are raised to 1.
	ThreadCount int
	// ProgressBar renders one progress bar per pass.
	ProgressBar bool
}

// DefaultOptions are the batch defaults: fuzzy search on, missing pages
// tolerated, sequential, five workers when threading is enabled.
func DefaultOptions() Options {
	return Options{
		UseFuzzySearch: true,
		PageNotFoundOK: true,
		ThreadCount:    defaultThreadCount,
	}
}

// Coordinator runs single and batch summary downloads.
type Coordinator struct {
	resolver Resolver
	loader   Loader
}

// New creates a Coordinator over the given resolver and loader.
func New(resolver Resolver, loader Loader) *Coordinator {
	return &Coordinator{
		resolver: resolver,
		loader:   loader,
	}
}

// FetchOne downloads the summary page for one symbol.
//
// With UseFuzzySearch set the symbol is first resolved to its canonical
// form; an unresolvable query keeps the original symbol and the download
// fails on its own terms. A missing page returns (nil, nil) when
// PageNotFoundOK is set and a PageNotFoundError otherwise.
func (c *Coordinator) FetchOne(ctx context.Context, symbol string, opts Options) (*summary.Page, error) {
	if opts.UseFuzzySearch {
		match, err := c.resolver.Resolve(ctx, symbol)
		if err != nil {
			slog.Debug("symbol resolution failed", "symbol", symbol, "error", err)
		}
		if err == nil && match != nil {
			symbol = match.Symbol
		}
	}

	page, err := c.loader.Load(ctx, symbol)
	if err != nil {
		if opts.PageNotFoundOK && summary.IsPageNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return page, nil
}

// FetchMany downloads summary pages for a batch of symbols.
//
// Input symbols are deduplicated with set semantics, so iteration order is
// not preserved. With UseFuzzySearch set, a resolution pre-pass maps every
// symbol through the resolver first: symbols that resolve to nothing are
// silently dropped, and the resolved set is deduplicated again since
// distinct queries may resolve to the same symbol. The fetch pass then
// downloads every surviving symbol. The two passes are never pipelined.
//
// Returns nil when no symbol produced a page, never an empty group.
func (c *Coordinator) FetchMany(ctx context.Context, symbols []string, opts Options) (*summary.PageGroup, error) {
	if opts.ThreadCount < 1 {
		opts.ThreadCount = 1
	}
	unique := dedupe(symbols)

	if opts.WithThreads {
		return c.fetchManyThreaded(ctx, unique, opts)
	}
	return c.fetchManySequential(ctx, unique, opts)
}

func (c *Coordinator) fetchManySequential(ctx context.Context, symbols []string, opts Options) (*summary.PageGroup, error) {
	if opts.UseFuzzySearch {
		reporter := progress.New(opts.ProgressBar)
		reporter.Start(len(symbols), "Validating symbols")

		resolved := make(map[string]struct{}, len(symbols))
		for _, s := range symbols {
			match, err := c.resolver.Resolve(ctx, s)
			if err == nil && match != nil {
				resolved[match.Symbol] = struct{}{}
			}
			reporter.Advance()
		}
		symbols = keys(resolved)
	}

	reporter := progress.New(opts.ProgressBar)
	reporter.Start(len(symbols), "Downloading summary data")

	// Resolution already happened above; FetchOne must not repeat it.
	one := opts
	one.UseFuzzySearch = false

	group := summary.NewPageGroup()
	for _, s := range symbols {
		page, err := c.FetchOne(ctx, s, one)
		if err != nil {
			return nil, err
		}
		if page != nil {
			if err := group.Append(page); err != nil {
				return nil, err
			}
		}
		reporter.Advance()
	}

	if group.Len() == 0 {
		return nil, nil
	}
	return group, nil
}

func (c *Coordinator) fetchManyThreaded(ctx context.Context, symbols []string, opts Options) (*summary.PageGroup, error) {
	if opts.UseFuzzySearch {
		reporter := progress.New(opts.ProgressBar)
		reporter.Start(len(symbols), "Validating symbols")

		// Resolution failures are never fatal, so this pass collects bare
		// results and drops the misses.
		p := pool.NewWithResults[*lookup.Match]().WithMaxGoroutines(opts.ThreadCount)
		for _, s := range symbols {
			p.Go(func() *lookup.Match {
				match, err := c.resolver.Resolve(ctx, s)
				reporter.Advance()
				if err != nil {
					return nil
				}
				return match
			})
		}

		resolved := make(map[string]struct{}, len(symbols))
		for _, match := range p.Wait() {
			if match != nil {
				resolved[match.Symbol] = struct{}{}
			}
		}
		symbols = keys(resolved)
	}

	reporter := progress.New(opts.ProgressBar)
	reporter.Start(len(symbols), "Downloading summary data")

	one := opts
	one.UseFuzzySearch = false

	// A fatal per-symbol error aborts the batch at collection time; the
	// pool still drains every outstanding download before Wait returns.
	p := pool.NewWithResults[*summary.Page]().WithErrors().WithMaxGoroutines(opts.ThreadCount)
	for _, s := range symbols {
		p.Go(func() (*summary.Page, error) {
			page, err := c.FetchOne(ctx, s, one)
			reporter.Advance()
			return page, err
		})
	}

	pages, err := p.Wait()
	if err != nil {
		return nil, err
	}

	group := summary.NewPageGroup()
	for _, page := range pages {
		if page == nil {
			continue
		}
		if err := group.Append(page); err != nil {
			return nil, err
		}
	}

	if group.Len() == 0 {
		return nil, nil
	}
	return group, nil
}

// dedupe keeps one instance of each symbol. Set semantics: order is not
// preserved.
func dedupe(symbols []string) []string {
	set := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return keys(set)
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}
