package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsearch/internal/logging"
)

// Sentinel errors shared by the search strategies.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a search.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNoSolution is returned when the frontier is exhausted without
	// reaching a goal state. It is an expected outcome for problems whose
	// goal is unreachable, not a malfunction.
	ErrNoSolution = errors.New("search: no solution")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when the WithMaxExpansions budget runs out
	// before a goal is found.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds the parameters common to every search strategy.
// None of them changes frontier order, duplicate suppression or where the
// goal test happens.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per expansion.
	Ctx context.Context

	// Logger receives a debug record per expansion and one per outcome.
	Logger *slog.Logger

	// MaxExpansions, if > 0, caps the number of expanded nodes.
	// 0 means no limit.
	MaxExpansions int

	// Stats, if non-nil, is filled in when the search returns.
	Stats *Stats

	// typed hooks, checked against the search's node type in NewConfig
	onExpand   any
	onGenerate any

	// internal error recorded during option parsing
	err error
}

// Stats reports counters gathered during one search.
type Stats struct {
	// Expanded is the number of nodes whose successors were generated.
	Expanded int
	// Generated is the number of child nodes built by expansion, including
	// duplicates that were discarded.
	Generated int
	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a discarding logger
//   - no expansion limit
//   - no hooks, no stats sink.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        logging.NewNop(),
		MaxExpansions: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search tracing to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions stops the search with ErrExpansionLimit after n expansions.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithStats asks the search to copy its counters into s before returning.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithOnExpand registers fn to run on every node right before it is expanded.
// S and A must match the problem searched, otherwise the search fails with
// ErrOptionViolation.
func WithOnExpand[S comparable, A any](fn func(*Node[S, A])) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExpand = fn
		}
	}
}

// WithOnGenerate registers fn to run on every node admitted to the frontier,
// the root included.
func WithOnGenerate[S comparable, A any](fn func(*Node[S, A])) Option {
	return func(o *Options) {
		if fn != nil {
			o.onGenerate = fn
		}
	}
}

// Config is the resolved, typed form of Options used by a running search.
// It also accumulates the search's Stats. A Config serves a single search.
type Config[S comparable, A any] struct {
	Ctx           context.Context
	Logger        *slog.Logger
	MaxExpansions int
	OnExpand      func(*Node[S, A])
	OnGenerate    func(*Node[S, A])

	stats Stats
	sink  *Stats
}

// NewConfig applies opts over DefaultOptions and resolves the hooks for
// nodes of type Node[S, A].
func NewConfig[S comparable, A any](opts ...Option) (*Config[S, A], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := &Config[S, A]{
		Ctx:           o.Ctx,
		Logger:        o.Logger,
		MaxExpansions: o.MaxExpansions,
		OnExpand:      func(*Node[S, A]) {},
		OnGenerate:    func(*Node[S, A]) {},
		sink:          o.Stats,
	}
	if o.onExpand != nil {
		fn, ok := o.onExpand.(func(*Node[S, A]))
		if !ok {
			return nil, fmt.Errorf("%w: OnExpand hook %T does not match %T", ErrOptionViolation, o.onExpand, c.OnExpand)
		}
		c.OnExpand = fn
	}
	if o.onGenerate != nil {
		fn, ok := o.onGenerate.(func(*Node[S, A]))
		if !ok {
			return nil, fmt.Errorf("%w: OnGenerate hook %T does not match %T", ErrOptionViolation, o.onGenerate, c.OnGenerate)
		}
		c.OnGenerate = fn
	}

	return c, nil
}

// Expanding must be called right before n is expanded. It checks for
// cancellation and the expansion budget, then counts, logs and runs OnExpand.
func (c *Config[S, A]) Expanding(n *Node[S, A]) error {
	select {
	case <-c.Ctx.Done():
		return c.Ctx.Err()
	default:
	}
	if c.MaxExpansions > 0 && c.stats.Expanded >= c.MaxExpansions {
		return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, c.MaxExpansions)
	}

	c.stats.Expanded++
	c.Logger.Debug("expand", "node", n, "depth", n.Depth(), "cost", n.PathCost())
	c.OnExpand(n)

	return nil
}

// Generated counts k freshly built children.
func (c *Config[S, A]) Generated(k int) {
	c.stats.Generated += k
}

// Admitted records that n joined a frontier which now holds size nodes.
func (c *Config[S, A]) Admitted(n *Node[S, A], size int) {
	if size > c.stats.MaxFrontier {
		c.stats.MaxFrontier = size
	}
	c.OnGenerate(n)
}

// Stats returns the counters gathered so far.
func (c *Config[S, A]) Stats() Stats { return c.stats }

// Finish logs the outcome, publishes Stats to the WithStats sink and returns
// its arguments unchanged, so a search can end with `return cfg.Finish(n, err)`.
func (c *Config[S, A]) Finish(n *Node[S, A], err error) (*Node[S, A], error) {
	if c.sink != nil {
		*c.sink = c.stats
	}
	switch {
	case err != nil:
		c.Logger.Debug("search stopped", "error", err,
			"expanded", c.stats.Expanded, "generated", c.stats.Generated)
	default:
		c.Logger.Debug("goal reached", "node", n, "depth", n.Depth(),
			"expanded", c.stats.Expanded, "generated", c.stats.Generated)
	}

	return n, err
}
