package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes a batch of operations
type Runner struct {
	async bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(async bool) *Runner {
	return &Runner{async: async}
}

// 🏃 Run executes all operations, sequentially or concurrently. Concurrent
// runs assume operations touch disjoint files; two operations targeting the
// same file need the sequential mode.
func (r *Runner) Run(ctx context.Context, ops []Operation) error {
	if r.async {
		return r.runAsync(ctx, ops)
	}
	return r.runSync(ctx, ops)
}

// 🔄 runSync runs operations one after another, stopping at the first failure
func (r *Runner) runSync(ctx context.Context, ops []Operation) error {
	for _, op := range ops {
		zerolog.Ctx(ctx).Debug().Str("operation", op.Name()).Msg("executing")
		if err := op.Execute(ctx); err != nil {
			return errors.Errorf("%s: %w", op.Name(), err)
		}
	}
	return nil
}

// ⚡ runAsync runs all operations concurrently and collects the first failure
func (r *Runner) runAsync(ctx context.Context, ops []Operation) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, op := range ops {
		op := op
		g.Go(func() error {
			zerolog.Ctx(ctx).Debug().Str("operation", op.Name()).Msg("executing")
			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("%s: %w", op.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
