package settings

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// InitializeAsync loads every property into the read cache concurrently and
// waits for all of them. Absent keys are skipped. A failing property does not
// stop the others; all failures are returned combined (see multierr.Errors).
func (s *Storage) InitializeAsync(ctx context.Context, props ...Loader) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs error
	)
	if s.initLimit > 0 {
		g.SetLimit(s.initLimit)
	}

	for _, p := range props {
		g.Go(func() error {
			if err := p.Load(ctx, s); err != nil {
				s.log.Warn(ctx, "setting not loaded", "property", p.PropertyName(), "error", err)
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	s.log.Debug(ctx, "settings initialized", "properties", len(props), "cached", s.cache.len())
	return errs
}
