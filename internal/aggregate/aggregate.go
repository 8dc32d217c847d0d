package aggregate

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
)

// Failure reports one provider that yielded no data, by registry key.
type Failure struct {
	Key string
	Err error
}

// Collect queries every registered provider and merges the results in
// registration order. It never fails: provider errors (and panics) are
// captured as Failures so one bad feed cannot take down the rest.
// Providers run concurrently, each under its own timeout so a stalled
// endpoint neither blocks the run nor cancels its siblings.
func Collect(ctx context.Context, reg provider.Registry, perCallTimeout time.Duration) ([]provider.Record, []Failure) {
	results := make([][]provider.Record, len(reg))
	errs := make([]error, len(reg))

	var g errgroup.Group
	for i, r := range reg {
		g.Go(func() error {
			defer func() {
				if rec := recover(); rec != nil {
					errs[i] = fmt.Errorf("panic: %v", rec)
				}
			}()
			callCtx := ctx
			if perCallTimeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, perCallTimeout)
				defer cancel()
			}
			records, err := r.Provider.Fetch(callCtx)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = records
			return nil
		})
	}
	_ = g.Wait()

	var all []provider.Record
	var failures []Failure
	for i, r := range reg {
		if errs[i] != nil {
			failures = append(failures, Failure{Key: r.Key, Err: errs[i]})
			continue
		}
		all = append(all, results[i]...)
	}
	return all, failures
}
