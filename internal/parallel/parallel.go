// Package parallel provides an order-preserving concurrent map, adapted
// from the teacher codebase's database/concurrent.go helper for running a
// query against several data sources at once without scrambling the
// caller's input order.
package parallel

import "golang.org/x/sync/errgroup"

// MapWithError applies f to every element of inputs concurrently and
// returns outputs in the same order as inputs, regardless of completion
// order: each goroutine writes only to its own slot, so no merge step is
// needed to restore order. Every call runs to completion (a plain
// errgroup.Group cancels nothing); if any call fails, the first error is
// returned and the outputs are discarded (nil).
func MapWithError[In, Out any](inputs []In, f func(In) (Out, error)) ([]Out, error) {
	outputs := make([]Out, len(inputs))
	var g errgroup.Group
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			out, err := f(in)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
