package asyncx

import "context"

// All runs fn for every item concurrently and returns the results in item
// order. The first error, or ctx ending, stops the wait.
func All[T any, R any](ctx context.Context, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	type outcome struct {
		index  int
		result R
		err    error
	}

	outcomes := make(chan outcome, len(items))
	for i, item := range items {
		go func(i int, item T) {
			result, err := fn(ctx, item)
			outcomes <- outcome{index: i, result: result, err: err}
		}(i, item)
	}

	collected := make([]R, len(items))
	for range items {
		select {
		case o := <-outcomes:
			if o.err != nil {
				return nil, o.err
			}
			collected[o.index] = o.result
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return collected, nil
}
