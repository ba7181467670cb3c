package fileref

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/fileref/host"
)

// MakeMany bridges objs concurrently using up to runtime.NumCPU() goroutines.
//
// Results are in the same order as objs. An element that Make could not
// bridge is nil; that alone is not an error.
//
// If ctx is cancelled before every element is done, all handles opened so
// far are closed and ctx.Err() is returned.
//
//	refs, err := b.MakeMany(ctx, objs...)
//	if err != nil {
//		return err
//	}
//	defer func() {
//		for _, ref := range refs {
//			if ref != nil {
//				ref.Close()
//			}
//		}
//	}()
func (b *Bridge) MakeMany(ctx context.Context, objs ...host.Object) ([]*FileRef, error) {
	if len(objs) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*FileRef, len(objs))

	for i, obj := range objs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = b.Make(obj)
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		for _, ref := range results {
			if ref != nil {
				ref.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
