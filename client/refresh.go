package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RefreshAll fetches every public collection concurrently. The first failure
// cancels the rest; per-store error state is still recorded by each fetch.
func (c *Client) RefreshAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return c.projects.Fetch(ctx, Filter{}) })
	g.Go(func() error { return c.certifications.Fetch(ctx, Filter{}) })
	g.Go(func() error { return c.services.Fetch(ctx, Filter{}) })
	g.Go(func() error { return c.blogPosts.Fetch(ctx, Filter{}) })
	g.Go(func() error { return c.profile.Load(ctx) })

	return g.Wait()
}
