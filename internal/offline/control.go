package offline

import (
	"context"
	"fmt"
)

// Action discriminates control-channel messages from the page.
type Action string

// Wire values match the deployed app's message contract.
const (
	ActionClearCache    Action = "CLEAR_CACHE"
	ActionRefreshStatic Action = "UPDATE_CACHE"
	ActionCacheSize     Action = "GET_CACHE_SIZE"
)

// Request is one control message. Reply must be buffered or serviced; the
// controller sends exactly one Response per Request.
type Request struct {
	Action Action
	Reply  chan<- Response
}

// Response is the controller's answer to a control Request.
type Response struct {
	Success bool   `json:"success"`
	Size    int64  `json:"size,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Listen services control requests until ctx is done or requests closes.
// Each action dispatches through a typed handler table.
func (c *Controller) Listen(ctx context.Context, requests <-chan Request) {
	handlers := map[Action]func(context.Context) Response{
		ActionClearCache:    c.handleClearCache,
		ActionRefreshStatic: c.handleRefreshStatic,
		ActionCacheSize:     c.handleCacheSize,
	}

	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-requests:
			if !ok {
				return
			}
			handler, known := handlers[req.Action]
			if !known {
				req.Reply <- Response{Success: false, Error: fmt.Sprintf("unknown action: %s", req.Action)}
				continue
			}
			req.Reply <- handler(ctx)
		}
	}
}

func (c *Controller) handleClearCache(ctx context.Context) Response {
	if err := c.ClearCaches(ctx); err != nil {
		return Response{Success: false, Error: err.Error()}
	}
	return Response{Success: true}
}

func (c *Controller) handleRefreshStatic(ctx context.Context) Response {
	if err := c.RefreshStatic(ctx); err != nil {
		return Response{Success: false, Error: err.Error()}
	}
	return Response{Success: true}
}

func (c *Controller) handleCacheSize(ctx context.Context) Response {
	size, err := c.CacheSize(ctx)
	if err != nil {
		return Response{Success: false, Error: err.Error()}
	}
	return Response{Success: true, Size: size}
}

// ClearCaches deletes every bucket the controller owns.
func (c *Controller) ClearCaches(ctx context.Context) error {
	names, err := c.store.Buckets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list buckets: %w", err)
	}
	for _, name := range names {
		if err := c.store.DeleteBucket(ctx, name); err != nil {
			return err
		}
	}
	c.log.Info(ctx, "all cache buckets cleared")
	return nil
}

// RefreshStatic refetches and overwrites every manifest entry in the static
// bucket. Unlike install, entries are committed as they arrive; a failure
// leaves earlier entries refreshed.
func (c *Controller) RefreshStatic(ctx context.Context) error {
	for _, asset := range StaticAssets {
		entry, err := c.fetchPath(ctx, asset)
		if err != nil {
			return fmt.Errorf("refresh failed fetching %s: %w", asset, err)
		}
		if !isSuccess(entry.StatusCode) {
			return fmt.Errorf("refresh failed fetching %s: status %d", asset, entry.StatusCode)
		}
		if err := c.store.Put(ctx, c.StaticBucket(), asset, entry); err != nil {
			return fmt.Errorf("refresh failed storing %s: %w", asset, err)
		}
	}
	c.log.Info(ctx, "static cache refreshed", "assets", len(StaticAssets))
	return nil
}

// CacheSize sums the stored body bytes across every owned bucket.
func (c *Controller) CacheSize(ctx context.Context) (int64, error) {
	return c.store.TotalSize(ctx)
}
