package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bochang/recipebox/internal/offline"
)

// cache commands talk to the controller over its control channel, the same
// request/response contract the page uses.

type CacheClearCmd struct{}

func (c *CacheClearCmd) Run(ctx *Context) error {
	resp, err := controlRoundTrip(ctx, "", offline.ActionClearCache)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("clear cache failed: %s", resp.Error)
	}
	fmt.Println("All cache buckets cleared")
	return nil
}

type CacheRefreshCmd struct {
	Origin string `short:"o" help:"Deployed application origin to refetch from." required:""`
}

func (c *CacheRefreshCmd) Run(ctx *Context) error {
	resp, err := controlRoundTrip(ctx, c.Origin, offline.ActionRefreshStatic)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("refresh failed: %s", resp.Error)
	}
	fmt.Println("Static cache refreshed")
	return nil
}

type CacheSizeCmd struct{}

func (c *CacheSizeCmd) Run(ctx *Context) error {
	resp, err := controlRoundTrip(ctx, "", offline.ActionCacheSize)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("cache size failed: %s", resp.Error)
	}
	fmt.Printf("Cache size: %d bytes\n", resp.Size)
	return nil
}

func controlRoundTrip(ctx *Context, origin string, action offline.Action) (offline.Response, error) {
	store := offline.NewSQLiteStore(ctx.CachePath)
	if err := store.Init(); err != nil {
		return offline.Response{}, err
	}
	defer store.Close()

	cfg := offline.Config{Logger: ctx.Log}
	if origin != "" {
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return offline.Response{}, fmt.Errorf("invalid origin: %q", origin)
		}
		cfg.Origin = u
	} else {
		cfg.Origin = &url.URL{Scheme: "http", Host: "localhost"}
	}
	controller := offline.New(store, cfg)

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	requests := make(chan offline.Request)
	go controller.Listen(runCtx, requests)

	reply := make(chan offline.Response, 1)
	requests <- offline.Request{Action: action, Reply: reply}
	return <-reply, nil
}
