package cli

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/bochang/recipebox/internal/offline"
)

type ServeCmd struct {
	Origin  string `short:"o" help:"Deployed application origin to front, e.g. https://recipebox.example.com." required:""`
	Addr    string `short:"a" help:"Local listen address." default:"127.0.0.1:8099"`
	Version string `help:"Cache version tag for bucket names." default:"${cache_version}"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	origin, err := url.Parse(c.Origin)
	if err != nil || origin.Scheme == "" || origin.Host == "" {
		return fmt.Errorf("invalid origin: %q", c.Origin)
	}

	store := offline.NewSQLiteStore(ctx.CachePath)
	if err := store.Init(); err != nil {
		return err
	}
	defer store.Close()

	controller := offline.New(store, offline.Config{
		Origin:  origin,
		Version: c.Version,
		Logger:  ctx.Log,
	})

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Install is fatal when any manifest asset cannot be fetched; the next
	// invocation retries from scratch.
	if err := controller.Install(runCtx); err != nil {
		return err
	}
	if err := controller.Activate(runCtx); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    c.Addr,
		Handler: controller,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	fmt.Printf("Serving %s offline-first on http://%s (cache: %s)\n", origin, c.Addr, ctx.CachePath)

	select {
	case err := <-errCh:
		return err
	case <-runCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
