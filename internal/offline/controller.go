// Package offline implements the app's offline cache layer: a gateway that
// fronts the deployed origin through persisted cache buckets, with the
// install/activate lifecycle and per-request routing policy of an
// installable web worker.
package offline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bochang/recipebox/internal/logging"
)

// Config carries the controller's wiring. Origin is required; everything
// else has a usable default.
type Config struct {
	// Origin is the deployed application origin the gateway fronts.
	Origin *url.URL

	// Version tags this deployment's buckets. Defaults to DefaultVersion.
	Version string

	// Client performs origin fetches. Defaults to http.DefaultClient; no
	// timeout is layered on top of the client's own.
	Client *http.Client

	Logger   logging.Logger
	Notifier Notifier
}

// Controller owns the cache buckets and the request routing policy.
// Each request is handled independently; the bucket store carries all shared
// state and is safe for concurrent use.
type Controller struct {
	store    BucketStore
	origin   *url.URL
	version  string
	client   *http.Client
	log      logging.Logger
	notifier Notifier
}

func New(store BucketStore, cfg Config) *Controller {
	c := &Controller{
		store:    store,
		origin:   cfg.Origin,
		version:  cfg.Version,
		client:   cfg.Client,
		log:      cfg.Logger,
		notifier: cfg.Notifier,
	}
	if c.version == "" {
		c.version = DefaultVersion
	}
	if c.client == nil {
		c.client = http.DefaultClient
	}
	if c.log == nil {
		c.log = logging.Nop()
	}
	return c
}

// StaticBucket returns the name of the current deployment's static bucket.
func (c *Controller) StaticBucket() string {
	return staticBucketName(c.version)
}

// DynamicBucket returns the name of the current deployment's dynamic bucket.
func (c *Controller) DynamicBucket() string {
	return dynamicBucketName(c.version)
}

// Install populates the static bucket with every manifest asset. All fetches
// must succeed before anything is committed: a single failure aborts the
// install with no partial population, leaving the caller to retry on the
// next run. On success the controller is immediately ready to activate
// (there is no waiting period).
func (c *Controller) Install(ctx context.Context) error {
	c.log.Info(ctx, "install starting", "bucket", c.StaticBucket(), "assets", len(StaticAssets))

	staged := make(map[string]*Entry, len(StaticAssets))
	for _, asset := range StaticAssets {
		entry, err := c.fetchPath(ctx, asset)
		if err != nil {
			return fmt.Errorf("install failed fetching %s: %w", asset, err)
		}
		if !isSuccess(entry.StatusCode) {
			return fmt.Errorf("install failed fetching %s: status %d", asset, entry.StatusCode)
		}
		staged[asset] = entry
	}

	for asset, entry := range staged {
		if err := c.store.Put(ctx, c.StaticBucket(), asset, entry); err != nil {
			return fmt.Errorf("install failed storing %s: %w", asset, err)
		}
	}

	c.log.Info(ctx, "install complete", "bucket", c.StaticBucket())
	return nil
}

// Activate sweeps buckets left over from previous deployments: every bucket
// carrying our prefix that is neither the current static nor the current
// dynamic bucket is deleted. Buckets without the prefix are not ours and are
// left alone.
func (c *Controller) Activate(ctx context.Context) error {
	names, err := c.store.Buckets(ctx)
	if err != nil {
		return fmt.Errorf("activation failed listing buckets: %w", err)
	}

	for _, name := range names {
		if name == c.StaticBucket() || name == c.DynamicBucket() {
			continue
		}
		if !strings.HasPrefix(name, CachePrefix+"-") {
			continue
		}
		c.log.Info(ctx, "deleting stale cache bucket", "bucket", name)
		if err := c.store.DeleteBucket(ctx, name); err != nil {
			return fmt.Errorf("activation failed deleting %s: %w", name, err)
		}
	}

	c.log.Info(ctx, "activation complete", "version", c.version)
	return nil
}

// ServeHTTP routes one intercepted request. Same-origin requests go through
// the caching policy; anything else is proxied untouched.
func (c *Controller) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Host != "" && r.URL.Host != c.origin.Host {
		c.passThrough(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		c.passThrough(w, r)
		return
	}

	switch {
	case isNavigation(r):
		c.handleNavigate(w, r)
	case isStaticAsset(r.URL.Path):
		c.handleStatic(w, r)
	default:
		c.handleDynamic(w, r)
	}
}

// handleNavigate is network-first: a reachable origin always wins. Offline,
// the cached app shell is served; with no shell cached a minimal placeholder
// page keeps the navigation from failing outright.
func (c *Controller) handleNavigate(w http.ResponseWriter, r *http.Request) {
	entry, err := c.fetchPath(r.Context(), requestPath(r))
	if err == nil {
		writeEntry(w, entry)
		return
	}

	c.log.Info(r.Context(), "offline, serving cached app shell", "path", r.URL.Path)
	cached, ok, cacheErr := c.store.Get(r.Context(), c.StaticBucket(), RootDocument)
	if cacheErr == nil && ok {
		writeEntry(w, cached)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, offlinePage)
}

// handleStatic is cache-first with stale-while-revalidate: a cached copy is
// returned immediately while a detached refetch overwrites the entry in the
// background. Refetch failures never reach the request that triggered them.
func (c *Controller) handleStatic(w http.ResponseWriter, r *http.Request) {
	p := requestPath(r)

	cached, ok, err := c.store.Get(r.Context(), c.StaticBucket(), p)
	if err == nil && ok {
		go c.refreshEntry(c.StaticBucket(), p)
		writeEntry(w, cached)
		return
	}

	entry, fetchErr := c.fetchPath(r.Context(), p)
	if fetchErr != nil {
		c.log.Warn(r.Context(), "static asset unavailable", "path", p, "err", fetchErr)
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	if isSuccess(entry.StatusCode) {
		if putErr := c.store.Put(r.Context(), c.StaticBucket(), p, entry); putErr != nil {
			c.log.Warn(r.Context(), "failed to cache static asset", "path", p, "err", putErr)
		}
	}
	writeEntry(w, entry)
}

// handleDynamic is network-first: successful responses are stored in the
// dynamic bucket, and the bucket serves as the fallback when the network is
// out. With neither, the request resolves to 503.
func (c *Controller) handleDynamic(w http.ResponseWriter, r *http.Request) {
	p := requestPath(r)

	entry, err := c.fetchPath(r.Context(), p)
	if err == nil {
		if isSuccess(entry.StatusCode) {
			if putErr := c.store.Put(r.Context(), c.DynamicBucket(), p, entry); putErr != nil {
				c.log.Warn(r.Context(), "failed to cache dynamic response", "path", p, "err", putErr)
			}
		}
		writeEntry(w, entry)
		return
	}

	cached, ok, cacheErr := c.store.Get(r.Context(), c.DynamicBucket(), p)
	if cacheErr == nil && ok {
		writeEntry(w, cached)
		return
	}

	http.Error(w, "resource unavailable", http.StatusServiceUnavailable)
}

// refreshEntry refetches one asset and overwrites its cache entry. It runs
// detached from the request that triggered it, so failures are swallowed.
func (c *Controller) refreshEntry(bucket, p string) {
	ctx := context.Background()
	entry, err := c.fetchPath(ctx, p)
	if err != nil || !isSuccess(entry.StatusCode) {
		c.log.Debug(ctx, "background refresh skipped", "path", p, "err", err)
		return
	}
	if err := c.store.Put(ctx, bucket, p, entry); err != nil {
		c.log.Debug(ctx, "background refresh store failed", "path", p, "err", err)
		return
	}
	c.log.Debug(ctx, "cache entry refreshed", "path", p)
}

// fetchPath fetches a same-origin path from the deployed origin.
func (c *Controller) fetchPath(ctx context.Context, p string) (*Entry, error) {
	target := *c.origin
	if i := strings.IndexByte(p, '?'); i >= 0 {
		target.Path = p[:i]
		target.RawQuery = p[i+1:]
	} else {
		target.Path = p
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Entry{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

// passThrough proxies a request without touching any bucket.
func (c *Controller) passThrough(w http.ResponseWriter, r *http.Request) {
	target := r.URL
	if target.Host == "" {
		t := *c.origin
		t.Path = r.URL.Path
		t.RawQuery = r.URL.RawQuery
		target = &t
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target.String(), r.Body)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	req.Header = r.Header.Clone()

	resp, err := c.client.Do(req)
	if err != nil {
		http.Error(w, "resource unavailable", http.StatusServiceUnavailable)
		return
	}
	defer resp.Body.Close()

	copyHeader(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}

// isNavigation detects a top-level page load: an explicit navigate fetch
// mode, or an HTML-accepting request for a non-asset path.
func isNavigation(r *http.Request) bool {
	if r.Header.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html") && !isStaticAsset(r.URL.Path)
}

func requestPath(r *http.Request) string {
	p := r.URL.Path
	if p == "" {
		p = "/"
	}
	if r.URL.RawQuery != "" {
		p += "?" + r.URL.RawQuery
	}
	return p
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func writeEntry(w http.ResponseWriter, entry *Entry) {
	copyHeader(w.Header(), entry.Header)
	w.WriteHeader(entry.StatusCode)
	w.Write(entry.Body)
}

func copyHeader(dst, src http.Header) {
	for k, vs := range src {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}

const offlinePage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>RecipeBox</title></head>
<body><p>You are offline and no cached copy of the app is available yet.</p></body>
</html>
`
