package offline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// newOrigin starts a fake deployed origin that serves every manifest asset
// plus any extra paths the test registers.
func newOrigin(t *testing.T, extra map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for _, asset := range StaticAssets {
		asset := asset
		mux.HandleFunc(asset, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("asset:" + asset))
		})
	}
	for p, body := range extra {
		body := body
		mux.HandleFunc(p, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newController(t *testing.T, store BucketStore, origin *httptest.Server, version string) *Controller {
	t.Helper()
	u, err := url.Parse(origin.URL)
	if err != nil {
		t.Fatalf("parse origin url: %v", err)
	}
	return New(store, Config{Origin: u, Version: version, Client: origin.Client()})
}

func TestInstallPopulatesStaticBucket(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")

	if err := c.Install(context.Background()); err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	for _, asset := range StaticAssets {
		entry, ok, err := store.Get(context.Background(), c.StaticBucket(), asset)
		if err != nil || !ok {
			t.Fatalf("asset %s not cached after install (ok=%v err=%v)", asset, ok, err)
		}
		if entry.StatusCode != http.StatusOK {
			t.Errorf("asset %s cached with status %d", asset, entry.StatusCode)
		}
	}
}

func TestInstallFailureAbortsWithoutPartialCommit(t *testing.T) {
	mux := http.NewServeMux()
	for _, asset := range StaticAssets {
		asset := asset
		mux.HandleFunc(asset, func(w http.ResponseWriter, r *http.Request) {
			if asset == "/style.css" {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte("ok"))
		})
	}
	origin := httptest.NewServer(mux)
	t.Cleanup(origin.Close)

	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")

	if err := c.Install(context.Background()); err == nil {
		t.Fatal("Install() with a failing asset should error")
	}

	names, err := store.Buckets(context.Background())
	if err != nil {
		t.Fatalf("Buckets() error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("failed install committed buckets %v, want none", names)
	}
}

func TestActivateSweepsStaleBuckets(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	ctx := context.Background()
	entry := &Entry{StatusCode: 200, Body: []byte("x")}

	// Old deployment's buckets, the current ones, and a foreign bucket.
	store.Put(ctx, staticBucketName("v1.0.0"), "/index.html", entry)
	store.Put(ctx, dynamicBucketName("v1.0.0"), "/api/data", entry)
	store.Put(ctx, staticBucketName("v2.0.0"), "/index.html", entry)
	store.Put(ctx, dynamicBucketName("v2.0.0"), "/api/data", entry)
	store.Put(ctx, "some-other-app", "/x", entry)

	c := newController(t, store, origin, "v2.0.0")
	if err := c.Activate(ctx); err != nil {
		t.Fatalf("Activate() error: %v", err)
	}

	names, _ := store.Buckets(ctx)
	want := map[string]bool{
		staticBucketName("v2.0.0"):  true,
		dynamicBucketName("v2.0.0"): true,
		"some-other-app":            true,
	}
	if len(names) != len(want) {
		t.Fatalf("buckets after activate = %v, want %v", names, want)
	}
	for _, name := range names {
		if !want[name] {
			t.Errorf("bucket %s should have been swept", name)
		}
	}
}

func TestStaticServedFromCacheWhileOffline(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")
	ctx := context.Background()

	store.Put(ctx, c.StaticBucket(), "/style.css", &Entry{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": []string{"text/css"}},
		Body:       []byte("body{}"),
	})
	origin.Close()

	req := httptest.NewRequest(http.MethodGet, "/style.css", nil)
	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("cached static status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "body{}" {
		t.Errorf("cached static body = %q, want %q", got, "body{}")
	}
	if got := rec.Header().Get("Content-Type"); got != "text/css" {
		t.Errorf("cached static content type = %q, want text/css", got)
	}
}

func TestStaticMissFetchesAndCaches(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/script.js", nil)
	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("static miss status = %d, want 200", rec.Code)
	}
	if _, ok, _ := store.Get(context.Background(), c.StaticBucket(), "/script.js"); !ok {
		t.Error("static miss did not populate the cache")
	}
}

func TestStaticMissOffline(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")
	origin.Close()

	req := httptest.NewRequest(http.MethodGet, "/style.css", nil)
	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("static miss offline status = %d, want 404", rec.Code)
	}
}

func TestStaticBackgroundRefresh(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")
	ctx := context.Background()

	store.Put(ctx, c.StaticBucket(), "/style.css", &Entry{StatusCode: 200, Body: []byte("stale")})

	req := httptest.NewRequest(http.MethodGet, "/style.css", nil)
	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, req)

	// The triggering request is served the stale copy.
	if got := rec.Body.String(); got != "stale" {
		t.Fatalf("hit body = %q, want the stale cached copy", got)
	}

	// The detached refetch eventually overwrites the entry.
	deadline := time.Now().Add(2 * time.Second)
	for {
		entry, ok, _ := store.Get(ctx, c.StaticBucket(), "/style.css")
		if ok && string(entry.Body) == "asset:/style.css" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("background refresh never updated the entry, body = %q", entry.Body)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestNavigationNetworkFirst(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")

	// A stale shell is cached; network-first means the live origin copy
	// must win anyway.
	store.Put(context.Background(), c.StaticBucket(), RootDocument, &Entry{
		StatusCode: 200,
		Body:       []byte("stale shell"),
	})

	req := httptest.NewRequest(http.MethodGet, "/recipes/42", nil)
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("navigation status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "asset:/" {
		t.Errorf("navigation body = %q, want the live origin response", got)
	}
}

func TestNavigationOfflineServesShell(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")
	ctx := context.Background()

	store.Put(ctx, c.StaticBucket(), RootDocument, &Entry{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": []string{"text/html"}},
		Body:       []byte("<html>shell</html>"),
	})
	origin.Close()

	req := httptest.NewRequest(http.MethodGet, "/recipes/42", nil)
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("offline navigation status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "<html>shell</html>" {
		t.Errorf("offline navigation body = %q, want the cached shell", got)
	}
}

func TestNavigationOfflineWithoutShell(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")
	origin.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("placeholder navigation status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "offline") {
		t.Error("placeholder page should mention being offline")
	}
}

func TestDynamicNetworkFirstAndFallback(t *testing.T) {
	origin := newOrigin(t, map[string]string{"/api/recipes": `[{"id":"r1"}]`})
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("dynamic online status = %d, want 200", rec.Code)
	}

	// Same request offline is answered from the dynamic bucket.
	origin.Close()
	rec = httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("dynamic offline status = %d, want cached 200", rec.Code)
	}
	if got := rec.Body.String(); got != `[{"id":"r1"}]` {
		t.Errorf("dynamic offline body = %q", got)
	}
}

func TestDynamicOfflineUncached(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")
	origin.Close()

	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/never-seen", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("uncached dynamic offline status = %d, want 503", rec.Code)
	}
}

func TestQueryStringsAreDistinctCacheKeys(t *testing.T) {
	origin := newOrigin(t, map[string]string{"/api/search": "results"})
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")

	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=soup", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("query request status = %d, want 200", rec.Code)
	}

	ctx := context.Background()
	if _, ok, _ := store.Get(ctx, c.DynamicBucket(), "/api/search?q=soup"); !ok {
		t.Error("entry not keyed by path plus query")
	}
	if _, ok, _ := store.Get(ctx, c.DynamicBucket(), "/api/search?q=stew"); ok {
		t.Error("different query must be a different cache key")
	}
}

func TestControlChannel(t *testing.T) {
	origin := newOrigin(t, nil)
	store := NewMemoryStore()
	c := newController(t, store, origin, "v1.0.0")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	requests := make(chan Request)
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Listen(ctx, requests)
	}()

	ask := func(action Action) Response {
		t.Helper()
		reply := make(chan Response, 1)
		requests <- Request{Action: action, Reply: reply}
		select {
		case resp := <-reply:
			return resp
		case <-time.After(2 * time.Second):
			t.Fatalf("no reply for %s", action)
			return Response{}
		}
	}

	// Populate, then measure.
	if resp := ask(ActionRefreshStatic); !resp.Success {
		t.Fatalf("UPDATE_CACHE failed: %s", resp.Error)
	}
	sized := ask(ActionCacheSize)
	if !sized.Success || sized.Size == 0 {
		t.Fatalf("GET_CACHE_SIZE = %+v, want nonzero size", sized)
	}

	// Clear, then confirm empty.
	if resp := ask(ActionClearCache); !resp.Success {
		t.Fatalf("CLEAR_CACHE failed: %s", resp.Error)
	}
	if resp := ask(ActionCacheSize); !resp.Success || resp.Size != 0 {
		t.Fatalf("size after clear = %+v, want 0", resp)
	}

	// Unknown actions get an error reply, not silence.
	if resp := ask(Action("EXPLODE")); resp.Success || resp.Error == "" {
		t.Fatalf("unknown action response = %+v, want error", resp)
	}

	close(requests)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not return after requests closed")
	}
}
