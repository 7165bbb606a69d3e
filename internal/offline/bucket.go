package offline

import (
	"context"
	"net/http"
	"time"
)

// Entry is one cached response: everything needed to replay it to a client.
type Entry struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	StoredAt   time.Time
}

// Size returns the stored body size in bytes.
func (e *Entry) Size() int64 {
	return int64(len(e.Body))
}

// BucketStore persists request→response pairs grouped into named buckets.
// Buckets are created implicitly on first Put and deleted as a unit.
// Implementations must be safe for concurrent use: every intercepted request
// is handled on its own goroutine.
type BucketStore interface {
	// Get returns the entry cached under (bucket, url), or ok=false.
	Get(ctx context.Context, bucket, url string) (*Entry, bool, error)

	// Put stores or overwrites the entry under (bucket, url).
	Put(ctx context.Context, bucket, url string, entry *Entry) error

	// Buckets lists the names of all buckets that hold at least one entry.
	Buckets(ctx context.Context) ([]string, error)

	// DeleteBucket removes a bucket and everything in it. Deleting a
	// bucket that does not exist is not an error.
	DeleteBucket(ctx context.Context, bucket string) error

	// TotalSize sums the body bytes of every entry across every bucket.
	TotalSize(ctx context.Context) (int64, error)

	Close() error
}
