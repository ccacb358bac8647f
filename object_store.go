package raguno

import "context"

// ObjectStore writes tenant documents into the shared bucket. The bucket
// itself is fixed at construction time; callers only name keys within it.
type ObjectStore interface {
	// PutObject writes body under key, overwriting any existing object.
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
}
