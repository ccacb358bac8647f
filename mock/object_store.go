package mock

import (
	"context"

	"github.com/raguno/raguno"
)

var _ raguno.ObjectStore = (*ObjectStore)(nil)

// ObjectStore is a mock implementation of raguno.ObjectStore.
type ObjectStore struct {
	PutObjectFn func(ctx context.Context, key string, body []byte, contentType string) error

	// PutObjectCalls counts invocations, including failed ones.
	PutObjectCalls int
}

// NewObjectStore returns a mock ObjectStore where all writes succeed.
func NewObjectStore() *ObjectStore {
	return &ObjectStore{
		PutObjectFn: func(context.Context, string, []byte, string) error { return nil },
	}
}

// PutObject calls PutObjectFn.
func (s *ObjectStore) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	s.PutObjectCalls++
	return s.PutObjectFn(ctx, key, body, contentType)
}
