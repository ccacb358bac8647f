package mock

import (
	"context"

	"github.com/raguno/raguno"
)

var _ raguno.SearchIndexService = (*SearchIndexService)(nil)

// SearchIndexService is a mock implementation of raguno.SearchIndexService.
type SearchIndexService struct {
	IndexExistsFn func(ctx context.Context, name string) (bool, error)
	CreateIndexFn func(ctx context.Context, name string, schema raguno.IndexSchema) error

	IndexExistsCalls int
	CreateIndexCalls int
}

// NewSearchIndexService returns a mock where no index exists and creation
// succeeds.
func NewSearchIndexService() *SearchIndexService {
	return &SearchIndexService{
		IndexExistsFn: func(context.Context, string) (bool, error) { return false, nil },
		CreateIndexFn: func(context.Context, string, raguno.IndexSchema) error { return nil },
	}
}

// IndexExists calls IndexExistsFn.
func (s *SearchIndexService) IndexExists(ctx context.Context, name string) (bool, error) {
	s.IndexExistsCalls++
	return s.IndexExistsFn(ctx, name)
}

// CreateIndex calls CreateIndexFn.
func (s *SearchIndexService) CreateIndex(ctx context.Context, name string, schema raguno.IndexSchema) error {
	s.CreateIndexCalls++
	return s.CreateIndexFn(ctx, name, schema)
}
