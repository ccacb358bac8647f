package mock

import (
	"context"
	"fmt"

	"github.com/raguno/raguno"
)

var _ raguno.KnowledgeBaseRegistry = (*KnowledgeBaseRegistry)(nil)

// KnowledgeBaseRegistry is a mock implementation of
// raguno.KnowledgeBaseRegistry. By default it behaves as a small in-memory
// registry so tests can assert on post-call state; any function field can
// be overridden to force a failure.
type KnowledgeBaseRegistry struct {
	ListKnowledgeBasesFn  func(ctx context.Context) ([]raguno.KnowledgeBase, error)
	CreateKnowledgeBaseFn func(ctx context.Context, create raguno.KnowledgeBaseCreate) (*raguno.KnowledgeBase, error)
	DeleteKnowledgeBaseFn func(ctx context.Context, id string) error
	CreateDataSourceFn    func(ctx context.Context, create raguno.DataSourceCreate) (*raguno.DataSource, error)

	// KnowledgeBases and DataSources hold the in-memory state the default
	// function fields operate on.
	KnowledgeBases []raguno.KnowledgeBase
	DataSources    []raguno.DataSource

	ListKnowledgeBasesCalls  int
	CreateKnowledgeBaseCalls int
	DeleteKnowledgeBaseCalls int
	CreateDataSourceCalls    int
}

// NewKnowledgeBaseRegistry returns a mock registry with in-memory defaults.
func NewKnowledgeBaseRegistry() *KnowledgeBaseRegistry {
	r := &KnowledgeBaseRegistry{}
	r.ListKnowledgeBasesFn = func(context.Context) ([]raguno.KnowledgeBase, error) {
		return r.KnowledgeBases, nil
	}
	r.CreateKnowledgeBaseFn = func(_ context.Context, create raguno.KnowledgeBaseCreate) (*raguno.KnowledgeBase, error) {
		kb := raguno.KnowledgeBase{
			ID:   fmt.Sprintf("kb-id-%d", len(r.KnowledgeBases)+1),
			Name: create.Name,
		}
		r.KnowledgeBases = append(r.KnowledgeBases, kb)
		return &kb, nil
	}
	r.DeleteKnowledgeBaseFn = func(_ context.Context, id string) error {
		for i, kb := range r.KnowledgeBases {
			if kb.ID == id {
				r.KnowledgeBases = append(r.KnowledgeBases[:i], r.KnowledgeBases[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("knowledge base %s not found", id)
	}
	r.CreateDataSourceFn = func(_ context.Context, create raguno.DataSourceCreate) (*raguno.DataSource, error) {
		ds := raguno.DataSource{
			ID:              fmt.Sprintf("ds-id-%d", len(r.DataSources)+1),
			KnowledgeBaseID: create.KnowledgeBaseID,
			Name:            create.Name,
		}
		r.DataSources = append(r.DataSources, ds)
		return &ds, nil
	}
	return r
}

// ListKnowledgeBases calls ListKnowledgeBasesFn.
func (r *KnowledgeBaseRegistry) ListKnowledgeBases(ctx context.Context) ([]raguno.KnowledgeBase, error) {
	r.ListKnowledgeBasesCalls++
	return r.ListKnowledgeBasesFn(ctx)
}

// CreateKnowledgeBase calls CreateKnowledgeBaseFn.
func (r *KnowledgeBaseRegistry) CreateKnowledgeBase(ctx context.Context, create raguno.KnowledgeBaseCreate) (*raguno.KnowledgeBase, error) {
	r.CreateKnowledgeBaseCalls++
	return r.CreateKnowledgeBaseFn(ctx, create)
}

// DeleteKnowledgeBase calls DeleteKnowledgeBaseFn.
func (r *KnowledgeBaseRegistry) DeleteKnowledgeBase(ctx context.Context, id string) error {
	r.DeleteKnowledgeBaseCalls++
	return r.DeleteKnowledgeBaseFn(ctx, id)
}

// CreateDataSource calls CreateDataSourceFn.
func (r *KnowledgeBaseRegistry) CreateDataSource(ctx context.Context, create raguno.DataSourceCreate) (*raguno.DataSource, error) {
	r.CreateDataSourceCalls++
	return r.CreateDataSourceFn(ctx, create)
}
