package raguno

import "context"

// KnowledgeBase is a managed RAG resource binding an embedding model to a
// vector-searchable storage backend. The provisioner creates these and, as
// compensation on a failed data-source attach, deletes them; it never
// mutates one.
type KnowledgeBase struct {
	ID   string `json:"kb_id"`
	Name string `json:"name"`
}

// DataSource is a scoped ingestion pointer on a knowledge base, telling it
// which storage prefix to index.
type DataSource struct {
	ID              string `json:"data_source_id"`
	KnowledgeBaseID string `json:"kb_id"`
	Name            string `json:"name"`
}

// KnowledgeBaseCreate is the set of attributes needed to register a
// knowledge base against a vector index.
type KnowledgeBaseCreate struct {
	Name              string
	Description       string
	RoleARN           string
	EmbeddingModelARN string
	CollectionARN     string
	IndexName         string
}

// DataSourceCreate attaches an object-storage prefix scope to an existing
// knowledge base.
type DataSourceCreate struct {
	KnowledgeBaseID string
	Name            string
	Description     string
	BucketARN       string
	InclusionPrefix string
}

// KnowledgeBaseRegistry is the managed registry of record. There is no
// local copy of this state: existence checks go through ListKnowledgeBases
// every time.
type KnowledgeBaseRegistry interface {
	// ListKnowledgeBases returns every registered knowledge base. The
	// duplicate check scans this full listing by name.
	ListKnowledgeBases(ctx context.Context) ([]KnowledgeBase, error)

	// CreateKnowledgeBase registers a new knowledge base and returns it
	// with the registry-assigned ID.
	CreateKnowledgeBase(ctx context.Context, create KnowledgeBaseCreate) (*KnowledgeBase, error)

	// DeleteKnowledgeBase removes a knowledge base by ID.
	DeleteKnowledgeBase(ctx context.Context, id string) error

	// CreateDataSource attaches a data source to a knowledge base and
	// returns it with the registry-assigned ID.
	CreateDataSource(ctx context.Context, create DataSourceCreate) (*DataSource, error)
}
