package raguno

import "context"

// Field names the knowledge-base field mapping refers to. They are part of
// the contract between the index schema and the registry storage config.
const (
	IndexVectorField   = "vector"
	IndexTextField     = "text"
	IndexMetadataField = "metadata"
)

// IndexSchema describes the vector index created for each tenant: a
// knn vector field plus text and metadata fields.
type IndexSchema struct {
	VectorDimension int
	// HNSW construction parameters.
	EFConstruction int
	M              int
	Engine         string

	Shards   int
	Replicas int
}

// DefaultIndexSchema is the schema every tenant index is created with.
// The dimension is fixed by the embedding model (1536 for titan-embed-v1).
func DefaultIndexSchema() IndexSchema {
	return IndexSchema{
		VectorDimension: 1536,
		EFConstruction:  512,
		M:               16,
		Engine:          "faiss",
		Shards:          1,
		Replicas:        0,
	}
}

// SearchIndexService administers vector indexes inside the shared search
// collection.
type SearchIndexService interface {
	// IndexExists reports whether an index with the given name exists.
	IndexExists(ctx context.Context, name string) (bool, error)

	// CreateIndex creates a vector index with the given schema. Callers
	// check IndexExists first; CreateIndex is not required to be
	// idempotent on its own.
	CreateIndex(ctx context.Context, name string, schema IndexSchema) error
}
