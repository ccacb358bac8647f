// Package opensearch implements index administration against an OpenSearch
// Serverless collection.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	opensearchgo "github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
	requestsigner "github.com/opensearch-project/opensearch-go/v2/signer/awsv2"
	"github.com/raguno/raguno"
)

// DefaultTimeout bounds collection round trips. Index creation on a cold
// serverless collection is slow, so this is well above the client default.
const DefaultTimeout = 60 * time.Second

// Config holds the collection connection settings.
type Config struct {
	// Endpoint is the collection endpoint, including the scheme.
	Endpoint string
	// Timeout bounds each request; DefaultTimeout when zero.
	Timeout time.Duration
}

var _ raguno.SearchIndexService = (*SearchIndexService)(nil)

// SearchIndexService administers vector indexes in one collection.
type SearchIndexService struct {
	client *opensearchgo.Client
}

// NewSearchIndexService builds a SigV4-signed client for the collection.
func NewSearchIndexService(awsCfg aws.Config, cfg Config) (*SearchIndexService, error) {
	signer, err := requestsigner.NewSignerWithService(awsCfg, "aoss")
	if err != nil {
		return nil, fmt.Errorf("failed to create request signer: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client, err := opensearchgo.NewClient(opensearchgo.Config{
		Addresses: []string{cfg.Endpoint},
		Signer:    signer,
		Transport: &http.Transport{
			ResponseHeaderTimeout: timeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create opensearch client: %w", err)
	}

	return &SearchIndexService{client: client}, nil
}

// IndexExists reports whether the named index exists in the collection.
func (s *SearchIndexService) IndexExists(ctx context.Context, name string) (bool, error) {
	req := opensearchapi.IndicesExistsRequest{
		Index: []string{name},
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected status checking index %s: %s", name, res.Status())
	}
}

// CreateIndex creates a knn-enabled index with the given schema.
func (s *SearchIndexService) CreateIndex(ctx context.Context, name string, schema raguno.IndexSchema) error {
	body, err := json.Marshal(indexBody(schema))
	if err != nil {
		return err
	}

	req := opensearchapi.IndicesCreateRequest{
		Index: name,
		Body:  bytes.NewReader(body),
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to create index %s: %s", name, res.String())
	}
	return nil
}

func indexBody(schema raguno.IndexSchema) map[string]interface{} {
	return map[string]interface{}{
		"settings": map[string]interface{}{
			"index.knn":          true,
			"number_of_shards":   schema.Shards,
			"number_of_replicas": schema.Replicas,
		},
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				raguno.IndexVectorField: map[string]interface{}{
					"type":      "knn_vector",
					"dimension": schema.VectorDimension,
					"method": map[string]interface{}{
						"name":   "hnsw",
						"engine": schema.Engine,
						"parameters": map[string]interface{}{
							"ef_construction": schema.EFConstruction,
							"m":               schema.M,
						},
					},
				},
				raguno.IndexTextField: map[string]interface{}{
					"type": "text",
				},
				raguno.IndexMetadataField: map[string]interface{}{
					"type": "text",
				},
			},
		},
	}
}
