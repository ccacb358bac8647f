// Package bedrock implements the knowledge-base registry against the
// Bedrock Agent API.
package bedrock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"
	"github.com/raguno/raguno"
)

var _ raguno.KnowledgeBaseRegistry = (*KnowledgeBaseRegistry)(nil)

// KnowledgeBaseRegistry is the Bedrock-backed registry of record.
type KnowledgeBaseRegistry struct {
	client *bedrockagent.Client
}

// NewKnowledgeBaseRegistry returns a registry over the Bedrock Agent API.
func NewKnowledgeBaseRegistry(cfg aws.Config) *KnowledgeBaseRegistry {
	return &KnowledgeBaseRegistry{
		client: bedrockagent.NewFromConfig(cfg),
	}
}

// ListKnowledgeBases returns the first page of knowledge bases. The
// duplicate-check scan deliberately does not paginate; past the default
// page size the check degrades to best-effort, which the workflow already
// tolerates.
func (r *KnowledgeBaseRegistry) ListKnowledgeBases(ctx context.Context) ([]raguno.KnowledgeBase, error) {
	out, err := r.client.ListKnowledgeBases(ctx, &bedrockagent.ListKnowledgeBasesInput{})
	if err != nil {
		return nil, err
	}

	kbs := make([]raguno.KnowledgeBase, 0, len(out.KnowledgeBaseSummaries))
	for _, s := range out.KnowledgeBaseSummaries {
		kbs = append(kbs, raguno.KnowledgeBase{
			ID:   aws.ToString(s.KnowledgeBaseId),
			Name: aws.ToString(s.Name),
		})
	}
	return kbs, nil
}

// CreateKnowledgeBase registers a vector knowledge base stored in an
// OpenSearch Serverless collection.
func (r *KnowledgeBaseRegistry) CreateKnowledgeBase(ctx context.Context, create raguno.KnowledgeBaseCreate) (*raguno.KnowledgeBase, error) {
	out, err := r.client.CreateKnowledgeBase(ctx, &bedrockagent.CreateKnowledgeBaseInput{
		Name:        aws.String(create.Name),
		Description: aws.String(create.Description),
		RoleArn:     aws.String(create.RoleARN),
		KnowledgeBaseConfiguration: &types.KnowledgeBaseConfiguration{
			Type: types.KnowledgeBaseTypeVector,
			VectorKnowledgeBaseConfiguration: &types.VectorKnowledgeBaseConfiguration{
				EmbeddingModelArn: aws.String(create.EmbeddingModelARN),
			},
		},
		StorageConfiguration: &types.StorageConfiguration{
			Type: types.KnowledgeBaseStorageTypeOpensearchServerless,
			OpensearchServerlessConfiguration: &types.OpenSearchServerlessConfiguration{
				CollectionArn:   aws.String(create.CollectionARN),
				VectorIndexName: aws.String(create.IndexName),
				FieldMapping: &types.OpenSearchServerlessFieldMapping{
					VectorField:   aws.String(raguno.IndexVectorField),
					TextField:     aws.String(raguno.IndexTextField),
					MetadataField: aws.String(raguno.IndexMetadataField),
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &raguno.KnowledgeBase{
		ID:   aws.ToString(out.KnowledgeBase.KnowledgeBaseId),
		Name: aws.ToString(out.KnowledgeBase.Name),
	}, nil
}

// DeleteKnowledgeBase removes a knowledge base by ID.
func (r *KnowledgeBaseRegistry) DeleteKnowledgeBase(ctx context.Context, id string) error {
	_, err := r.client.DeleteKnowledgeBase(ctx, &bedrockagent.DeleteKnowledgeBaseInput{
		KnowledgeBaseId: aws.String(id),
	})
	return err
}

// CreateDataSource attaches an S3 prefix scope to a knowledge base.
func (r *KnowledgeBaseRegistry) CreateDataSource(ctx context.Context, create raguno.DataSourceCreate) (*raguno.DataSource, error) {
	out, err := r.client.CreateDataSource(ctx, &bedrockagent.CreateDataSourceInput{
		KnowledgeBaseId: aws.String(create.KnowledgeBaseID),
		Name:            aws.String(create.Name),
		Description:     aws.String(create.Description),
		DataSourceConfiguration: &types.DataSourceConfiguration{
			Type: types.DataSourceTypeS3,
			S3Configuration: &types.S3DataSourceConfiguration{
				BucketArn:         aws.String(create.BucketARN),
				InclusionPrefixes: []string{create.InclusionPrefix},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &raguno.DataSource{
		ID:              aws.ToString(out.DataSource.DataSourceId),
		KnowledgeBaseID: aws.ToString(out.DataSource.KnowledgeBaseId),
		Name:            aws.ToString(out.DataSource.Name),
	}, nil
}
