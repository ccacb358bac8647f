package tenant

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/raguno/raguno"
	"github.com/raguno/raguno/kit/platform/errors"
	"go.uber.org/zap"
)

// Config holds the resource references the provisioning workflow needs.
// All values are injected; the service never reads ambient state.
type Config struct {
	Region            string
	BucketName        string
	BucketARN         string
	CollectionARN     string
	RoleARN           string
	EmbeddingModelARN string
}

// Valid returns an error naming the first missing required value.
func (c Config) Valid() error {
	required := []struct {
		field string
		value string
	}{
		{"region", c.Region},
		{"s3-bucket-name", c.BucketName},
		{"s3-bucket-arn", c.BucketARN},
		{"opensearch-collection-arn", c.CollectionARN},
		{"bedrock-kb-role-arn", c.RoleARN},
		{"embedding-model-arn", c.EmbeddingModelARN},
	}
	for _, r := range required {
		if r.value == "" {
			return ErrMissingConfig(r.field)
		}
	}
	return nil
}

// Service provisions per-tenant knowledge-base resources. Each call is
// stateless; the managed registry is the only source of truth, so two
// concurrent calls for the same tenant can both pass the duplicate check
// and race on creation. The registry arbitrates that race, not this
// service.
type Service struct {
	log      *zap.Logger
	config   Config
	store    raguno.ObjectStore
	search   raguno.SearchIndexService
	registry raguno.KnowledgeBaseRegistry

	now func() time.Time
}

var _ raguno.TenantProvisioningService = (*Service)(nil)

// NewService constructs a provisioning service over the injected backends.
func NewService(log *zap.Logger, config Config, store raguno.ObjectStore, search raguno.SearchIndexService, registry raguno.KnowledgeBaseRegistry) *Service {
	return &Service{
		log:      log,
		config:   config,
		store:    store,
		search:   search,
		registry: registry,
		now:      time.Now,
	}
}

// Provision runs the create workflow. Step order is dictated by
// dependency: the index must exist before the knowledge base can reference
// it, and the knowledge base before the data source. The only compensated
// step is the data-source attach, which deletes the knowledge base created
// in the same call; the storage marker and the index are inert and are
// left in place for a retried call to reuse.
func (s *Service) Provision(ctx context.Context, req raguno.ProvisioningRequest) (*raguno.ProvisioningResults, error) {
	req.Normalize()
	if req.ClientID == "" {
		return nil, ErrClientIDEmpty
	}
	if err := req.Valid(); err != nil {
		return nil, err
	}
	if err := s.config.Valid(); err != nil {
		return nil, err
	}

	t := raguno.Tenant{ID: req.ClientID}

	// Duplicate check is a full-listing scan by name; the registry has no
	// existence-by-name lookup. A listing failure does not block
	// provisioning.
	if kbs, err := s.registry.ListKnowledgeBases(ctx); err != nil {
		s.log.Warn("failed to check existing knowledge bases, proceeding", zap.Error(err))
	} else {
		for _, kb := range kbs {
			if kb.Name == t.KnowledgeBaseName() {
				return nil, ConflictError(t.ID, kb.ID)
			}
		}
	}

	readme := fmt.Sprintf("# Knowledge base for %s\n", t.ID)
	if err := s.store.PutObject(ctx, t.StoragePrefix()+"README.md", []byte(readme), "text/markdown"); err != nil {
		return nil, StorageError(err)
	}

	exists, err := s.search.IndexExists(ctx, t.IndexName())
	if err != nil {
		return nil, IndexError(err)
	}
	if !exists {
		if err := s.search.CreateIndex(ctx, t.IndexName(), raguno.DefaultIndexSchema()); err != nil {
			return nil, IndexError(err)
		}
	}

	kb, err := s.registry.CreateKnowledgeBase(ctx, raguno.KnowledgeBaseCreate{
		Name:              t.KnowledgeBaseName(),
		Description:       fmt.Sprintf("Knowledge base for client %s", t.ID),
		RoleARN:           s.config.RoleARN,
		EmbeddingModelARN: s.config.EmbeddingModelARN,
		CollectionARN:     s.config.CollectionARN,
		IndexName:         t.IndexName(),
	})
	if err != nil {
		return nil, KnowledgeBaseError(err)
	}

	ds, err := s.registry.CreateDataSource(ctx, raguno.DataSourceCreate{
		KnowledgeBaseID: kb.ID,
		Name:            "s3-datasource-" + t.ID,
		Description:     fmt.Sprintf("S3 data source for %s, folder %s", t.ID, t.StoragePrefix()),
		BucketARN:       s.config.BucketARN,
		InclusionPrefix: t.StoragePrefix(),
	})
	if err != nil {
		// No orphan knowledge bases: delete the one created above.
		// Cleanup failure is logged and does not change the reported
		// error.
		if derr := s.registry.DeleteKnowledgeBase(ctx, kb.ID); derr != nil {
			s.log.Error("failed to clean up knowledge base after data source failure",
				zap.String("kb_id", kb.ID), zap.Error(derr))
		}
		return nil, DataSourceError(err)
	}

	return s.results(t, kb, ds), nil
}

func (s *Service) results(t raguno.Tenant, kb *raguno.KnowledgeBase, ds *raguno.DataSource) *raguno.ProvisioningResults {
	consoleURL := fmt.Sprintf("https://s3.console.aws.amazon.com/s3/buckets/%s?region=%s&prefix=%s",
		s.config.BucketName, s.config.Region, t.StoragePrefix())

	return &raguno.ProvisioningResults{
		Success:         true,
		Message:         fmt.Sprintf("Knowledge Base successfully created for client %s", t.ID),
		KnowledgeBaseID: kb.ID,
		DataSourceID:    ds.ID,
		ClientID:        t.ID,
		Bucket:          s.config.BucketName,
		Folder:          t.StoragePrefix(),
		ConsoleURL:      consoleURL,
		IndexName:       t.IndexName(),
		Status:          "created",
		Timestamp:       s.now().UTC().Format("2006-01-02 15:04:05 UTC"),
		NextSteps: []string{
			fmt.Sprintf("1. Upload documents to: s3://%s/%s", s.config.BucketName, t.StoragePrefix()),
			fmt.Sprintf("2. Or use AWS Console: %s", consoleURL),
			"3. Use POST /admin/sync-kb with kb_id to process documents",
			"4. Query your knowledge base with POST /query",
		},
	}
}

// FindTenants derives the tenant listing from the registry: every
// knowledge base named with the kb- prefix is one provisioned tenant.
// The returned count is the number of matches before pagination.
func (s *Service) FindTenants(ctx context.Context, filter raguno.TenantFilter, opt ...raguno.FindOptions) ([]raguno.TenantStatus, int, error) {
	kbs, err := s.registry.ListKnowledgeBases(ctx)
	if err != nil {
		return nil, 0, &errors.Error{
			Code: errors.EInternal,
			Msg:  "failed to list knowledge bases",
			Op:   "tenant.FindTenants",
			Err:  err,
		}
	}

	tenants := make([]raguno.TenantStatus, 0, len(kbs))
	for _, kb := range kbs {
		if !strings.HasPrefix(kb.Name, "kb-") {
			continue
		}
		id := strings.TrimPrefix(kb.Name, "kb-")
		if filter.ClientID != nil && *filter.ClientID != id {
			continue
		}
		tenants = append(tenants, raguno.TenantStatus{
			ClientID:        id,
			KnowledgeBaseID: kb.ID,
			Status:          "active",
		})
	}
	sort.Slice(tenants, func(i, j int) bool { return tenants[i].ClientID < tenants[j].ClientID })
	total := len(tenants)

	if len(opt) > 0 {
		o := opt[0]
		if o.Offset > 0 {
			if o.Offset >= len(tenants) {
				tenants = nil
			} else {
				tenants = tenants[o.Offset:]
			}
		}
		if o.Limit > 0 && o.Limit < len(tenants) {
			tenants = tenants[:o.Limit]
		}
	}

	return tenants, total, nil
}
