package raguno

import "context"

// TenantProvisioningService provisions per-tenant knowledge-base resources
// against the managed services and reports on what exists.
type TenantProvisioningService interface {
	// Provision runs the full create workflow for one tenant: duplicate
	// check, storage namespace, vector index, knowledge base, data
	// source. It is synchronous; when it returns without error every
	// resource in the results exists.
	Provision(ctx context.Context, req ProvisioningRequest) (*ProvisioningResults, error)

	// FindTenants lists provisioned tenants derived from the registry.
	FindTenants(ctx context.Context, filter TenantFilter, opt ...FindOptions) ([]TenantStatus, int, error)
}

// ProvisioningRequest is the inbound create request.
type ProvisioningRequest struct {
	ClientID string `json:"client_id"`
}

// Normalize rewrites the client ID into its canonical form.
func (r *ProvisioningRequest) Normalize() {
	r.ClientID = NormalizeTenantID(r.ClientID)
}

// Valid checks the request after normalization.
func (r *ProvisioningRequest) Valid() error {
	return Tenant{ID: r.ClientID}.Valid()
}

// ProvisioningResults is the success payload of a provision call.
type ProvisioningResults struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	KnowledgeBaseID string   `json:"kb_id"`
	DataSourceID    string   `json:"data_source_id"`
	ClientID        string   `json:"client_id"`
	Bucket          string   `json:"s3_bucket"`
	Folder          string   `json:"s3_folder"`
	ConsoleURL      string   `json:"s3_console_url"`
	IndexName       string   `json:"opensearch_index"`
	Status          string   `json:"status"`
	Timestamp       string   `json:"timestamp"`
	NextSteps       []string `json:"next_steps"`
}

// TenantStatus is one row of the tenant listing.
type TenantStatus struct {
	ClientID        string `json:"client_id"`
	KnowledgeBaseID string `json:"kb_id"`
	Status          string `json:"status"`
}

// TenantFilter narrows a tenant listing.
type TenantFilter struct {
	ClientID *string
}

// FindOptions represents options passed to find methods with multiple results.
type FindOptions struct {
	Limit  int
	Offset int
}
