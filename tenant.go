package raguno

import (
	"fmt"
	"strings"

	"github.com/raguno/raguno/kit/platform/errors"
)

// Tenant is an isolated customer namespace. Its ID is the identity key for
// every downstream resource name: the storage prefix, the search index and
// the knowledge base are all derived from it and never renamed.
type Tenant struct {
	ID string `json:"client_id"`
}

// MinTenantIDLength is the shortest accepted tenant identifier.
const MinTenantIDLength = 2

// NormalizeTenantID lower-cases and trims an identifier as supplied by a
// caller. Normalization happens before validation; the normalized form is
// the one stored and the one all resource names derive from.
func NormalizeTenantID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Valid checks the normalized identifier against the accepted form.
func (t Tenant) Valid() error {
	if len(t.ID) < MinTenantIDLength {
		return &errors.Error{
			Code: errors.EInvalid,
			Msg:  fmt.Sprintf("client_id must be at least %d characters long", MinTenantIDLength),
		}
	}
	for _, r := range t.ID {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return &errors.Error{
				Code: errors.EInvalid,
				Msg:  "client_id can only contain letters, numbers, hyphens and underscores",
			}
		}
	}
	return nil
}

// StoragePrefix is the tenant's namespace within the shared object store.
// It always carries the trailing slash so it can be used directly as an
// inclusion prefix.
func (t Tenant) StoragePrefix() string {
	return t.ID + "/"
}

// IndexName is the tenant's vector index inside the shared collection.
func (t Tenant) IndexName() string {
	return t.ID + "_index"
}

// KnowledgeBaseName is the registry name the duplicate check scans for.
func (t Tenant) KnowledgeBaseName() string {
	return "kb-" + t.ID
}
