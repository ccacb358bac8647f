package tenant

import (
	"fmt"

	"github.com/raguno/raguno/kit/platform/errors"
)

var (
	// ErrClientIDEmpty is returned when the identifier normalizes to
	// nothing at all.
	ErrClientIDEmpty = &errors.Error{
		Code: errors.EEmptyValue,
		Msg:  "client_id is empty",
	}
)

// ConflictError is returned when a knowledge base for the tenant already
// exists. It carries the existing record's registry ID so the caller can
// find it.
func ConflictError(clientID, existingKBID string) *errors.Error {
	return &errors.Error{
		Code: errors.EConflict,
		Msg:  fmt.Sprintf("knowledge base for client %q already exists (existing_kb_id: %s)", clientID, existingKBID),
	}
}

// StorageError wraps a failure to initialize the tenant's storage
// namespace.
func StorageError(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EInternal,
		Msg:  "failed to create storage folder",
		Op:   "tenant.Provision",
		Err:  err,
	}
}

// IndexError wraps a failure to create the tenant's vector index.
func IndexError(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EInternal,
		Msg:  "failed to create search index",
		Op:   "tenant.Provision",
		Err:  err,
	}
}

// KnowledgeBaseError wraps a failure to register the knowledge base.
func KnowledgeBaseError(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EInternal,
		Msg:  "failed to create knowledge base",
		Op:   "tenant.Provision",
		Err:  err,
	}
}

// DataSourceError wraps a failure to attach the data source. By the time it
// is returned the compensating knowledge-base delete has already been
// attempted.
func DataSourceError(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EInternal,
		Msg:  "failed to create data source",
		Op:   "tenant.Provision",
		Err:  err,
	}
}

// invalidQueryParam is returned for query parameters that fail to parse.
func invalidQueryParam(name string) *errors.Error {
	return &errors.Error{
		Code: errors.EInvalid,
		Msg:  fmt.Sprintf("%s must be a non-negative integer", name),
	}
}

// ErrMissingConfig is returned when a required configuration value was not
// supplied.
func ErrMissingConfig(field string) *errors.Error {
	return &errors.Error{
		Code: errors.EInternal,
		Msg:  fmt.Sprintf("missing required configuration: %s", field),
	}
}
