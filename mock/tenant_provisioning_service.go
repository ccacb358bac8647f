package mock

import (
	"context"

	"github.com/raguno/raguno"
)

var _ raguno.TenantProvisioningService = (*TenantProvisioningService)(nil)

// TenantProvisioningService is a mock implementation of
// raguno.TenantProvisioningService.
type TenantProvisioningService struct {
	ProvisionFn   func(ctx context.Context, req raguno.ProvisioningRequest) (*raguno.ProvisioningResults, error)
	FindTenantsFn func(ctx context.Context, filter raguno.TenantFilter, opt ...raguno.FindOptions) ([]raguno.TenantStatus, int, error)

	ProvisionCalls   int
	FindTenantsCalls int
}

// Provision calls ProvisionFn.
func (s *TenantProvisioningService) Provision(ctx context.Context, req raguno.ProvisioningRequest) (*raguno.ProvisioningResults, error) {
	s.ProvisionCalls++
	return s.ProvisionFn(ctx, req)
}

// FindTenants calls FindTenantsFn.
func (s *TenantProvisioningService) FindTenants(ctx context.Context, filter raguno.TenantFilter, opt ...raguno.FindOptions) ([]raguno.TenantStatus, int, error) {
	s.FindTenantsCalls++
	return s.FindTenantsFn(ctx, filter, opt...)
}
