package tenant

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/raguno/raguno"
	"github.com/raguno/raguno/kit/metric"
)

var _ raguno.TenantProvisioningService = (*ProvisioningMetrics)(nil)

// ProvisioningMetrics records RED metrics for the provisioning service.
type ProvisioningMetrics struct {
	// RED metrics
	rec *metric.REDClient

	service raguno.TenantProvisioningService
}

// NewProvisioningMetrics returns a metrics service middleware for the
// Tenant Provisioning Service.
func NewProvisioningMetrics(reg prometheus.Registerer, s raguno.TenantProvisioningService) *ProvisioningMetrics {
	return &ProvisioningMetrics{
		rec:     metric.New(reg, "provisioning"),
		service: s,
	}
}

func (m *ProvisioningMetrics) Provision(ctx context.Context, req raguno.ProvisioningRequest) (*raguno.ProvisioningResults, error) {
	rec := m.rec.Record("provision")
	res, err := m.service.Provision(ctx, req)
	return res, rec(err)
}

func (m *ProvisioningMetrics) FindTenants(ctx context.Context, filter raguno.TenantFilter, opt ...raguno.FindOptions) ([]raguno.TenantStatus, int, error) {
	rec := m.rec.Record("find_tenants")
	tenants, n, err := m.service.FindTenants(ctx, filter, opt...)
	return tenants, n, rec(err)
}
