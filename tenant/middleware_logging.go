package tenant

import (
	"context"
	"fmt"
	"time"

	"github.com/raguno/raguno"
	"go.uber.org/zap"
)

// ProvisioningLogger is a logging middleware for the provisioning service.
type ProvisioningLogger struct {
	logger  *zap.Logger
	service raguno.TenantProvisioningService
}

// NewProvisioningLogger returns a logging service middleware for the
// Tenant Provisioning Service.
func NewProvisioningLogger(log *zap.Logger, s raguno.TenantProvisioningService) *ProvisioningLogger {
	return &ProvisioningLogger{
		logger:  log,
		service: s,
	}
}

var _ raguno.TenantProvisioningService = (*ProvisioningLogger)(nil)

func (l *ProvisioningLogger) Provision(ctx context.Context, req raguno.ProvisioningRequest) (res *raguno.ProvisioningResults, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to provision tenant %s", req.ClientID)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("tenant provisioned", zap.String("client_id", res.ClientID), dur)
	}(time.Now())
	return l.service.Provision(ctx, req)
}

func (l *ProvisioningLogger) FindTenants(ctx context.Context, filter raguno.TenantFilter, opt ...raguno.FindOptions) (tenants []raguno.TenantStatus, n int, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to find tenants", zap.Error(err), dur)
			return
		}
		l.logger.Debug("tenants found", zap.Int("count", n), dur)
	}(time.Now())
	return l.service.FindTenants(ctx, filter, opt...)
}
