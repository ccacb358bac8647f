package tenant_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/raguno/raguno"
	"github.com/raguno/raguno/kit/platform/errors"
	kithttp "github.com/raguno/raguno/kit/transport/http"
	"github.com/raguno/raguno/mock"
	"github.com/raguno/raguno/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T, svc raguno.TenantProvisioningService) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(tenant.NewHandler(zaptest.NewLogger(t), svc))
	t.Cleanup(server.Close)
	return server
}

func decodeBody(t *testing.T, r io.Reader, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r).Decode(v))
}

func TestHandlerProvision(t *testing.T) {
	svc := &mock.TenantProvisioningService{
		ProvisionFn: func(_ context.Context, req raguno.ProvisioningRequest) (*raguno.ProvisioningResults, error) {
			assert.Equal(t, "Acme-01", req.ClientID)
			return &raguno.ProvisioningResults{
				Success:         true,
				KnowledgeBaseID: "kb-id-1",
				DataSourceID:    "ds-id-1",
				ClientID:        "acme-01",
				IndexName:       "acme-01_index",
				Status:          "created",
			}, nil
		},
	}
	server := newTestServer(t, svc)

	resp, err := http.Post(server.URL+"/create", "application/json", strings.NewReader(`{"client_id": "Acme-01"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")

	var body map[string]interface{}
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "acme-01", body["client_id"])
	assert.Equal(t, "acme-01_index", body["opensearch_index"])
	assert.Equal(t, "created", body["status"])
}

func TestHandlerProvisionValidationError(t *testing.T) {
	svc := &mock.TenantProvisioningService{
		ProvisionFn: func(context.Context, raguno.ProvisioningRequest) (*raguno.ProvisioningResults, error) {
			return nil, &errors.Error{
				Code: errors.EInvalid,
				Msg:  "client_id must be at least 2 characters long",
			}
		},
	}
	server := newTestServer(t, svc)

	resp, err := http.Post(server.URL+"/create", "application/json", strings.NewReader(`{"client_id": "a"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"), "CORS headers must be present on error responses")

	var body map[string]interface{}
	decodeBody(t, resp.Body, &body)
	assert.Contains(t, body["error"], "at least 2 characters")
}

func TestHandlerProvisionMalformedJSON(t *testing.T) {
	svc := &mock.TenantProvisioningService{
		ProvisionFn: func(context.Context, raguno.ProvisioningRequest) (*raguno.ProvisioningResults, error) {
			t.Fatal("service must not be called for malformed JSON")
			return nil, nil
		},
	}
	server := newTestServer(t, svc)

	resp, err := http.Post(server.URL+"/create", "application/json", strings.NewReader(`{"client_id": `))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, svc.ProvisionCalls)

	var body map[string]interface{}
	decodeBody(t, resp.Body, &body)
	assert.Contains(t, body["error"], "invalid JSON")
}

func TestHandlerProvisionConflict(t *testing.T) {
	svc := &mock.TenantProvisioningService{
		ProvisionFn: func(context.Context, raguno.ProvisioningRequest) (*raguno.ProvisioningResults, error) {
			return nil, tenant.ConflictError("acme-01", "existing-kb-id")
		},
	}
	server := newTestServer(t, svc)

	resp, err := http.Post(server.URL+"/create", "application/json", strings.NewReader(`{"client_id": "acme-01"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, errors.EConflict, resp.Header.Get(kithttp.PlatformErrorCodeHeader))

	var body map[string]interface{}
	decodeBody(t, resp.Body, &body)
	assert.Contains(t, body["error"], "existing-kb-id")
}

func TestHandlerProvisionStepFailure(t *testing.T) {
	svc := &mock.TenantProvisioningService{
		ProvisionFn: func(context.Context, raguno.ProvisioningRequest) (*raguno.ProvisioningResults, error) {
			return nil, tenant.DataSourceError(fmt.Errorf("validation exception"))
		},
	}
	server := newTestServer(t, svc)

	resp, err := http.Post(server.URL+"/create", "application/json", strings.NewReader(`{"client_id": "acme-01"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp.Body, &body)
	assert.Contains(t, body["error"], "data source")
	assert.Contains(t, body["error"], "validation exception")
}

func TestHandlerPreflight(t *testing.T) {
	svc := &mock.TenantProvisioningService{}
	server := newTestServer(t, svc)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/create", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Content-Type")
	assert.Zero(t, svc.ProvisionCalls)
}

func TestHandlerListStub(t *testing.T) {
	svc := &mock.TenantProvisioningService{}
	server := newTestServer(t, svc)

	resp, err := http.Get(server.URL + "/list")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "list_kb", body["knowledge_bases"])
	assert.Zero(t, svc.FindTenantsCalls, "the legacy stub must not hit the registry")
}

func TestHandlerFindTenants(t *testing.T) {
	svc := &mock.TenantProvisioningService{
		FindTenantsFn: func(_ context.Context, filter raguno.TenantFilter, opt ...raguno.FindOptions) ([]raguno.TenantStatus, int, error) {
			require.Len(t, opt, 1)
			assert.Equal(t, 1, opt[0].Offset)
			assert.Equal(t, 2, opt[0].Limit)
			require.NotNil(t, filter.ClientID)
			assert.Equal(t, "acme-01", *filter.ClientID)
			return []raguno.TenantStatus{
				{ClientID: "acme-01", KnowledgeBaseID: "kb-id-1", Status: "active"},
			}, 1, nil
		},
	}
	server := newTestServer(t, svc)

	resp, err := http.Get(server.URL + "/tenants?offset=1&limit=2&client_id=Acme-01")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Tenants []raguno.TenantStatus `json:"tenants"`
		Total   int                   `json:"total"`
	}
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Tenants, 1)
	assert.Equal(t, "kb-id-1", body.Tenants[0].KnowledgeBaseID)
}

func TestHandlerFindTenantsBadQuery(t *testing.T) {
	svc := &mock.TenantProvisioningService{}
	server := newTestServer(t, svc)

	resp, err := http.Get(server.URL + "/tenants?offset=nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, svc.FindTenantsCalls)
}
