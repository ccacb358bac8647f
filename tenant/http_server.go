package tenant

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/raguno/raguno"
	kithttp "github.com/raguno/raguno/kit/transport/http"
	"go.uber.org/zap"
)

type handler struct {
	log *zap.Logger
	svc raguno.TenantProvisioningService
	api *kithttp.API
}

// NewHandler creates the HTTP handler for the tenant provisioning service.
func NewHandler(log *zap.Logger, svc raguno.TenantProvisioningService) http.Handler {
	h := &handler{
		log: log,
		svc: svc,
		api: kithttp.NewAPI(kithttp.WithLog(log)),
	}

	r := chi.NewRouter()
	r.Use(kithttp.SetCORS)

	r.Post("/create", h.handleProvision)
	r.Get("/list", h.handleListStub) // legacy gateway route
	r.Get("/tenants", h.handleFindTenants)
	return r
}

// handleProvision is the HTTP handler for the POST /create route.
func (h *handler) handleProvision(w http.ResponseWriter, r *http.Request) {
	var req raguno.ProvisioningRequest
	if err := h.api.DecodeJSON(r.Body, &req); err != nil {
		h.api.Err(w, r, err)
		return
	}

	res, err := h.svc.Provision(r.Context(), req)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	h.api.Respond(w, r, http.StatusOK, res)
}

type listStubResponse struct {
	OK             bool   `json:"ok"`
	KnowledgeBases string `json:"knowledge_bases"`
}

// handleListStub is the HTTP handler for the GET /list route. The payload
// is the fixed placeholder the gateway contract pins; the real listing
// lives on /tenants.
func (h *handler) handleListStub(w http.ResponseWriter, r *http.Request) {
	h.api.Respond(w, r, http.StatusOK, listStubResponse{
		OK:             true,
		KnowledgeBases: "list_kb",
	})
}

type tenantsResponse struct {
	Tenants []raguno.TenantStatus `json:"tenants"`
	Total   int                   `json:"total"`
}

// handleFindTenants is the HTTP handler for the GET /tenants route.
func (h *handler) handleFindTenants(w http.ResponseWriter, r *http.Request) {
	opt, err := decodeFindOptions(r)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}

	var filter raguno.TenantFilter
	if id := r.URL.Query().Get("client_id"); id != "" {
		normalized := raguno.NormalizeTenantID(id)
		filter.ClientID = &normalized
	}

	tenants, total, err := h.svc.FindTenants(r.Context(), filter, *opt)
	if err != nil {
		h.api.Err(w, r, err)
		return
	}
	if tenants == nil {
		tenants = []raguno.TenantStatus{}
	}

	h.api.Respond(w, r, http.StatusOK, tenantsResponse{
		Tenants: tenants,
		Total:   total,
	})
}

func decodeFindOptions(r *http.Request) (*raguno.FindOptions, error) {
	var opt raguno.FindOptions
	q := r.URL.Query()

	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, invalidQueryParam("offset")
		}
		opt.Offset = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, invalidQueryParam("limit")
		}
		opt.Limit = n
	}
	return &opt, nil
}
