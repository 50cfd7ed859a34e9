// Package api is the admin REST surface: provider management, catalog and
// mapping operations, price comparison, order lookup, and manual sync
// triggers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/certbridge/certbridge/pkg/certbridge/catalog"
	"github.com/certbridge/certbridge/pkg/certbridge/csr"
	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/order"
	"github.com/certbridge/certbridge/pkg/certbridge/provider"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	syncer "github.com/certbridge/certbridge/pkg/certbridge/sync"
	"github.com/gorilla/mux"
)

type RestServer struct {
	providers    *provider.Manager
	mapper       *catalog.Mapper
	comparator   *catalog.Comparator
	bridge       *order.Bridge
	orchestrator *syncer.Orchestrator
	catalogStore catalog.MapperStorage

	httpServer *http.Server
}

func NewRestServer(
	providers *provider.Manager,
	mapper *catalog.Mapper,
	comparator *catalog.Comparator,
	bridge *order.Bridge,
	orchestrator *syncer.Orchestrator,
	catalogStore catalog.MapperStorage,
	address string,
) *RestServer {
	restServer := &RestServer{
		providers:    providers,
		mapper:       mapper,
		comparator:   comparator,
		bridge:       bridge,
		orchestrator: orchestrator,
		catalogStore: catalogStore,
	}

	router := mux.NewRouter()
	router.Use(Log)
	router.HandleFunc("/providers", restServer.listProviders).Methods(http.MethodGet)
	router.HandleFunc("/providers", restServer.storeProvider).Methods(http.MethodPost)
	router.HandleFunc("/providers/{slug}", restServer.getProvider).Methods(http.MethodGet)
	router.HandleFunc("/providers/{slug}/test", restServer.testProvider).Methods(http.MethodPost)

	router.HandleFunc("/sync/products", restServer.syncProducts).Methods(http.MethodPost)
	router.HandleFunc("/sync/status", restServer.syncStatuses).Methods(http.MethodPost)

	router.HandleFunc("/catalog/unmapped", restServer.listUnmappedProducts).Methods(http.MethodGet)
	router.HandleFunc("/catalog/automap", restServer.autoMap).Methods(http.MethodPost)

	router.HandleFunc("/canonical", restServer.listCanonicalProducts).Methods(http.MethodGet)
	router.HandleFunc("/canonical", restServer.createCanonicalProduct).Methods(http.MethodPost)
	router.HandleFunc("/canonical/{id}/mapping", restServer.setMapping).Methods(http.MethodPost)
	router.HandleFunc("/canonical/{id}/compare", restServer.comparePrices).Methods(http.MethodGet)

	router.HandleFunc("/orders", restServer.createOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/{serviceID}", restServer.getOrderForService).Methods(http.MethodGet)

	router.HandleFunc("/tools/csr", restServer.decodeCSR).Methods(http.MethodPost)
	router.HandleFunc("/tools/certificate", restServer.decodeCertificate).Methods(http.MethodPost)

	if address != "" {
		restServer.httpServer = &http.Server{
			Addr:    address,
			Handler: router,
		}
	}

	return restServer
}

func (s *RestServer) Run() error {
	if s.httpServer == nil {
		return errors.New("no server to run")
	}
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *RestServer) Close(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.httpServer.SetKeepAlivesEnabled(false)
	return s.httpServer.Shutdown(ctx)
}

func (s *RestServer) listProviders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit == 0 {
		limit = 10
	}
	req := storage.ListProvidersRequest{
		Offset:      offset,
		Limit:       limit,
		EnabledOnly: r.URL.Query().Get("enabled") == "true",
	}

	result, err := s.providers.ListProviders(ctx, req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list providers: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (s *RestServer) storeProvider(w http.ResponseWriter, r *http.Request) {
	ts := time.Now().Unix()
	ctx := r.Context()

	req := provider.StoreProviderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %s", err.Error()), http.StatusBadRequest)
		return
	}

	record, err := s.providers.StoreProvider(ctx, ts, req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to store provider: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func (s *RestServer) getProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	record, err := s.providers.GetProvider(ctx, slug)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get provider: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	response := struct {
		model.Provider
		Alerting bool `json:"alerting"`
	}{
		Provider: record,
		Alerting: record.Alerting(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (s *RestServer) testProvider(w http.ResponseWriter, r *http.Request) {
	ts := time.Now().Unix()
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	if err := s.providers.TestProvider(ctx, ts, slug); err != nil {
		http.Error(w, fmt.Sprintf("Connection test failed: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"result": "ok"})
}

func (s *RestServer) syncProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := r.URL.Query().Get("provider")

	report, err := s.orchestrator.SyncProducts(ctx, slug)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to sync products: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(report)
}

func (s *RestServer) syncStatuses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	batchSize, _ := strconv.Atoi(r.URL.Query().Get("batch"))

	report, err := s.orchestrator.SyncStatuses(ctx, batchSize)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to sync statuses: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(report)
}

func (s *RestServer) listUnmappedProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit == 0 {
		limit = 10
	}

	tx, ctx, err := s.catalogStore.CreateTx(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list unmapped products: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := s.catalogStore.ListCatalogProducts(ctx, tx, storage.ListCatalogProductsRequest{
		Offset:       offset,
		Limit:        limit,
		UnmappedOnly: true,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list unmapped products: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (s *RestServer) autoMap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := s.mapper.AutoMap(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to auto-map products: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(report)
}

func (s *RestServer) listCanonicalProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit == 0 {
		limit = 10
	}

	tx, ctx, err := s.catalogStore.CreateTx(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list canonical products: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := s.catalogStore.ListCanonicalProducts(ctx, tx, storage.ListCanonicalProductsRequest{
		Offset:     offset,
		Limit:      limit,
		ActiveOnly: r.URL.Query().Get("active") == "true",
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list canonical products: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (s *RestServer) createCanonicalProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := catalog.CreateCanonicalRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %s", err.Error()), http.StatusBadRequest)
		return
	}

	canonical, err := s.mapper.CreateCanonical(ctx, req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create canonical product: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(canonical)
}

func (s *RestServer) setMapping(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	canonicalID := mux.Vars(r)["id"]

	req := struct {
		ProviderSlug string `json:"provider_slug"`
		Code         string `json:"code"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %s", err.Error()), http.StatusBadRequest)
		return
	}

	if err := s.mapper.SetMapping(ctx, canonicalID, req.ProviderSlug, req.Code); err != nil {
		http.Error(w, fmt.Sprintf("Failed to set mapping: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"result": "ok"})
}

func (s *RestServer) comparePrices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	canonicalID := mux.Vars(r)["id"]

	comparison, err := s.comparator.Compare(ctx, canonicalID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to compare prices: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(comparison)
}

func (s *RestServer) createOrder(w http.ResponseWriter, r *http.Request) {
	ts := time.Now().Unix()
	ctx := r.Context()

	req := order.CreateOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %s", err.Error()), http.StatusBadRequest)
		return
	}

	record, err := s.bridge.CreateOrder(ctx, ts, req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create order: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func (s *RestServer) getOrderForService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceID"], 10, 64)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid service id: %s", err.Error()), http.StatusBadRequest)
		return
	}

	record, err := s.bridge.FindAnyOrderForService(ctx, serviceID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to find order: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(record)
}

func (s *RestServer) decodeCSR(w http.ResponseWriter, r *http.Request) {
	req := struct {
		CSR string `json:"csr"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %s", err.Error()), http.StatusBadRequest)
		return
	}

	info, err := csr.InspectCSR([]byte(req.CSR))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode CSR: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(info)
}

func (s *RestServer) decodeCertificate(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Certificate string `json:"certificate"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %s", err.Error()), http.StatusBadRequest)
		return
	}

	info, err := csr.InspectCertificate([]byte(req.Certificate))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode certificate: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(info)
}
