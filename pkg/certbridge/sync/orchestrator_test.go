package sync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/order"
	"github.com/certbridge/certbridge/pkg/certbridge/provider"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/certbridge/certbridge/pkg/certbridge/sync"
	"github.com/certbridge/certbridge/pkg/certbridge/vault"
	mock_provider "github.com/certbridge/certbridge/test/mock/certbridge/provider"
	mock_storage "github.com/certbridge/certbridge/test/mock/certbridge/storage"
	mock_sync "github.com/certbridge/certbridge/test/mock/certbridge/sync"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	ctx       context.Context
	storage   *mock_sync.MockStorage
	tx        *mock_storage.MockTx
	vault     *vault.Vault
	directory *provider.Directory
	adapters  map[string]*mock_provider.MockAdapter
	lockDir   string
	orch      *sync.Orchestrator
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_sync.NewMockStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.adapters = map[string]*mock_provider.MockAdapter{}

	credentialVault, err := vault.New("host-secret")
	s.Require().NoError(err)
	s.vault = credentialVault
	s.directory = provider.NewDirectory(s.storage, s.vault)

	for _, slug := range []string{"alphassl_test", "betassl_test"} {
		slug := slug
		s.adapters[slug] = mock_provider.NewMockAdapter(s.ctrl)
		provider.Register(slug, func(settings provider.Settings) (provider.Adapter, error) {
			s.Assert().Equal("secret-key", settings.Credentials["api_key"])
			return s.adapters[slug], nil
		})
	}

	s.lockDir = s.T().TempDir()
	s.orch = sync.NewOrchestrator(
		sync.Config{LockDir: s.lockDir, StaleAfter: 60},
		s.storage,
		sync.WithDirectory(s.directory),
	)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) providerRecord(slug string) model.Provider {
	envelope, err := s.vault.EncryptMap(map[string]string{"api_key": "secret-key"})
	s.Require().NoError(err)
	return model.Provider{
		Slug:        slug,
		Name:        slug,
		Tier:        model.ProviderTierFull,
		Enabled:     true,
		Mode:        model.ProviderModeSandbox,
		Credentials: envelope,
	}
}

func (s *OrchestratorTestSuite) TestSyncProductsSingleProvider() {
	record := s.providerRecord("alphassl_test")
	descriptors := []provider.ProductDescriptor{
		{Code: "100", Name: "PositiveSSL", Vendor: "sectigo", RawPrices: map[string]any{"price012": 9.5}},
		{Code: "101", Name: "EssentialSSL", Vendor: "sectigo", RawPrices: map[string]any{"price012": 14.0}},
	}

	gomock.InOrder(
		// Adapter resolution reads the provider record.
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListProviders(gomock.Any(), s.tx, storage.ListProvidersRequest{Limit: 1, Slugs: []string{"alphassl_test"}}).
			Return(storage.ListProvidersResponse{Total: 1, Providers: []model.Provider{record}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		// Catalog refresh.
		s.adapters["alphassl_test"].EXPECT().FetchCatalog(gomock.Any()).Return(descriptors, nil),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().UpsertCatalogProduct(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, product model.CatalogProduct) (storage.UpsertOutcome, error) {
				s.Assert().Equal("alphassl_test", product.ProviderSlug)
				s.Assert().Equal("100", product.Code)
				s.Assert().NotEmpty(product.RawPrices)
				s.Assert().NotZero(product.LastSyncAt)
				return storage.UpsertOutcome{Inserted: true}, nil
			},
		),
		s.storage.EXPECT().UpsertCatalogProduct(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.UpsertOutcome{Inserted: false, PriceChanged: true}, nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		// Sync result bookkeeping.
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().SetProviderSyncResult(gomock.Any(), s.tx, "alphassl_test", gomock.Any(), true).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	report, err := s.orch.SyncProducts(s.ctx, "alphassl_test")
	s.Require().NoError(err)
	s.Assert().Equal(1, report.Providers)
	s.Assert().Equal(1, report.Inserted)
	s.Assert().Equal(1, report.Updated)
	s.Assert().Equal(1, report.PriceChanges)
	s.Assert().Equal(0, report.Errors)
}

func (s *OrchestratorTestSuite) TestSyncProductsIsolatesProviderFailures() {
	alpha := s.providerRecord("alphassl_test")
	beta := s.providerRecord("betassl_test")

	gomock.InOrder(
		// Enabled provider listing.
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListProviders(gomock.Any(), s.tx, storage.ListProvidersRequest{EnabledOnly: true}).
			Return(storage.ListProvidersResponse{Total: 2, Providers: []model.Provider{alpha, beta}}, nil),

		// Each provider record is re-read while the adapter is built.
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListProviders(gomock.Any(), s.tx, storage.ListProvidersRequest{Limit: 1, Slugs: []string{"alphassl_test"}}).
			Return(storage.ListProvidersResponse{Total: 1, Providers: []model.Provider{alpha}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListProviders(gomock.Any(), s.tx, storage.ListProvidersRequest{Limit: 1, Slugs: []string{"betassl_test"}}).
			Return(storage.ListProvidersResponse{Total: 1, Providers: []model.Provider{beta}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		// First provider fails outright and only gets its error recorded.
		s.adapters["alphassl_test"].EXPECT().FetchCatalog(gomock.Any()).
			Return(nil, errors.New("backend unavailable")),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().SetProviderSyncResult(gomock.Any(), s.tx, "alphassl_test", gomock.Any(), false).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		// Second provider still syncs.
		s.adapters["betassl_test"].EXPECT().FetchCatalog(gomock.Any()).
			Return([]provider.ProductDescriptor{{Code: "200", Name: "RapidSSL", Vendor: "digicert"}}, nil),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().UpsertCatalogProduct(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.UpsertOutcome{Inserted: true}, nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().SetProviderSyncResult(gomock.Any(), s.tx, "betassl_test", gomock.Any(), true).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	report, err := s.orch.SyncProducts(s.ctx, "")
	s.Require().NoError(err)
	s.Assert().Equal(2, report.Providers)
	s.Assert().Equal(1, report.Inserted)
	s.Assert().Equal(1, report.Errors)
}

func (s *OrchestratorTestSuite) TestSyncProductsLockHeld() {
	lock := sync.NewFileLock(s.lockDir, time.Minute)
	release, err := lock.Acquire("sync_products")
	s.Require().NoError(err)
	defer release()

	_, err = s.orch.SyncProducts(s.ctx, "alphassl_test")
	s.Require().ErrorIs(err, model.ErrLockHeld)
}

func (s *OrchestratorTestSuite) TestSyncStatuses() {
	record := s.providerRecord("alphassl_test")
	inFlight := model.Order{
		ID:           "order_id",
		ServiceID:    1001,
		ProviderSlug: "alphassl_test",
		RemoteID:     "remote-1",
		Status:       model.OrderStatusPending,
	}
	status := provider.StatusResult{
		Status:      model.OrderStatusCompleted,
		Certificate: "-----BEGIN CERTIFICATE-----",
		ValidFrom:   1700000000,
		ValidTo:     1731536000,
		Domains:     []string{"example.com", "www.example.com"},
	}

	gomock.InOrder(
		// In-flight batch.
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, storage.ListOrdersRequest{
			Limit:        5,
			Statuses:     []model.OrderStatus{model.OrderStatusPending, model.OrderStatusProcessing},
			WithRemoteID: true,
		}).Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{inFlight}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		// Adapter resolution.
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListProviders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListProvidersResponse{Total: 1, Providers: []model.Provider{record}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		s.adapters["alphassl_test"].EXPECT().OrderStatus(gomock.Any(), "remote-1").Return(status, nil),

		// Reported fields are merged into the configuration blob.
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, storage.ListOrdersRequest{Limit: 1, IDs: []string{"order_id"}}).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{inFlight}}, nil),
		s.storage.EXPECT().StoreOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.Order) error {
				configData := order.DecodeConfigBlob(stored.ConfigData)
				s.Assert().Equal("-----BEGIN CERTIFICATE-----", configData["certificate"])
				s.Assert().Equal("example.com,www.example.com", configData["domains"])
				s.Assert().Contains(configData, "valid_from")
				s.Assert().Contains(configData, "valid_till")
				s.Assert().NotContains(configData, "ca_certificate")
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		// Status transition.
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, storage.ListOrdersRequest{Limit: 1, IDs: []string{"order_id"}}).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{inFlight}}, nil),
		s.storage.EXPECT().StoreOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.Order) error {
				s.Assert().Equal(model.OrderStatusCompleted, stored.Status)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	report, err := s.orch.SyncStatuses(s.ctx, 5)
	s.Require().NoError(err)
	s.Assert().Equal(1, report.Checked)
	s.Assert().Equal(1, report.Changed)
	s.Assert().Equal(0, report.Errors)
}

func (s *OrchestratorTestSuite) TestSyncStatusesNothingReported() {
	record := s.providerRecord("alphassl_test")
	inFlight := model.Order{
		ID:           "order_id",
		ProviderSlug: "alphassl_test",
		RemoteID:     "remote-1",
		Status:       model.OrderStatusPending,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{inFlight}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListProviders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListProvidersResponse{Total: 1, Providers: []model.Provider{record}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		// Provider reports the same status and no certificate data, so no
		// order writes happen and the order does not count as changed.
		s.adapters["alphassl_test"].EXPECT().OrderStatus(gomock.Any(), "remote-1").
			Return(provider.StatusResult{Status: model.OrderStatusPending}, nil),
	)

	report, err := s.orch.SyncStatuses(s.ctx, 5)
	s.Require().NoError(err)
	s.Assert().Equal(1, report.Checked)
	s.Assert().Equal(0, report.Changed)
}

func (s *OrchestratorTestSuite) TestSyncStatusesAdapterFailureCounted() {
	record := s.providerRecord("alphassl_test")
	inFlight := model.Order{
		ID:           "order_id",
		ProviderSlug: "alphassl_test",
		RemoteID:     "remote-1",
		Status:       model.OrderStatusPending,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{inFlight}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListProviders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListProvidersResponse{Total: 1, Providers: []model.Provider{record}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),

		s.adapters["alphassl_test"].EXPECT().OrderStatus(gomock.Any(), "remote-1").
			Return(provider.StatusResult{}, errors.New("backend unavailable")),
	)

	report, err := s.orch.SyncStatuses(s.ctx, 5)
	s.Require().NoError(err)
	s.Assert().Equal(1, report.Checked)
	s.Assert().Equal(0, report.Changed)
	s.Assert().Equal(1, report.Errors)
}
