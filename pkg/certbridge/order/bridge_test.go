package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/order"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	mock_storage "github.com/certbridge/certbridge/test/mock/certbridge/storage"
	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestDecodeConfigBlob(t *testing.T) {
	decoded := order.DecodeConfigBlob([]byte(`{"csr":"-----BEGIN","approver_email":"admin@example.com"}`))
	assert.Equal(t, "-----BEGIN", decoded["csr"])
	assert.Equal(t, "admin@example.com", decoded["approver_email"])

	decoded = order.DecodeConfigBlob([]byte("csr=-----BEGIN|approver_email=admin@example.com|webserver=nginx"))
	assert.Equal(t, "-----BEGIN", decoded["csr"])
	assert.Equal(t, "nginx", decoded["webserver"])

	assert.Empty(t, order.DecodeConfigBlob(nil))
	assert.Empty(t, order.DecodeConfigBlob([]byte("")))
	assert.Empty(t, order.DecodeConfigBlob([]byte("complete garbage")))
	assert.Empty(t, order.DecodeConfigBlob([]byte("=orphan|novalue")))
}

func TestTransitionAllowed(t *testing.T) {
	assert.True(t, order.TransitionAllowed(model.OrderStatusAwaitingConfig, model.OrderStatusPending))
	assert.True(t, order.TransitionAllowed(model.OrderStatusPending, model.OrderStatusCompleted))
	assert.True(t, order.TransitionAllowed(model.OrderStatusProcessing, model.OrderStatusPending))
	assert.True(t, order.TransitionAllowed(model.OrderStatusCompleted, model.OrderStatusRevoked))
	assert.True(t, order.TransitionAllowed(model.OrderStatusSuspended, model.OrderStatusCompleted))

	assert.False(t, order.TransitionAllowed(model.OrderStatusCompleted, model.OrderStatusPending))
	assert.False(t, order.TransitionAllowed(model.OrderStatusRejected, model.OrderStatusCompleted))
	assert.False(t, order.TransitionAllowed(model.OrderStatusCancelled, model.OrderStatusPending))
	assert.False(t, order.TransitionAllowed(model.OrderStatusAwaitingConfig, model.OrderStatusCompleted))
}

type BridgeTestSuite struct {
	suite.Suite

	ctrl    *gomock.Controller
	ctx     context.Context
	storage *mock_storage.MockOrderStorage
	tx      *mock_storage.MockTx
	bridge  *order.Bridge
}

func TestBridgeTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeTestSuite))
}

func (s *BridgeTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockOrderStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.bridge = order.NewBridge(s.storage)
}

func (s *BridgeTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BridgeTestSuite) TestCreateOrder() {
	ts := time.Now().Unix()
	req := order.CreateOrderRequest{
		OwnerID:      7,
		ServiceID:    1001,
		ProviderSlug: "gogetssl",
		CanonicalID:  "sectigo-positivessl",
		ProductCode:  "100",
		Domain:       "example.com",
		ConfigData:   map[string]any{"webserver": "nginx"},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().StoreOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.Order) error {
				s.Assert().NotEmpty(stored.ID)
				s.Assert().Equal(model.OrderStatusAwaitingConfig, stored.Status)
				s.Assert().Equal(model.OrderSourceCurrent, stored.Source)
				s.Assert().Equal(ts, stored.CreatedAt)
				s.Assert().Equal(ts, stored.UpdatedAt)
				configData := order.DecodeConfigBlob(stored.ConfigData)
				s.Assert().Equal("nginx", configData["webserver"])
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	created, err := s.bridge.CreateOrder(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(int64(1001), created.ServiceID)
	s.Assert().Equal(model.OrderStatusAwaitingConfig, created.Status)
}

func (s *BridgeTestSuite) TestCreateOrderInvalidRequest() {
	req := order.CreateOrderRequest{
		OwnerID:      7,
		ProviderSlug: "gogetssl",
	}

	_, err := s.bridge.CreateOrder(s.ctx, time.Now().Unix(), req)
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *BridgeTestSuite) TestFindAnyOrderForServiceCurrentTableWins() {
	current := model.Order{ID: "order_id", ServiceID: 1001, Status: model.OrderStatusCompleted}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, storage.ListOrdersRequest{Limit: 1, ServiceIDs: []int64{1001}}).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{current}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	found, err := s.bridge.FindAnyOrderForService(s.ctx, 1001)
	s.Require().NoError(err)
	s.Assert().Equal("order_id", found.ID)
	s.Assert().Equal(model.OrderSourceCurrent, found.Source)
}

func (s *BridgeTestSuite) TestFindAnyOrderForServiceFallsBackToLegacyA() {
	legacy := model.Order{LegacyTable: "legacy_order_a", LegacyID: 42, ServiceID: 1001, Status: model.OrderStatusCompleted}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListOrdersResponse{}, nil),
		s.storage.EXPECT().GetLegacyOrderA(gomock.Any(), s.tx, int64(1001)).Return(legacy, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	found, err := s.bridge.FindAnyOrderForService(s.ctx, 1001)
	s.Require().NoError(err)
	s.Assert().Equal(model.OrderSourceLegacyA, found.Source)
	s.Assert().Equal(int64(42), found.LegacyID)
}

func (s *BridgeTestSuite) TestFindAnyOrderForServiceFallsBackToLegacyB() {
	legacy := model.Order{LegacyTable: "legacy_order_b", LegacyID: 7, ServiceID: 1001, Status: model.OrderStatusExpired}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListOrdersResponse{}, nil),
		s.storage.EXPECT().GetLegacyOrderA(gomock.Any(), s.tx, int64(1001)).Return(model.Order{}, model.ErrOrderNotFound),
		s.storage.EXPECT().GetLegacyOrderB(gomock.Any(), s.tx, int64(1001)).Return(legacy, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	found, err := s.bridge.FindAnyOrderForService(s.ctx, 1001)
	s.Require().NoError(err)
	s.Assert().Equal(model.OrderSourceLegacyB, found.Source)
}

func (s *BridgeTestSuite) TestFindAnyOrderForServiceNotFound() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(0)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListOrdersResponse{}, nil),
		s.storage.EXPECT().GetLegacyOrderA(gomock.Any(), s.tx, int64(1001)).Return(model.Order{}, model.ErrOrderNotFound),
		s.storage.EXPECT().GetLegacyOrderB(gomock.Any(), s.tx, int64(1001)).Return(model.Order{}, model.ErrOrderNotFound),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.bridge.FindAnyOrderForService(s.ctx, 1001)
	s.Require().ErrorIs(err, model.ErrOrderNotFound)
}

func (s *BridgeTestSuite) TestUpdateStatus() {
	ts := time.Now().Unix()
	existing := model.Order{ID: "order_id", ServiceID: 1001, Status: model.OrderStatusPending, UpdatedAt: ts - 100}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, storage.ListOrdersRequest{Limit: 1, IDs: []string{"order_id"}}).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{existing}}, nil),
		s.storage.EXPECT().StoreOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.Order) error {
				s.Assert().Equal(model.OrderStatusCompleted, stored.Status)
				s.Assert().Equal(ts, stored.UpdatedAt)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	updated, err := s.bridge.UpdateStatus(s.ctx, ts, "order_id", model.OrderStatusCompleted)
	s.Require().NoError(err)
	s.Assert().Equal(model.OrderStatusCompleted, updated.Status)
}

func (s *BridgeTestSuite) TestUpdateStatusSameStatusIsNoOpTransition() {
	ts := time.Now().Unix()
	existing := model.Order{ID: "order_id", Status: model.OrderStatusCompleted}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{existing}}, nil),
		s.storage.EXPECT().StoreOrder(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	updated, err := s.bridge.UpdateStatus(s.ctx, ts, "order_id", model.OrderStatusCompleted)
	s.Require().NoError(err)
	s.Assert().Equal(model.OrderStatusCompleted, updated.Status)
}

func (s *BridgeTestSuite) TestUpdateStatusInvalidTransition() {
	existing := model.Order{ID: "order_id", Status: model.OrderStatusCompleted}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{existing}}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.bridge.UpdateStatus(s.ctx, time.Now().Unix(), "order_id", model.OrderStatusPending)
	s.Require().ErrorIs(err, model.ErrInvalidStatusTransition)
}

func (s *BridgeTestSuite) TestUpdateStatusOrderNotFound() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListOrdersResponse{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.bridge.UpdateStatus(s.ctx, time.Now().Unix(), "missing", model.OrderStatusCompleted)
	s.Require().ErrorIs(err, model.ErrOrderNotFound)
}

func (s *BridgeTestSuite) TestSetRemoteID() {
	ts := time.Now().Unix()
	existing := model.Order{ID: "order_id", Status: model.OrderStatusPending}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{existing}}, nil),
		s.storage.EXPECT().StoreOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.Order) error {
				s.Assert().Equal("remote-123", stored.RemoteID)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	updated, err := s.bridge.SetRemoteID(s.ctx, ts, "order_id", "remote-123")
	s.Require().NoError(err)
	s.Assert().Equal("remote-123", updated.RemoteID)
}

func (s *BridgeTestSuite) TestMergeConfigdata() {
	ts := time.Now().Unix()
	existingBlob, err := json.Marshal(map[string]any{"csr": "old-csr", "webserver": "apache"})
	s.Require().NoError(err)
	existing := model.Order{ID: "order_id", Status: model.OrderStatusAwaitingConfig, ConfigData: existingBlob}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{existing}}, nil),
		s.storage.EXPECT().StoreOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.Order) error {
				configData := order.DecodeConfigBlob(stored.ConfigData)
				s.Assert().Equal("new-csr", configData["csr"])
				s.Assert().Equal("apache", configData["webserver"])
				s.Assert().Equal("admin@example.com", configData["approver_email"])
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	patch := map[string]any{"csr": "new-csr", "approver_email": "admin@example.com"}
	updated, err := s.bridge.MergeConfigdata(s.ctx, ts, "order_id", patch)
	s.Require().NoError(err)
	s.Assert().Equal(ts, updated.UpdatedAt)
}

func (s *BridgeTestSuite) TestMergeConfigdataLegacyFlattenedBlob() {
	ts := time.Now().Unix()
	existing := model.Order{
		ID:         "order_id",
		Status:     model.OrderStatusAwaitingConfig,
		ConfigData: []byte("csr=old-csr|webserver=nginx"),
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{existing}}, nil),
		s.storage.EXPECT().StoreOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.Order) error {
				configData := order.DecodeConfigBlob(stored.ConfigData)
				s.Assert().Equal("new-csr", configData["csr"])
				s.Assert().Equal("nginx", configData["webserver"])
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.bridge.MergeConfigdata(s.ctx, ts, "order_id", map[string]any{"csr": "new-csr"})
	s.Require().NoError(err)
}

func (s *BridgeTestSuite) TestAttachLegacy() {
	ts := time.Now().Unix()
	existing := model.Order{ID: "order_id", Status: model.OrderStatusCompleted}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOrders(gomock.Any(), s.tx, gomock.Any()).
			Return(storage.ListOrdersResponse{Total: 1, Orders: []model.Order{existing}}, nil),
		s.storage.EXPECT().StoreOrder(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, stored model.Order) error {
				s.Assert().Equal("legacy_order_a", stored.LegacyTable)
				s.Assert().Equal("sslcenter", stored.LegacyModule)
				s.Assert().Equal(int64(42), stored.LegacyID)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	updated, err := s.bridge.AttachLegacy(s.ctx, ts, "order_id", "legacy_order_a", "sslcenter", 42)
	s.Require().NoError(err)
	s.Assert().Equal(int64(42), updated.LegacyID)
}
