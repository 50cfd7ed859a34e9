// Package order is the single write path for certificate order records and
// the read path that still understands two legacy storage shapes from the
// vendor-consolidation migration.
package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/certbridge/certbridge/pkg/util"
)

type Bridge struct {
	storage storage.OrderStorage
}

func NewBridge(s storage.OrderStorage) *Bridge {
	return &Bridge{storage: s}
}

type CreateOrderRequest struct {
	OwnerID      int64  `json:"owner_id"`
	ServiceID    int64  `json:"service_id"`
	ProviderSlug string `json:"provider_slug"`
	CanonicalID  string `json:"canonical_id"`
	ProductCode  string `json:"product_code"`
	Domain       string `json:"domain"`

	ConfigData map[string]any `json:"config_data,omitempty"`
}

func (b *Bridge) CreateOrder(ctx context.Context, ts int64, req CreateOrderRequest) (model.Order, error) {
	if err := ValidateCreateOrderRequest(req); err != nil {
		return model.Order{}, err
	}

	order := model.Order{
		ID:           util.NewUUID(),
		OwnerID:      req.OwnerID,
		ServiceID:    req.ServiceID,
		ProviderSlug: req.ProviderSlug,
		CanonicalID:  req.CanonicalID,
		ProductCode:  req.ProductCode,
		Domain:       req.Domain,
		Status:       model.OrderStatusAwaitingConfig,
		ConfigData:   EncodeConfigBlob(req.ConfigData),
		Source:       model.OrderSourceCurrent,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	tx, ctx, err := b.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Order{}, fmt.Errorf("Bridge::CreateOrder(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := b.storage.StoreOrder(ctx, tx, order); err != nil {
		return model.Order{}, fmt.Errorf("Bridge::CreateOrder(): fail to StoreOrder(): %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Order{}, fmt.Errorf("Bridge::CreateOrder(): fail to Commit(): %w", err)
	}
	return order, nil
}

func (b *Bridge) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	tx, ctx, err := b.storage.CreateTx(ctx)
	if err != nil {
		return model.Order{}, fmt.Errorf("Bridge::GetOrder(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return b.getOrder(ctx, tx, orderID)
}

// FindAnyOrderForService consults, in priority order, the current table, then
// legacy table A, then legacy table B. The first hit wins and carries its
// Source annotation so callers can render legacy records read-only. Legacy
// rows are never mutated here.
func (b *Bridge) FindAnyOrderForService(ctx context.Context, serviceID int64) (model.Order, error) {
	tx, ctx, err := b.storage.CreateTx(ctx)
	if err != nil {
		return model.Order{}, fmt.Errorf("Bridge::FindAnyOrderForService(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	listResult, err := b.storage.ListOrders(ctx, tx, storage.ListOrdersRequest{Limit: 1, ServiceIDs: []int64{serviceID}})
	if err != nil {
		return model.Order{}, fmt.Errorf("Bridge::FindAnyOrderForService(): fail to ListOrders(): %w", err)
	}
	if len(listResult.Orders) > 0 {
		order := listResult.Orders[0]
		order.Source = model.OrderSourceCurrent
		return order, nil
	}

	order, err := b.storage.GetLegacyOrderA(ctx, tx, serviceID)
	if err == nil {
		order.Source = model.OrderSourceLegacyA
		return order, nil
	}
	if !errors.Is(err, model.ErrOrderNotFound) {
		return model.Order{}, fmt.Errorf("Bridge::FindAnyOrderForService(): fail to GetLegacyOrderA(): %w", err)
	}

	order, err = b.storage.GetLegacyOrderB(ctx, tx, serviceID)
	if err == nil {
		order.Source = model.OrderSourceLegacyB
		return order, nil
	}
	if !errors.Is(err, model.ErrOrderNotFound) {
		return model.Order{}, fmt.Errorf("Bridge::FindAnyOrderForService(): fail to GetLegacyOrderB(): %w", err)
	}

	return model.Order{}, model.ErrOrderNotFound
}

// UpdateStatus advances the order state machine. Provider semantics are not
// strictly linear; the allowed transitions mirror what the backends actually
// report.
func (b *Bridge) UpdateStatus(ctx context.Context, ts int64, orderID string, next model.OrderStatus) (model.Order, error) {
	tx, ctx, err := b.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Order{}, fmt.Errorf("Bridge::UpdateStatus(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order, err := b.getOrder(ctx, tx, orderID)
	if err != nil {
		return model.Order{}, err
	}

	if order.Status != next && !TransitionAllowed(order.Status, next) {
		return model.Order{}, fmt.Errorf("%s -> %s%w", order.Status, next, model.ErrInvalidStatusTransition)
	}

	order.Status = next
	order.UpdatedAt = ts
	if err := b.storage.StoreOrder(ctx, tx, order); err != nil {
		return model.Order{}, fmt.Errorf("Bridge::UpdateStatus(): fail to StoreOrder(): %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Order{}, fmt.Errorf("Bridge::UpdateStatus(): fail to Commit(): %w", err)
	}
	return order, nil
}

// SetRemoteID stamps the provider-side order id after placement.
func (b *Bridge) SetRemoteID(ctx context.Context, ts int64, orderID, remoteID string) (model.Order, error) {
	tx, ctx, err := b.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Order{}, fmt.Errorf("Bridge::SetRemoteID(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order, err := b.getOrder(ctx, tx, orderID)
	if err != nil {
		return model.Order{}, err
	}

	order.RemoteID = remoteID
	order.UpdatedAt = ts
	if err := b.storage.StoreOrder(ctx, tx, order); err != nil {
		return model.Order{}, fmt.Errorf("Bridge::SetRemoteID(): fail to StoreOrder(): %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Order{}, fmt.Errorf("Bridge::SetRemoteID(): fail to Commit(): %w", err)
	}
	return order, nil
}

// AttachLegacy records where a claimed record originally lived. Used only
// during migration.
func (b *Bridge) AttachLegacy(ctx context.Context, ts int64, orderID, legacyTable, legacyModule string, legacyID int64) (model.Order, error) {
	tx, ctx, err := b.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Order{}, fmt.Errorf("Bridge::AttachLegacy(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order, err := b.getOrder(ctx, tx, orderID)
	if err != nil {
		return model.Order{}, err
	}

	order.LegacyTable = legacyTable
	order.LegacyModule = legacyModule
	order.LegacyID = legacyID
	order.UpdatedAt = ts
	if err := b.storage.StoreOrder(ctx, tx, order); err != nil {
		return model.Order{}, fmt.Errorf("Bridge::AttachLegacy(): fail to StoreOrder(): %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Order{}, fmt.Errorf("Bridge::AttachLegacy(): fail to Commit(): %w", err)
	}
	return order, nil
}

// MergeConfigdata layers patch keys over the stored configuration blob.
// Later writes win per key; keys absent from the patch are preserved. It is
// never a full overwrite.
func (b *Bridge) MergeConfigdata(ctx context.Context, ts int64, orderID string, patch map[string]any) (model.Order, error) {
	tx, ctx, err := b.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Order{}, fmt.Errorf("Bridge::MergeConfigdata(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order, err := b.getOrder(ctx, tx, orderID)
	if err != nil {
		return model.Order{}, err
	}

	configData := DecodeConfigBlob(order.ConfigData)
	for key, value := range patch {
		configData[key] = value
	}

	order.ConfigData = EncodeConfigBlob(configData)
	order.UpdatedAt = ts
	if err := b.storage.StoreOrder(ctx, tx, order); err != nil {
		return model.Order{}, fmt.Errorf("Bridge::MergeConfigdata(): fail to StoreOrder(): %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Order{}, fmt.Errorf("Bridge::MergeConfigdata(): fail to Commit(): %w", err)
	}
	return order, nil
}

func (b *Bridge) getOrder(ctx context.Context, tx storage.Tx, orderID string) (model.Order, error) {
	listResult, err := b.storage.ListOrders(ctx, tx, storage.ListOrdersRequest{Limit: 1, IDs: []string{orderID}})
	if err != nil {
		return model.Order{}, fmt.Errorf("Bridge::getOrder(): fail to ListOrders(): %w", err)
	}
	if len(listResult.Orders) == 0 {
		return model.Order{}, model.ErrOrderNotFound
	}
	order := listResult.Orders[0]
	order.Source = model.OrderSourceCurrent
	return order, nil
}

var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusAwaitingConfig: {model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusPending:        {model.OrderStatusProcessing, model.OrderStatusCompleted, model.OrderStatusRejected, model.OrderStatusCancelled},
	model.OrderStatusProcessing:     {model.OrderStatusPending, model.OrderStatusCompleted, model.OrderStatusRejected, model.OrderStatusCancelled},
	model.OrderStatusCompleted:      {model.OrderStatusRevoked, model.OrderStatusExpired, model.OrderStatusSuspended},
	model.OrderStatusSuspended:      {model.OrderStatusCompleted, model.OrderStatusRevoked, model.OrderStatusExpired},
}

func TransitionAllowed(from, to model.OrderStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
