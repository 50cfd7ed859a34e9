package storage

import (
	"context"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
)

type ListOrdersRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	IDs          []string            `json:"ids"`
	ServiceIDs   []int64             `json:"service_ids"`
	Statuses     []model.OrderStatus `json:"statuses"`
	WithRemoteID bool                `json:"with_remote_id"` // Keep only orders carrying a provider-side id.
}

type ListOrdersResponse struct {
	Total  int64         `json:"total"`
	Orders []model.Order `json:"orders"`
}

type OrderStorage interface {
	TransactionInterface
	StoreOrder(ctx context.Context, tx Tx, order model.Order) error
	ListOrders(ctx context.Context, tx Tx, req ListOrdersRequest) (ListOrdersResponse, error)

	// Legacy tables are consulted read-only during the vendor-consolidation
	// migration. Each lookup returns model.ErrOrderNotFound when the
	// service id has no row in that table.
	GetLegacyOrderA(ctx context.Context, tx Tx, serviceID int64) (model.Order, error)
	GetLegacyOrderB(ctx context.Context, tx Tx, serviceID int64) (model.Order, error)
}
