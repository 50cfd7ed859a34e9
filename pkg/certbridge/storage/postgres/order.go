package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) StoreOrder(ctx context.Context, tx storage.Tx, order model.Order) error {
	query := `
INSERT INTO cert_order (id, owner_id, service_id, provider_slug, remote_id, status, created_at, updated_at, "order")
VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8)
ON CONFLICT (id) DO UPDATE SET
	provider_slug = excluded.provider_slug,
	remote_id = excluded.remote_id,
	status = excluded.status,
	updated_at = excluded.updated_at,
	"order" = excluded."order"
`
	_, err := tx.Exec(
		ctx,
		query,
		order.ID,
		order.OwnerID,
		order.ServiceID,
		order.ProviderSlug,
		order.RemoteID,
		order.Status,
		order.UpdatedAt,
		order,
	)
	if err != nil {
		return err
	}
	return nil
}

func (s *_Storage) ListOrders(ctx context.Context, tx storage.Tx, req storage.ListOrdersRequest) (storage.ListOrdersResponse, error) {
	query := `
WITH filtered AS (
	SELECT rec_id, "order" FROM cert_order
	WHERE
		(COALESCE(ARRAY_LENGTH($3::TEXT[], 1), 0) = 0 OR id = ANY($3)) AND
		(COALESCE(ARRAY_LENGTH($4::BIGINT[], 1), 0) = 0 OR service_id = ANY($4)) AND
		(COALESCE(ARRAY_LENGTH($5::TEXT[], 1), 0) = 0 OR status = ANY($5)) AND
		($6 = FALSE OR remote_id <> '')
)
, paged AS (
	SELECT "order" FROM filtered
	ORDER BY rec_id ASC
	OFFSET $1 LIMIT NULLIF($2, 0)
)
, total AS (
	SELECT COUNT(*) AS total FROM filtered
)
SELECT total, "order" FROM paged FULL JOIN total ON FALSE
`
	rows, err := tx.Query(
		ctx,
		query,
		req.Offset,
		req.Limit,
		req.IDs,
		req.ServiceIDs,
		req.Statuses,
		req.WithRemoteID,
	)
	if err != nil {
		return storage.ListOrdersResponse{}, err
	}
	defer rows.Close()

	result := storage.ListOrdersResponse{}
	for rows.Next() {
		var total *int64
		var order *model.Order
		if err := rows.Scan(&total, &order); err != nil {
			return storage.ListOrdersResponse{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if order != nil {
			result.Orders = append(result.Orders, *order)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListOrdersResponse{}, err
	}

	return result, nil
}

func (s *_Storage) GetLegacyOrderA(ctx context.Context, tx storage.Tx, serviceID int64) (model.Order, error) {
	query := `
SELECT rec_id, owner_id, service_id, provider_slug, remote_id, product_code, domain, status, config_data, created_at
FROM legacy_order_a
WHERE service_id = $1
ORDER BY rec_id DESC
LIMIT 1
`
	return s.scanLegacyOrderA(tx.QueryRow(ctx, query, serviceID))
}

func (s *_Storage) scanLegacyOrderA(row storage.Row) (model.Order, error) {
	order := model.Order{
		LegacyTable: "legacy_order_a",
	}
	var configData []byte
	err := row.Scan(
		&order.LegacyID,
		&order.OwnerID,
		&order.ServiceID,
		&order.ProviderSlug,
		&order.RemoteID,
		&order.ProductCode,
		&order.Domain,
		&order.Status,
		&configData,
		&order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Order{}, model.ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	order.ConfigData = configData
	order.UpdatedAt = order.CreatedAt
	return order, nil
}

// GetLegacyOrderB reads the older panel's table. Its rows predate the current
// naming: numeric remote ids, integer status codes, a module column instead of
// a provider slug, a flattened params blob and a timestamp instead of unix
// seconds. Everything is translated here so callers only ever see model.Order.
func (s *_Storage) GetLegacyOrderB(ctx context.Context, tx storage.Tx, serviceID int64) (model.Order, error) {
	query := `
SELECT id, userid, serviceid, module, remoteid, certtype, commonname, orderstatus, COALESCE(params, ''), EXTRACT(EPOCH FROM created)::BIGINT
FROM legacy_order_b
WHERE serviceid = $1
ORDER BY id DESC
LIMIT 1
`
	order := model.Order{
		LegacyTable: "legacy_order_b",
	}
	var remoteID int64
	var statusCode int
	var params string
	err := tx.QueryRow(ctx, query, serviceID).Scan(
		&order.LegacyID,
		&order.OwnerID,
		&order.ServiceID,
		&order.LegacyModule,
		&remoteID,
		&order.ProductCode,
		&order.Domain,
		&statusCode,
		&params,
		&order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Order{}, model.ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	if remoteID != 0 {
		order.RemoteID = strconv.FormatInt(remoteID, 10)
	}
	order.Status = legacyBStatus(statusCode)
	if params != "" {
		order.ConfigData = []byte(params)
	}
	order.UpdatedAt = order.CreatedAt
	return order, nil
}

// legacyBStatus maps the old panel's integer order states onto the current
// status set. Codes past the known range are treated as still pending rather
// than dropped.
func legacyBStatus(code int) model.OrderStatus {
	switch code {
	case 0:
		return model.OrderStatusAwaitingConfig
	case 1:
		return model.OrderStatusPending
	case 2:
		return model.OrderStatusProcessing
	case 3:
		return model.OrderStatusCompleted
	case 4:
		return model.OrderStatusRejected
	case 5:
		return model.OrderStatusCancelled
	case 6:
		return model.OrderStatusRevoked
	case 7:
		return model.OrderStatusExpired
	}
	return model.OrderStatusPending
}
