package postgres

import (
	"context"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
)

func (s *_Storage) StoreProvider(ctx context.Context, tx storage.Tx, provider model.Provider) error {
	query := `
INSERT INTO provider (slug, enabled, sort_order, last_sync_at, error_count, created_at, updated_at, "provider")
VALUES ($1, $2, $3, $4, $5, $6, $6, $7)
ON CONFLICT (slug) DO UPDATE SET
	enabled = excluded.enabled,
	sort_order = excluded.sort_order,
	last_sync_at = excluded.last_sync_at,
	error_count = excluded.error_count,
	updated_at = excluded.updated_at,
	"provider" = excluded."provider"
`
	_, err := tx.Exec(
		ctx,
		query,
		provider.Slug,
		provider.Enabled,
		provider.SortOrder,
		provider.LastSyncAt,
		provider.ErrorCount,
		provider.UpdatedAt,
		provider,
	)
	if err != nil {
		return err
	}
	return nil
}

func (s *_Storage) ListProviders(ctx context.Context, tx storage.Tx, req storage.ListProvidersRequest) (storage.ListProvidersResponse, error) {
	query := `
WITH filtered AS (
	SELECT sort_order, slug, "provider" FROM provider
	WHERE
		(COALESCE(ARRAY_LENGTH($3::TEXT[], 1), 0) = 0 OR slug = ANY($3)) AND
		($4 = FALSE OR enabled = TRUE)
)
, paged AS (
	SELECT "provider" FROM filtered
	ORDER BY sort_order ASC, slug ASC
	OFFSET $1 LIMIT NULLIF($2, 0)
)
, total AS (
	SELECT COUNT(*) AS total FROM filtered
)
SELECT total, "provider" FROM paged FULL JOIN total ON FALSE
`
	rows, err := tx.Query(
		ctx,
		query,
		req.Offset,
		req.Limit,
		req.Slugs,
		req.EnabledOnly,
	)
	if err != nil {
		return storage.ListProvidersResponse{}, err
	}
	defer rows.Close()

	result := storage.ListProvidersResponse{}
	for rows.Next() {
		var total *int64
		var provider *model.Provider
		if err := rows.Scan(&total, &provider); err != nil {
			return storage.ListProvidersResponse{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if provider != nil {
			result.Providers = append(result.Providers, *provider)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListProvidersResponse{}, err
	}

	return result, nil
}

func (s *_Storage) SetProviderSyncResult(ctx context.Context, tx storage.Tx, slug string, ts int64, success bool) error {
	query := `
UPDATE provider SET
	last_sync_at = $2,
	error_count = CASE WHEN $3 THEN 0 ELSE error_count + 1 END,
	updated_at = $2,
	"provider" = jsonb_set(
		jsonb_set("provider", '{last_sync_at}', to_jsonb($2::BIGINT)),
		'{error_count}',
		to_jsonb(CASE WHEN $3 THEN 0 ELSE error_count + 1 END)
	)
WHERE slug = $1
`
	result, err := tx.Exec(ctx, query, slug, ts, success)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return model.ErrProviderNotFound
	}
	return nil
}

func (s *_Storage) SetProviderTestedAt(ctx context.Context, tx storage.Tx, slug string, ts int64) error {
	query := `
UPDATE provider SET
	updated_at = $2,
	"provider" = jsonb_set("provider", '{last_test_at}', to_jsonb($2::BIGINT))
WHERE slug = $1
`
	result, err := tx.Exec(ctx, query, slug, ts)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return model.ErrProviderNotFound
	}
	return nil
}
