package postgres

import (
	"bytes"
	"context"
	"errors"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) UpsertCatalogProduct(ctx context.Context, tx storage.Tx, product model.CatalogProduct) (storage.UpsertOutcome, error) {
	var oldPrices []byte
	err := tx.QueryRow(
		ctx,
		`SELECT raw_prices FROM catalog_product WHERE provider_slug = $1 AND code = $2`,
		product.ProviderSlug,
		product.Code,
	).Scan(&oldPrices)
	exists := true
	if errors.Is(err, pgx.ErrNoRows) {
		exists = false
	} else if err != nil {
		return storage.UpsertOutcome{}, err
	}

	query := `
INSERT INTO catalog_product (provider_slug, code, canonical_id, raw_prices, last_sync_at, "product")
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
ON CONFLICT (provider_slug, code) DO UPDATE SET
	raw_prices = excluded.raw_prices,
	last_sync_at = excluded.last_sync_at,
	"product" = excluded."product" || jsonb_build_object('canonical_id', catalog_product."product"->'canonical_id')
`
	_, err = tx.Exec(
		ctx,
		query,
		product.ProviderSlug,
		product.Code,
		product.CanonicalID,
		product.RawPrices,
		product.LastSyncAt,
		product,
	)
	if err != nil {
		return storage.UpsertOutcome{}, err
	}

	return storage.UpsertOutcome{
		Inserted:     !exists,
		PriceChanged: exists && !bytes.Equal(oldPrices, product.RawPrices),
	}, nil
}

func (s *_Storage) ListCatalogProducts(ctx context.Context, tx storage.Tx, req storage.ListCatalogProductsRequest) (storage.ListCatalogProductsResponse, error) {
	query := `
WITH filtered AS (
	SELECT rec_id, "product" FROM catalog_product
	WHERE
		(COALESCE(ARRAY_LENGTH($3::TEXT[], 1), 0) = 0 OR provider_slug = ANY($3)) AND
		(COALESCE(ARRAY_LENGTH($4::TEXT[], 1), 0) = 0 OR code = ANY($4)) AND
		($5 = FALSE OR canonical_id IS NULL) AND
		(COALESCE(ARRAY_LENGTH($6::TEXT[], 1), 0) = 0 OR canonical_id = ANY($6))
)
, paged AS (
	SELECT "product" FROM filtered
	ORDER BY rec_id ASC
	OFFSET $1 LIMIT NULLIF($2, 0)
)
, total AS (
	SELECT COUNT(*) AS total FROM filtered
)
SELECT total, "product" FROM paged FULL JOIN total ON FALSE
`
	rows, err := tx.Query(
		ctx,
		query,
		req.Offset,
		req.Limit,
		req.ProviderSlugs,
		req.Codes,
		req.UnmappedOnly,
		req.CanonicalIDs,
	)
	if err != nil {
		return storage.ListCatalogProductsResponse{}, err
	}
	defer rows.Close()

	result := storage.ListCatalogProductsResponse{}
	for rows.Next() {
		var total *int64
		var product *model.CatalogProduct
		if err := rows.Scan(&total, &product); err != nil {
			return storage.ListCatalogProductsResponse{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if product != nil {
			result.Products = append(result.Products, *product)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListCatalogProductsResponse{}, err
	}

	return result, nil
}

func (s *_Storage) SetProductCanonicalID(ctx context.Context, tx storage.Tx, providerSlug, code, canonicalID string) error {
	query := `
UPDATE catalog_product SET
	canonical_id = NULLIF($3, ''),
	"product" = CASE
		WHEN $3 = '' THEN "product" - 'canonical_id'
		ELSE jsonb_set("product", '{canonical_id}', to_jsonb($3::TEXT))
	END
WHERE provider_slug = $1 AND code = $2
`
	result, err := tx.Exec(ctx, query, providerSlug, code, canonicalID)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (s *_Storage) StoreCanonicalProduct(ctx context.Context, tx storage.Tx, canonical model.CanonicalProduct) error {
	query := `
INSERT INTO canonical_product (id, active, created_at, updated_at, "canonical")
VALUES ($1, $2, $3, $3, $4)
ON CONFLICT (id) DO UPDATE SET
	active = excluded.active,
	updated_at = excluded.updated_at,
	"canonical" = excluded."canonical"
`
	_, err := tx.Exec(
		ctx,
		query,
		canonical.ID,
		canonical.Active,
		canonical.UpdatedAt,
		canonical,
	)
	if err != nil {
		return err
	}
	return nil
}

func (s *_Storage) ListCanonicalProducts(ctx context.Context, tx storage.Tx, req storage.ListCanonicalProductsRequest) (storage.ListCanonicalProductsResponse, error) {
	query := `
WITH filtered AS (
	SELECT id, "canonical" FROM canonical_product
	WHERE
		(COALESCE(ARRAY_LENGTH($3::TEXT[], 1), 0) = 0 OR id = ANY($3)) AND
		($4 = FALSE OR active = TRUE)
)
, paged AS (
	SELECT "canonical" FROM filtered
	ORDER BY id ASC
	OFFSET $1 LIMIT NULLIF($2, 0)
)
, total AS (
	SELECT COUNT(*) AS total FROM filtered
)
SELECT total, "canonical" FROM paged FULL JOIN total ON FALSE
`
	rows, err := tx.Query(
		ctx,
		query,
		req.Offset,
		req.Limit,
		req.IDs,
		req.ActiveOnly,
	)
	if err != nil {
		return storage.ListCanonicalProductsResponse{}, err
	}
	defer rows.Close()

	result := storage.ListCanonicalProductsResponse{}
	for rows.Next() {
		var total *int64
		var canonical *model.CanonicalProduct
		if err := rows.Scan(&total, &canonical); err != nil {
			return storage.ListCanonicalProductsResponse{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if canonical != nil {
			result.Canonicals = append(result.Canonicals, *canonical)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListCanonicalProductsResponse{}, err
	}

	return result, nil
}

func (s *_Storage) ClearCanonicalCode(ctx context.Context, tx storage.Tx, providerSlug, code, keepID string) error {
	query := `
UPDATE canonical_product SET
	"canonical" = jsonb_set("canonical", '{codes}', ("canonical"->'codes') - $1::TEXT)
WHERE id <> $3 AND "canonical"->'codes'->>$1 = $2
`
	_, err := tx.Exec(ctx, query, providerSlug, code, keepID)
	if err != nil {
		return err
	}
	return nil
}
