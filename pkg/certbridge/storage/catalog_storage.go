package storage

import (
	"context"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
)

type ListCatalogProductsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	ProviderSlugs []string `json:"provider_slugs"`
	Codes         []string `json:"codes"`
	UnmappedOnly  bool     `json:"unmapped_only"`
	CanonicalIDs  []string `json:"canonical_ids"`
}

type ListCatalogProductsResponse struct {
	Total    int64                  `json:"total"`
	Products []model.CatalogProduct `json:"products"`
}

// UpsertOutcome tells catalog sync what an upsert actually did so it can
// count inserts and detect price changes.
type UpsertOutcome struct {
	Inserted     bool
	PriceChanged bool
}

type CatalogStorage interface {
	TransactionInterface
	UpsertCatalogProduct(ctx context.Context, tx Tx, product model.CatalogProduct) (UpsertOutcome, error)
	ListCatalogProducts(ctx context.Context, tx Tx, req ListCatalogProductsRequest) (ListCatalogProductsResponse, error)
	SetProductCanonicalID(ctx context.Context, tx Tx, providerSlug, code, canonicalID string) error
}

type ListCanonicalProductsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	IDs        []string `json:"ids"`
	ActiveOnly bool     `json:"active_only"`
}

type ListCanonicalProductsResponse struct {
	Total      int64                    `json:"total"`
	Canonicals []model.CanonicalProduct `json:"canonicals"`
}

type CanonicalStorage interface {
	TransactionInterface
	StoreCanonicalProduct(ctx context.Context, tx Tx, canonical model.CanonicalProduct) error
	ListCanonicalProducts(ctx context.Context, tx Tx, req ListCanonicalProductsRequest) (ListCanonicalProductsResponse, error)

	// ClearCanonicalCode removes the given provider code from every
	// canonical row except keepID, enforcing that a code belongs to at
	// most one canonical.
	ClearCanonicalCode(ctx context.Context, tx Tx, providerSlug, code, keepID string) error
}
