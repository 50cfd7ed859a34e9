package storage

import (
	"context"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
)

type ListProvidersRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	Slugs       []string `json:"slugs"`        // Filter by provider slug.
	EnabledOnly bool     `json:"enabled_only"` // Keep only enabled providers.
}

type ListProvidersResponse struct {
	Total     int64            `json:"total"`
	Providers []model.Provider `json:"providers"`
}

type ProviderStorage interface {
	TransactionInterface
	StoreProvider(ctx context.Context, tx Tx, provider model.Provider) error
	ListProviders(ctx context.Context, tx Tx, req ListProvidersRequest) (ListProvidersResponse, error)

	// SetProviderSyncResult stamps last_sync_at and either resets the
	// consecutive error counter (success) or increments it (failure).
	SetProviderSyncResult(ctx context.Context, tx Tx, slug string, ts int64, success bool) error
	SetProviderTestedAt(ctx context.Context, tx Tx, slug string, ts int64) error
}
