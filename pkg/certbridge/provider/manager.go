package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/certbridge/certbridge/pkg/certbridge/vault"
)

// Manager owns the provider table. Credentials enter as plaintext request
// fields and are sealed by the vault before they reach storage; nothing past
// this point ever sees them decrypted except the directory.
type Manager struct {
	storage   storage.ProviderStorage
	vault     *vault.Vault
	directory *Directory
}

func NewManager(s storage.ProviderStorage, credentialVault *vault.Vault, directory *Directory) *Manager {
	return &Manager{
		storage:   s,
		vault:     credentialVault,
		directory: directory,
	}
}

type StoreProviderRequest struct {
	Slug      string             `json:"slug"`
	Name      string             `json:"name"`
	Tier      model.ProviderTier `json:"tier"`
	Enabled   bool               `json:"enabled"`
	Mode      model.ProviderMode `json:"mode"`
	SortOrder int                `json:"sort_order"`

	// Credentials are plaintext on the way in. Empty means keep whatever
	// the stored record already holds.
	Credentials map[string]string `json:"credentials,omitempty"`
	Config      map[string]any    `json:"config,omitempty"`
}

func (m *Manager) StoreProvider(ctx context.Context, ts int64, req StoreProviderRequest) (model.Provider, error) {
	if err := ValidateStoreProviderRequest(req); err != nil {
		return model.Provider{}, err
	}
	if _, err := factoryFor(req.Slug); err != nil {
		return model.Provider{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return model.Provider{}, fmt.Errorf("Manager::StoreProvider(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	record := model.Provider{
		Slug:      req.Slug,
		Name:      req.Name,
		Tier:      req.Tier,
		Enabled:   req.Enabled,
		Mode:      req.Mode,
		SortOrder: req.SortOrder,
		Config:    req.Config,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	listResult, err := m.storage.ListProviders(ctx, tx, storage.ListProvidersRequest{Limit: 1, Slugs: []string{req.Slug}})
	if err != nil {
		return model.Provider{}, fmt.Errorf("Manager::StoreProvider(): fail to ListProviders(): %w", err)
	}
	if len(listResult.Providers) > 0 {
		old := listResult.Providers[0]
		record.Credentials = old.Credentials
		record.LastSyncAt = old.LastSyncAt
		record.LastTestAt = old.LastTestAt
		record.ErrorCount = old.ErrorCount
		record.CreatedAt = old.CreatedAt
	}

	if len(req.Credentials) > 0 {
		envelope, err := m.vault.EncryptMap(req.Credentials)
		if err != nil {
			return model.Provider{}, fmt.Errorf("Manager::StoreProvider(): fail to seal credentials: %w", err)
		}
		record.Credentials = envelope
	}

	if err := m.storage.StoreProvider(ctx, tx, record); err != nil {
		return model.Provider{}, fmt.Errorf("Manager::StoreProvider(): fail to StoreProvider(): %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Provider{}, fmt.Errorf("Manager::StoreProvider(): fail to Commit(): %w", err)
	}

	if m.directory != nil {
		m.directory.Invalidate(req.Slug)
	}
	record.Credentials = ""
	return record, nil
}

func (m *Manager) GetProvider(ctx context.Context, slug string) (model.Provider, error) {
	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return model.Provider{}, fmt.Errorf("Manager::GetProvider(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	listResult, err := m.storage.ListProviders(ctx, tx, storage.ListProvidersRequest{Limit: 1, Slugs: []string{slug}})
	if err != nil {
		return model.Provider{}, fmt.Errorf("Manager::GetProvider(): fail to ListProviders(): %w", err)
	}
	if len(listResult.Providers) == 0 {
		return model.Provider{}, model.ErrProviderNotFound
	}

	record := listResult.Providers[0]
	record.Credentials = ""
	return record, nil
}

func (m *Manager) ListProviders(ctx context.Context, req storage.ListProvidersRequest) (storage.ListProvidersResponse, error) {
	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListProvidersResponse{}, fmt.Errorf("Manager::ListProviders(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	listResult, err := m.storage.ListProviders(ctx, tx, req)
	if err != nil {
		return storage.ListProvidersResponse{}, fmt.Errorf("Manager::ListProviders(): fail to ListProviders(): %w", err)
	}
	for i := range listResult.Providers {
		listResult.Providers[i].Credentials = ""
	}
	return listResult, nil
}

// TestProvider runs the adapter's connection check and stamps the outcome.
// The stamp is written even when the check fails so operators can see when
// the last attempt happened.
func (m *Manager) TestProvider(ctx context.Context, ts int64, slug string) error {
	adapter, err := m.directory.Get(ctx, slug)
	if err != nil {
		return err
	}

	testErr := adapter.TestConnection(ctx)

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return fmt.Errorf("Manager::TestProvider(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := m.storage.SetProviderTestedAt(ctx, tx, slug, ts); err != nil {
		return fmt.Errorf("Manager::TestProvider(): fail to SetProviderTestedAt(): %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("Manager::TestProvider(): fail to Commit(): %w", err)
	}

	if testErr != nil {
		if errors.Is(testErr, model.ErrProviderError) {
			return testErr
		}
		return fmt.Errorf("connection test failed: %s%w", testErr.Error(), model.ErrProviderError)
	}
	return nil
}
