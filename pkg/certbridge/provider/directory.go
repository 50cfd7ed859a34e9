package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/certbridge/certbridge/pkg/certbridge/vault"
	"github.com/sirupsen/logrus"
)

// Directory resolves a provider slug to a configured, credentialed adapter
// instance. Instances are memoized for the life of the process and must be
// invalidated explicitly after a provider's configuration changes.
type Directory struct {
	storage storage.ProviderStorage
	vault   *vault.Vault

	mu        sync.Mutex
	instances map[string]Adapter
}

func NewDirectory(providerStorage storage.ProviderStorage, credentialVault *vault.Vault) *Directory {
	return &Directory{
		storage:   providerStorage,
		vault:     credentialVault,
		instances: map[string]Adapter{},
	}
}

func (d *Directory) Get(ctx context.Context, slug string) (Adapter, error) {
	d.mu.Lock()
	if instance, ok := d.instances[slug]; ok {
		d.mu.Unlock()
		return instance, nil
	}
	d.mu.Unlock()

	record, err := d.getProviderRecord(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !record.Enabled {
		return nil, model.ErrProviderDisabled
	}

	instance, err := d.build(record)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.instances[slug] = instance
	d.mu.Unlock()
	return instance, nil
}

// GetAllEnabled returns one adapter per enabled provider in sort order. A
// provider whose adapter fails to initialize is logged and skipped so one
// broken integration never blocks the others.
func (d *Directory) GetAllEnabled(ctx context.Context) (map[string]Adapter, error) {
	tx, ctx, err := d.storage.CreateTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("Directory::GetAllEnabled(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	listResult, err := d.storage.ListProviders(ctx, tx, storage.ListProvidersRequest{EnabledOnly: true})
	if err != nil {
		return nil, fmt.Errorf("Directory::GetAllEnabled(): fail to ListProviders(): %w", err)
	}

	instances := map[string]Adapter{}
	for _, record := range listResult.Providers {
		instance, err := d.Get(ctx, record.Slug)
		if err != nil {
			logrus.Warnf("skip provider %s: %v", record.Slug, err)
			continue
		}
		instances[record.Slug] = instance
	}
	return instances, nil
}

// Invalidate drops the memoized instance for one slug. Call it after the
// provider record or its credentials change.
func (d *Directory) Invalidate(slug string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.instances, slug)
}

func (d *Directory) InvalidateAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.instances = map[string]Adapter{}
}

func (d *Directory) getProviderRecord(ctx context.Context, slug string) (model.Provider, error) {
	tx, ctx, err := d.storage.CreateTx(ctx)
	if err != nil {
		return model.Provider{}, fmt.Errorf("Directory::Get(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	listResult, err := d.storage.ListProviders(ctx, tx, storage.ListProvidersRequest{Limit: 1, Slugs: []string{slug}})
	if err != nil {
		return model.Provider{}, fmt.Errorf("Directory::Get(): fail to ListProviders(): %w", err)
	}
	if len(listResult.Providers) == 0 {
		return model.Provider{}, model.ErrProviderNotFound
	}
	return listResult.Providers[0], nil
}

func (d *Directory) build(record model.Provider) (Adapter, error) {
	factory, err := factoryFor(record.Slug)
	if err != nil {
		return nil, err
	}

	credentials := map[string]string{}
	if record.Credentials != "" {
		credentials, err = d.vault.DecryptMap(record.Credentials)
		if err != nil {
			return nil, fmt.Errorf("Directory::build(): fail to decrypt credentials for %s: %w", record.Slug, err)
		}
	}

	instance, err := factory(Settings{
		Credentials: credentials,
		Mode:        record.Mode,
		Config:      record.Config,
	})
	if err != nil {
		return nil, fmt.Errorf("Directory::build(): fail to construct adapter for %s: %w", record.Slug, err)
	}
	return instance, nil
}
