// Package sync drives catalog and order-status refresh across all enabled
// providers, with advisory locking, retry isolation and change detection.
package sync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/certbridge/certbridge/pkg/certbridge/activity"
	"github.com/certbridge/certbridge/pkg/certbridge/csr"
	"github.com/certbridge/certbridge/pkg/certbridge/model"
	"github.com/certbridge/certbridge/pkg/certbridge/order"
	"github.com/certbridge/certbridge/pkg/certbridge/provider"
	"github.com/certbridge/certbridge/pkg/certbridge/storage"
	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	opSyncProducts = "sync_products"
	opSyncStatus   = "sync_status"

	defaultStatusBatchSize = 50
)

// Storage joins the slices of the data store the orchestrator touches.
type Storage interface {
	storage.ProviderStorage
	storage.CatalogStorage
	storage.OrderStorage
}

type Config struct {
	LockDir         string `yaml:"lock_dir"`
	StaleAfter      int    `yaml:"stale_after"`       // seconds
	CatalogInterval int    `yaml:"catalog_interval"`  // seconds between scheduled catalog syncs
	StatusInterval  int    `yaml:"status_interval"`   // seconds between scheduled status syncs
	CheckInterval   int    `yaml:"check_interval"`    // seconds between scheduler checks
	BatchSize       int    `yaml:"batch_size"`
}

type SyncReport struct {
	Providers    int `json:"providers"`
	Inserted     int `json:"inserted"`
	Updated      int `json:"updated"`
	PriceChanges int `json:"price_changes"`
	Errors       int `json:"errors"`
}

type StatusReport struct {
	Checked int `json:"checked"`
	Changed int `json:"changed"`
	Errors  int `json:"errors"`
}

type Orchestrator struct {
	storage   Storage
	directory *provider.Directory
	bridge    *order.Bridge
	activity  *activity.Logger
	lock      *FileLock

	catalogInterval time.Duration
	statusInterval  time.Duration
	checkInterval   time.Duration
	batchSize       int
	lockDir         string

	productsUpserted metric.Int64Counter
	priceChanges     metric.Int64Counter
	providerErrors   metric.Int64Counter
}

type OrchestratorOption func(*Orchestrator)

func WithDirectory(directory *provider.Directory) OrchestratorOption {
	return func(o *Orchestrator) {
		o.directory = directory
	}
}

func WithActivityLogger(logger *activity.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		o.activity = logger
	}
}

func NewOrchestrator(cfg Config, s Storage, opts ...OrchestratorOption) *Orchestrator {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultStatusBatchSize
	}

	o := &Orchestrator{
		storage:         s,
		bridge:          order.NewBridge(s),
		lock:            NewFileLock(cfg.LockDir, time.Duration(cfg.StaleAfter)*time.Second),
		catalogInterval: time.Duration(cfg.CatalogInterval) * time.Second,
		statusInterval:  time.Duration(cfg.StatusInterval) * time.Second,
		checkInterval:   time.Duration(cfg.CheckInterval) * time.Second,
		batchSize:       batchSize,
		lockDir:         cfg.LockDir,

		productsUpserted: otlp_util.NewInt64Counter("certbridge.sync.products.upserted", metric.WithDescription("The total number of catalog products upserted")),
		priceChanges:     otlp_util.NewInt64Counter("certbridge.sync.products.price_changes", metric.WithDescription("The total number of detected price changes")),
		providerErrors:   otlp_util.NewInt64Counter("certbridge.sync.provider.errors", metric.WithDescription("The total number of per-provider sync failures")),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SyncProducts refreshes the catalog mirror for one provider, or for every
// enabled provider when slug is empty. Failures are isolated per provider:
// the loop records them and moves on, preferring partial success over
// all-or-nothing.
func (o *Orchestrator) SyncProducts(ctx context.Context, slug string) (SyncReport, error) {
	release, err := o.lock.Acquire(opSyncProducts)
	if err != nil {
		return SyncReport{}, err
	}
	defer release()

	adapters, err := o.resolveAdapters(ctx, slug)
	if err != nil {
		return SyncReport{}, err
	}

	slugs := lo.Keys(adapters)
	sort.Strings(slugs)

	report := SyncReport{Providers: len(slugs)}
	for _, providerSlug := range slugs {
		if err := o.syncProviderCatalog(ctx, providerSlug, adapters[providerSlug], &report); err != nil {
			report.Errors++
			o.providerErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", providerSlug)))
			logrus.Errorf("catalog sync for %s failed: %v", providerSlug, err)
			o.logActivity(ctx, activity.LevelError, "provider", providerSlug, fmt.Sprintf("catalog sync failed: %v", err), nil)
			o.markSyncResult(ctx, providerSlug, false)
			continue
		}
		o.markSyncResult(ctx, providerSlug, true)
	}

	o.stampLastRun(opSyncProducts)
	return report, nil
}

func (o *Orchestrator) syncProviderCatalog(ctx context.Context, providerSlug string, adapter provider.Adapter, report *SyncReport) error {
	descriptors, err := adapter.FetchCatalog(ctx)
	if err != nil {
		return fmt.Errorf("fail to FetchCatalog(): %w", err)
	}

	ts := time.Now().Unix()
	tx, ctx, err := o.storage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return fmt.Errorf("fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, descriptor := range descriptors {
		product := model.CatalogProduct{
			ProviderSlug: providerSlug,
			Code:         descriptor.Code,
			Name:         descriptor.Name,
			Vendor:       descriptor.Vendor,
			Validation:   descriptor.Validation,
			Class:        descriptor.Class,
			Wildcard:     descriptor.Wildcard,
			SANSupport:   descriptor.SANSupport,
			MinDomains:   descriptor.MinDomains,
			MaxDomains:   descriptor.MaxDomains,
			MaxYears:     descriptor.MaxYears,
			RawPrices:    encodeRawPrices(descriptor.RawPrices),
			LastSyncAt:   ts,
		}

		outcome, err := o.storage.UpsertCatalogProduct(ctx, tx, product)
		if err != nil {
			return fmt.Errorf("fail to UpsertCatalogProduct(%s): %w", descriptor.Code, err)
		}

		o.productsUpserted.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", providerSlug)))
		if outcome.Inserted {
			report.Inserted++
		} else {
			report.Updated++
		}
		if outcome.PriceChanged {
			report.PriceChanges++
			o.priceChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", providerSlug)))
			o.logActivity(ctx, activity.LevelInfo, "catalog_product", providerSlug+"/"+descriptor.Code, "price table changed", nil)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("fail to Commit(): %w", err)
	}
	return nil
}

// SyncStatuses polls a bounded batch of in-flight orders that carry a remote
// id and merges whatever the provider returned into each order. Fields the
// provider did not report are never overwritten.
func (o *Orchestrator) SyncStatuses(ctx context.Context, batchSize int) (StatusReport, error) {
	release, err := o.lock.Acquire(opSyncStatus)
	if err != nil {
		return StatusReport{}, err
	}
	defer release()

	if batchSize <= 0 {
		batchSize = o.batchSize
	}

	orders, err := o.inFlightOrders(ctx, batchSize)
	if err != nil {
		return StatusReport{}, err
	}

	report := StatusReport{}
	ts := time.Now().Unix()
	for _, record := range orders {
		report.Checked++
		changed, err := o.syncOrderStatus(ctx, ts, record)
		if err != nil {
			report.Errors++
			logrus.Warnf("status sync for order %s failed: %v", record.ID, err)
			o.logActivity(ctx, activity.LevelWarn, "order", record.ID, fmt.Sprintf("status sync failed: %v", err), nil)
			continue
		}
		if changed {
			report.Changed++
		}
	}

	o.stampLastRun(opSyncStatus)
	return report, nil
}

// syncOrderStatus polls one order and reports whether anything was written.
func (o *Orchestrator) syncOrderStatus(ctx context.Context, ts int64, record model.Order) (bool, error) {
	adapter, err := o.directory.Get(ctx, record.ProviderSlug)
	if err != nil {
		return false, fmt.Errorf("fail to resolve adapter: %w", err)
	}

	status, err := adapter.OrderStatus(ctx, record.RemoteID)
	if err != nil {
		return false, fmt.Errorf("fail to OrderStatus(): %w", err)
	}

	// Some providers return the issued certificate without validity dates.
	// Pull them out of the leaf certificate instead of leaving them blank.
	if status.Certificate != "" && (status.ValidFrom == 0 || status.ValidTo == 0) {
		if info, err := csr.InspectCertificate([]byte(status.Certificate)); err == nil {
			if status.ValidFrom == 0 {
				status.ValidFrom = info.NotBefore
			}
			if status.ValidTo == 0 {
				status.ValidTo = info.NotAfter
			}
		}
	}

	patch := map[string]any{}
	if status.Certificate != "" {
		patch["certificate"] = status.Certificate
	}
	if status.CACertificate != "" {
		patch["ca_certificate"] = status.CACertificate
	}
	if status.ValidFrom > 0 {
		patch["valid_from"] = status.ValidFrom
	}
	if status.ValidTo > 0 {
		patch["valid_till"] = status.ValidTo
	}
	if len(status.Domains) > 0 {
		patch["domains"] = strings.Join(status.Domains, ",")
	}
	changed := false
	if len(patch) > 0 {
		if _, err := o.bridge.MergeConfigdata(ctx, ts, record.ID, patch); err != nil {
			return false, fmt.Errorf("fail to MergeConfigdata(): %w", err)
		}
		changed = true
	}

	if status.Status != record.Status && order.TransitionAllowed(record.Status, status.Status) {
		if _, err := o.bridge.UpdateStatus(ctx, ts, record.ID, status.Status); err != nil {
			return changed, fmt.Errorf("fail to UpdateStatus(): %w", err)
		}
		changed = true
		message := fmt.Sprintf("status changed to %s", status.Status)
		if status.Status.IsTerminal() {
			message = fmt.Sprintf("closed as %s", status.Status)
		}
		o.logActivity(ctx, activity.LevelInfo, "order", record.ID, message, nil)
	}
	return changed, nil
}

// RunScheduled triggers each sync whose configured interval has elapsed since
// its last run. How often this is called is the scheduler's business; the
// intervals decide whether a call does anything.
func (o *Orchestrator) RunScheduled(ctx context.Context) {
	now := time.Now()

	if o.catalogInterval > 0 && now.Sub(o.lastRun(opSyncProducts)) >= o.catalogInterval {
		if _, err := o.SyncProducts(ctx, ""); err != nil && !errors.Is(err, model.ErrLockHeld) {
			logrus.Errorf("scheduled catalog sync failed: %v", err)
		}
	}

	if o.statusInterval > 0 && now.Sub(o.lastRun(opSyncStatus)) >= o.statusInterval {
		if _, err := o.SyncStatuses(ctx, 0); err != nil && !errors.Is(err, model.ErrLockHeld) {
			logrus.Errorf("scheduled status sync failed: %v", err)
		}
	}
}

// Run is the long-lived loop behind the cron command.
func (o *Orchestrator) Run(ctx context.Context) {
	logrus.Info("sync orchestrator is now running")

	checkInterval := o.checkInterval
	if checkInterval <= 0 {
		checkInterval = time.Minute
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(checkInterval):
			o.RunScheduled(ctx)
		}
	}
}

func (o *Orchestrator) resolveAdapters(ctx context.Context, slug string) (map[string]provider.Adapter, error) {
	if slug == "" {
		return o.directory.GetAllEnabled(ctx)
	}

	adapter, err := o.directory.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	return map[string]provider.Adapter{slug: adapter}, nil
}

func (o *Orchestrator) inFlightOrders(ctx context.Context, batchSize int) ([]model.Order, error) {
	tx, ctx, err := o.storage.CreateTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("Orchestrator::inFlightOrders(): fail to CreateTx(): %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	listResult, err := o.storage.ListOrders(ctx, tx, storage.ListOrdersRequest{
		Limit:        batchSize,
		Statuses:     model.InFlightOrderStatuses(),
		WithRemoteID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("Orchestrator::inFlightOrders(): fail to ListOrders(): %w", err)
	}
	return listResult.Orders, nil
}

func (o *Orchestrator) markSyncResult(ctx context.Context, providerSlug string, success bool) {
	tx, ctx, err := o.storage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		logrus.Warnf("fail to record sync result for %s: %v", providerSlug, err)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := o.storage.SetProviderSyncResult(ctx, tx, providerSlug, time.Now().Unix(), success); err != nil {
		logrus.Warnf("fail to record sync result for %s: %v", providerSlug, err)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		logrus.Warnf("fail to record sync result for %s: %v", providerSlug, err)
	}
}

func (o *Orchestrator) logActivity(ctx context.Context, level, entityType, entityID, message string, logContext map[string]any) {
	if o.activity == nil {
		return
	}
	o.activity.Log(ctx, level, entityType, entityID, message, logContext)
}

func (o *Orchestrator) lastRun(operation string) time.Time {
	raw, err := os.ReadFile(o.lastRunPath(operation))
	if err != nil {
		return time.Time{}
	}
	seconds, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(seconds, 0)
}

func (o *Orchestrator) stampLastRun(operation string) {
	if err := os.MkdirAll(o.lockDir, 0o755); err != nil {
		logrus.Warnf("fail to stamp last run for %s: %v", operation, err)
		return
	}
	path := o.lastRunPath(operation)
	if err := os.WriteFile(path, []byte(strconv.FormatInt(time.Now().Unix(), 10)), 0o644); err != nil {
		logrus.Warnf("fail to stamp last run for %s: %v", operation, err)
	}
}

func (o *Orchestrator) lastRunPath(operation string) string {
	return filepath.Join(o.lockDir, operation+".last")
}

// encodeRawPrices serializes a price table with sorted keys so that byte
// comparison against the stored copy is a reliable change signal.
func encodeRawPrices(raw map[string]any) []byte {
	if len(raw) == 0 {
		return nil
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	return encoded
}
