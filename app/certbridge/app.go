package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	formatter "github.com/bluexlab/logrus-formatter"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/certbridge/certbridge/pkg/certbridge/activity"
	"github.com/certbridge/certbridge/pkg/certbridge/api"
	"github.com/certbridge/certbridge/pkg/certbridge/catalog"
	"github.com/certbridge/certbridge/pkg/certbridge/order"
	"github.com/certbridge/certbridge/pkg/certbridge/provider"
	"github.com/certbridge/certbridge/pkg/certbridge/storage/postgres"
	syncer "github.com/certbridge/certbridge/pkg/certbridge/sync"
	"github.com/certbridge/certbridge/pkg/certbridge/vault"
	"github.com/certbridge/certbridge/pkg/config"
	"github.com/certbridge/certbridge/pkg/util"
	"github.com/gobuffalo/pop"
	"github.com/gobuffalo/pop/logging"
	"github.com/sirupsen/logrus"
)

const appName string = "certbridge"

type CLI struct {
	Server struct {
	} `cmd:"" help:"Run the admin API server and background sync"`
	Migrate struct {
		Path string `short:"p" long:"path" help:"Path to the migration files" type:"existingdir" default:"migrations"`
	} `cmd:"" help:"Migrate the database"`
	Cron struct {
	} `cmd:"" help:"Run only the scheduled sync loop"`
	Sync struct {
		Products struct {
			Provider string `short:"P" long:"provider" help:"Sync a single provider by slug"`
		} `cmd:"" help:"Refresh provider catalogs once"`
		Status struct {
			Batch int `short:"b" long:"batch" help:"Number of in-flight orders to poll" default:"50"`
		} `cmd:"" help:"Poll in-flight order statuses once"`
	} `cmd:"" help:"One-shot synchronization commands"`
	Config string `short:"c" long:"config" help:"Path to the configuration file" type:"existingfile" default:"config.yaml"`
}

type Config struct {
	Database util.PostgresDatabaseConfig `yaml:"database"`
	Server   struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	HostSecret   string        `yaml:"host_secret"`
	Sync         syncer.Config `yaml:"sync"`
	OTLPEndpoint string        `yaml:"otlp_endpoint"`
}

type components struct {
	restServer   *api.RestServer
	orchestrator *syncer.Orchestrator
}

type App struct{}

func (a *App) Run() {
	formatter.InitLogger()

	var cli CLI
	ctx := kong.Parse(&cli, kong.UsageOnError())
	switch ctx.Command() {
	case "server":
		a.runServer(cli)
	case "migrate":
		a.runMigrate(cli)
	case "cron":
		a.runCron(cli)
	case "sync products":
		a.runSyncProducts(cli)
	case "sync status":
		a.runSyncStatus(cli)
	default:
	}
}

func loadConfig(cli CLI) Config {
	var appConfig Config
	if err := config.FromFile(cli.Config, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}
	return appConfig
}

func initExporter(ctx context.Context, appConfig Config) func() {
	endpoint := appConfig.OTLPEndpoint
	if endpoint == "" {
		return func() {}
	}

	exporter, err := otlp_util.InitExporter(
		otlp_util.WithContext(ctx),
		otlp_util.WithEndPoint(endpoint),
		otlp_util.WithServiceName(appName),
		otlp_util.WithInSecure(),
		otlp_util.WithErrorHandler(func(err error) {
			logrus.Warnf("OTLP error: %v", err)
		}),
	)
	if err != nil {
		logrus.Errorf("failed to initialize OTLP exporter: %v", err)
		os.Exit(128)
	}
	return func() { _ = exporter.Shutdown(ctx) }
}

func buildComponents(appConfig Config) components {
	dbStorage, err := postgres.NewStorageWithConfig(appConfig.Database)
	if err != nil {
		logrus.Errorf("failed to create database connection: %v", err)
		os.Exit(128)
	}

	credentialVault, err := vault.New(appConfig.HostSecret)
	if err != nil {
		logrus.Errorf("failed to initialize credential vault: %v", err)
		os.Exit(128)
	}

	directory := provider.NewDirectory(dbStorage, credentialVault)
	providerMgr := provider.NewManager(dbStorage, credentialVault, directory)
	mapper := catalog.NewMapper(dbStorage)
	comparator := catalog.NewComparator(dbStorage)
	bridge := order.NewBridge(dbStorage)
	activityLogger := activity.NewLogger(dbStorage)

	orchestrator := syncer.NewOrchestrator(
		appConfig.Sync,
		dbStorage,
		syncer.WithDirectory(directory),
		syncer.WithActivityLogger(activityLogger),
	)

	restServer := api.NewRestServer(
		providerMgr,
		mapper,
		comparator,
		bridge,
		orchestrator,
		dbStorage,
		net.JoinHostPort(appConfig.Server.Host, strconv.Itoa(appConfig.Server.Port)),
	)

	return components{
		restServer:   restServer,
		orchestrator: orchestrator,
	}
}

func (a *App) runServer(cli CLI) {
	ctx := context.Background()

	appConfig := loadConfig(cli)
	shutdownExporter := initExporter(ctx, appConfig)
	defer shutdownExporter()

	app := buildComponents(appConfig)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()

		if err := app.restServer.Run(); err != nil {
			logrus.Errorf("failed to run API server: %v", err)
			os.Exit(1)
		}
	}(wg)

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()
		app.orchestrator.Run(ctx)
	}(wg)

	// listen for the stop signal
	<-ctx.Done()

	// Restore default behavior on the signals we are listening to
	stop()
	logrus.Info("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.restServer.Close(ctx); err != nil {
		logrus.Warnf("failed to close API server: %v", err)
		os.Exit(1)
	}

	wg.Wait()
}

func (a *App) runCron(cli CLI) {
	ctx := context.Background()

	appConfig := loadConfig(cli)
	shutdownExporter := initExporter(ctx, appConfig)
	defer shutdownExporter()

	app := buildComponents(appConfig)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.orchestrator.Run(ctx)
	logrus.Info("sync loop stopped")
}

func (a *App) runSyncProducts(cli CLI) {
	ctx := context.Background()

	appConfig := loadConfig(cli)
	shutdownExporter := initExporter(ctx, appConfig)
	defer shutdownExporter()

	app := buildComponents(appConfig)

	report, err := app.orchestrator.SyncProducts(ctx, cli.Sync.Products.Provider)
	if err != nil {
		logrus.Errorf("catalog sync failed: %v", err)
		os.Exit(1)
	}
	logrus.Infof(
		"catalog sync finished: %d providers, %d inserted, %d updated, %d price changes, %d errors",
		report.Providers, report.Inserted, report.Updated, report.PriceChanges, report.Errors,
	)
}

func (a *App) runSyncStatus(cli CLI) {
	ctx := context.Background()

	appConfig := loadConfig(cli)
	shutdownExporter := initExporter(ctx, appConfig)
	defer shutdownExporter()

	app := buildComponents(appConfig)

	report, err := app.orchestrator.SyncStatuses(ctx, cli.Sync.Status.Batch)
	if err != nil {
		logrus.Errorf("status sync failed: %v", err)
		os.Exit(1)
	}
	logrus.Infof(
		"status sync finished: %d checked, %d updated, %d errors",
		report.Checked, report.Changed, report.Errors,
	)
}

func (a *App) runMigrate(cli CLI) {
	appConfig := loadConfig(cli)

	// set up the logger
	pop.SetLogger(func(lvl logging.Level, s string, args ...interface{}) {
		switch lvl {
		case logging.Debug:
			logrus.Debugf(s, args...)
		case logging.Info:
			logrus.Infof(s, args...)
		case logging.Warn:
			logrus.Warnf(s, args...)
		case logging.Error:
			logrus.Errorf(s, args...)
		case logging.SQL:
			// Do nothing
		}
	})

	// setup database connection
	cd := pop.ConnectionDetails{
		Dialect:  "postgres",
		Database: appConfig.Database.Database,
		Host:     appConfig.Database.Host,
		Port:     strconv.Itoa(appConfig.Database.Port),
		User:     appConfig.Database.User,
		Password: appConfig.Database.Password,
	}
	conn, err := pop.NewConnection(&cd)
	if err != nil {
		logrus.Errorf("failed to create connection: %v", err)
		os.Exit(128)
	}

	// create the database if it doesn't exist
	if err = conn.Dialect.CreateDB(); err != nil {
		logrus.Warnf("failed to create database: %v", err)
	}

	migrator, err := pop.NewFileMigrator(cli.Migrate.Path, conn)
	if err != nil {
		logrus.Errorf("failed to create migrator: %v", err)
		os.Exit(128)
	}
	// Remove SchemaPath to prevent migrator try to dump schema.
	migrator.SchemaPath = ""

	// run the migrations
	if err = migrator.Up(); err != nil {
		logrus.Errorf("failed to migrate: %v", err)
		os.Exit(1)
	}
}

func main() {
	app := App{}
	app.Run()
}
