package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ausship/auspost-rate-service/internal/app"
	"github.com/ausship/auspost-rate-service/internal/catalog"
	"github.com/ausship/auspost-rate-service/internal/config"
	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/internal/guidelines"
	"github.com/ausship/auspost-rate-service/internal/handler"
	"github.com/ausship/auspost-rate-service/internal/pac"
	"github.com/ausship/auspost-rate-service/internal/postgres"
	"github.com/ausship/auspost-rate-service/internal/repo"
	"github.com/ausship/auspost-rate-service/internal/service"
	"github.com/ausship/auspost-rate-service/pkg/cache"
	"github.com/ausship/auspost-rate-service/pkg/trm"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	rounding, err := entities.ParseRoundingMode(conf.Options.Rounding)
	panicIfErr("invalid rounding mode", err)

	handler.RegisterMetrics()

	client, err := pac.NewClient(pac.ClientConfig{
		BaseURL:      conf.AusPost.BaseURL,
		APIKey:       conf.AusPost.APIKey,
		Timeout:      conf.AusPost.Timeout,
		LogRequests:  conf.Options.LogRequests,
		LogResponses: conf.Options.LogResponses,
	}, logger)
	panicIfErr("failed to build carrier client", err)

	quoteCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	var (
		packageTypes service.PackageTypeSource
		quoteRepo    service.QuoteRepo
		txManager    trm.Manager
	)
	if conf.Postgres.Enabled {
		db, err := postgres.New(conf.Postgres)
		panicIfErr("failed to connect to db", err)
		defer db.Close()
		logger.Info("postgres connected")

		pgRepo := repo.NewPostgresRepo(db)
		packageTypes = pgRepo
		quoteRepo = pgRepo
		txManager = trm.NewManager(db)
	} else {
		packageTypes = repo.NewStaticPackageTypes(
			conf.Options.DomesticPackageTypes,
			conf.Options.InternationalPackageTypes,
		)
	}

	rateService := service.NewRateService(
		logger,
		catalog.New(),
		packageTypes,
		client,
		guidelines.New(),
		txManager,
		quoteRepo,
		quoteCache,
		service.Options{
			APIKey:              conf.AusPost.APIKey,
			EnabledServices:     conf.Options.EnabledServices,
			InsuranceEnabled:    conf.Options.Insurance,
			InsurancePercentage: conf.Options.InsurancePercentage,
			InsuranceLimit:      conf.Options.InsuranceLimit,
			RateMultiplier:      conf.Options.RateMultiplier,
			Rounding:            rounding,
			ServiceTimeout:      conf.AusPost.ServiceTimeout,
		},
	)

	httpHandler := handler.NewHTTPHandler(logger, rateService, conf.Store.Postcode, conf.Store.CountryCode)

	application := app.New(logger, conf)
	application.SetHTTPHandlers(httpHandler)

	if conf.Kafka.Enabled {
		kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, rateService, conf.Store.Postcode, conf.Store.CountryCode)
		application.SetConsumers(kafkaHandler)
	}

	application.SetStarters(cacheJanitor{quoteCache})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type cacheJanitor struct {
	cache *cache.LRUCache
}

func (j cacheJanitor) Start(ctx context.Context) error {
	j.cache.StartJanitor(ctx)
	return nil
}
