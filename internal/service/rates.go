package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/internal/guidelines"
	"github.com/ausship/auspost-rate-service/internal/pac"
	"github.com/ausship/auspost-rate-service/internal/packing"
	"github.com/ausship/auspost-rate-service/internal/pricing"
	"github.com/ausship/auspost-rate-service/pkg/trm"
	"github.com/ausship/auspost-rate-service/pkg/utils"
)

type ServiceCatalog interface {
	All() []entities.ServiceDefinition
	ByKeys(keys []string, ignoreMissing bool) ([]entities.ServiceDefinition, error)
}

type PackageTypeSource interface {
	ListEnabled(ctx context.Context, dest entities.Destination) ([]entities.PackageType, error)
}

type PostageClient interface {
	CalculatePostage(ctx context.Context, req *pac.Request) (*pac.Response, error)
}

type QuoteRepo interface {
	SaveQuote(ctx context.Context, quote entities.Quote) error
	SaveRates(ctx context.Context, quoteID string, rates []entities.ShippingRate) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// Options is the merchant configuration a rate calculation runs under.
type Options struct {
	APIKey string

	// EnabledServices holds catalog keys; empty enables every service.
	EnabledServices []string

	InsuranceEnabled    bool
	InsurancePercentage float64
	InsuranceLimit      bool

	RateMultiplier float64
	Rounding       entities.RoundingMode

	// ServiceTimeout bounds the carrier calls of one service.
	ServiceTimeout time.Duration
}

type rateService struct {
	logger    *slog.Logger
	catalog   ServiceCatalog
	packages  PackageTypeSource
	client    PostageClient
	guide     *guidelines.Guidelines
	txManager trm.Manager
	repo      QuoteRepo
	cache     Cache
	opts      Options
}

// NewRateService wires the rate calculation pipeline. txManager and repo
// may be nil when quote auditing is disabled.
func NewRateService(
	logger *slog.Logger,
	catalog ServiceCatalog,
	packages PackageTypeSource,
	client PostageClient,
	guide *guidelines.Guidelines,
	txManager trm.Manager,
	repo QuoteRepo,
	cache Cache,
	opts Options,
) *rateService {
	return &rateService{
		logger:    logger.With(slog.String("service", "rates")),
		catalog:   catalog,
		packages:  packages,
		client:    client,
		guide:     guide,
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		opts:      opts,
	}
}

// CalculateRates prices a shipment against every enabled service for its
// destination. Services that cannot serve the shipment are skipped, not
// errors: a service only appears in the result when every one of its
// boxes was priced.
func (s *rateService) CalculateRates(ctx context.Context, shipment entities.Shipment) ([]entities.ShippingRate, error) {
	if s.opts.APIKey == "" {
		return nil, fmt.Errorf("%w: carrier api key is not set", entities.ErrConfiguration)
	}

	if shipment.Address.Empty() {
		s.logger.DebugContext(ctx, "no recipient address yet", slog.String("order_id", shipment.OrderID))
		return nil, nil
	}

	domestic, err := shipment.Address.IsDomestic()
	if err != nil {
		return nil, err
	}
	dest := entities.DestinationInternational
	if domestic {
		dest = entities.DestinationDomestic
	}

	key, err := s.cacheKey(shipment)
	if err == nil {
		if data, ok := s.cache.Get(key); ok {
			var rates []entities.ShippingRate
			if err := json.Unmarshal(data, &rates); err == nil {
				return rates, nil
			}
			s.logger.WarnContext(ctx, "dropping unreadable cached quote", slog.String("key", key))
		}
	}

	services, err := s.enabledServices(dest)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, nil
	}

	packageTypes, err := s.packages.ListEnabled(ctx, dest)
	if err != nil {
		return nil, fmt.Errorf("list package types: %w", err)
	}

	results := make([]*entities.ShippingRate, len(services))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, def := range services {
		i, def := i, def
		group.Go(func() error {
			rate, err := s.priceService(groupCtx, def, dest, shipment, packageTypes)
			if err != nil {
				s.logger.DebugContext(ctx, "service skipped",
					slog.String("service", def.ID),
					slog.Any("error", err))
				return nil
			}
			results[i] = rate
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	rates := make([]entities.ShippingRate, 0, len(results))
	for _, rate := range results {
		if rate != nil {
			rates = append(rates, *rate)
		}
	}

	if key != "" {
		if data, err := json.Marshal(rates); err == nil {
			s.cache.Set(key, data)
		}
	}

	s.auditQuote(ctx, shipment, rates)
	return rates, nil
}

func (s *rateService) enabledServices(dest entities.Destination) ([]entities.ServiceDefinition, error) {
	var (
		defs []entities.ServiceDefinition
		err  error
	)
	if len(s.opts.EnabledServices) == 0 {
		defs = s.catalog.All()
	} else {
		// unknown keys are stale config, not a reason to quote nothing
		defs, err = s.catalog.ByKeys(s.opts.EnabledServices, true)
		if err != nil {
			return nil, err
		}
	}

	out := defs[:0]
	for _, def := range defs {
		if def.Destination == dest {
			out = append(out, def)
		}
	}
	return out, nil
}

// priceService packs the shipment and prices every resulting box.  Any
// failure abandons the whole service; partial sums are never returned.
func (s *rateService) priceService(
	ctx context.Context,
	def entities.ServiceDefinition,
	dest entities.Destination,
	shipment entities.Shipment,
	packageTypes []entities.PackageType,
) (*entities.ShippingRate, error) {
	if s.opts.ServiceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ServiceTimeout)
		defer cancel()
	}

	packer, err := packing.NewPacker(s.guide, dest)
	if err != nil {
		return nil, err
	}
	for _, pt := range packageTypes {
		if err := packer.AddPackageType(pt); err != nil {
			s.logger.WarnContext(ctx, "package type rejected",
				slog.String("label", pt.Label),
				slog.Any("error", err))
		}
	}
	packer.AddItems(shipment.Items)

	boxes, err := packer.Pack()
	if err != nil {
		return nil, err
	}
	if len(boxes) == 0 {
		return nil, errors.New("nothing to pack")
	}

	total := decimal.Zero
	for _, box := range boxes {
		req, err := pac.NewRequestBuilder(s.guide).
			Service(def).
			Address(shipment.Address).
			PackedBox(box).
			Insurance(pac.InsuranceOptions{
				Enabled:    s.opts.InsuranceEnabled,
				Percentage: s.opts.InsurancePercentage,
				Limit:      s.opts.InsuranceLimit,
				OrderTotal: shipment.OrderTotal,
			}).
			Build()
		if err != nil {
			return nil, err
		}

		resp, err := s.client.CalculatePostage(ctx, req)
		if err != nil {
			return nil, err
		}
		postage, err := resp.Postage()
		if err != nil {
			return nil, err
		}

		total = total.Add(pricing.Adjust(postage, s.opts.RateMultiplier, s.opts.Rounding))
	}

	return &entities.ShippingRate{
		ServiceID: def.ID,
		Label:     def.DisplayTitle,
		Amount:    total,
	}, nil
}

// auditQuote persists the calculation outcome for later inspection.
// Auditing is best effort and never fails the calculation.
func (s *rateService) auditQuote(ctx context.Context, shipment entities.Shipment, rates []entities.ShippingRate) {
	if s.repo == nil || s.txManager == nil {
		return
	}

	quote := entities.Quote{
		QuoteID:           uuid.NewString(),
		OrderID:           shipment.OrderID,
		RecipientPostcode: shipment.Address.RecipientPostcode,
		RecipientCountry:  shipment.Address.RecipientCountry,
		OrderTotal:        shipment.OrderTotal,
		Rates:             rates,
		CreatedAt:         time.Now().UTC(),
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveQuote(ctx, quote); err != nil {
				return fmt.Errorf("failed to save quote: %w", err)
			}
			if err := s.repo.SaveRates(ctx, quote.QuoteID, rates); err != nil {
				return fmt.Errorf("failed to save rates: %w", err)
			}
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn); err != nil {
		s.logger.ErrorContext(ctx, "failed to audit quote",
			slog.String("quote_id", quote.QuoteID),
			slog.Any("error", err))
	}
}
