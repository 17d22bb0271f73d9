package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ausship/auspost-rate-service/internal/catalog"
	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/internal/guidelines"
	"github.com/ausship/auspost-rate-service/internal/pac"
	"github.com/ausship/auspost-rate-service/internal/service"
	mocks "github.com/ausship/auspost-rate-service/internal/service/mocks"
	txMocks "github.com/ausship/auspost-rate-service/pkg/trm/mocks"
	"github.com/ausship/auspost-rate-service/pkg/measure"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testShipment() entities.Shipment {
	return entities.Shipment{
		OrderID: "order-1",
		Address: entities.Address{
			ShipperPostcode:   3000,
			ShipperCountry:    "AU",
			RecipientPostcode: 2000,
			RecipientCountry:  "AU",
		},
		Items: []entities.OrderItem{{
			Title:     "mug",
			Quantity:  2,
			Weight:    measure.NewWeight(0.4, measure.Kilogram),
			Length:    measure.NewLength(10, measure.Centimetre),
			Width:     measure.NewLength(8, measure.Centimetre),
			Height:    measure.NewLength(8, measure.Centimetre),
			UnitValue: decimal.NewFromInt(25),
		}},
		OrderTotal: decimal.NewFromInt(50),
	}
}

func testPackageTypes() []entities.PackageType {
	return []entities.PackageType{{
		Label:       "Bx2 box",
		Length:      measure.NewLength(31, measure.Centimetre),
		Width:       measure.NewLength(22.5, measure.Centimetre),
		Height:      measure.NewLength(10.2, measure.Centimetre),
		Weight:      measure.NewWeight(300, measure.Gram),
		Destination: entities.DestinationDomestic,
	}}
}

func postageResponse(t *testing.T, cost string) *pac.Response {
	t.Helper()
	resp, err := pac.ParseResponse(fmt.Appendf(nil, `{"postage_result":{"total_cost":%q}}`, cost))
	require.NoError(t, err)
	return resp
}

func defaultOptions() service.Options {
	return service.Options{
		APIKey:          "key",
		EnabledServices: []string{"AUS_SERVICE_OPTION_STANDARD", "AUS_PARCEL_EXPRESS"},
		RateMultiplier:  1.0,
		Rounding:        entities.RoundHalfUp,
	}
}

func TestCalculateRates_NoAPIKey(t *testing.T) {
	opts := defaultOptions()
	opts.APIKey = ""

	svc := service.NewRateService(testLogger(), catalog.New(),
		mocks.NewMockPackageTypeSource(t), mocks.NewMockPostageClient(t),
		guidelines.New(), nil, nil, mocks.NewMockCache(t), opts)

	_, err := svc.CalculateRates(context.Background(), testShipment())
	assert.ErrorIs(t, err, entities.ErrConfiguration)
}

func TestCalculateRates_EmptyAddress(t *testing.T) {
	svc := service.NewRateService(testLogger(), catalog.New(),
		mocks.NewMockPackageTypeSource(t), mocks.NewMockPostageClient(t),
		guidelines.New(), nil, nil, mocks.NewMockCache(t), defaultOptions())

	shipment := testShipment()
	shipment.Address.RecipientPostcode = 0
	shipment.Address.RecipientCountry = ""

	rates, err := svc.CalculateRates(context.Background(), shipment)
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestCalculateRates_Domestic(t *testing.T) {
	packages := mocks.NewMockPackageTypeSource(t)
	packages.EXPECT().ListEnabled(mock.Anything, entities.DestinationDomestic).
		Return(testPackageTypes(), nil)

	client := mocks.NewMockPostageClient(t)
	client.EXPECT().CalculatePostage(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req *pac.Request) (*pac.Response, error) {
			return postageResponse(t, "10.00"), nil
		})

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything).Return(nil, false)
	cache.EXPECT().Set(mock.Anything, mock.Anything).Return()

	opts := defaultOptions()
	opts.RateMultiplier = 1.5

	svc := service.NewRateService(testLogger(), catalog.New(), packages, client,
		guidelines.New(), nil, nil, cache, opts)

	rates, err := svc.CalculateRates(context.Background(), testShipment())
	require.NoError(t, err)
	require.Len(t, rates, 2)

	// catalog order, not configuration order
	assert.Equal(t, "AUS_SERVICE_OPTION_STANDARD", rates[0].ServiceID)
	assert.Equal(t, "AUS_PARCEL_EXPRESS", rates[1].ServiceID)
	assert.Equal(t, "Standard Post", rates[0].Label)
	for _, rate := range rates {
		assert.True(t, rate.Amount.Equal(decimal.RequireFromString("15.00")),
			"got %s", rate.Amount)
	}
}

func TestCalculateRates_PartialFailureIsolated(t *testing.T) {
	packages := mocks.NewMockPackageTypeSource(t)
	packages.EXPECT().ListEnabled(mock.Anything, entities.DestinationDomestic).
		Return(testPackageTypes(), nil)

	client := mocks.NewMockPostageClient(t)
	client.EXPECT().CalculatePostage(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req *pac.Request) (*pac.Response, error) {
			if req.Service().ServiceCode == entities.CodeParcelExpress {
				return nil, fmt.Errorf("%w: connection refused", entities.ErrClient)
			}
			return postageResponse(t, "10.00"), nil
		})

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything).Return(nil, false)
	cache.EXPECT().Set(mock.Anything, mock.Anything).Return()

	svc := service.NewRateService(testLogger(), catalog.New(), packages, client,
		guidelines.New(), nil, nil, cache, defaultOptions())

	rates, err := svc.CalculateRates(context.Background(), testShipment())
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "AUS_SERVICE_OPTION_STANDARD", rates[0].ServiceID)
}

func TestCalculateRates_MultipleBoxesSummed(t *testing.T) {
	packages := mocks.NewMockPackageTypeSource(t)
	packages.EXPECT().ListEnabled(mock.Anything, entities.DestinationDomestic).
		Return([]entities.PackageType{{
			Label:       "crate",
			Length:      measure.NewLength(50, measure.Centimetre),
			Width:       measure.NewLength(40, measure.Centimetre),
			Height:      measure.NewLength(30, measure.Centimetre),
			Weight:      measure.NewWeight(500, measure.Gram),
			Destination: entities.DestinationDomestic,
		}}, nil)

	calls := 0
	client := mocks.NewMockPostageClient(t)
	client.EXPECT().CalculatePostage(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req *pac.Request) (*pac.Response, error) {
			calls++
			return postageResponse(t, "21.30"), nil
		})

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything).Return(nil, false)
	cache.EXPECT().Set(mock.Anything, mock.Anything).Return()

	opts := defaultOptions()
	opts.EnabledServices = []string{"AUS_SERVICE_OPTION_STANDARD"}

	svc := service.NewRateService(testLogger(), catalog.New(), packages, client,
		guidelines.New(), nil, nil, cache, opts)

	// two 12 kg items cannot share one box under the 22 kg limit
	shipment := testShipment()
	shipment.Items = []entities.OrderItem{{
		Title:    "dumbbell",
		Quantity: 2,
		Weight:   measure.NewWeight(12, measure.Kilogram),
		Length:   measure.NewLength(20, measure.Centimetre),
		Width:    measure.NewLength(20, measure.Centimetre),
		Height:   measure.NewLength(20, measure.Centimetre),
	}}

	rates, err := svc.CalculateRates(context.Background(), shipment)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, 2, calls)
	assert.True(t, rates[0].Amount.Equal(decimal.RequireFromString("42.60")),
		"got %s", rates[0].Amount)
}

func TestCalculateRates_ItemTooLargeSkipsService(t *testing.T) {
	packages := mocks.NewMockPackageTypeSource(t)
	packages.EXPECT().ListEnabled(mock.Anything, entities.DestinationDomestic).
		Return(testPackageTypes(), nil)

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything).Return(nil, false)
	cache.EXPECT().Set(mock.Anything, mock.Anything).Return()

	svc := service.NewRateService(testLogger(), catalog.New(), packages,
		mocks.NewMockPostageClient(t), guidelines.New(), nil, nil, cache, defaultOptions())

	shipment := testShipment()
	shipment.Items = []entities.OrderItem{{
		Title:    "surfboard",
		Quantity: 1,
		Weight:   measure.NewWeight(6, measure.Kilogram),
		Length:   measure.NewLength(90, measure.Centimetre),
		Width:    measure.NewLength(50, measure.Centimetre),
		Height:   measure.NewLength(12, measure.Centimetre),
	}}

	rates, err := svc.CalculateRates(context.Background(), shipment)
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestCalculateRates_CacheHit(t *testing.T) {
	cached := []entities.ShippingRate{{
		ServiceID: "AUS_SERVICE_OPTION_STANDARD",
		Label:     "Standard Post",
		Amount:    decimal.RequireFromString("13.40"),
	}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything).Return(data, true)

	svc := service.NewRateService(testLogger(), catalog.New(),
		mocks.NewMockPackageTypeSource(t), mocks.NewMockPostageClient(t),
		guidelines.New(), nil, nil, cache, defaultOptions())

	rates, err := svc.CalculateRates(context.Background(), testShipment())
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "AUS_SERVICE_OPTION_STANDARD", rates[0].ServiceID)
	assert.True(t, rates[0].Amount.Equal(decimal.RequireFromString("13.40")))
}

func TestCalculateRates_AuditsQuote(t *testing.T) {
	packages := mocks.NewMockPackageTypeSource(t)
	packages.EXPECT().ListEnabled(mock.Anything, entities.DestinationDomestic).
		Return(testPackageTypes(), nil)

	client := mocks.NewMockPostageClient(t)
	client.EXPECT().CalculatePostage(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req *pac.Request) (*pac.Response, error) {
			return postageResponse(t, "10.00"), nil
		})

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything).Return(nil, false)
	cache.EXPECT().Set(mock.Anything, mock.Anything).Return()

	tx := txMocks.NewMockManager(t)
	tx.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})

	repo := mocks.NewMockQuoteRepo(t)
	var savedQuote entities.Quote
	repo.EXPECT().SaveQuote(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, quote entities.Quote) error {
			savedQuote = quote
			return nil
		})
	repo.EXPECT().SaveRates(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := service.NewRateService(testLogger(), catalog.New(), packages, client,
		guidelines.New(), tx, repo, cache, defaultOptions())

	rates, err := svc.CalculateRates(context.Background(), testShipment())
	require.NoError(t, err)
	require.Len(t, rates, 2)

	assert.Equal(t, "order-1", savedQuote.OrderID)
	assert.Equal(t, 2000, savedQuote.RecipientPostcode)
	assert.NotEmpty(t, savedQuote.QuoteID)
	assert.Len(t, savedQuote.Rates, 2)
}

func TestCalculateRates_PackageTypeSourceFails(t *testing.T) {
	packages := mocks.NewMockPackageTypeSource(t)
	packages.EXPECT().ListEnabled(mock.Anything, entities.DestinationDomestic).
		Return(nil, errors.New("db down"))

	cache := mocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything).Return(nil, false)

	svc := service.NewRateService(testLogger(), catalog.New(), packages,
		mocks.NewMockPostageClient(t), guidelines.New(), nil, nil, cache, defaultOptions())

	_, err := svc.CalculateRates(context.Background(), testShipment())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
