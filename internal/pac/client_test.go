package pac_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/internal/guidelines"
	"github.com/ausship/auspost-rate-service/internal/pac"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, baseURL string) *pac.Client {
	t.Helper()
	client, err := pac.NewClient(pac.ClientConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
	}, discardLogger())
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := pac.NewClient(pac.ClientConfig{}, discardLogger())
	assert.ErrorIs(t, err, entities.ErrClient)
}

func TestCalculatePostageDomestic(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("auth-key")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"postage_result":{"service":"Parcel Post","total_cost":"13.40"}}`)
	}))
	defer srv.Close()

	req, err := pac.NewRequestBuilder(guidelines.New()).
		Service(insuredService(300)).
		Address(domesticAddress()).
		PackedBox(packedBox()).
		Insurance(pac.InsuranceOptions{Enabled: true, Percentage: 1, Limit: true, OrderTotal: decimal.NewFromInt(10000)}).
		Build()
	require.NoError(t, err)

	resp, err := newTestClient(t, srv.URL).CalculatePostage(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "/postage/parcel/domestic/calculate.json", gotPath)
	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, []string{entities.CodeParcelRegular}, gotQuery["service_code"])
	assert.Equal(t, []string{"3000"}, gotQuery["from_postcode"])
	assert.Equal(t, []string{"2000"}, gotQuery["to_postcode"])
	assert.Equal(t, []string{"22"}, gotQuery["length"])
	assert.Equal(t, []string{"15"}, gotQuery["width"])
	assert.Equal(t, []string{"11"}, gotQuery["height"])
	assert.Equal(t, []string{"3"}, gotQuery["weight"])
	assert.Equal(t, []string{entities.OptionStandard}, gotQuery["option_code"])
	assert.Equal(t, []string{entities.OptionExtraCover}, gotQuery["suboption_code"])
	assert.Equal(t, []string{"100"}, gotQuery["extra_cover"])

	postage, err := resp.Postage()
	require.NoError(t, err)
	assert.True(t, postage.Equal(decimal.RequireFromString("13.40")))
	assert.Equal(t, "Parcel Post", resp.Service())
}

func TestCalculatePostageInternational(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"postage_result":{"service":"Economy Air","total_cost":42.85}}`)
	}))
	defer srv.Close()

	svc := entities.ServiceDefinition{
		ID:          "INT_PARCEL_AIR_OWN_PACKAGING",
		Type:        entities.ServiceTypeParcel,
		Destination: entities.DestinationInternational,
		ServiceCode: entities.CodeIntlParcelAir,
	}
	addr := entities.Address{
		ShipperPostcode:  3000,
		ShipperCountry:   "AU",
		RecipientCountry: "NZ",
	}

	req, err := pac.NewRequestBuilder(guidelines.New()).
		Service(svc).
		Address(addr).
		PackedBox(packedBox()).
		Insurance(pac.InsuranceOptions{}).
		Build()
	require.NoError(t, err)

	resp, err := newTestClient(t, srv.URL).CalculatePostage(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "/postage/parcel/international/calculate.json", gotPath)
	assert.Equal(t, []string{"NZ"}, gotQuery["country_code"])
	assert.Equal(t, []string{"22"}, gotQuery["length"])
	assert.Equal(t, []string{"15"}, gotQuery["width"])
	assert.Equal(t, []string{"11"}, gotQuery["height"])
	assert.Equal(t, []string{"3"}, gotQuery["weight"])
	assert.NotContains(t, gotQuery, "from_postcode")
	assert.NotContains(t, gotQuery, "to_postcode")
	assert.NotContains(t, gotQuery, "extra_cover")

	postage, err := resp.Postage()
	require.NoError(t, err)
	assert.True(t, postage.Equal(decimal.RequireFromString("42.85")))
}

func TestCalculatePostageRequiresInsuranceOptions(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	req, err := pac.NewRequestBuilder(guidelines.New()).
		Service(insuredService(300)).
		Address(domesticAddress()).
		PackedBox(packedBox()).
		Build()
	require.NoError(t, err)

	_, err = newTestClient(t, srv.URL).CalculatePostage(context.Background(), req)
	assert.ErrorIs(t, err, entities.ErrRequestNotSet)
	assert.False(t, called)
}

func TestCalculatePostageCarrierError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"errorMessage":"Please enter a valid Service code."}}`)
	}))
	defer srv.Close()

	req, err := pac.NewRequestBuilder(guidelines.New()).
		Service(insuredService(300)).
		Address(domesticAddress()).
		PackedBox(packedBox()).
		Insurance(pac.InsuranceOptions{}).
		Build()
	require.NoError(t, err)

	resp, err := newTestClient(t, srv.URL).CalculatePostage(context.Background(), req)
	require.NoError(t, err)

	_, err = resp.Postage()
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrResponse)
	assert.Contains(t, err.Error(), "valid Service code")
}

func TestCalculatePostageMissingTotalCost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"postage_result":{"service":"Parcel Post"}}`)
	}))
	defer srv.Close()

	req, err := pac.NewRequestBuilder(guidelines.New()).
		Service(insuredService(300)).
		Address(domesticAddress()).
		PackedBox(packedBox()).
		Insurance(pac.InsuranceOptions{}).
		Build()
	require.NoError(t, err)

	resp, err := newTestClient(t, srv.URL).CalculatePostage(context.Background(), req)
	require.NoError(t, err)

	_, err = resp.Postage()
	assert.ErrorIs(t, err, entities.ErrResponse)
}

func TestCalculatePostageRetriesTransportErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			// close the connection without a response
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"postage_result":{"total_cost":"9.70"}}`)
	}))
	defer srv.Close()

	req, err := pac.NewRequestBuilder(guidelines.New()).
		Service(insuredService(300)).
		Address(domesticAddress()).
		PackedBox(packedBox()).
		Insurance(pac.InsuranceOptions{}).
		Build()
	require.NoError(t, err)

	resp, err := newTestClient(t, srv.URL).CalculatePostage(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	postage, err := resp.Postage()
	require.NoError(t, err)
	assert.True(t, postage.Equal(decimal.RequireFromString("9.70")))
}
