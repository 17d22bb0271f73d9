package pac

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/pkg/utils"
)

const DefaultBaseURL = "https://digitalapi.auspost.com.au"

// maxResponseBody bounds how much of a carrier response is read.
const maxResponseBody = 1 << 20

type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// LogRequests and LogResponses turn on wire-level debug logging.
	LogRequests  bool
	LogResponses bool

	Retry utils.RetryConfig
}

// Client calls the PAC calculate endpoints. Safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
	cfg     ClientConfig
}

func NewClient(cfg ClientConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key is empty", entities.ErrClient)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
		cfg:     cfg,
	}, nil
}

// CalculatePostage prices one request against the carrier. Transport
// failures are retried with backoff and surface as ErrClient; malformed
// or error responses surface as ErrResponse.
func (c *Client) CalculatePostage(ctx context.Context, req *Request) (*Response, error) {
	endpoint, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	if c.cfg.LogRequests {
		c.logger.DebugContext(ctx, "carrier request", slog.String("url", endpoint))
	}

	var body []byte
	err = utils.Retry(c.cfg.Retry, func() error {
		var doErr error
		body, doErr = c.do(ctx, endpoint)
		return doErr
	}, context.Canceled, context.DeadlineExceeded)
	if err != nil {
		return nil, err
	}

	if c.cfg.LogResponses {
		c.logger.DebugContext(ctx, "carrier response", slog.String("body", string(body)))
	}

	return ParseResponse(body)
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", entities.ErrClient, err)
	}
	httpReq.Header.Set("auth-key", c.apiKey)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", entities.ErrClient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", entities.ErrClient, err)
	}
	// error payloads arrive with 4xx status; they parse like any other
	return body, nil
}

// buildURL derives the endpoint path from the request's service type and
// destination and encodes the box and address as query parameters.
func (c *Client) buildURL(req *Request) (string, error) {
	kind := "letter"
	if req.IsParcel() {
		kind = "parcel"
	}
	scope := "international"
	if req.IsDomestic() {
		scope = "domestic"
	}

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: base url: %v", entities.ErrClient, err)
	}
	base.Path = fmt.Sprintf("/postage/%s/%s/calculate.json", kind, scope)

	dims := req.Dimensions()
	addr := req.Address()

	query := url.Values{}
	query.Set("service_code", req.Service().ServiceCode)
	query.Set("weight", strconv.FormatFloat(dims.Weight, 'f', -1, 64))
	query.Set("length", strconv.Itoa(dims.Length))
	query.Set("width", strconv.Itoa(dims.Width))
	query.Set("height", strconv.Itoa(dims.Height))

	if req.IsDomestic() {
		query.Set("from_postcode", strconv.Itoa(addr.ShipperPostcode))
		query.Set("to_postcode", strconv.Itoa(addr.RecipientPostcode))
	} else {
		query.Set("country_code", addr.RecipientCountry)
	}

	for key, value := range req.ExtraServiceOptions() {
		query.Set(key, value)
	}

	cover, err := req.InsuranceAmount()
	if err != nil {
		return "", err
	}
	if cover > 0 {
		query.Set("extra_cover", strconv.Itoa(cover))
	}

	base.RawQuery = query.Encode()
	return base.String(), nil
}
