package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/pkg/utils"
)

type RateCalculator interface {
	CalculateRates(ctx context.Context, shipment entities.Shipment) ([]entities.ShippingRate, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      RateCalculator

	shipperPostcode int
	shipperCountry  string
}

func NewHTTPHandler(logger *slog.Logger, svc RateCalculator, shipperPostcode int, shipperCountry string) *HTTPHandler {
	return &HTTPHandler{
		logger:          logger.With(slog.String("handler", "http")),
		validate:        validator.New(),
		svc:             svc,
		shipperPostcode: shipperPostcode,
		shipperCountry:  shipperCountry,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/rates", h.CalculateRates)
	r.Get("/healthz", h.Health)
}

// CalculateRates prices a shipment against every enabled postage service.
// A shipment without a recipient address is not an error; it simply has
// no rates yet.
func (h *HTTPHandler) CalculateRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	rateRequestsInProgress.Inc()
	defer rateRequestsInProgress.Dec()

	var req RateRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		rateRequestTotal.WithLabelValues("bad_request").Inc()
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rateRequestTotal.WithLabelValues("bad_request").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	shipment := ShipmentToEntity(req, h.shipperPostcode, h.shipperCountry)

	rates, err := h.svc.CalculateRates(ctx, shipment)

	if errors.Is(err, entities.ErrConfiguration) {
		h.logger.ErrorContext(ctx, "service is not configured", slog.Any("error", err))
		rateRequestTotal.WithLabelValues("unavailable").Inc()
		utils.WriteError(w, "rate service is not configured", http.StatusServiceUnavailable)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to calculate rates",
			slog.Any("error", err),
			slog.String("order_id", req.OrderID))
		rateRequestTotal.WithLabelValues("error").Inc()
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	rateRequestTotal.WithLabelValues("ok").Inc()
	rateRequestDuration.Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, RatesToJSON(rates), http.StatusOK)
}

func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
