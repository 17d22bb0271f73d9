package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"

	"github.com/ausship/auspost-rate-service/internal/config"
)

// kafkaHandler consumes shipment events and prices them eagerly, so the
// quote cache is warm by the time the buyer reaches checkout. Events that
// cannot be handled go to a dead letter topic.
type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	svc      RateCalculator

	shipperPostcode int
	shipperCountry  string
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, svc RateCalculator, shipperPostcode int, shipperCountry string) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:        validator.New(),
		svc:             svc,
		shipperPostcode: shipperPostcode,
		shipperCountry:  shipperCountry,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		if err := h.handleShipment(ctx, m); err != nil {
			h.logger.Error("failed to handle message", slog.Any("error", err))
			shipmentsFailed.Inc()

			// the writer retries internally
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			shipmentsDLQ.Inc()
		} else {
			shipmentsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
			commitErrors.Inc()
		}
	}
}

func (h *kafkaHandler) handleShipment(ctx context.Context, m kafka.Message) error {
	var req RateRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return fmt.Errorf("failed to unmarshal shipment: %w", err)
	}

	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid shipment data: %w", err)
	}

	shipment := ShipmentToEntity(req, h.shipperPostcode, h.shipperCountry)

	// the calculation result lands in the quote cache as a side effect
	if _, err := h.svc.CalculateRates(ctx, shipment); err != nil {
		return fmt.Errorf("failed to price shipment: %w", err)
	}
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
