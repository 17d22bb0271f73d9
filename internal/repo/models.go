package repo

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/pkg/measure"
)

type PackageType struct {
	Label       string         `db:"label"`
	LengthCM    float64        `db:"length_cm"`
	WidthCM     float64        `db:"width_cm"`
	HeightCM    float64        `db:"height_cm"`
	TareG       sql.NullInt32  `db:"tare_g"`
	Destination string         `db:"destination"`
	Notes       sql.NullString `db:"notes"`
}

type Quote struct {
	QuoteID           string          `db:"quote_id"`
	OrderID           sql.NullString  `db:"order_id"`
	RecipientPostcode sql.NullInt32   `db:"recipient_postcode"`
	RecipientCountry  sql.NullString  `db:"recipient_country"`
	OrderTotal        decimal.Decimal `db:"order_total"`
	CreatedAt         time.Time       `db:"created_at"`
}

type QuoteRate struct {
	QuoteID   string          `db:"quote_id"`
	Position  int             `db:"position"`
	ServiceID string          `db:"service_id"`
	Label     string          `db:"label"`
	Amount    decimal.Decimal `db:"amount"`
}

func PackageTypeToEntity(pt PackageType) entities.PackageType {
	return entities.PackageType{
		Label:       pt.Label,
		Length:      measure.NewLength(pt.LengthCM, measure.Centimetre),
		Width:       measure.NewLength(pt.WidthCM, measure.Centimetre),
		Height:      measure.NewLength(pt.HeightCM, measure.Centimetre),
		Weight:      measure.NewWeight(float64(pt.TareG.Int32), measure.Gram),
		Destination: entities.Destination(pt.Destination),
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt32(i int) sql.NullInt32 {
	if i == 0 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(i), Valid: true}
}
