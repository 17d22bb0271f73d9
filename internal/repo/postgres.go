package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListEnabled returns the merchant's enabled package types for a
// destination, smallest first.
func (r *postgresRepo) ListEnabled(ctx context.Context, dest entities.Destination) ([]entities.PackageType, error) {
	query, args := r.qb.Select(
		"label", "length_cm", "width_cm", "height_cm", "tare_g", "destination", "notes").
		From("package_types").
		Where(sq.Eq{"destination": string(dest), "enabled": true}).
		OrderBy("length_cm * width_cm * height_cm ASC").
		MustSql()

	var rows []PackageType
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select package types: %w", err)
	}

	out := make([]entities.PackageType, 0, len(rows))
	for _, row := range rows {
		out = append(out, PackageTypeToEntity(row))
	}
	return out, nil
}

func (r *postgresRepo) SaveQuote(ctx context.Context, quote entities.Quote) error {
	query, args := r.qb.Insert("quotes").
		Columns("quote_id", "order_id", "recipient_postcode", "recipient_country", "order_total", "created_at").
		Values(
			quote.QuoteID,
			nullString(quote.OrderID),
			nullInt32(quote.RecipientPostcode),
			nullString(quote.RecipientCountry),
			quote.OrderTotal,
			quote.CreatedAt,
		).
		Suffix("ON CONFLICT (quote_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save quote: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveRates(ctx context.Context, quoteID string, rates []entities.ShippingRate) error {
	if len(rates) == 0 {
		return nil
	}

	q := r.qb.Insert("quote_rates").
		Columns("quote_id", "position", "service_id", "label", "amount").
		Suffix("ON CONFLICT (quote_id, position) DO NOTHING")

	for i, rate := range rates {
		q = q.Values(quoteID, i, rate.ServiceID, rate.Label, rate.Amount)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save rates: %w", err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
