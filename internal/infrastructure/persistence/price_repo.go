package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"lootvalue/internal/domain"
	"lootvalue/internal/domain/entity"
	"lootvalue/pkg/errcodes"
)

// PriceRepository эталонные цены барахолки и торговцев.
type PriceRepository struct {
	db *sqlx.DB
}

func NewPriceRepository(db *sqlx.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

func (r *PriceRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// MarketPrice цена шаблона на барахолке. PriceNotFound, если шаблон не торгуется.
func (r *PriceRepository) MarketPrice(ctx context.Context, templateID string) (entity.MarketQuote, error) {
	query := `SELECT template_id, unit_price, updated_at FROM market_prices WHERE template_id = ?`

	var schema marketQuoteSchema
	if err := r.db.GetContext(ctx, &schema, r.db.Rebind(query), templateID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.MarketQuote{}, domain.NewError(errcodes.PriceNotFound, errcodes.KindNotFound,
				"market price not found")
		}
		return entity.MarketQuote{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get market price")
	}

	return schema.toDomain(), nil
}

// BuyerOffers все предложения торговцев по шаблону, по имени торговца.
func (r *PriceRepository) BuyerOffers(ctx context.Context, templateID string) ([]entity.BuyerQuote, error) {
	query := `
		SELECT template_id, buyer_name, unit_price, updated_at
		FROM buyer_offers
		WHERE template_id = ?
		ORDER BY buyer_name`

	var schemas []buyerQuoteSchema
	if err := r.db.SelectContext(ctx, &schemas, r.db.Rebind(query), templateID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get buyer offers")
	}

	return lo.Map(schemas, func(s buyerQuoteSchema, _ int) entity.BuyerQuote {
		return s.toDomain()
	}), nil
}

func (r *PriceRepository) ListMarketPrices(ctx context.Context) ([]entity.MarketQuote, error) {
	query := `SELECT template_id, unit_price, updated_at FROM market_prices ORDER BY template_id`

	var schemas []marketQuoteSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list market prices")
	}

	return lo.Map(schemas, func(s marketQuoteSchema, _ int) entity.MarketQuote {
		return s.toDomain()
	}), nil
}

func (r *PriceRepository) ListBuyerOffers(ctx context.Context) ([]entity.BuyerQuote, error) {
	query := `
		SELECT template_id, buyer_name, unit_price, updated_at
		FROM buyer_offers
		ORDER BY template_id, buyer_name`

	var schemas []buyerQuoteSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list buyer offers")
	}

	return lo.Map(schemas, func(s buyerQuoteSchema, _ int) entity.BuyerQuote {
		return s.toDomain()
	}), nil
}

// UpsertMarketPrices сохраняет цены барахолки атомарно.
func (r *PriceRepository) UpsertMarketPrices(ctx context.Context, quotes ...entity.MarketQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	query := r.db.Rebind(`
		INSERT INTO market_prices (template_id, unit_price, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (template_id) DO UPDATE SET
			unit_price = excluded.unit_price,
			updated_at = excluded.updated_at`)

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, q := range quotes {
			if _, err := tx.ExecContext(ctx, query, q.TemplateID, q.UnitPrice, updatedAt(q.UpdatedAt)); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError,
					fmt.Sprintf("failed to upsert market price %s", q.TemplateID))
			}
		}
		return nil
	})
}

// UpsertBuyerOffers сохраняет предложения торговцев атомарно.
func (r *PriceRepository) UpsertBuyerOffers(ctx context.Context, quotes ...entity.BuyerQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	query := r.db.Rebind(`
		INSERT INTO buyer_offers (template_id, buyer_name, unit_price, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (template_id, buyer_name) DO UPDATE SET
			unit_price = excluded.unit_price,
			updated_at = excluded.updated_at`)

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, q := range quotes {
			_, err := tx.ExecContext(ctx, query, q.TemplateID, q.BuyerName, q.UnitPrice, updatedAt(q.UpdatedAt))
			if err != nil {
				return domain.WrapError(err, errcodes.InternalServerError,
					fmt.Sprintf("failed to upsert buyer offer %s/%s", q.TemplateID, q.BuyerName))
			}
		}
		return nil
	})
}
