package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
	"github.com/srgjo27/ticket_marketplace/internal/core/ports"
)

var _ ports.ListingHistoryRepository = (*ListingHistoryRepository)(nil)

type ListingHistoryRepository struct {
	db *sql.DB
}

func NewListingHistoryRepository(db *sql.DB) *ListingHistoryRepository {
	return &ListingHistoryRepository{db: db}
}

func (r *ListingHistoryRepository) SaveNotification(ctx context.Context, n domain.ListingNotification) error {
	query := `
	INSERT INTO listing_notifications (type, seller_id, event_id, ticket_type_id, price, amount, buyer_id, quantity, occurred_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		n.Type,
		n.Seller,
		n.EventID,
		int64(n.TicketTypeID),
		n.Price,
		int64(n.Amount),
		n.Buyer,
		int64(n.Quantity),
		n.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert listing notification: %w", err)
	}

	return nil
}

// SaveSale records the sale and bumps the per-seller sales summary in one transaction.
func (r *ListingHistoryRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	querySale := `
	INSERT INTO sales (id, event_id, ticket_type_id, seller_id, buyer_id, quantity, unit_price, total, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.EventID,
		int64(sale.TicketTypeID),
		sale.Seller,
		sale.Buyer,
		int64(sale.Quantity),
		sale.UnitPrice,
		sale.Total,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	querySummary := `
	INSERT INTO seller_sales (event_id, seller_id, units_sold, gross)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (event_id, seller_id) DO UPDATE
	SET units_sold = seller_sales.units_sold + EXCLUDED.units_sold,
		gross = seller_sales.gross + EXCLUDED.gross
	`

	_, err = tx.ExecContext(ctx, querySummary, sale.EventID, sale.Seller, int64(sale.Quantity), sale.Total)
	if err != nil {
		return fmt.Errorf("failed to update seller summary: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *ListingHistoryRepository) GetSalesByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Sale, error) {
	query := `
	SELECT id, event_id, ticket_type_id, seller_id, buyer_id, quantity, unit_price, total, created_at
	FROM sales
	WHERE event_id = $1
	ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var sale domain.Sale
		var ticketTypeID, quantity int64

		if err := rows.Scan(
			&sale.ID,
			&sale.EventID,
			&ticketTypeID,
			&sale.Seller,
			&sale.Buyer,
			&quantity,
			&sale.UnitPrice,
			&sale.Total,
			&sale.CreatedAt,
		); err != nil {
			return nil, err
		}

		sale.TicketTypeID = domain.TicketTypeID(ticketTypeID)
		sale.Quantity = uint64(quantity)
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}
