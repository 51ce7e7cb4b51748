package repository

import (
	"context"
	"fmt"

	"museum-concierge/internal/data/entity"
	"museum-concierge/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketTypeRepository interface {
	FindAllActive(ctx context.Context) ([]*entity.TicketType, error)
	FindByName(ctx context.Context, name string) (*entity.TicketType, error)
}

type ticketTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketTypeRepository(db database.PgxIface, log *zap.Logger) TicketTypeRepository {
	return &ticketTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket_type")),
	}
}

func (r *ticketTypeRepository) FindAllActive(ctx context.Context) ([]*entity.TicketType, error) {
	query := `
		SELECT id, name, price, capacity, is_active, created_at, updated_at
		FROM ticket_types
		WHERE is_active = true
		ORDER BY price
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list active ticket types", zap.Error(err))
		return nil, fmt.Errorf("list active ticket types: %w", err)
	}
	defer rows.Close()

	var types []*entity.TicketType
	for rows.Next() {
		var tt entity.TicketType
		err := rows.Scan(
			&tt.ID,
			&tt.Name,
			&tt.Price,
			&tt.Capacity,
			&tt.IsActive,
			&tt.CreatedAt,
			&tt.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket type row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket type row: %w", err)
		}
		types = append(types, &tt)
	}

	return types, nil
}

func (r *ticketTypeRepository) FindByName(ctx context.Context, name string) (*entity.TicketType, error) {
	query := `
		SELECT id, name, price, capacity, is_active, created_at, updated_at
		FROM ticket_types
		WHERE name = $1
	`

	var tt entity.TicketType
	err := r.db.QueryRow(ctx, query, name).Scan(
		&tt.ID,
		&tt.Name,
		&tt.Price,
		&tt.Capacity,
		&tt.IsActive,
		&tt.CreatedAt,
		&tt.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket type by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find ticket type by name %s: %w", name, err)
	}

	return &tt, nil
}
