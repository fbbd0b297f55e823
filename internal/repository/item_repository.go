// Package repository holds the Postgres-backed stores.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

const (
	listItemsQuery   = `SELECT id, name FROM items ORDER BY id`
	getItemQuery     = `SELECT id, name FROM items WHERE id = $1`
	createItemQuery  = `INSERT INTO items (name) VALUES ($1) RETURNING id, name`
	deleteItemQuery  = `DELETE FROM items WHERE id = $1`
	maxItemNameRunes = 255
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ItemRepository stores items.
type ItemRepository interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	Create(ctx context.Context, name string) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
}

type pgItemRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgItemRepository returns a Postgres ItemRepository.
func NewPgItemRepository(db DBTX, logger *zap.Logger) ItemRepository {
	return &pgItemRepository{
		db:     db,
		logger: logger.Named("ItemRepo"),
	}
}

func (r *pgItemRepository) List(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	if err := pgxscan.Select(ctx, r.db, &items, listItemsQuery); err != nil {
		r.logger.Error("Error listing items", zap.Error(err))
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (r *pgItemRepository) Get(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := pgxscan.Get(ctx, r.db, &item, getItemQuery, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrItemNotFound
		}
		r.logger.Error("Error getting item", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return &item, nil
}

func (r *pgItemRepository) Create(ctx context.Context, name string) (*models.Item, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if len([]rune(name)) > maxItemNameRunes {
		return nil, fmt.Errorf("%w: name must be at most %d characters", models.ErrValidation, maxItemNameRunes)
	}

	var item models.Item
	if err := pgxscan.Get(ctx, r.db, &item, createItemQuery, name); err != nil {
		r.logger.Error("Error creating item", zap.Error(err))
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	r.logger.Info("Item created", zap.Int64("id", item.ID))
	return &item, nil
}

func (r *pgItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteItemQuery, id)
	if err != nil {
		r.logger.Error("Error deleting item", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrItemNotFound
	}
	return nil
}
