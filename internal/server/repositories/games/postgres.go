// Package games provides the PostgreSQL-backed repository for game entries.
package games

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gamefolio/internal/common"
	"github.com/dmitrijs2005/gamefolio/internal/dbx"
	"github.com/dmitrijs2005/gamefolio/internal/server/models"
)

// PostgresRepository implements game storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SelectAll returns every game, newest first. An empty collection is a valid
// zero-length result, not an error.
func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.Game, error) {
	query := `
		SELECT id, title, description, image, category, link, derivation_key, created_at
		FROM games
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select games: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Game, 0)
	for rows.Next() {
		var item models.Game
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.Image,
			&item.Category, &item.Link, &item.DerivationKey, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Insert creates exactly one new row. The caller (content service) assigns
// the id and timestamp.
func (r *PostgresRepository) Insert(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (id, title, description, image, category, link, derivation_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := r.db.ExecContext(ctx, query,
		game.ID, game.Title, game.Description, game.Image,
		game.Category, game.Link, game.DerivationKey, game.CreatedAt,
	); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update fully replaces the mutable fields of the row with the given id.
// Returns common.ErrNotFound when no row matches.
func (r *PostgresRepository) Update(ctx context.Context, game *models.Game) error {
	query := `
		UPDATE games
		SET title = $2, description = $3, image = $4, category = $5, link = $6, derivation_key = $7
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		game.ID, game.Title, game.Description, game.Image,
		game.Category, game.Link, game.DerivationKey,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Delete removes the row with the given id. Deleting a missing id is
// idempotent and returns nil.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
