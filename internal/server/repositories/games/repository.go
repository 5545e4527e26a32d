package games

import (
	"context"

	"github.com/dmitrijs2005/gamefolio/internal/server/models"
)

// Repository is the persistence contract for game entries.
//
// Semantics the service relies on:
//   - SelectAll orders newest first; an empty table yields an empty slice.
//   - Update reports common.ErrNotFound when the id has no row.
//   - Delete of a missing id is a no-op.
type Repository interface {
	SelectAll(ctx context.Context) ([]*models.Game, error)
	Insert(ctx context.Context, game *models.Game) error
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id string) error
}
