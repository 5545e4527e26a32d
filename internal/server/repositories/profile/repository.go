package profile

import (
	"context"

	"github.com/dmitrijs2005/gamefolio/internal/server/models"
)

// Repository is the persistence contract for the single "about me" override
// row. Get reports common.ErrNotFound when no override is stored; Upsert
// creates or replaces the row; Delete of a missing row is a no-op.
type Repository interface {
	Get(ctx context.Context) (*models.Profile, error)
	Upsert(ctx context.Context, p *models.Profile) error
	Delete(ctx context.Context) error
}
