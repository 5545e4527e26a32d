package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gamefolio/internal/dbx"
	"github.com/dmitrijs2005/gamefolio/internal/server/repositories/games"
	"github.com/dmitrijs2005/gamefolio/internal/server/repositories/profile"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook. Services pass either the pool or an open
// transaction without caring which backend sits underneath.
type RepositoryManager interface {
	Games(db dbx.DBTX) games.Repository
	Profile(db dbx.DBTX) profile.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
