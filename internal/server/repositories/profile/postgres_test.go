package profile

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/gamefolio/internal/common"
	"github.com/dmitrijs2005/gamefolio/internal/server/models"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:profilerepo?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS profile (
  id            INTEGER PRIMARY KEY,
  bio           TEXT NOT NULL DEFAULT '',
  passion_title TEXT NOT NULL DEFAULT '',
  passion       TEXT NOT NULL DEFAULT '',
  skills_title  TEXT NOT NULL DEFAULT '',
  skills        TEXT NOT NULL DEFAULT '[]',
  subtitle      TEXT NOT NULL DEFAULT ''
);
DELETE FROM profile;
`)
	require.NoError(t, err)
	return db
}

func sampleProfile() *models.Profile {
	return &models.Profile{
		Bio:          "Indie developer.",
		PassionTitle: "My Passion",
		Passion:      "Shipping small games.",
		SkillsTitle:  "Skills",
		Skills:       []string{"Game Design", "Programming"},
		Subtitle:     "The developer behind the games",
	}
}

func TestGet_AbsentReturnsNotFound(t *testing.T) {
	repo := NewPostgresRepository(setupDB(t))

	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpsert_CreatesThenReplaces(t *testing.T) {
	repo := NewPostgresRepository(setupDB(t))
	ctx := context.Background()

	in := sampleProfile()
	require.NoError(t, repo.Upsert(ctx, in))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, in, got)

	in.Bio = "Updated bio."
	in.Skills = []string{"Pixel Art"}
	require.NoError(t, repo.Upsert(ctx, in))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Updated bio.", got.Bio)
	require.Equal(t, []string{"Pixel Art"}, got.Skills)
}

func TestDelete_RestoresAbsenceAndIsIdempotent(t *testing.T) {
	repo := NewPostgresRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, sampleProfile()))
	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx))

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, common.ErrNotFound)
}
