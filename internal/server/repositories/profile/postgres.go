// Package profile provides the PostgreSQL-backed repository for the
// single-row "about me" override.
package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gamefolio/internal/common"
	"github.com/dmitrijs2005/gamefolio/internal/dbx"
	"github.com/dmitrijs2005/gamefolio/internal/server/models"
)

// The table is constrained to id = 1; these queries never touch another row.
const profileRowID = 1

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get returns the stored override, or common.ErrNotFound when none exists.
func (r *PostgresRepository) Get(ctx context.Context) (*models.Profile, error) {
	query := `
		SELECT bio, passion_title, passion, skills_title, skills, subtitle
		FROM profile WHERE id = $1
	`
	var p models.Profile
	var skillsJSON string
	err := r.db.QueryRowContext(ctx, query, profileRowID).Scan(
		&p.Bio, &p.PassionTitle, &p.Passion, &p.SkillsTitle, &skillsJSON, &p.Subtitle,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal([]byte(skillsJSON), &p.Skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return &p, nil
}

// Upsert creates or fully replaces the override row.
func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Profile) error {
	skillsJSON, err := json.Marshal(p.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}

	query := `
		INSERT INTO profile (id, bio, passion_title, passion, skills_title, skills, subtitle)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id)
		DO UPDATE SET
			bio = EXCLUDED.bio,
			passion_title = EXCLUDED.passion_title,
			passion = EXCLUDED.passion,
			skills_title = EXCLUDED.skills_title,
			skills = EXCLUDED.skills,
			subtitle = EXCLUDED.subtitle
	`
	if _, err := r.db.ExecContext(ctx, query,
		profileRowID, p.Bio, p.PassionTitle, p.Passion, p.SkillsTitle, string(skillsJSON), p.Subtitle,
	); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Delete removes the override; the site falls back to built-in defaults.
// Deleting when no override exists is a no-op.
func (r *PostgresRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile WHERE id = $1`, profileRowID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
