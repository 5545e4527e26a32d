// Package services contains the application services of the store service:
// content (game and profile CRUD with validation) and images (presigned
// uploads for game art).
package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gamefolio/internal/common"
	sc "github.com/dmitrijs2005/gamefolio/internal/server/config"
	"github.com/dmitrijs2005/gamefolio/internal/server/models"
	"github.com/dmitrijs2005/gamefolio/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// MaxImageBytes caps inline (data URI) images, matching the upload form's
// 5MB limit. Larger art must be uploaded to object storage and referenced
// by URL.
const MaxImageBytes = 5 * 1024 * 1024

// GameFields is the caller-supplied portion of a game entry; the service
// assigns the id and creation timestamp.
type GameFields struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	Category      string `json:"category"`
	Link          string `json:"link,omitempty"`
	DerivationKey string `json:"derivation_key,omitempty"`
}

type ContentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewContentService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ContentService {
	return &ContentService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// nowUnixNano is a test seam for the creation timestamp.
var nowUnixNano = func() int64 { return time.Now().UnixNano() }

// validateGameFields enforces the store-side constraints. Violations wrap
// common.ErrValidationRejected so the transport can map them to 422.
func validateGameFields(f *GameFields) error {
	reject := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", common.ErrValidationRejected, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(f.Title) == "" {
		return reject("title is required")
	}
	if strings.TrimSpace(f.Description) == "" {
		return reject("description is required")
	}
	if strings.TrimSpace(f.Category) == "" {
		return reject("category is required")
	}

	switch {
	case strings.HasPrefix(f.Image, "data:image/"):
		// base64 payload after the comma; cap the decoded size
		idx := strings.Index(f.Image, ",")
		if idx < 0 {
			return reject("image data URI has no payload")
		}
		if base64.StdEncoding.DecodedLen(len(f.Image)-idx-1) > MaxImageBytes {
			return reject("image exceeds %d bytes", MaxImageBytes)
		}
	case strings.HasPrefix(f.Image, "http://"), strings.HasPrefix(f.Image, "https://"):
	case f.Image == "":
		return reject("image is required")
	default:
		return reject("image must be a data URI or an http(s) URL")
	}

	if f.Link != "" && f.Link != "#" &&
		!strings.HasPrefix(f.Link, "http://") && !strings.HasPrefix(f.Link, "https://") {
		return reject("link must be an http(s) URL")
	}
	return nil
}

// ListGames returns every game, newest first.
func (s *ContentService) ListGames(ctx context.Context) ([]*models.Game, error) {
	return s.repomanager.Games(s.db).SelectAll(ctx)
}

// InsertGame validates the fields, assigns a store id and timestamp, and
// creates exactly one new row. The assigned game is returned.
func (s *ContentService) InsertGame(ctx context.Context, fields *GameFields) (*models.Game, error) {
	if err := validateGameFields(fields); err != nil {
		return nil, err
	}

	game := &models.Game{
		ID:            uuid.NewString(),
		Title:         fields.Title,
		Description:   fields.Description,
		Image:         fields.Image,
		Category:      fields.Category,
		Link:          fields.Link,
		DerivationKey: fields.DerivationKey,
		CreatedAt:     nowUnixNano(),
	}

	if err := s.repomanager.Games(s.db).Insert(ctx, game); err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}
	return game, nil
}

// UpdateGame fully replaces the mutable fields of the identified game.
// Passes common.ErrNotFound through when the id has no row.
func (s *ContentService) UpdateGame(ctx context.Context, id string, fields *GameFields) error {
	if err := validateGameFields(fields); err != nil {
		return err
	}

	game := &models.Game{
		ID:            id,
		Title:         fields.Title,
		Description:   fields.Description,
		Image:         fields.Image,
		Category:      fields.Category,
		Link:          fields.Link,
		DerivationKey: fields.DerivationKey,
	}
	return s.repomanager.Games(s.db).Update(ctx, game)
}

// DeleteGame removes the identified game. Missing ids are a no-op.
func (s *ContentService) DeleteGame(ctx context.Context, id string) error {
	return s.repomanager.Games(s.db).Delete(ctx, id)
}

// GetProfile returns the stored override, or common.ErrNotFound when the
// site should fall back to its built-in about-me defaults.
func (s *ContentService) GetProfile(ctx context.Context) (*models.Profile, error) {
	return s.repomanager.Profile(s.db).Get(ctx)
}

// PutProfile validates and upserts the single override row.
func (s *ContentService) PutProfile(ctx context.Context, p *models.Profile) error {
	if strings.TrimSpace(p.Bio) == "" {
		return fmt.Errorf("%w: bio is required", common.ErrValidationRejected)
	}
	return s.repomanager.Profile(s.db).Upsert(ctx, p)
}

// DeleteProfile removes the override row; idempotent.
func (s *ContentService) DeleteProfile(ctx context.Context) error {
	return s.repomanager.Profile(s.db).Delete(ctx)
}
