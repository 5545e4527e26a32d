// Package client defines the content store adapter: a uniform CRUD surface
// over the remote store, one round trip per call. Transport failures map to
// common.ErrStoreUnavailable; domain rejections keep their own sentinels.
package client

import (
	"context"

	"github.com/dmitrijs2005/gamefolio/internal/client/models"
)

// TokenSource supplies the admin token attached to mutation requests.
// The credential gate implements it; reads never consult it.
type TokenSource interface {
	Token() (string, error)
}

// Client is the store adapter contract.
//
// Guarantees the session relies on:
//   - ListGames returns newest first; an empty collection is a valid
//     zero-length result, never an error.
//   - UpdateGame returns common.ErrNotFound when the id has no record.
//   - DeleteGame of a missing id is idempotent.
//   - GetProfile returns (nil, nil) when no override is stored.
type Client interface {
	Ping(ctx context.Context) error
	ListGames(ctx context.Context) ([]models.Game, error)
	InsertGame(ctx context.Context, fields models.GameFields) error
	UpdateGame(ctx context.Context, id string, fields models.GameFields) error
	DeleteGame(ctx context.Context, id string) error
	GetProfile(ctx context.Context) (*models.Profile, error)
	PutProfile(ctx context.Context, p models.Profile) error
	DeleteProfile(ctx context.Context) error
	PresignImage(ctx context.Context) (key string, url string, err error)
}
