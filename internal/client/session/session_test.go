package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gamefolio/internal/client/i18n"
	"github.com/dmitrijs2005/gamefolio/internal/client/models"
	"github.com/dmitrijs2005/gamefolio/internal/common"
	"github.com/dmitrijs2005/gamefolio/internal/logging"
)

// fakeStore is an in-memory Client keeping games newest first, the same
// ordering the real server returns.
type fakeStore struct {
	games   []models.Game
	nextID  int
	inserts int

	listErr   error
	insertErr error
	updateErr error
	deleteErr error
}

func (f *fakeStore) Ping(_ context.Context) error { return nil }

func (f *fakeStore) ListGames(_ context.Context) ([]models.Game, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Game, len(f.games))
	copy(out, f.games)
	return out, nil
}

func (f *fakeStore) InsertGame(_ context.Context, fields models.GameFields) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserts++
	f.nextID++
	g := models.Game{
		ID:            fmt.Sprintf("id-%d", f.nextID),
		Title:         fields.Title,
		Description:   fields.Description,
		Image:         fields.Image,
		Category:      fields.Category,
		Link:          fields.Link,
		DerivationKey: fields.DerivationKey,
		CreatedAt:     int64(f.nextID),
	}
	f.games = append([]models.Game{g}, f.games...)
	return nil
}

func (f *fakeStore) UpdateGame(_ context.Context, id string, fields models.GameFields) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, g := range f.games {
		if g.ID == id {
			g.Title = fields.Title
			g.Description = fields.Description
			g.Image = fields.Image
			g.Category = fields.Category
			g.Link = fields.Link
			g.DerivationKey = fields.DerivationKey
			f.games[i] = g
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeStore) DeleteGame(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, g := range f.games {
		if g.ID == id {
			f.games = append(f.games[:i], f.games[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) GetProfile(_ context.Context) (*models.Profile, error) { return nil, nil }
func (f *fakeStore) PutProfile(_ context.Context, _ models.Profile) error  { return nil }
func (f *fakeStore) DeleteProfile(_ context.Context) error                 { return nil }
func (f *fakeStore) PresignImage(_ context.Context) (string, string, error) {
	return "", "", common.ErrStoreUnavailable
}

func newTestSession(store *fakeStore) *Session {
	return New(store, logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil))))
}

func TestInitializeSeedsEmptyCollection(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store)

	require.Equal(t, StateUninitialized, s.State())
	require.NoError(t, s.Initialize(context.Background()))
	require.Equal(t, StateReady, s.State())

	games := s.Snapshot()
	require.Len(t, games, 3)
	require.Equal(t, 3, store.inserts)

	// Newest first: the last seeded default comes out on top.
	require.Equal(t, "pixel", games[0].DerivationKey)
	require.Equal(t, "enchanted", games[1].DerivationKey)
	require.Equal(t, "stellar", games[2].DerivationKey)
	for _, g := range games {
		require.Equal(t, "#", g.Link)
	}
}

func TestInitializeSeedsOnlyOnce(t *testing.T) {
	store := &fakeStore{}

	require.NoError(t, newTestSession(store).Initialize(context.Background()))
	require.Equal(t, 3, store.inserts)

	// A second session over the same store finds the collection populated.
	require.NoError(t, newTestSession(store).Initialize(context.Background()))
	require.Equal(t, 3, store.inserts)
}

func TestInitializeTwiceSameSession(t *testing.T) {
	s := newTestSession(&fakeStore{})
	require.NoError(t, s.Initialize(context.Background()))
	require.ErrorIs(t, s.Initialize(context.Background()), common.ErrAlreadyInitialized)
}

func TestInitializeListFailureRevertsState(t *testing.T) {
	store := &fakeStore{listErr: common.ErrStoreUnavailable}
	s := newTestSession(store)

	err := s.Initialize(context.Background())
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
	require.Equal(t, StateUninitialized, s.State())

	// Recoverable: once the store is back, Initialize succeeds.
	store.listErr = nil
	require.NoError(t, s.Initialize(context.Background()))
	require.Equal(t, StateReady, s.State())
}

func TestInitializeSeedFailureRevertsState(t *testing.T) {
	store := &fakeStore{insertErr: common.ErrStoreUnavailable}
	s := newTestSession(store)

	require.ErrorIs(t, s.Initialize(context.Background()), common.ErrStoreUnavailable)
	require.Equal(t, StateUninitialized, s.State())
}

func TestMutationsRequireReady(t *testing.T) {
	s := newTestSession(&fakeStore{})
	ctx := context.Background()

	require.ErrorIs(t, s.Add(ctx, models.GameFields{Title: "x"}), common.ErrNotReady)
	require.ErrorIs(t, s.Edit(ctx, "id-1", models.GameFields{}), common.ErrNotReady)
	require.ErrorIs(t, s.Remove(ctx, "id-1"), common.ErrNotReady)
}

func TestAddRefreshesSnapshot(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store)
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))

	require.NoError(t, s.Add(ctx, models.GameFields{
		Title:       "Test",
		Description: "A test game",
		Image:       "https://cdn.example.com/test.png",
		Category:    "Puzzle",
		Link:        "#",
	}))

	games := s.Snapshot()
	require.Len(t, games, 4)
	require.Equal(t, "Test", games[0].Title)
	require.Equal(t, StateReady, s.State())
}

func TestFailedWriteKeepsSnapshot(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store)
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))
	before := s.Snapshot()

	store.insertErr = common.ErrValidationRejected
	err := s.Add(ctx, models.GameFields{Title: "bad"})
	require.ErrorIs(t, err, common.ErrValidationRejected)

	require.Equal(t, before, s.Snapshot())
	require.Equal(t, StateReady, s.State())
}

func TestEditMissingIDPassesThroughNotFound(t *testing.T) {
	s := newTestSession(&fakeStore{})
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))

	err := s.Edit(ctx, "no-such-id", models.GameFields{Title: "x"})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestRemoveMissingIDIsIdempotent(t *testing.T) {
	s := newTestSession(&fakeStore{})
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))

	require.NoError(t, s.Remove(ctx, "no-such-id"))
	require.Len(t, s.Snapshot(), 3)
}

func TestRefreshFailureAfterCommittedWrite(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store)
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))

	store.listErr = errors.New("connection reset")
	err := s.Add(ctx, models.GameFields{Title: "Test"})
	require.Error(t, err)
	require.Equal(t, StateReady, s.State())

	// The write landed even though the refresh failed.
	store.listErr = nil
	require.NoError(t, s.Remove(ctx, "id-4"))
}

func TestLookup(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store)
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))

	id := s.Snapshot()[0].ID
	g, ok := s.Lookup(id)
	require.True(t, ok)
	require.Equal(t, id, g.ID)

	_, ok = s.Lookup("no-such-id")
	require.False(t, ok)
}

func TestSnapshotProjectsActiveLocale(t *testing.T) {
	s := newTestSession(&fakeStore{})
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))

	en := s.Snapshot()
	s.SetLanguage(i18n.LangNL)
	nl := s.Snapshot()

	require.Len(t, nl, 3)
	require.NotEqual(t, en[0].Description, nl[0].Description)
	require.Equal(t, en[0].ID, nl[0].ID)
	require.Equal(t, i18n.GameTable(i18n.LangNL)["pixel"].Title, nl[0].Title)
}

func TestGamesByCategory(t *testing.T) {
	s := newTestSession(&fakeStore{})
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.Add(ctx, models.GameFields{Title: "Another", Category: "Action"}))

	action := s.GamesByCategory("Action")
	require.Len(t, action, 2)
	for _, g := range action {
		require.Equal(t, "Action", g.Category)
	}

	require.Len(t, s.GamesByCategory(""), 4)
	require.Empty(t, s.GamesByCategory("Strategy"))
}

func TestFullScenario(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store)
	ctx := context.Background()

	require.NoError(t, s.Initialize(ctx))
	require.Len(t, s.Snapshot(), 3)

	require.NoError(t, s.Add(ctx, models.GameFields{
		Title:       "Test",
		Description: "desc",
		Category:    "Puzzle",
		Link:        "#",
	}))
	games := s.Snapshot()
	require.Len(t, games, 4)
	require.Equal(t, "Test", games[0].Title)
	id := games[0].ID

	require.NoError(t, s.Edit(ctx, id, models.GameFields{
		Title:       "Test2",
		Description: "desc",
		Category:    "Puzzle",
		Link:        "#",
	}))
	g, ok := s.Lookup(id)
	require.True(t, ok)
	require.Equal(t, "Test2", g.Title)

	require.NoError(t, s.Remove(ctx, id))
	require.Len(t, s.Snapshot(), 3)
	_, ok = s.Lookup(id)
	require.False(t, ok)
}
