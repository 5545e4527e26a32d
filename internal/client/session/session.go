// Package session owns the authoritative in-memory snapshot of the game
// collection and keeps it consistent with the remote store: load on
// initialize, seed defaults on first run, refresh after every successful
// write. One Session is constructed per browsing session and passed by
// handle to consumers; there is no ambient state.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gamefolio/internal/client/client"
	"github.com/dmitrijs2005/gamefolio/internal/client/i18n"
	"github.com/dmitrijs2005/gamefolio/internal/client/models"
	"github.com/dmitrijs2005/gamefolio/internal/common"
	"github.com/dmitrijs2005/gamefolio/internal/logging"
)

// State is the lifecycle of a Session. Mutating is transient: entered for
// the span of a write plus its refresh, always returning to Ready.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateMutating
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateMutating:
		return "mutating"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// seedDefaults is the fixed set inserted on first run against an empty
// collection. The stored text is the English literal; the derivation key
// lets the projector substitute the active locale at display time.
func seedDefaults() []models.GameFields {
	en := i18n.GameTable(i18n.LangEN)
	return []models.GameFields{
		{
			Title:         en["stellar"].Title,
			Description:   en["stellar"].Description,
			Image:         "/assets/game-1.jpg",
			Category:      "Action",
			Link:          "#",
			DerivationKey: "stellar",
		},
		{
			Title:         en["enchanted"].Title,
			Description:   en["enchanted"].Description,
			Image:         "/assets/game-2.jpg",
			Category:      "RPG",
			Link:          "#",
			DerivationKey: "enchanted",
		},
		{
			Title:         en["pixel"].Title,
			Description:   en["pixel"].Description,
			Image:         "/assets/game-3.jpg",
			Category:      "Platformer",
			Link:          "#",
			DerivationKey: "pixel",
		},
	}
}

// Session is the synchronization engine.
//
// All mutations and Initialize serialize on an internal mutex, so two
// back-to-back writes from the same session have defined ordering. Reads
// (Lookup, Snapshot, State) observe the last committed snapshot.
type Session struct {
	store  client.Client
	logger logging.Logger

	mu       sync.Mutex
	state    State
	snapshot []models.Game
	lang     string
}

// New constructs an uninitialized Session over the given store adapter.
func New(store client.Client, logger logging.Logger) *Session {
	return &Session{
		store:  store,
		logger: logger.With("module", "session"),
		state:  StateUninitialized,
		lang:   i18n.LangEN,
	}
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetLanguage selects the locale table used by Snapshot projection.
func (s *Session) SetLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
}

// Language returns the active locale tag.
func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Initialize loads the snapshot from the store. When the collection is
// empty it performs the one-time seed: each default entity is inserted,
// then the collection is re-listed. On any failure the session reverts to
// Uninitialized and the error is surfaced, so a store outage is
// distinguishable from a legitimately empty collection. Calling Initialize
// on an already-initialized session is an error.
func (s *Session) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized {
		return common.ErrAlreadyInitialized
	}
	s.state = StateLoading

	games, err := s.store.ListGames(ctx)
	if err != nil {
		s.state = StateUninitialized
		return fmt.Errorf("loading snapshot: %w", err)
	}

	if len(games) == 0 {
		s.logger.Info(ctx, "empty collection, seeding defaults")
		for _, fields := range seedDefaults() {
			if err := s.store.InsertGame(ctx, fields); err != nil {
				s.state = StateUninitialized
				return fmt.Errorf("seeding %q: %w", fields.Title, err)
			}
		}
		games, err = s.store.ListGames(ctx)
		if err != nil {
			s.state = StateUninitialized
			return fmt.Errorf("reloading after seed: %w", err)
		}
	}

	s.snapshot = games
	s.state = StateReady
	s.logger.Info(ctx, "snapshot loaded", "games", len(games))
	return nil
}

// mutate runs one write under the Mutating state. The refresh only happens
// after a successful write: a failed write keeps the last known-good
// snapshot and must not be masked by a stale-but-successful reload.
func (s *Session) mutate(ctx context.Context, op string, write func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return common.ErrNotReady
	}
	s.state = StateMutating
	defer func() { s.state = StateReady }()

	if err := write(ctx); err != nil {
		s.logger.Warn(ctx, "write failed", "op", op, "err", err.Error())
		return err
	}

	games, err := s.store.ListGames(ctx)
	if err != nil {
		// The write committed; only the refresh is stale.
		s.logger.Warn(ctx, "refresh failed", "op", op, "err", err.Error())
		return fmt.Errorf("refreshing snapshot: %w", err)
	}

	s.snapshot = games
	return nil
}

// Add inserts a new entity and refreshes the snapshot. On success the new
// entity is present in the snapshot when the call returns.
func (s *Session) Add(ctx context.Context, fields models.GameFields) error {
	return s.mutate(ctx, "add", func(ctx context.Context) error {
		return s.store.InsertGame(ctx, fields)
	})
}

// Edit fully replaces the identified entity's fields and refreshes the
// snapshot. common.ErrNotFound passes through when the id vanished (for
// example, deleted by another client).
func (s *Session) Edit(ctx context.Context, id string, fields models.GameFields) error {
	return s.mutate(ctx, "edit", func(ctx context.Context) error {
		return s.store.UpdateGame(ctx, id, fields)
	})
}

// Remove deletes the identified entity and refreshes the snapshot.
// Removing an id that is already gone is not an error.
func (s *Session) Remove(ctx context.Context, id string) error {
	return s.mutate(ctx, "remove", func(ctx context.Context) error {
		return s.store.DeleteGame(ctx, id)
	})
}

// Lookup is a pure read against the current snapshot; it never triggers a
// remote call. The returned game is projected for the active locale.
func (s *Session) Lookup(id string) (models.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := i18n.GameTable(s.lang)
	for _, g := range s.snapshot {
		if g.ID == id {
			return i18n.Project(g, table), true
		}
	}
	return models.Game{}, false
}

// Snapshot returns the projected presentation copies of every entity,
// newest first. The backing snapshot is never exposed.
func (s *Session) Snapshot() []models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return i18n.ProjectAll(s.snapshot, i18n.GameTable(s.lang))
}

// GamesByCategory filters the projected snapshot; an empty label matches
// everything (the "All" filter).
func (s *Session) GamesByCategory(label string) []models.Game {
	all := s.Snapshot()
	if label == "" {
		return all
	}
	out := make([]models.Game, 0, len(all))
	for _, g := range all {
		if g.Category == label {
			out = append(out, g)
		}
	}
	return out
}
