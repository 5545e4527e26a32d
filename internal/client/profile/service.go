// Package profile manages the optional "about me" override: a single
// record that, when present, replaces the locale defaults on the about
// page. Absence of the record is the normal state, not an error.
package profile

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gamefolio/internal/client/client"
	"github.com/dmitrijs2005/gamefolio/internal/client/i18n"
	"github.com/dmitrijs2005/gamefolio/internal/client/models"
	"github.com/dmitrijs2005/gamefolio/internal/common"
)

// Service caches the override record locally after Load so Resolve is a
// pure read, same as the session's snapshot.
type Service struct {
	store client.Client

	mu       sync.Mutex
	loaded   bool
	override *models.Profile
}

func NewService(store client.Client) *Service {
	return &Service{store: store}
}

// Load fetches the current override. A missing record yields a nil
// override and no error.
func (s *Service) Load(ctx context.Context) error {
	p, err := s.store.GetProfile(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.override = p
	s.loaded = true
	return nil
}

// Update validates and stores the override record, then refreshes the
// local copy on success.
func (s *Service) Update(ctx context.Context, p models.Profile) error {
	if strings.TrimSpace(p.Bio) == "" {
		return common.ErrValidationRejected
	}
	if err := s.store.PutProfile(ctx, p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	cp.Skills = append([]string(nil), p.Skills...)
	s.override = &cp
	s.loaded = true
	return nil
}

// Clear removes the override so the about page reverts to locale defaults.
// Clearing when no override exists is not an error.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.DeleteProfile(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.override = nil
	s.loaded = true
	return nil
}

// HasOverride reports whether a stored override is in effect.
func (s *Service) HasOverride() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.override != nil
}

// Resolve returns the content to render for lang: the stored override when
// one exists, the locale defaults otherwise. The returned value is a copy.
func (s *Service) Resolve(lang string) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.override == nil {
		return i18n.DefaultAboutProfile(lang)
	}
	cp := *s.override
	cp.Skills = append([]string(nil), s.override.Skills...)
	return cp
}
