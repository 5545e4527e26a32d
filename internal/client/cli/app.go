// Package cli implements the interactive admin console: a small REPL over
// the store adapter, credential gate, synchronization engine and profile
// service. Command handlers log their own errors so the loop itself stays
// free of error plumbing.
package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/gamefolio/internal/client/categories"
	"github.com/dmitrijs2005/gamefolio/internal/client/client"
	"github.com/dmitrijs2005/gamefolio/internal/client/config"
	"github.com/dmitrijs2005/gamefolio/internal/client/gate"
	"github.com/dmitrijs2005/gamefolio/internal/client/profile"
	"github.com/dmitrijs2005/gamefolio/internal/client/session"
	"github.com/dmitrijs2005/gamefolio/internal/logging"
)

const tokenValidity = 15 * time.Minute

type App struct {
	config   *config.Config
	store    client.Client
	gate     *gate.Gate
	session  *session.Session
	profiles *profile.Service
	registry *categories.Registry
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) *App {
	g := gate.New(c.AdminFingerprint, tokenValidity)
	store := client.NewHTTPClient(c.ServerEndpointAddr, g, c.RequestTimeout)
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	s := session.New(store, logger)
	s.SetLanguage(c.Language)

	return &App{
		config:   c,
		store:    store,
		gate:     g,
		session:  s,
		profiles: profile.NewService(store),
		registry: categories.New(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// Run loads the snapshot and profile, then hands control to the REPL.
// A failed initial load is fatal: nothing useful can be done against an
// unreachable store.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Initialize(ctx); err != nil {
		return err
	}
	if err := a.profiles.Load(ctx); err != nil {
		log.Printf("error loading profile: %s", err.Error())
	}
	for _, g := range a.session.Snapshot() {
		a.registry.Register(g.Category)
	}

	printlnFn("Welcome to gamefolio CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) isPrivileged() bool {
	return a.gate.IsPrivileged()
}

func (a *App) getStatus() string {
	s := a.session.Language()
	if a.isPrivileged() {
		s += " admin"
	}
	return "(" + s + ")"
}
