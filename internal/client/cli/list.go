package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dmitrijs2005/gamefolio/internal/client/models"
)

func formatGame(g models.Game) string {
	return fmt.Sprintf("%s  %-20s %-12s %s", g.ID, g.Title, g.Category,
		time.Unix(0, g.CreatedAt).Format("2006-01-02"))
}

func (a *App) List(ctx context.Context) error {
	for _, g := range a.session.Snapshot() {
		printlnFn(formatGame(g))
	}
	return nil
}

func (a *App) Filter(ctx context.Context, label string) error {
	games := a.session.GamesByCategory(label)
	if len(games) == 0 {
		printlnFn("No games in category", label)
		return nil
	}
	for _, g := range games {
		printlnFn(formatGame(g))
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter game id to show", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	g, ok := a.session.Lookup(id)
	if !ok {
		printlnFn("No game with id", id)
		return nil
	}

	printlnFn(g.Title)
	printlnFn("Category:", g.Category)
	printlnFn("Description:", g.Description)
	if g.Link != "" {
		printlnFn("Link:", g.Link)
	}
	if strings.HasPrefix(g.Image, "data:") {
		printlnFn("Image: (inline,", len(g.Image), "bytes)")
	} else if g.Image != "" {
		printlnFn("Image:", g.Image)
	}
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	printlnFn(strings.Join(a.registry.Labels(), ", "))
	return nil
}
