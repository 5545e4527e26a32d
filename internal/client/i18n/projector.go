package i18n

import "github.com/dmitrijs2005/gamefolio/internal/client/models"

// Project returns a presentation copy of game: when the game carries a
// derivation key present in table, the localized title and description are
// overlaid; otherwise the copy is identical to the input. The input is never
// mutated, and projection is never applied to data flowing into writes.
func Project(game models.Game, table Table) models.Game {
	if game.DerivationKey == "" {
		return game
	}
	entry, ok := table[game.DerivationKey]
	if !ok {
		return game
	}
	game.Title = entry.Title
	game.Description = entry.Description
	return game
}

// ProjectAll projects every game in the snapshot into a fresh slice.
func ProjectAll(games []models.Game, table Table) []models.Game {
	out := make([]models.Game, len(games))
	for i, g := range games {
		out[i] = Project(g, table)
	}
	return out
}
