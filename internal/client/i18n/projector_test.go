package i18n

import (
	"testing"

	"github.com/dmitrijs2005/gamefolio/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestProject_OverlaysLocalizedText(t *testing.T) {
	in := models.Game{
		ID:            "1",
		Title:         "Stellar Warfare",
		Description:   "stored description",
		DerivationKey: "stellar",
	}

	out := Project(in, GameTable(LangNL))
	require.Equal(t, "Stellaire Oorlogsvoering", out.Title)
	require.NotEqual(t, in.Description, out.Description)
	require.Equal(t, in.ID, out.ID)
}

func TestProject_NoKeyIsIdentity(t *testing.T) {
	in := models.Game{ID: "1", Title: "Custom Game", Description: "mine"}
	require.Equal(t, in, Project(in, GameTable(LangEN)))
}

func TestProject_UnknownKeyIsIdentity(t *testing.T) {
	in := models.Game{ID: "1", Title: "T", DerivationKey: "no-such-key"}
	require.Equal(t, in, Project(in, GameTable(LangEN)))
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	in := models.Game{Title: "Stellar Warfare", Description: "stored", DerivationKey: "stellar"}
	_ = Project(in, GameTable(LangNL))
	require.Equal(t, "Stellar Warfare", in.Title)
	require.Equal(t, "stored", in.Description)
}

func TestProjectAll_FreshSlice(t *testing.T) {
	in := []models.Game{
		{ID: "1", DerivationKey: "pixel"},
		{ID: "2", Title: "Mine"},
	}
	out := ProjectAll(in, GameTable(LangEN))
	require.Len(t, out, 2)
	require.Equal(t, "Pixel Runner", out[0].Title)
	require.Equal(t, "Mine", out[1].Title)
	require.Empty(t, in[0].Title, "input slice untouched")
}

func TestGameTable_FallbackToEnglish(t *testing.T) {
	require.Equal(t, GameTable(LangEN), GameTable("de"))
}

func TestDefaultAboutProfile_LocaleAndCopy(t *testing.T) {
	p := DefaultAboutProfile(LangNL)
	require.Equal(t, "Mijn Passie", p.PassionTitle)

	p.Skills[0] = "mutated"
	require.Equal(t, "Game Design", About(LangNL).Skills[0], "defaults must not alias returned slices")
}
