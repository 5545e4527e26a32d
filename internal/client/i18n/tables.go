// Package i18n carries the locale tables and the derived-view projector.
// Seeded default entries store English literals plus a derivation key; at
// display time the projector overlays the active locale's text without ever
// touching the stored record.
package i18n

import "github.com/dmitrijs2005/gamefolio/internal/client/models"

// Language tags supported by the portfolio.
const (
	LangEN = "en"
	LangNL = "nl"
)

// Entry is the localized text for one derivation key.
type Entry struct {
	Title       string
	Description string
}

// Table maps derivation keys to localized text for one language.
type Table map[string]Entry

// AboutDefaults is the built-in "about me" content rendered when no profile
// override is stored.
type AboutDefaults struct {
	Bio          string
	PassionTitle string
	Passion      string
	SkillsTitle  string
	Skills       []string
	Subtitle     string
}

var gameTables = map[string]Table{
	LangEN: {
		"stellar": {
			Title:       "Stellar Warfare",
			Description: "An epic space battle game with intense multiplayer combat and stunning visuals. Command your fleet across the galaxy.",
		},
		"enchanted": {
			Title:       "Enchanted Woods",
			Description: "A mystical fantasy RPG set in a magical forest. Discover secrets, battle creatures, and uncover ancient mysteries.",
		},
		"pixel": {
			Title:       "Pixel Runner",
			Description: "A retro-style platformer with challenging levels, collectibles, and nostalgic 8-bit graphics.",
		},
	},
	LangNL: {
		"stellar": {
			Title:       "Stellaire Oorlogsvoering",
			Description: "Een episch ruimtegevecht-spel met intense multiplayer-actie en verbluffende graphics. Leid je vloot door het heelal.",
		},
		"enchanted": {
			Title:       "Betoverde Bossen",
			Description: "Een mystieke fantasy-RPG in een magisch bos. Ontdek geheimen, bestrijd wezens en ontrafel oude mysteries.",
		},
		"pixel": {
			Title:       "Pixel Renner",
			Description: "Een retro-platformer met uitdagende levels, verzamelobjecten en nostalgische 8-bit graphics.",
		},
	},
}

var aboutDefaults = map[string]AboutDefaults{
	LangEN: {
		Bio:          "I'm a passionate game developer who loves creating immersive digital experiences. From pixel art platformers to epic space battles, I bring ideas to life through code and creativity.",
		PassionTitle: "My Passion",
		Passion:      "I started making games at a young age and never stopped. Every project is a new adventure — a chance to learn, grow, and share something meaningful with players around the world.",
		SkillsTitle:  "Skills",
		Skills:       []string{"Game Design", "Programming", "Pixel Art", "Level Design", "Sound Design", "Storytelling"},
		Subtitle:     "The developer behind the games",
	},
	LangNL: {
		Bio:          "Ik ben een gepassioneerde game-ontwikkelaar die graag meeslepende digitale ervaringen creëert. Van pixel art platformers tot epische ruimtegevechten, ik breng ideeën tot leven met code en creativiteit.",
		PassionTitle: "Mijn Passie",
		Passion:      "Ik begon op jonge leeftijd met het maken van games en ben nooit gestopt. Elk project is een nieuw avontuur — een kans om te leren, te groeien en iets betekenisvols te delen met spelers over de hele wereld.",
		SkillsTitle:  "Vaardigheden",
		Skills:       []string{"Game Design", "Programmeren", "Pixel Art", "Level Design", "Geluidsontwerp", "Storytelling"},
		Subtitle:     "De ontwikkelaar achter de games",
	},
}

// GameTable returns the locale table for lang, falling back to English for
// unknown tags.
func GameTable(lang string) Table {
	if t, ok := gameTables[lang]; ok {
		return t
	}
	return gameTables[LangEN]
}

// About returns the default about-me content for lang, falling back to
// English for unknown tags.
func About(lang string) AboutDefaults {
	if a, ok := aboutDefaults[lang]; ok {
		return a
	}
	return aboutDefaults[LangEN]
}

// DefaultAboutProfile renders the locale defaults in the Profile shape so
// consumers handle override and fallback uniformly.
func DefaultAboutProfile(lang string) models.Profile {
	a := About(lang)
	return models.Profile{
		Bio:          a.Bio,
		PassionTitle: a.PassionTitle,
		Passion:      a.Passion,
		SkillsTitle:  a.SkillsTitle,
		Skills:       append([]string(nil), a.Skills...),
		Subtitle:     a.Subtitle,
	}
}
