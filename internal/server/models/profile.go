package models

// Profile is the optional "about me" override. The store keeps at most one
// row; absence means the site renders its built-in defaults.
type Profile struct {
	Bio          string   `json:"bio"`
	PassionTitle string   `json:"passion_title"`
	Passion      string   `json:"passion"`
	SkillsTitle  string   `json:"skills_title"`
	Skills       []string `json:"skills"`
	Subtitle     string   `json:"subtitle"`
}
