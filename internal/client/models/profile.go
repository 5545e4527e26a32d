package models

// Profile is the optional "about me" override record. A nil *Profile means
// "no override stored, render the locale defaults".
type Profile struct {
	Bio          string   `json:"bio"`
	PassionTitle string   `json:"passion_title"`
	Passion      string   `json:"passion"`
	SkillsTitle  string   `json:"skills_title"`
	Skills       []string `json:"skills"`
	Subtitle     string   `json:"subtitle"`
}
