// Package models defines the client-side view of the remote content records.
package models

// Game is one content entry as observed by the session. ID and CreatedAt are
// store-assigned and opaque to the client; CreatedAt only matters for the
// newest-first order the store already applies.
type Game struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	Category      string `json:"category"`
	Link          string `json:"link,omitempty"`
	DerivationKey string `json:"derivation_key,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

// GameFields is the caller-supplied payload of an add or edit. The store
// assigns the identifier and timestamp.
type GameFields struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	Category      string `json:"category"`
	Link          string `json:"link,omitempty"`
	DerivationKey string `json:"derivation_key,omitempty"`
}
