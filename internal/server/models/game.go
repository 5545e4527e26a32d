// Package models defines the rows the store service persists.
package models

// Game is one content entry of the portfolio. ID and CreatedAt are assigned
// by the service on insert and never change afterwards; CreatedAt (unix
// nanoseconds) drives the newest-first listing order.
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
