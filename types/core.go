package types

import "time"

// PageKey identifies a persisted page within a workspace scope.
// A page's durable snapshot is stored and loaded under this key.
type PageKey struct {
	// Scope is the owning group (workspace, team, or user bucket)
	Scope string

	// Page is the page identifier within the scope
	Page string
}

// Meta is the embedded base for every template record.
// ID and CreatedAt are assigned once at creation and never change;
// UpdatedAt is refreshed by mutation operators.
type Meta struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// RecordID returns the record's stable identifier.
func (m Meta) RecordID() string { return m.ID }

// ClampNonNegative floors a numeric accumulator at zero.
// Aggregate fields (minutes logged, story points) are never negative.
func ClampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
