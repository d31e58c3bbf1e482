// Package prompts implements the prompt library for Lumiderm. It provides
// the stage vocabulary, hardcoded default instructions and output specs for
// every pipeline stage, and a DB-backed override domain so stage instructions
// can be tuned without a deploy.
package prompts

import "github.com/google/uuid"

// Prompt represents a named instruction override for a pipeline stage.
// At most one prompt per stage is active; the active override replaces the
// hardcoded default instructions for that stage. Output specs are immutable.
type Prompt struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Stage        Stage     `json:"stage"`
	Instructions string    `json:"instructions"`
	Description  *string   `json:"description"`
	Active       bool      `json:"active"`
}

// CreateCommand carries the data needed to create a new prompt override.
type CreateCommand struct {
	Name         string  `json:"name"`
	Stage        Stage   `json:"stage"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}

// UpdateCommand carries the data needed to update an existing prompt override.
type UpdateCommand struct {
	Name         string  `json:"name"`
	Stage        Stage   `json:"stage"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}
