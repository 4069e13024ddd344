package text

import "utility-api/internal/handlers"

// Response is the JSON response for single-string endpoints. MaxLength and
// Char are only set by truncate and countchar.
type Response struct {
	Operation string           `json:"operation"`
	Input     string           `json:"input"`
	MaxLength *handlers.Number `json:"maxLength,omitempty"`
	Char      *string          `json:"char,omitempty"`
	Result    any              `json:"result"`
}
