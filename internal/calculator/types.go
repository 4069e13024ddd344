package calculator

import "utility-api/internal/handlers"

// BinaryResponse is the JSON response for two-operand endpoints
// (add, subtract, multiply, divide, power).
type BinaryResponse struct {
	Operation string          `json:"operation"`
	A         float64         `json:"a"`
	B         float64         `json:"b"`
	Result    handlers.Number `json:"result"`
}

// UnaryResponse is the JSON response for the /{n} endpoints
// (factorial, fibonacci, isprime). Result is a number or a bool.
type UnaryResponse struct {
	Operation string  `json:"operation"`
	N         float64 `json:"n"`
	Result    any     `json:"result"`
}
