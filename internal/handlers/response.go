package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// Number is a float64 that encodes NaN and ±Inf as JSON null instead of
// failing the whole response.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a standardised JSON error response.
func WriteError(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// ParseNumber converts a raw parameter the way a lenient numeric cast does:
// surrounding whitespace is ignored, an empty value is zero and anything
// unparseable is NaN.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// QueryNumber returns the numeric value of query parameter key, or NaN when
// it is absent or repeated.
func QueryNumber(r *http.Request, key string) float64 {
	raw, ok := QueryString(r, key)
	if !ok {
		return math.NaN()
	}
	return ParseNumber(raw)
}

// QueryString returns the single value of query parameter key. ok is false
// when the parameter is absent or given more than once.
func QueryString(r *http.Request, key string) (string, bool) {
	vals, found := r.URL.Query()[key]
	if !found || len(vals) != 1 {
		return "", false
	}
	return vals[0], true
}
