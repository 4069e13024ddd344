// Package testutil holds HTTP helpers shared by handler and router tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func ExecuteRequest(req *http.Request, handler http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// Get issues a GET for target against handler.
func Get(handler http.Handler, target string) *httptest.ResponseRecorder {
	return ExecuteRequest(httptest.NewRequest(http.MethodGet, target, nil), handler)
}

// GetJSON issues a GET for target, asserts the status and decodes the body
// into a generic map.
func GetJSON(t testing.TB, handler http.Handler, target string, wantStatus int) map[string]any {
	t.Helper()
	rr := Get(handler, target)
	CheckResponseCode(t, wantStatus, rr.Code)

	var body map[string]any
	DecodeJSONBody(t, rr.Body, &body)
	return body
}

func CheckResponseCode(t testing.TB, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Fatalf("expected status %d, got %d", expected, actual)
	}
}

func DecodeJSONBody(t testing.TB, body io.Reader, dst any) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		t.Fatalf("decoding JSON response: %v", err)
	}
}
