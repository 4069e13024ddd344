package handlers

import "net/http"

// Discovery is the static service description served at GET /.
type Discovery struct {
	Name        string                       `json:"name"`
	Version     string                       `json:"version"`
	Description string                       `json:"description"`
	Endpoints   map[string]map[string]string `json:"endpoints"`
}

// NewDiscovery builds the endpoint directory for the service.
func NewDiscovery(name, version string) Discovery {
	return Discovery{
		Name:        name,
		Version:     version,
		Description: "Arithmetic and string utilities over HTTP",
		Endpoints: map[string]map[string]string{
			"system": {
				"health":  "/health",
				"ready":   "/ready",
				"metrics": "/metrics",
			},
			"calculator": {
				"add":       "/api/calculator/add?a=5&b=3",
				"subtract":  "/api/calculator/subtract?a=10&b=4",
				"multiply":  "/api/calculator/multiply?a=6&b=7",
				"divide":    "/api/calculator/divide?a=20&b=5",
				"power":     "/api/calculator/power?a=2&b=10",
				"factorial": "/api/calculator/factorial/:n",
				"fibonacci": "/api/calculator/fibonacci/:n",
				"isPrime":   "/api/calculator/isprime/:n",
			},
			"string": {
				"reverse":          "/api/string/reverse?str=hello",
				"palindrome":       "/api/string/palindrome?str=racecar",
				"wordcount":        "/api/string/wordcount?str=hello world",
				"titlecase":        "/api/string/titlecase?str=hello world",
				"truncate":         "/api/string/truncate?str=Hello, World!&maxLength=10",
				"countchar":        "/api/string/countchar?str=hello&char=l",
				"removeDuplicates": "/api/string/dedupe?str=hello",
				"camelcase":        "/api/string/camelcase?str=this-is-a-test",
			},
		},
	}
}

// Root returns a handler for GET / that serves d.
func Root(d Discovery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, d)
	}
}
