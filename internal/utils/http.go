package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// RequestScheme returns "https" for TLS requests or when a proxy reports it
// via X-Forwarded-Proto, and "http" otherwise.
func RequestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return "http"
}

// AbsoluteURL resolves target against the scheme and host of r.
// Targets that already carry a scheme are returned unchanged.
func AbsoluteURL(r *http.Request, target string) string {
	ref, err := url.Parse(target)
	if err != nil || ref.IsAbs() {
		return target
	}

	base := &url.URL{Scheme: RequestScheme(r), Host: r.Host, Path: "/"}
	return base.ResolveReference(ref).String()
}
