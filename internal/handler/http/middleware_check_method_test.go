// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod(t *testing.T) {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Get("/items/", ok)
	router.Post("/items/", ok)
	router.Post("/items/{id}/regenerate/", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "registered method", method: http.MethodGet, path: "/items/", wantStatus: http.StatusOK},
		{name: "wrong method on collection", method: http.MethodDelete, path: "/items/", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST"},
		{name: "wrong method on param route", method: http.MethodGet, path: "/items/42/regenerate/", wantStatus: http.StatusMethodNotAllowed, wantAllow: "POST"},
		{name: "unknown path", method: http.MethodGet, path: "/nope/", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}
