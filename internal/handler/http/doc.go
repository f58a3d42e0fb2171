// Package http implements the HTTP transport layer of the application.
//
// It serves two front ends over the same service layer: the JSON API under
// /api/ and the server-rendered browser flow (login, entity list, create,
// detail and the public access gate). Authentication, request tracing, access
// logging, compression and user agent recording are handled here before
// requests are delegated to the service layer.
package http
