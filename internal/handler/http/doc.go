// Package http implements the control API of proxykeeperd.
//
// It exposes the route wiring, the job handlers and the middleware stack:
// request tracing, access logging and per-client rate limiting run before
// requests reach the service layer.
package http
