// Package server serves weft pages over HTTP.
//
// A Page is a function from request to template result. The server
// renders each request into a fresh document, serializes it, and wraps
// it in a full HTML page. Routing is handled by chi; /metrics exposes
// Prometheus metrics; optional live reload pushes change notifications
// to connected browsers over a WebSocket.
package server
