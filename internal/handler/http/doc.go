// Package http implements the HTTP/JSON transport of the travel journal.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, metrics, compression, CORS and rate
// limiting are handled in this package before requests are delegated to the
// service layer.
package http
