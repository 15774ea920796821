// Package http implements the REST transport of the authentication server.
//
// It wires chi routes under /api/auth, request handlers, and the middleware
// chain (trace id, access log, panic recovery, CORS, bearer authentication)
// in front of the service layer.
package http
