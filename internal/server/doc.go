// Package server runs the HTTP listener of the authentication API and shuts
// it down gracefully when the process context ends.
package server
