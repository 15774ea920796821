// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-session/internal/utils"
)

// notFound answers unknown paths with the same {"detail": ...} body every
// other error of the API uses.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Not Found", http.StatusNotFound)
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler;
// chi calls it only when the path exists under another method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}
