// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end started by the client once the stored
// session has been checked.
type UI interface {
	// Run blocks until the user quits. authenticated tells the UI whether a
	// verified session is available.
	Run(ctx context.Context, authenticated bool) error
}
