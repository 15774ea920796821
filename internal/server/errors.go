// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("server: http handler or address is missing")
	errNoServersToRun      = errors.New("server: nothing to run")
	errListen              = errors.New("server: listen failed")
)
