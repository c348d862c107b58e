// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-nutri-track/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user is authenticated. It returns
	// tui.ErrUserQuit when the user leaves instead.
	LoginFlow(ctx context.Context, notice string) (models.Session, error)

	// MainLoop blocks while the user works with their diary. logout reports
	// whether the user logged out or the session expired.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
