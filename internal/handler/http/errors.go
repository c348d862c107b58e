// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors of the auth middleware when reading the "Authorization" header.
var (
	// ErrEmptyAuthorizationHeader means the header is missing.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme is present but the token is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
