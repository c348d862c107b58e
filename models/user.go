// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an application account.
type User struct {
	// UserID is the unique identifier of the user, assigned by the database.
	UserID int64 `json:"-"`

	// Login is the unique login used to authenticate.
	Login string `json:"login"`

	// Password is the plain password received from the client.
	// It is never stored or returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the users table.
func (u User) TableName() string {
	return "users"
}
