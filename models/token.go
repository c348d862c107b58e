// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a parsed or freshly signed JWT.
//
// The subject claim carries the user id as a decimal string.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact serialized token sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is the id extracted from the subject claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the subject claim into a user id.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
