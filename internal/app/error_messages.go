// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// nutri-track server handlers and the client services.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of error response bodies. The client matches on them to
// restore typed errors, so the wording must stay in sync on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgErrorProcessingImage is returned by the inference endpoint for any
	// failure after the request was accepted.
	MsgErrorProcessingImage = "Error processing image"

	// MsgInvalidImageURL is returned when imageUrl is missing or is neither a
	// data URI nor an http(s) URL.
	MsgInvalidImageURL = "invalid imageUrl"

	// MsgInvalidFoodEntry is returned when nutrient values, the description
	// or the attached image are rejected.
	MsgInvalidFoodEntry = "invalid food entry"

	// MsgUploadFailed is returned when the photo could not be stored.
	MsgUploadFailed = "failed to upload image"

	// MsgFoodEntryNotFound covers both missing entries and entries of
	// other users.
	MsgFoodEntryNotFound = "food entry not found"

	MsgInvalidEntryID = "invalid entry id"

	// MsgInvalidDateRange is returned for unparsable, reversed or too long
	// date ranges.
	MsgInvalidDateRange = "invalid date range"

	MsgInvalidTimeZone = "invalid time zone"

	// MsgInvalidGoals is returned when a daily intake goal is not positive.
	MsgInvalidGoals = "invalid intake goals"

	MsgImageNotFound = "image not found"

	// MsgPayloadTooLarge is returned when the request body exceeds the
	// configured limit.
	MsgPayloadTooLarge = "request body is too large"
)
