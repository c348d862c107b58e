// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO sessions (id, user_id, login, token, created_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			user_id    = excluded.user_id,
			login      = excluded.login,
			token      = excluded.token,
			created_at = excluded.created_at;`

	getSession = `
		SELECT user_id, login, token, created_at
		FROM sessions
		WHERE id = 1;`

	deleteSession = `DELETE FROM sessions;`

	deleteCachedDay = `
		DELETE FROM cached_entries
		WHERE user_id = $1 AND day = $2;`

	insertCachedEntry = `
		INSERT OR REPLACE INTO cached_entries (
			id,
			user_id,
			day,
			calories,
			protein,
			carbs,
			fat,
			description,
			image_ref,
			image_url,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	listCachedDay = `
		SELECT
			id,
			user_id,
			calories,
			protein,
			carbs,
			fat,
			description,
			image_ref,
			image_url,
			created_at,
			updated_at
		FROM cached_entries
		WHERE user_id = $1 AND day = $2
		ORDER BY created_at ASC, id ASC;`

	clearCachedEntries = `DELETE FROM cached_entries WHERE user_id = $1;`
)
