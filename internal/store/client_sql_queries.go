// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	tokenSlot   = "access_token"
	profileSlot = "user"
)

const (
	upsertSessionSlot = `
		INSERT INTO session_slots (name, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	getSessionSlot = `
		SELECT value
		FROM session_slots
		WHERE name = ?;`

	deleteSessionSlots = `
		DELETE FROM session_slots
		WHERE name IN (?, ?);`
)
