// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package store

const (
	getSyncConfig = `
		SELECT
			device_id,
			device_token,
			role,
			master_id,
			api_url,
			encryption_key,
			device_name
		FROM sync_config
		WHERE id = 1;`

	saveSyncConfig = `
		INSERT INTO sync_config (
			id,
			device_id,
			device_token,
			role,
			master_id,
			api_url,
			encryption_key,
			device_name
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			device_id      = excluded.device_id,
			device_token   = excluded.device_token,
			role           = excluded.role,
			master_id      = excluded.master_id,
			api_url        = excluded.api_url,
			encryption_key = excluded.encryption_key,
			device_name    = excluded.device_name;`

	wipeSyncConfig = `
		UPDATE sync_config SET
			device_token   = '',
			role           = 'unpaired',
			master_id      = '',
			api_url        = '',
			encryption_key = ''
		WHERE id = 1;`

	enqueueDelta = `
		INSERT INTO outbound_queue (
			record_id,
			kind,
			data,
			modified_at,
			device_id
		) VALUES ($1, $2, $3, $4, $5);`

	queueSize = `SELECT COUNT(*) FROM outbound_queue;`

	isMessageApplied = `SELECT COUNT(*) FROM applied_messages WHERE message_id = $1;`

	markMessageApplied = `
		INSERT INTO applied_messages (message_id, applied_at)
		VALUES ($1, $2)
		ON CONFLICT (message_id) DO NOTHING;`

	getRecord = `
		SELECT
			record_id,
			data,
			modified_at,
			device_id,
			deleted
		FROM records
		WHERE record_id = $1;`

	upsertRecord = `
		INSERT INTO records (
			record_id,
			data,
			modified_at,
			device_id,
			deleted
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (record_id) DO UPDATE SET
			data        = excluded.data,
			modified_at = excluded.modified_at,
			device_id   = excluded.device_id,
			deleted     = excluded.deleted;`
)
