package store

const (
	upsertReviewCard = `
		INSERT INTO review_cards (
			user_id,
			question_id,
			ease_factor,
			interval_days,
			repetitions,
			next_review_at,
			last_reviewed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, question_id) DO UPDATE SET
			ease_factor      = excluded.ease_factor,
			interval_days    = excluded.interval_days,
			repetitions      = excluded.repetitions,
			next_review_at   = excluded.next_review_at,
			last_reviewed_at = excluded.last_reviewed_at;`

	getReviewCard = `
		SELECT
			user_id,
			question_id,
			ease_factor,
			interval_days,
			repetitions,
			next_review_at,
			last_reviewed_at
		FROM review_cards
		WHERE user_id = $1 AND question_id = $2;`

	listDueReviewCards = `
		SELECT
			user_id,
			question_id,
			ease_factor,
			interval_days,
			repetitions,
			next_review_at,
			last_reviewed_at
		FROM review_cards
		WHERE user_id = $1 AND next_review_at <= $2
		ORDER BY rowid;`

	enqueueSyncItem = `
		INSERT INTO sync_queue (
			id,
			user_id,
			type,
			action,
			payload,
			created_at,
			retry_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	listPendingSyncItems = `
		SELECT
			id,
			user_id,
			type,
			action,
			payload,
			created_at,
			retry_count
		FROM sync_queue
		WHERE user_id = $1 AND type = $2
		ORDER BY seq;`

	incrementSyncItemRetry = `
		UPDATE sync_queue
		SET retry_count = retry_count + 1
		WHERE id = $1;`

	deleteSyncItem = `
		DELETE FROM sync_queue
		WHERE id = $1;`

	saveQuizAttempt = `
		INSERT INTO quiz_attempts (
			attempt_id,
			user_id,
			quiz_id,
			answers,
			mode,
			elapsed_seconds,
			score,
			sync_status,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	getQuizAttempt = `
		SELECT
			attempt_id,
			user_id,
			quiz_id,
			answers,
			mode,
			elapsed_seconds,
			score,
			sync_status,
			created_at
		FROM quiz_attempts
		WHERE attempt_id = $1;`

	markQuizAttemptSynced = `
		UPDATE quiz_attempts
		SET sync_status = $2
		WHERE attempt_id = $1;`

	upsertProgress = `
		INSERT INTO progress (
			user_id,
			chapter_id,
			read_percent,
			completed,
			sync_status,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, chapter_id) DO UPDATE SET
			read_percent = excluded.read_percent,
			completed    = excluded.completed,
			sync_status  = excluded.sync_status,
			updated_at   = excluded.updated_at;`

	getProgress = `
		SELECT
			user_id,
			chapter_id,
			read_percent,
			completed,
			sync_status,
			updated_at
		FROM progress
		WHERE user_id = $1 AND chapter_id = $2;`

	markProgressSynced = `
		UPDATE progress
		SET sync_status = $3
		WHERE user_id = $1 AND chapter_id = $2;`
)
