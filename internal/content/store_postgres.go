// Copyright (c) 2026 Moving Bridge. All rights reserved.

// PostgreSQL implementation of the content store.
package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/dberr"
	"github.com/nakknock/movingbridge/pkg/pagination"
)

// PostgresStore implements the [Store] interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL implementation of the content [Store].
func NewStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// # Jobs

func (store *PostgresStore) CreateJob(ctx context.Context, job *Job) error {
	const query = `
		INSERT INTO jobs (id, title, company_name, contact, description, created_by, creator_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	_, err := store.pool.Exec(ctx, query,
		job.ID, job.Title, job.CompanyName, job.Contact,
		job.Description, job.CreatedBy, job.CreatorName, job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_content_store_create_job_failed: %w", err)
	}
	return nil
}

func (store *PostgresStore) FindJobByID(ctx context.Context, id string) (*Job, error) {
	const query = `
		SELECT id, title, company_name, contact, description, created_by, creator_name, created_at
		FROM jobs
		WHERE id = $1`

	job := &Job{}
	err := store.pool.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.CompanyName, &job.Contact,
		&job.Description, &job.CreatedBy, &job.CreatorName, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Job posting")
		}
		return nil, fmt.Errorf("postgres_content_store_find_job_failed: %w", err)
	}
	return job, nil
}

func (store *PostgresStore) ListJobs(ctx context.Context, params pagination.Params) ([]*Job, int, error) {
	const query = `
		SELECT id, title, company_name, contact, description, created_by, creator_name, created_at,
		       COUNT(*) OVER() AS total
		FROM jobs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := store.pool.Query(ctx, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_content_store_list_jobs_failed: %w", err)
	}
	defer rows.Close()

	var (
		jobs  []*Job
		total int
	)
	for rows.Next() {
		job := &Job{}
		if err := rows.Scan(
			&job.ID, &job.Title, &job.CompanyName, &job.Contact,
			&job.Description, &job.CreatedBy, &job.CreatorName, &job.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_content_store_scan_job_failed: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_content_store_list_jobs_failed: %w", err)
	}

	return jobs, total, nil
}

// # Notices

func (store *PostgresStore) CreateNotice(ctx context.Context, notice *Notice) error {
	const query = `
		INSERT INTO notices (id, title, body, created_at)
		VALUES ($1, $2, $3, $4)`

	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = time.Now()
	}

	_, err := store.pool.Exec(ctx, query, notice.ID, notice.Title, notice.Body, notice.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres_content_store_create_notice_failed: %w", err)
	}
	return nil
}

func (store *PostgresStore) FindNoticeByID(ctx context.Context, id string) (*Notice, error) {
	const query = `
		SELECT id, title, body, created_at
		FROM notices
		WHERE id = $1`

	notice := &Notice{}
	err := store.pool.QueryRow(ctx, query, id).Scan(&notice.ID, &notice.Title, &notice.Body, &notice.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Notice")
		}
		return nil, fmt.Errorf("postgres_content_store_find_notice_failed: %w", err)
	}
	return notice, nil
}

func (store *PostgresStore) ListNotices(ctx context.Context, params pagination.Params) ([]*Notice, int, error) {
	const query = `
		SELECT id, title, body, created_at, COUNT(*) OVER() AS total
		FROM notices
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := store.pool.Query(ctx, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_content_store_list_notices_failed: %w", err)
	}
	defer rows.Close()

	var (
		notices []*Notice
		total   int
	)
	for rows.Next() {
		notice := &Notice{}
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Body, &notice.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("postgres_content_store_scan_notice_failed: %w", err)
		}
		notices = append(notices, notice)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_content_store_list_notices_failed: %w", err)
	}

	return notices, total, nil
}

// # Forum

func (store *PostgresStore) CreatePost(ctx context.Context, post *ForumPost) error {
	const query = `
		INSERT INTO forum_posts (id, author, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	_, err := store.pool.Exec(ctx, query, post.ID, post.Author, post.Title, post.Body, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres_content_store_create_post_failed: %w", err)
	}
	return nil
}

func (store *PostgresStore) FindPostByID(ctx context.Context, id string) (*ForumPost, error) {
	const query = `
		SELECT id, author, title, body, created_at
		FROM forum_posts
		WHERE id = $1`

	post := &ForumPost{}
	err := store.pool.QueryRow(ctx, query, id).Scan(&post.ID, &post.Author, &post.Title, &post.Body, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Forum post")
		}
		return nil, fmt.Errorf("postgres_content_store_find_post_failed: %w", err)
	}
	return post, nil
}

func (store *PostgresStore) ListPosts(ctx context.Context, params pagination.Params) ([]*ForumPost, int, error) {
	const query = `
		SELECT id, author, title, body, created_at, COUNT(*) OVER() AS total
		FROM forum_posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := store.pool.Query(ctx, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_content_store_list_posts_failed: %w", err)
	}
	defer rows.Close()

	var (
		posts []*ForumPost
		total int
	)
	for rows.Next() {
		post := &ForumPost{}
		if err := rows.Scan(&post.ID, &post.Author, &post.Title, &post.Body, &post.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("postgres_content_store_scan_post_failed: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_content_store_list_posts_failed: %w", err)
	}

	return posts, total, nil
}

// # Reactions

func (store *PostgresStore) ToggleJobReaction(ctx context.Context, jobID, userID, emoji string) (bool, error) {
	return store.toggleReaction(ctx,
		`INSERT INTO job_reactions (job_id, user_id, emoji, created_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT ON CONSTRAINT job_reactions_unique DO NOTHING`,
		`DELETE FROM job_reactions WHERE job_id = $1 AND user_id = $2 AND emoji = $3`,
		jobID, userID, emoji,
	)
}

func (store *PostgresStore) JobReactionCounts(ctx context.Context, jobID string) (map[string]int, error) {
	return store.reactionCounts(ctx,
		`SELECT emoji, COUNT(*) FROM job_reactions WHERE job_id = $1 GROUP BY emoji`,
		jobID,
	)
}

func (store *PostgresStore) ToggleIntroReaction(ctx context.Context, workerID, userID, emoji string) (bool, error) {
	return store.toggleReaction(ctx,
		`INSERT INTO intro_reactions (worker_id, user_id, emoji, created_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT ON CONSTRAINT intro_reactions_unique DO NOTHING`,
		`DELETE FROM intro_reactions WHERE worker_id = $1 AND user_id = $2 AND emoji = $3`,
		workerID, userID, emoji,
	)
}

func (store *PostgresStore) IntroReactionCounts(ctx context.Context, workerID string) (map[string]int, error) {
	return store.reactionCounts(ctx,
		`SELECT emoji, COUNT(*) FROM intro_reactions WHERE worker_id = $1 GROUP BY emoji`,
		workerID,
	)
}

// toggleReaction inserts the reaction; when the unique constraint reports it
// already present, it deletes it instead. The returned flag is the resulting
// presence.
func (store *PostgresStore) toggleReaction(ctx context.Context, insertQuery, deleteQuery, subjectID, userID, emoji string) (bool, error) {
	tag, err := store.pool.Exec(ctx, insertQuery, subjectID, userID, emoji)
	if err != nil && !dberr.IsUniqueViolation(err) {
		// Reacting to a record deleted mid-flight is a 404, not a 500.
		if dberr.IsForeignKeyViolation(err) {
			return false, apperr.NotFound("Record")
		}
		return false, fmt.Errorf("postgres_content_store_toggle_reaction_failed: %w", err)
	}

	// ON CONFLICT DO NOTHING reports zero affected rows when the reaction
	// already exists; the toggle then removes it.
	if err == nil && tag.RowsAffected() > 0 {
		return true, nil
	}

	if _, err := store.pool.Exec(ctx, deleteQuery, subjectID, userID, emoji); err != nil {
		return false, fmt.Errorf("postgres_content_store_remove_reaction_failed: %w", err)
	}
	return false, nil
}

// reactionCounts aggregates the per-emoji totals for one subject.
func (store *PostgresStore) reactionCounts(ctx context.Context, query, subjectID string) (map[string]int, error) {
	rows, err := store.pool.Query(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("postgres_content_store_reaction_counts_failed: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			emoji string
			count int
		)
		if err := rows.Scan(&emoji, &count); err != nil {
			return nil, fmt.Errorf("postgres_content_store_scan_reaction_failed: %w", err)
		}
		counts[emoji] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_content_store_reaction_counts_failed: %w", err)
	}

	return counts, nil
}
