// Copyright (c) 2026 Moving Bridge. All rights reserved.

package content

import (
	"context"

	"github.com/nakknock/movingbridge/pkg/pagination"
)

// # Content Data Access

// Store defines the persistence contract for community content.
//
// List methods return pages newest-first together with the total row count
// for pagination metadata. Find methods return apperr.NotFound for missing
// records.
type Store interface {

	// Jobs
	CreateJob(ctx context.Context, job *Job) error
	FindJobByID(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, params pagination.Params) ([]*Job, int, error)

	// Notices
	CreateNotice(ctx context.Context, notice *Notice) error
	FindNoticeByID(ctx context.Context, id string) (*Notice, error)
	ListNotices(ctx context.Context, params pagination.Params) ([]*Notice, int, error)

	// Forum
	CreatePost(ctx context.Context, post *ForumPost) error
	FindPostByID(ctx context.Context, id string) (*ForumPost, error)
	ListPosts(ctx context.Context, params pagination.Params) ([]*ForumPost, int, error)

	/*
		ToggleJobReaction flips the (job, user, emoji) reaction. The unique
		constraint is the source of truth: a lost race between two toggles
		still converges on exactly present-or-absent.

		Returns:
		  - added: true if the reaction is now present, false if removed
		  - error: Persistence failures
	*/
	ToggleJobReaction(ctx context.Context, jobID, userID, emoji string) (bool, error)

	// JobReactionCounts returns emoji -> count for one job.
	JobReactionCounts(ctx context.Context, jobID string) (map[string]int, error)

	// ToggleIntroReaction flips the (worker, user, emoji) reaction on a
	// worker introduction, with the same semantics as ToggleJobReaction.
	ToggleIntroReaction(ctx context.Context, workerID, userID, emoji string) (bool, error)

	// IntroReactionCounts returns emoji -> count for one worker introduction.
	IntroReactionCounts(ctx context.Context, workerID string) (map[string]int, error)
}
