// Copyright (c) 2026 Moving Bridge. All rights reserved.

package content

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/sec"
	"github.com/nakknock/movingbridge/pkg/pagination"
)

// reactionKey identifies one (subject, user, emoji) reaction.
type reactionKey struct {
	subjectID string
	userID    string
	emoji     string
}

// fakeStore is an in-memory Store used to exercise the service without a
// database.
type fakeStore struct {
	jobs           map[string]*Job
	notices        map[string]*Notice
	posts          map[string]*ForumPost
	jobReactions   map[reactionKey]struct{}
	introReactions map[reactionKey]struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs:           make(map[string]*Job),
		notices:        make(map[string]*Notice),
		posts:          make(map[string]*ForumPost),
		jobReactions:   make(map[reactionKey]struct{}),
		introReactions: make(map[reactionKey]struct{}),
	}
}

func (store *fakeStore) CreateJob(_ context.Context, job *Job) error {
	store.jobs[job.ID] = job
	return nil
}

func (store *fakeStore) FindJobByID(_ context.Context, id string) (*Job, error) {
	if job, ok := store.jobs[id]; ok {
		return job, nil
	}
	return nil, apperr.NotFound("Job posting")
}

func (store *fakeStore) ListJobs(_ context.Context, params pagination.Params) ([]*Job, int, error) {
	jobs := make([]*Job, 0, len(store.jobs))
	for _, job := range store.jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return paginate(jobs, params), len(store.jobs), nil
}

func (store *fakeStore) CreateNotice(_ context.Context, notice *Notice) error {
	store.notices[notice.ID] = notice
	return nil
}

func (store *fakeStore) FindNoticeByID(_ context.Context, id string) (*Notice, error) {
	if notice, ok := store.notices[id]; ok {
		return notice, nil
	}
	return nil, apperr.NotFound("Notice")
}

func (store *fakeStore) ListNotices(_ context.Context, params pagination.Params) ([]*Notice, int, error) {
	notices := make([]*Notice, 0, len(store.notices))
	for _, notice := range store.notices {
		notices = append(notices, notice)
	}
	return paginate(notices, params), len(store.notices), nil
}

func (store *fakeStore) CreatePost(_ context.Context, post *ForumPost) error {
	store.posts[post.ID] = post
	return nil
}

func (store *fakeStore) FindPostByID(_ context.Context, id string) (*ForumPost, error) {
	if post, ok := store.posts[id]; ok {
		return post, nil
	}
	return nil, apperr.NotFound("Forum post")
}

func (store *fakeStore) ListPosts(_ context.Context, params pagination.Params) ([]*ForumPost, int, error) {
	posts := make([]*ForumPost, 0, len(store.posts))
	for _, post := range store.posts {
		posts = append(posts, post)
	}
	return paginate(posts, params), len(store.posts), nil
}

func (store *fakeStore) ToggleJobReaction(_ context.Context, jobID, userID, emoji string) (bool, error) {
	return toggle(store.jobReactions, reactionKey{jobID, userID, emoji}), nil
}

func (store *fakeStore) JobReactionCounts(_ context.Context, jobID string) (map[string]int, error) {
	return countReactions(store.jobReactions, jobID), nil
}

func (store *fakeStore) ToggleIntroReaction(_ context.Context, workerID, userID, emoji string) (bool, error) {
	return toggle(store.introReactions, reactionKey{workerID, userID, emoji}), nil
}

func (store *fakeStore) IntroReactionCounts(_ context.Context, workerID string) (map[string]int, error) {
	return countReactions(store.introReactions, workerID), nil
}

func toggle(reactions map[reactionKey]struct{}, key reactionKey) bool {
	if _, ok := reactions[key]; ok {
		delete(reactions, key)
		return false
	}
	reactions[key] = struct{}{}
	return true
}

func countReactions(reactions map[reactionKey]struct{}, subjectID string) map[string]int {
	counts := make(map[string]int)
	for key := range reactions {
		if key.subjectID == subjectID {
			counts[key.emoji]++
		}
	}
	return counts
}

func paginate[T any](items []T, params pagination.Params) []T {
	start := params.Offset()
	if start >= len(items) {
		return nil
	}
	end := start + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func userPrincipal() sec.Principal {
	return sec.Principal{Kind: sec.PrincipalUser, ID: "u-1", DisplayName: "kim123", Role: sec.RoleUser}
}

// # Jobs

func TestService_CreateJob(t *testing.T) {
	service := NewService(newFakeStore())

	job, err := service.CreateJob(context.Background(), userPrincipal(), JobInput{
		Title:       "Warehouse staff",
		CompanyName: "Hanwoo Logistics",
		Contact:     "02-1234-5678",
		Description: "Night shift warehouse work near Anseong.",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "u-1", job.CreatedBy)
	assert.Equal(t, "kim123", job.CreatorName)
}

func TestService_CreateJob_Validation(t *testing.T) {
	service := NewService(newFakeStore())

	_, err := service.CreateJob(context.Background(), userPrincipal(), JobInput{Title: "x"})
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	fields := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}
	assert.Contains(t, fields, FieldTitle)
	assert.Contains(t, fields, FieldCompanyName)
	assert.Contains(t, fields, FieldContact)
	assert.Contains(t, fields, FieldDescription)
}

func TestService_Job_NotFound(t *testing.T) {
	service := NewService(newFakeStore())

	_, err := service.Job(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

// # Notices

func TestService_CreateNotice(t *testing.T) {
	service := NewService(newFakeStore())

	notice, err := service.CreateNotice(context.Background(), NoticeInput{
		Title: "Service maintenance",
		Body:  "The platform will be unavailable on Sunday 02:00-04:00 KST.",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, notice.ID)
}

// # Forum

func TestService_CreatePost_StampsAuthorName(t *testing.T) {
	service := NewService(newFakeStore())

	post, err := service.CreatePost(context.Background(), sec.Principal{
		Kind:        sec.PrincipalCompany,
		ID:          "c-1",
		DisplayName: "Hanwoo Logistics",
	}, PostInput{
		Title: "Hiring tips",
		Body:  "What we look for in applications.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hanwoo Logistics", post.Author)
}

// # Reactions

func TestService_ReactToJob_Toggles(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	job, err := service.CreateJob(context.Background(), userPrincipal(), JobInput{
		Title:       "Warehouse staff",
		CompanyName: "Hanwoo Logistics",
		Contact:     "02-1234-5678",
		Description: "Night shift warehouse work near Anseong.",
	})
	require.NoError(t, err)

	// First reaction adds.
	result, err := service.ReactToJob(context.Background(), userPrincipal(), job.ID, "👍")
	require.NoError(t, err)
	assert.True(t, result.Added)
	assert.Equal(t, 1, result.Counts["👍"])

	// Same emoji again toggles off.
	result, err = service.ReactToJob(context.Background(), userPrincipal(), job.ID, "👍")
	require.NoError(t, err)
	assert.False(t, result.Added)
	assert.Zero(t, result.Counts["👍"])

	// A different emoji is independent.
	result, err = service.ReactToJob(context.Background(), userPrincipal(), job.ID, "🎉")
	require.NoError(t, err)
	assert.True(t, result.Added)
}

func TestService_ReactToJob_MissingJob(t *testing.T) {
	service := NewService(newFakeStore())

	_, err := service.ReactToJob(context.Background(), userPrincipal(), "missing", "👍")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestService_ReactToIntro_CountsPerUser(t *testing.T) {
	service := NewService(newFakeStore())

	other := sec.Principal{Kind: sec.PrincipalUser, ID: "u-2", DisplayName: "lee456"}

	_, err := service.ReactToIntro(context.Background(), userPrincipal(), "w-1", "👍")
	require.NoError(t, err)

	result, err := service.ReactToIntro(context.Background(), other, "w-1", "👍")
	require.NoError(t, err)
	assert.True(t, result.Added)
	assert.Equal(t, 2, result.Counts["👍"])
}

func TestService_ReactToJob_EmptyEmoji(t *testing.T) {
	service := NewService(newFakeStore())

	_, err := service.ReactToJob(context.Background(), userPrincipal(), "j-1", "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

// # Listing

func TestService_Jobs_Pagination(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	for i := 0; i < 25; i++ {
		_, err := service.CreateJob(context.Background(), userPrincipal(), JobInput{
			Title:       "Warehouse staff",
			CompanyName: "Hanwoo Logistics",
			Contact:     "02-1234-5678",
			Description: "Night shift warehouse work near Anseong.",
		})
		require.NoError(t, err)
	}

	jobs, meta, err := service.Jobs(context.Background(), pagination.Params{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, jobs, 10)
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}
