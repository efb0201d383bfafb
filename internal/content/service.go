// Copyright (c) 2026 Moving Bridge. All rights reserved.

package content

import (
	"context"

	"github.com/nakknock/movingbridge/internal/platform/sec"
	"github.com/nakknock/movingbridge/internal/platform/validate"
	"github.com/nakknock/movingbridge/pkg/pagination"
	"github.com/nakknock/movingbridge/pkg/uuid"
)

// Service implements the community content workflows.
type Service struct {
	store Store
}

// NewService constructs a new content [Service] with its store dependency.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// # Jobs

// JobInput holds the fields for a new job posting.
type JobInput struct {
	Title       string
	CompanyName string
	Contact     string
	Description string
}

// CreateJob validates and persists a job posting on behalf of creator.
// The router guards this with the authentication gate; the creator's
// identity is stamped onto the record.
func (service *Service) CreateJob(ctx context.Context, creator sec.Principal, input JobInput) (*Job, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		LenBetween(FieldTitle, input.Title, TitleMinLen, TitleMaxLen).
		Required(FieldCompanyName, input.CompanyName).
		Required(FieldContact, input.Contact).
		Required(FieldDescription, input.Description).
		MaxLen(FieldDescription, input.Description, DescriptionMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	job := &Job{
		ID:          uuid.New(),
		Title:       input.Title,
		CompanyName: input.CompanyName,
		Contact:     input.Contact,
		Description: input.Description,
		CreatedBy:   creator.ID,
		CreatorName: creator.DisplayName,
	}

	if err := service.store.CreateJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Job returns a single job posting.
func (service *Service) Job(ctx context.Context, id string) (*Job, error) {
	return service.store.FindJobByID(ctx, id)
}

// Jobs returns one page of job postings, newest first.
func (service *Service) Jobs(ctx context.Context, params pagination.Params) ([]*Job, pagination.Meta, error) {
	jobs, total, err := service.store.ListJobs(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return jobs, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// # Notices

// NoticeInput holds the fields for a new announcement.
type NoticeInput struct {
	Title string
	Body  string
}

// CreateNotice validates and persists an announcement. The router guards
// this with the admin gate.
func (service *Service) CreateNotice(ctx context.Context, input NoticeInput) (*Notice, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		LenBetween(FieldTitle, input.Title, TitleMinLen, TitleMaxLen).
		Required(FieldBody, input.Body).
		MaxLen(FieldBody, input.Body, BodyMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	notice := &Notice{
		ID:    uuid.New(),
		Title: input.Title,
		Body:  input.Body,
	}

	if err := service.store.CreateNotice(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// Notice returns a single announcement.
func (service *Service) Notice(ctx context.Context, id string) (*Notice, error) {
	return service.store.FindNoticeByID(ctx, id)
}

// Notices returns one page of announcements, newest first.
func (service *Service) Notices(ctx context.Context, params pagination.Params) ([]*Notice, pagination.Meta, error) {
	notices, total, err := service.store.ListNotices(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return notices, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// # Forum

// PostInput holds the fields for a new forum post.
type PostInput struct {
	Title string
	Body  string
}

// CreatePost validates and persists a forum post. The author column carries
// the creating principal's display name, whatever kind it is.
func (service *Service) CreatePost(ctx context.Context, author sec.Principal, input PostInput) (*ForumPost, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		LenBetween(FieldTitle, input.Title, TitleMinLen, TitleMaxLen).
		Required(FieldBody, input.Body).
		MaxLen(FieldBody, input.Body, BodyMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	post := &ForumPost{
		ID:     uuid.New(),
		Author: author.DisplayName,
		Title:  input.Title,
		Body:   input.Body,
	}

	if err := service.store.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Post returns a single forum post.
func (service *Service) Post(ctx context.Context, id string) (*ForumPost, error) {
	return service.store.FindPostByID(ctx, id)
}

// Posts returns one page of forum posts, newest first.
func (service *Service) Posts(ctx context.Context, params pagination.Params) ([]*ForumPost, pagination.Meta, error) {
	posts, total, err := service.store.ListPosts(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return posts, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// # Reactions

// ReactionResult reports the outcome of a toggle and the updated totals.
type ReactionResult struct {
	Added  bool           `json:"added"`
	Counts map[string]int `json:"counts"`
}

// ReactToJob toggles reactor's emoji on a job posting. Reacting twice with
// the same emoji removes it.
func (service *Service) ReactToJob(ctx context.Context, reactor sec.Principal, jobID, emoji string) (*ReactionResult, error) {
	if err := validateEmoji(emoji); err != nil {
		return nil, err
	}

	// Confirm the subject exists so a reaction on a deleted job is NotFound.
	if _, err := service.store.FindJobByID(ctx, jobID); err != nil {
		return nil, err
	}

	added, err := service.store.ToggleJobReaction(ctx, jobID, reactor.ID, emoji)
	if err != nil {
		return nil, err
	}

	counts, err := service.store.JobReactionCounts(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return &ReactionResult{Added: added, Counts: counts}, nil
}

// ReactToIntro toggles reactor's emoji on a worker introduction.
func (service *Service) ReactToIntro(ctx context.Context, reactor sec.Principal, workerID, emoji string) (*ReactionResult, error) {
	if err := validateEmoji(emoji); err != nil {
		return nil, err
	}

	added, err := service.store.ToggleIntroReaction(ctx, workerID, reactor.ID, emoji)
	if err != nil {
		return nil, err
	}

	counts, err := service.store.IntroReactionCounts(ctx, workerID)
	if err != nil {
		return nil, err
	}

	return &ReactionResult{Added: added, Counts: counts}, nil
}

func validateEmoji(emoji string) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldEmoji, emoji).
		MaxLen(FieldEmoji, emoji, EmojiMaxLen)
	return validator.Err()
}
