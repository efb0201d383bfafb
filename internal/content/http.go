// Copyright (c) 2026 Moving Bridge. All rights reserved.

// HTTP delivery layer for jobs, notices, forum posts, and reactions.
package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nakknock/movingbridge/internal/platform/middleware"
	requestutil "github.com/nakknock/movingbridge/internal/platform/request"
	"github.com/nakknock/movingbridge/internal/platform/respond"
	"github.com/nakknock/movingbridge/pkg/pagination"
)

// Handler implements community content HTTP endpoints.
type Handler struct {
	contentService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{contentService: service}
}

// Routes returns a [chi.Router] configured with content routes.
//
// # Endpoints
//   - GET  /jobs, GET /jobs/{jobID}        : Public job listing and detail.
//   - POST /jobs                           : Authenticated job creation.
//   - POST /jobs/{jobID}/reactions         : Authenticated emoji toggle.
//   - GET  /notices, GET /notices/{noticeID} : Public announcements.
//   - POST /notices                        : Admin-only announcement creation.
//   - GET  /forum, GET /forum/{postID}     : Public forum listing and detail.
//   - POST /forum                          : Authenticated forum post creation.
//   - POST /intros/{workerID}/reactions    : Authenticated emoji toggle on a worker introduction.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/jobs", handler.listJobs)
	router.Get("/jobs/{jobID}", handler.getJob)
	router.Get("/notices", handler.listNotices)
	router.Get("/notices/{noticeID}", handler.getNotice)
	router.Get("/forum", handler.listPosts)
	router.Get("/forum/{postID}", handler.getPost)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/jobs", handler.createJob)
		protected.Post("/jobs/{jobID}/reactions", handler.reactToJob)
		protected.Post("/forum", handler.createPost)
		protected.Post("/intros/{workerID}/reactions", handler.reactToIntro)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Post("/notices", handler.createNotice)
	})

	return router
}

// # Request Payloads

type jobRequest struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
}

type noticeRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type postRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type reactionRequest struct {
	Emoji string `json:"emoji"`
}

// # Jobs

func (handler *Handler) listJobs(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	jobs, meta, err := handler.contentService.Jobs(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, jobs, meta)
}

func (handler *Handler) getJob(writer http.ResponseWriter, request *http.Request) {
	job, err := handler.contentService.Job(request.Context(), requestutil.ID(request, "jobID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, job)
}

func (handler *Handler) createJob(writer http.ResponseWriter, request *http.Request) {
	var input jobRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	job, err := handler.contentService.CreateJob(request.Context(), principal, JobInput{
		Title:       input.Title,
		CompanyName: input.CompanyName,
		Contact:     input.Contact,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, job)
}

func (handler *Handler) reactToJob(writer http.ResponseWriter, request *http.Request) {
	var input reactionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.contentService.ReactToJob(request.Context(), principal,
		requestutil.ID(request, "jobID"), input.Emoji)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// # Notices

func (handler *Handler) listNotices(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	notices, meta, err := handler.contentService.Notices(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, notices, meta)
}

func (handler *Handler) getNotice(writer http.ResponseWriter, request *http.Request) {
	notice, err := handler.contentService.Notice(request.Context(), requestutil.ID(request, "noticeID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, notice)
}

func (handler *Handler) createNotice(writer http.ResponseWriter, request *http.Request) {
	var input noticeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	notice, err := handler.contentService.CreateNotice(request.Context(), NoticeInput{
		Title: input.Title,
		Body:  input.Body,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, notice)
}

// # Forum

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	posts, meta, err := handler.contentService.Posts(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, meta)
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.contentService.Post(request.Context(), requestutil.ID(request, "postID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.contentService.CreatePost(request.Context(), principal, PostInput{
		Title: input.Title,
		Body:  input.Body,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, post)
}

// # Intro Reactions

func (handler *Handler) reactToIntro(writer http.ResponseWriter, request *http.Request) {
	var input reactionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.contentService.ReactToIntro(request.Context(), principal,
		requestutil.ID(request, "workerID"), input.Emoji)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
