// Copyright (c) 2026 Moving Bridge. All rights reserved.

// HTTP delivery layer for the two-step worker registration.
package worker

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nakknock/movingbridge/internal/platform/constants"
	"github.com/nakknock/movingbridge/internal/platform/ctxutil"
	requestutil "github.com/nakknock/movingbridge/internal/platform/request"
	"github.com/nakknock/movingbridge/internal/platform/respond"
)

// Handler implements worker-registration HTTP endpoints.
type Handler struct {
	workerService *Service
	sessions      SessionBinder
	secureCookies bool
}

// NewHandler constructs a new [Handler].
//
// secureCookies should be true in production so the session cookie is only
// sent over TLS.
func NewHandler(service *Service, sessions SessionBinder, secureCookies bool) *Handler {
	return &Handler{
		workerService: service,
		sessions:      sessions,
		secureCookies: secureCookies,
	}
}

// Routes returns a [chi.Router] configured with worker routes.
//
// # Endpoints
//   - POST /register/step1 : Creates the public half of a profile.
//   - POST /register/step2 : Completes the pending registration.
//   - GET  /{workerID}     : Returns a worker profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/register/step1", handler.registerStep1)
	router.Post("/register/step2", handler.registerStep2)
	router.Get("/{workerID}", handler.profile)
	return router
}

// # Request Payloads

type step1Request struct {
	Name         string   `json:"name"`
	Nationality  string   `json:"nationality"`
	Gender       string   `json:"gender"`
	KoreanFluent bool     `json:"korean_fluent"`
	Languages    []string `json:"languages"`
	JobCategory  string   `json:"job_category"`
	Location     string   `json:"location"`
	Availability string   `json:"availability"`
	Introduction string   `json:"introduction"`
	VideoURL     string   `json:"video_url"`
}

type step2Request struct {
	VisaType   string   `json:"visa_type"`
	VisaExpiry string   `json:"visa_expiry"`
	PastJobs   string   `json:"past_jobs"`
	SalaryBand string   `json:"salary_band"`
	Housing    string   `json:"housing"`
	Licenses   []string `json:"licenses"`
	Religion   string   `json:"religion"`
	WorkHours  string   `json:"work_hours"`
}

/*
registerStep1 creates the public half of a worker profile and binds the new
id to the caller's session as the pending reference. A caller without a
session receives a fresh one via Set-Cookie.

POST /api/v1/workers/register/step1

Response:
  - 201: Profile: Created profile with step=1
  - 400: VALIDATION_ERROR: All field violations together
*/
func (handler *Handler) registerStep1(writer http.ResponseWriter, request *http.Request) {
	var input step1Request

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.workerService.RegisterStep1(request.Context(), Step1Input{
		Name:         input.Name,
		Nationality:  input.Nationality,
		Gender:       input.Gender,
		KoreanFluent: input.KoreanFluent,
		Languages:    input.Languages,
		JobCategory:  input.JobCategory,
		Location:     input.Location,
		Availability: input.Availability,
		Introduction: input.Introduction,
		VideoURL:     input.VideoURL,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	token := requestutil.SessionToken(request)
	newToken, err := handler.sessions.BindPendingWorker(request.Context(), token, profile.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if newToken != token {
		handler.writeSessionCookie(writer, newToken)
	}

	respond.Created(writer, profile)
}

/*
registerStep2 completes the pending registration with the detail fields and
clears the pending reference from the session.

POST /api/v1/workers/register/step2

Response:
  - 200: Profile: Updated profile with step=2
  - 400: VALIDATION_ERROR: Field violations
  - 409: NO_PENDING_REGISTRATION: No step-1 reference on the session
*/
func (handler *Handler) registerStep2(writer http.ResponseWriter, request *http.Request) {
	var input step2Request

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token := requestutil.SessionToken(request)

	var pendingWorkerID string
	if token != "" {
		var err error
		pendingWorkerID, err = handler.sessions.PendingWorkerID(request.Context(), token)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	profile, err := handler.workerService.RegisterStep2(request.Context(), pendingWorkerID, Step2Input{
		VisaType:   input.VisaType,
		VisaExpiry: input.VisaExpiry,
		PastJobs:   input.PastJobs,
		SalaryBand: input.SalaryBand,
		Housing:    input.Housing,
		Licenses:   input.Licenses,
		Religion:   input.Religion,
		WorkHours:  input.WorkHours,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Registration is complete; a failed clear only leaves a stale pointer
	// the next bind will overwrite.
	if err := handler.sessions.ClearPendingWorker(request.Context(), token); err != nil {
		ctxutil.GetLogger(request.Context()).Warn("failed to clear pending registration",
			"error", err,
		)
	}

	respond.OK(writer, profile)
}

/*
profile returns a single worker profile.

GET /api/v1/workers/{workerID}

Response:
  - 200: Profile
  - 404: NOT_FOUND
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "workerID")

	profile, err := handler.workerService.Profile(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// writeSessionCookie attaches the opaque session token to the response.
func (handler *Handler) writeSessionCookie(writer http.ResponseWriter, token string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     constants.SessionCookiePath,
		MaxAge:   int(constants.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
