// Copyright (c) 2026 Moving Bridge. All rights reserved.

// HTTP delivery layer for user registration.
//
// This layer is strictly responsible for transport concerns (status codes,
// headers, JSON); all rules live in [Service].
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nakknock/movingbridge/internal/platform/request"
	"github.com/nakknock/movingbridge/internal/platform/respond"
)

// Handler implements user-registration HTTP endpoints.
type Handler struct {
	userService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{userService: service}
}

// Routes returns a [chi.Router] configured with user routes.
//
// # Endpoints
//   - POST /register : Creates a new user account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/register", handler.register)
	return router
}

// # Request Payloads

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	TermsAccepted   bool   `json:"terms_accepted"`
}

/*
register handles the creation of a new user account.

POST /api/v1/users/register

Response:
  - 201: User: Created user profile
  - 400: VALIDATION_ERROR: All field violations together
  - 409: CONFLICT: Username and/or email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.userService.Register(request.Context(), RegisterInput{
		Username:        input.Username,
		Email:           input.Email,
		Password:        input.Password,
		PasswordConfirm: input.PasswordConfirm,
		TermsAccepted:   input.TermsAccepted,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}
