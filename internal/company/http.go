// Copyright (c) 2026 Moving Bridge. All rights reserved.

// HTTP delivery layer for employer registration.
package company

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nakknock/movingbridge/internal/platform/request"
	"github.com/nakknock/movingbridge/internal/platform/respond"
)

// Handler implements company-registration HTTP endpoints.
type Handler struct {
	companyService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{companyService: service}
}

// Routes returns a [chi.Router] configured with company routes.
//
// # Endpoints
//   - POST /register : Creates a new employer account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/register", handler.register)
	return router
}

// # Request Payloads

type registerRequest struct {
	Name            string `json:"name"`
	BusinessNumber  string `json:"business_number"`
	CEOName         string `json:"ceo_name"`
	ContactNumber   string `json:"contact_number"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Address         string `json:"address"`
	Description     string `json:"description"`
}

/*
register handles the creation of a new employer account.

POST /api/v1/companies/register

Response:
  - 201: Account: Created company profile
  - 400: VALIDATION_ERROR: All field violations together
  - 409: CONFLICT: Email and/or business number already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.companyService.Register(request.Context(), RegisterInput{
		Name:            input.Name,
		BusinessNumber:  input.BusinessNumber,
		CEOName:         input.CEOName,
		ContactNumber:   input.ContactNumber,
		Email:           input.Email,
		Password:        input.Password,
		PasswordConfirm: input.PasswordConfirm,
		Address:         input.Address,
		Description:     input.Description,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, account)
}
