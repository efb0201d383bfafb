// Copyright (c) 2026 Moving Bridge. All rights reserved.

// HTTP delivery layer for login, logout, and session inspection.
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nakknock/movingbridge/internal/platform/constants"
	requestutil "github.com/nakknock/movingbridge/internal/platform/request"
	"github.com/nakknock/movingbridge/internal/platform/respond"
)

// Handler implements authentication HTTP endpoints.
type Handler struct {
	authService   *Service
	secureCookies bool
}

// NewHandler constructs a new [Handler].
//
// secureCookies should be true in production so the session cookie is only
// sent over TLS.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{authService: service, secureCookies: secureCookies}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /login        : Company/user login (company email resolves first).
//   - POST /logout       : Clears the authenticated principal.
//   - POST /admin/login  : Fixed-credential or role-based admin login.
//   - POST /admin/logout : Same as logout; kept as a separate route for clients.
//   - GET  /me           : Returns the resolved principal.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Post("/admin/login", handler.adminLogin)
	router.Post("/admin/logout", handler.logout)
	router.Get("/me", handler.me)
	return router
}

// # Request Payloads

type loginRequest struct {
	// Identifier is a company email, a username, or a user email.
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
login authenticates an identifier/password pair.

POST /api/v1/auth/login

Response:
  - 200: Principal: The authenticated principal (cookie rotated via Set-Cookie)
  - 401: UNAUTHORIZED: No match or wrong password; session unchanged
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token := requestutil.SessionToken(request)

	newToken, principal, err := handler.authService.Login(request.Context(), token, input.Identifier, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.writeSessionCookie(writer, newToken)
	respond.OK(writer, principal)
}

/*
adminLogin authenticates the fixed admin credential or a role=admin user.

POST /api/v1/auth/admin/login

Response:
  - 200: Principal: The admin principal (cookie rotated via Set-Cookie)
  - 401: UNAUTHORIZED: Neither admin path matched
*/
func (handler *Handler) adminLogin(writer http.ResponseWriter, request *http.Request) {
	var input adminLoginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token := requestutil.SessionToken(request)

	newToken, principal, err := handler.authService.AdminLogin(request.Context(), token, input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.writeSessionCookie(writer, newToken)
	respond.OK(writer, principal)
}

/*
logout clears the authenticated principal. Idempotent: logging out twice, or
without a session, succeeds. The cookie is kept because the session record
may still carry an in-progress worker registration.

POST /api/v1/auth/logout
POST /api/v1/auth/admin/logout

Response:
  - 204: No content
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	token := requestutil.SessionToken(request)

	if err := handler.authService.Logout(request.Context(), token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
me returns the principal the session resolved to, anonymous included.

GET /api/v1/auth/me

Response:
  - 200: Principal
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, requestutil.Principal(request))
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
