// Copyright (c) 2026 Moving Bridge. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/ctxutil"
	"github.com/nakknock/movingbridge/internal/platform/sec"
	"github.com/nakknock/movingbridge/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Principal extracts the resolved principal from the request context.

Requests without a session resolve to the anonymous principal.
*/
func Principal(request *http.Request) sec.Principal {
	return ctxutil.GetPrincipal(request.Context())
}

/*
RequiredPrincipal ensures the request is authenticated and returns the principal.

Returns:
  - sec.Principal: The authenticated principal
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredPrincipal(request *http.Request) (sec.Principal, error) {
	principal := ctxutil.GetPrincipal(request.Context())
	if !principal.IsAuthenticated() {
		return principal, apperr.Unauthorized("Authentication required")
	}
	return principal, nil
}

/*
SessionToken returns the opaque session token carried by the request,
or an empty string when no session cookie was present.
*/
func SessionToken(request *http.Request) string {
	return ctxutil.GetSessionToken(request.Context())
}
