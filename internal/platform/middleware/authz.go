// Copyright (c) 2026 Moving Bridge. All rights reserved.

// Session resolution and authorization middleware.
//
// # Architecture
//
// ResolveSession turns the opaque session cookie into a [sec.Principal] in the
// request context; the Require* wrappers adapt the pure gate checks from
// [sec] into HTTP 401/403 responses. The gates themselves have no side
// effects — only this transport layer decides what the client sees.
package middleware

import (
	"context"
	"net/http"

	"github.com/nakknock/movingbridge/internal/platform/constants"
	"github.com/nakknock/movingbridge/internal/platform/ctxutil"
	"github.com/nakknock/movingbridge/internal/platform/respond"
	"github.com/nakknock/movingbridge/internal/platform/sec"
)

// SessionResolver defines the interface needed to resolve session tokens.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the session
// service implementation, allowing us to easily inject fakes during unit testing.
type SessionResolver interface {
	// ResolvePrincipal maps an opaque session token to its principal.
	// Unknown or expired tokens resolve to the anonymous principal, not an error.
	ResolvePrincipal(ctx context.Context, token string) (sec.Principal, error)
}

// ResolveSession extracts the session cookie and resolves it to a principal.
//
// # Flow
//  1. Check for the session cookie.
//  2. If absent, the request proceeds as anonymous.
//  3. If present, resolve it via [SessionResolver].
//  4. Inject the [sec.Principal] and raw token into the request context.
func ResolveSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithSessionToken(request.Context(), cookie.Value)

			principal, err := resolver.ResolvePrincipal(ctx, cookie.Value)
			if err != nil {
				// Store failure: log and degrade to anonymous rather than
				// locking every visitor out.
				ctxutil.GetLogger(ctx).ErrorContext(ctx, "session_resolution_failed")
				next.ServeHTTP(writer, request.WithContext(ctx))
				return
			}

			ctx = ctxutil.WithPrincipal(ctx, principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [ResolveSession].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetPrincipal(request.Context())
		if err := sec.RequireAuthenticated(principal); err != nil {
			respond.Error(writer, request, err)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests whose principal does not hold the required role.
//
// # Usage
//
// Must be registered in the router AFTER [ResolveSession]. It automatically
// implies [RequireAuth] so you don't need to mount both.
func RequireRole(role sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			principal := ctxutil.GetPrincipal(request.Context())
			if err := sec.RequireRole(principal, role); err != nil {
				respond.Error(writer, request, err)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// RequireAdmin blocks requests whose principal lacks admin capability.
// Both admin paths pass: the fixed admin principal and role=admin users.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetPrincipal(request.Context())
		if err := sec.RequireAdmin(principal); err != nil {
			respond.Error(writer, request, err)
			return
		}
		next.ServeHTTP(writer, request)
	})
}
