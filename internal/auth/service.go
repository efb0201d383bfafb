// Copyright (c) 2026 Moving Bridge. All rights reserved.

package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/nakknock/movingbridge/internal/company"
	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/constants"
	"github.com/nakknock/movingbridge/internal/platform/sec"
	"github.com/nakknock/movingbridge/internal/users"
)

// UserDirectory is the slice of the user store the session manager consults
// during login.
type UserDirectory interface {
	FindByUsername(ctx context.Context, username string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
}

// CompanyDirectory is the slice of the company store the session manager
// consults during login.
type CompanyDirectory interface {
	FindByEmail(ctx context.Context, email string) (*company.Account, error)
}

// Service implements login, logout, and session bookkeeping for every
// principal kind.
//
// # Review Process
//
// This service is critical for security. Any changes to credential
// resolution or session replacement must be reviewed before merge.
type Service struct {
	sessions  SessionStore
	users     UserDirectory
	companies CompanyDirectory

	// Fixed out-of-band admin credential. Not a user row.
	adminUsername string
	adminPassword string
}

// NewService constructs the session manager.
func NewService(sessions SessionStore, userDir UserDirectory, companyDir CompanyDirectory, adminUsername, adminPassword string) *Service {
	return &Service{
		sessions:      sessions,
		users:         userDir,
		companies:     companyDir,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// errInvalidCredentials is deliberately identical for "no such account" and
// "wrong password" so the response does not reveal which identifiers exist.
func errInvalidCredentials() *apperr.AppError {
	return apperr.Unauthorized("Invalid credentials")
}

// # Login

/*
Login authenticates an identifier/password pair and binds the matching
principal to a fresh session.

Description: The identifier is resolved against the COMPANY store first,
then the user store by username or email — first match wins, so an email
claimed by both a company and a user logs in the company. On success the
whole session record is replaced and the token rotated; a pending worker
registration carried by the previous session survives the replacement.

Parameters:
  - context: context.Context
  - token: string (caller's current session token, "" if none)
  - identifier: string (company email, username, or user email)
  - password: string

Returns:
  - newToken: Rotated opaque session token to hand back to the browser
  - principal: The authenticated principal
  - error: apperr.Unauthorized on no match or hash mismatch (the session
    is left untouched), or storage errors
*/
func (service *Service) Login(context context.Context, token, identifier, password string) (string, sec.Principal, error) {
	principal, err := service.resolveCredentials(context, identifier, password)
	if err != nil {
		return "", sec.Anonymous(), err
	}

	return service.establishSession(context, token, principal)
}

/*
AdminLogin authenticates against the fixed admin credential OR a user
account holding the admin role.

Description: The fixed credential is configured out-of-band and never
touches the credential store; the database path requires a role=admin user
whose hash matches. Either path yields the admin principal. The session is
fully replaced before the admin principal is set — an admin login can never
merge with a pre-existing worker or company session.

Parameters:
  - context: context.Context
  - token: string (caller's current session token, "" if none)
  - username: string
  - password: string

Returns:
  - newToken: Rotated opaque session token
  - principal: The admin principal
  - error: apperr.Unauthorized when neither path matches, or storage errors
*/
func (service *Service) AdminLogin(context context.Context, token, username, password string) (string, sec.Principal, error) {

	// Path 1: fixed out-of-band credential. Constant-time on both parts.
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(service.adminUsername)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(service.adminPassword)) == 1
	if usernameMatch && passwordMatch {
		principal := sec.Principal{
			Kind:        sec.PrincipalAdmin,
			DisplayName: service.adminUsername,
			Role:        sec.RoleAdmin,
		}
		return service.establishSession(context, token, principal)
	}

	// Path 2: a stored user account holding the admin role.
	user, err := service.users.FindByUsername(context, username)
	if err != nil {
		if apperr.IsAppError(err) {
			return "", sec.Anonymous(), errInvalidCredentials()
		}
		return "", sec.Anonymous(), fmt.Errorf("auth_service_admin_lookup_failed: %w", err)
	}

	if !user.Role.AtLeast(sec.RoleAdmin) || !sec.CheckPasswordHash(password, user.PasswordHash) {
		return "", sec.Anonymous(), errInvalidCredentials()
	}

	principal := sec.Principal{
		Kind:        sec.PrincipalAdmin,
		ID:          user.ID,
		DisplayName: user.Username,
		Role:        user.Role,
	}
	return service.establishSession(context, token, principal)
}

// resolveCredentials maps an identifier/password pair to its principal.
// Company email first, then username, then user email.
func (service *Service) resolveCredentials(context context.Context, identifier, password string) (sec.Principal, error) {
	account, err := service.companies.FindByEmail(context, identifier)
	switch {
	case err == nil:
		// First match wins: a company claim on the identifier settles the
		// lookup even if the password turns out to be wrong.
		if !sec.CheckPasswordHash(password, account.PasswordHash) {
			return sec.Anonymous(), errInvalidCredentials()
		}
		return sec.Principal{
			Kind:        sec.PrincipalCompany,
			ID:          account.ID,
			DisplayName: account.Name,
		}, nil
	case !isNotFound(err):
		return sec.Anonymous(), fmt.Errorf("auth_service_company_lookup_failed: %w", err)
	}

	user, err := service.users.FindByUsername(context, identifier)
	if isNotFound(err) {
		user, err = service.users.FindByEmail(context, identifier)
	}
	if err != nil {
		if isNotFound(err) {
			return sec.Anonymous(), errInvalidCredentials()
		}
		return sec.Anonymous(), fmt.Errorf("auth_service_user_lookup_failed: %w", err)
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return sec.Anonymous(), errInvalidCredentials()
	}

	return sec.Principal{
		Kind:        sec.PrincipalUser,
		ID:          user.ID,
		DisplayName: user.Username,
		Role:        user.Role,
	}, nil
}

// establishSession replaces the caller's session with a fresh record bound
// to principal, rotating the token. Only the pending worker reference is
// carried over from the previous record.
func (service *Service) establishSession(context context.Context, token string, principal sec.Principal) (string, sec.Principal, error) {
	pendingWorkerID := ""
	if token != "" {
		previous, err := service.sessions.Find(context, token)
		switch {
		case err == nil:
			pendingWorkerID = previous.PendingWorkerID
		case !isNotFound(err):
			return "", sec.Anonymous(), fmt.Errorf("auth_service_session_load_failed: %w", err)
		}
	}

	newToken, err := sec.GenerateSecureToken(constants.SessionTokenLength)
	if err != nil {
		return "", sec.Anonymous(), fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	now := time.Now()
	session := &Session{
		Token:           newToken,
		Principal:       principal,
		PendingWorkerID: pendingWorkerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Single whole-record write: no field of a previous principal can survive.
	if err := service.sessions.Save(context, session, constants.SessionTTL); err != nil {
		return "", sec.Anonymous(), err
	}

	// The pre-login token is dead after rotation.
	if token != "" {
		if err := service.sessions.Delete(context, token); err != nil {
			return "", sec.Anonymous(), err
		}
	}

	return newToken, principal, nil
}

// # Logout

/*
Logout clears every authenticated marker from the caller's session.

Description: Logout is idempotent — an unknown or already-anonymous token is
not an error. A pending worker registration survives: the record is rewritten
as anonymous-with-pending rather than deleted. Records left with nothing in
them are deleted outright.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Storage failures only
*/
func (service *Service) Logout(context context.Context, token string) error {
	if token == "" {
		return nil
	}

	session, err := service.sessions.Find(context, token)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("auth_service_logout_load_failed: %w", err)
	}

	if session.PendingWorkerID == "" {
		return service.sessions.Delete(context, token)
	}

	session.Principal = sec.Anonymous()
	session.UpdatedAt = time.Now()
	return service.sessions.Save(context, session, constants.SessionTTL)
}

// # Principal Resolution

/*
ResolvePrincipal maps a session token to its principal for per-request
authorization. Unknown and expired tokens resolve to the anonymous
principal, not an error — only store failures propagate.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - sec.Principal: Resolved principal (anonymous for unknown tokens)
  - error: Storage failures only
*/
func (service *Service) ResolvePrincipal(context context.Context, token string) (sec.Principal, error) {
	session, err := service.sessions.Find(context, token)
	if err != nil {
		if isNotFound(err) {
			return sec.Anonymous(), nil
		}
		return sec.Anonymous(), err
	}

	if session.Principal.Kind == "" {
		return sec.Anonymous(), nil
	}
	return session.Principal, nil
}

// # Pending Worker Registration

// BindPendingWorker records workerID as the session's in-progress
// registration. A caller without a live session gets a fresh anonymous one;
// the returned token is the one the browser must carry afterwards.
func (service *Service) BindPendingWorker(context context.Context, token, workerID string) (string, error) {
	if token != "" {
		session, err := service.sessions.Find(context, token)
		switch {
		case err == nil:
			session.PendingWorkerID = workerID
			session.UpdatedAt = time.Now()
			if err := service.sessions.Save(context, session, constants.SessionTTL); err != nil {
				return "", err
			}
			return token, nil
		case !isNotFound(err):
			return "", fmt.Errorf("auth_service_bind_pending_failed: %w", err)
		}
	}

	newToken, err := sec.GenerateSecureToken(constants.SessionTokenLength)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	now := time.Now()
	session := &Session{
		Token:           newToken,
		Principal:       sec.Anonymous(),
		PendingWorkerID: workerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := service.sessions.Save(context, session, constants.SessionTTL); err != nil {
		return "", err
	}

	return newToken, nil
}

// PendingWorkerID returns the session's in-progress registration id, or ""
// when the session is unknown or carries none.
func (service *Service) PendingWorkerID(context context.Context, token string) (string, error) {
	if token == "" {
		return "", nil
	}

	session, err := service.sessions.Find(context, token)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", err
	}

	return session.PendingWorkerID, nil
}

// ClearPendingWorker drops the in-progress reference. A session left with
// neither principal nor pending reference is deleted.
func (service *Service) ClearPendingWorker(context context.Context, token string) error {
	if token == "" {
		return nil
	}

	session, err := service.sessions.Find(context, token)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}

	session.PendingWorkerID = ""
	if session.IsEmpty() {
		return service.sessions.Delete(context, token)
	}

	session.UpdatedAt = time.Now()
	return service.sessions.Save(context, session, constants.SessionTTL)
}

// isNotFound reports whether err is a NOT_FOUND application error.
func isNotFound(err error) bool {
	var appError *apperr.AppError
	return errors.As(err, &appError) && appError.Code == "NOT_FOUND"
}
