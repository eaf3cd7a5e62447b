// Package auth implements the login/signup flows. Token handling is a thin
// pass-through: the server issues and verifies; the client only stores the
// bearer token and attaches it to protected calls.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/destination-europe/explorer-client/internal/ports/out/authgw"
	"github.com/destination-europe/explorer-client/internal/ports/out/credstore"
	"github.com/destination-europe/explorer-client/internal/ports/out/listrepo"
)

type Service struct {
	gw    authgw.Client
	creds credstore.Store
}

func NewService(gw authgw.Client, creds credstore.Store) *Service {
	return &Service{gw: gw, creds: creds}
}

// Login exchanges credentials for a bearer token and persists it. Empty
// fields fail locally; an unverified account surfaces its own message so the
// user knows to check their inbox.
func (s *Service) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return &Error{Code: "VALIDATION_ERROR", Message: "email and password are required"}
	}
	token, err := s.gw.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, authgw.ErrNotVerified):
			return &Error{Code: "NOT_VERIFIED", Message: "account not verified, check your email for the verification link"}
		case errors.Is(err, authgw.ErrInvalidCredentials):
			return &Error{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"}
		default:
			return &Error{Code: "NETWORK_ERROR", Message: "login failed, please try again"}
		}
	}
	if err := s.creds.Put(ctx, token); err != nil {
		return &Error{Code: "STORAGE_ERROR", Message: "could not store credential"}
	}
	return nil
}

// Logout clears the stored credential. It is the only client-side path that
// does so; expiry is detected server-side.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return &Error{Code: "STORAGE_ERROR", Message: "could not clear credential"}
	}
	return nil
}

// Signup registers a new account. Verification happens out of band via email.
func (s *Service) Signup(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return &Error{Code: "VALIDATION_ERROR", Message: "all fields are required"}
	}
	if err := s.gw.Signup(ctx, strings.TrimSpace(name), strings.TrimSpace(email), password); err != nil {
		switch {
		case errors.Is(err, authgw.ErrAlreadyExists):
			return &Error{Code: "ALREADY_EXISTS", Message: "an account with this email already exists"}
		case errors.Is(err, authgw.ErrNotVerified):
			return &Error{Code: "NOT_VERIFIED", Message: "account exists but is not verified, check your email"}
		default:
			return &Error{Code: "NETWORK_ERROR", Message: "signup failed, please try again"}
		}
	}
	return nil
}

func (s *Service) ResendVerification(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &Error{Code: "VALIDATION_ERROR", Message: "email is required"}
	}
	if err := s.gw.ResendVerification(ctx, email); err != nil {
		return &Error{Code: "NETWORK_ERROR", Message: "could not resend verification email"}
	}
	return nil
}

// Credential returns the stored bearer token, or empty when logged out. A
// missing credential is not an error here: protected calls go out without one
// and the server's rejection is surfaced instead.
func (s *Service) Credential(ctx context.Context) listrepo.Credential {
	token, err := s.creds.Get(ctx)
	if err != nil {
		return ""
	}
	return listrepo.Credential(token)
}

// Nickname extracts the display nickname claim from the stored token without
// verifying it. Verification is the server's job; this is display-only.
// Returns empty when no token is stored or the claim is absent.
func (s *Service) Nickname(ctx context.Context) string {
	token, err := s.creds.Get(ctx)
	if err != nil {
		return ""
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if nick, ok := claims["nickname"].(string); ok {
		return nick
	}
	if name, ok := claims["name"].(string); ok {
		return name
	}
	return ""
}
