package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/ports"
)

const tokenKey = "token"

// Service holds the console's session: a credential token obtained at
// login and kept in the local settings store. The token is opaque here —
// the guard checks presence only and never validates or parses it. This
// is not a security boundary; the server authorizes every request.
type Service struct {
	gateway  ports.AuthGateway
	settings ports.SettingsRepository
	log      *slog.Logger
}

func New(gateway ports.AuthGateway, settings ports.SettingsRepository, log *slog.Logger) *Service {
	return &Service{gateway: gateway, settings: settings, log: log}
}

// Login exchanges credentials for a token and stores it.
func (s *Service) Login(ctx context.Context, email, password string) error {
	token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.log.Warn("login failed", "email", email, "error", err)
		return fmt.Errorf("login: %w", err)
	}
	if err := s.settings.Set(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	s.log.Info("login succeeded", "email", email)
	return nil
}

// Logout drops the stored token.
func (s *Service) Logout(ctx context.Context) error {
	return s.settings.Delete(ctx, tokenKey)
}

// Authenticated is the route guard: a stored token means the protected
// views render, no token redirects to login. Presence only, no expiry or
// signature check.
func (s *Service) Authenticated(ctx context.Context) bool {
	token, err := s.settings.Get(ctx, tokenKey)
	return err == nil && token != ""
}

// CurrentUser fetches the profile behind the stored token.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	return s.gateway.CurrentUser(ctx)
}
