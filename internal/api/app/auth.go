package app

import (
	"context"
	"errors"

	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/usecase/auth"
)

// ErrNotAuthenticated tells the webview to route to the login view. The
// check behind it is token presence only; real authorization happens on
// the server for every request.
var ErrNotAuthenticated = errors.New("not authenticated")

// guard is the route gate shared by the protected API surfaces.
type guard struct{ auth *auth.Service }

func (g guard) check() error {
	if !g.auth.Authenticated(context.Background()) {
		return ErrNotAuthenticated
	}
	return nil
}

type AuthAPI struct {
	svc *auth.Service
}

func NewAuthAPI(svc *auth.Service) *AuthAPI { return &AuthAPI{svc: svc} }

func (a *AuthAPI) Login(email, password string) (bool, error) {
	ctx := context.Background()
	if err := a.svc.Login(ctx, email, password); err != nil {
		return false, err
	}
	return true, nil
}

func (a *AuthAPI) Logout() (bool, error) {
	ctx := context.Background()
	if err := a.svc.Logout(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (a *AuthAPI) Authenticated() bool {
	return a.svc.Authenticated(context.Background())
}

func (a *AuthAPI) CurrentUser() (*domain.User, error) {
	ctx := context.Background()
	return a.svc.CurrentUser(ctx)
}
