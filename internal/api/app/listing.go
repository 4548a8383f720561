package app

import (
	"context"

	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/ports"
	"github.com/DmitruNS/kuc/internal/usecase/auth"
	"github.com/DmitruNS/kuc/internal/usecase/listing"
)

type ListingAPI struct {
	guard
	svc *listing.Service
}

func NewListingAPI(svc *listing.Service, authSvc *auth.Service) *ListingAPI {
	return &ListingAPI{guard: guard{auth: authSvc}, svc: svc}
}

func (a *ListingAPI) Refresh() ([]*domain.Property, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return nil, err
	}
	if err := a.svc.Refresh(ctx); err != nil {
		return nil, err
	}
	return a.svc.Items(), nil
}

func (a *ListingAPI) SetFilter(f domain.ListingFilter) ([]*domain.Property, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return nil, err
	}
	if err := a.svc.SetFilter(ctx, f); err != nil {
		return nil, err
	}
	return a.svc.Items(), nil
}

func (a *ListingAPI) SetLanguage(language string) ([]*domain.Property, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return nil, err
	}
	if err := a.svc.SetLanguage(ctx, language); err != nil {
		return nil, err
	}
	return a.svc.Items(), nil
}

func (a *ListingAPI) ToggleStatus(id int64, isActive bool) ([]*domain.Property, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return nil, err
	}
	if err := a.svc.ToggleStatus(ctx, id, isActive); err != nil {
		return nil, err
	}
	return a.svc.Items(), nil
}

func (a *ListingAPI) Select(id int64) []int64 {
	a.svc.Select(id)
	return a.svc.Selected()
}

func (a *ListingAPI) Deselect(id int64) []int64 {
	a.svc.Deselect(id)
	return a.svc.Selected()
}

func (a *ListingAPI) ClearSelection() {
	a.svc.ClearSelection()
}

func (a *ListingAPI) Selected() []int64 { return a.svc.Selected() }

func (a *ListingAPI) SavePreset(name string) (*ports.FilterPreset, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return nil, err
	}
	return a.svc.SavePreset(ctx, name)
}

func (a *ListingAPI) Presets() ([]*ports.FilterPreset, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return nil, err
	}
	return a.svc.Presets(ctx)
}

func (a *ListingAPI) ApplyPreset(id int64) ([]*domain.Property, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return nil, err
	}
	if err := a.svc.ApplyPreset(ctx, id); err != nil {
		return nil, err
	}
	return a.svc.Items(), nil
}

func (a *ListingAPI) DeletePreset(id int64) (bool, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return false, err
	}
	if err := a.svc.DeletePreset(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
