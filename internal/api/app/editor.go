package app

import (
	"context"

	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/usecase/attachments"
	"github.com/DmitruNS/kuc/internal/usecase/auth"
	"github.com/DmitruNS/kuc/internal/usecase/editor"
)

type EditorAPI struct {
	guard
	svc   *editor.Service
	files *attachments.Service
}

func NewEditorAPI(svc *editor.Service, files *attachments.Service, authSvc *auth.Service) *EditorAPI {
	return &EditorAPI{guard: guard{auth: authSvc}, svc: svc, files: files}
}

// NewDraft starts a fresh record in create mode and disables the file
// panel until the first save.
func (a *EditorAPI) NewDraft() (domain.Property, error) {
	if err := a.check(); err != nil {
		return domain.Property{}, err
	}
	a.svc.Reset()
	a.files.SetProperty(0)
	return a.svc.Draft(), nil
}

// Load opens an existing record in edit mode. On failure the previous
// draft stays in place.
func (a *EditorAPI) Load(id int64) (domain.Property, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return domain.Property{}, err
	}
	if err := a.svc.Load(ctx, id); err != nil {
		return domain.Property{}, err
	}
	draft := a.svc.Draft()
	a.files.SetProperty(draft.ID)
	return draft, nil
}

func (a *EditorAPI) Draft() (domain.Property, error) {
	if err := a.check(); err != nil {
		return domain.Property{}, err
	}
	return a.svc.Draft(), nil
}

func (a *EditorAPI) UpdateLocalizedField(language, field string, value any) (domain.Property, error) {
	if err := a.check(); err != nil {
		return domain.Property{}, err
	}
	if err := a.svc.UpdateLocalizedField(language, field, value); err != nil {
		return domain.Property{}, err
	}
	return a.svc.Draft(), nil
}

func (a *EditorAPI) UpdateCommonField(field string, value any) (domain.Property, error) {
	if err := a.check(); err != nil {
		return domain.Property{}, err
	}
	if err := a.svc.UpdateCommonField(field, value); err != nil {
		return domain.Property{}, err
	}
	return a.svc.Draft(), nil
}

type ClassificationRequest struct {
	PropertyType string `json:"property_type"`
	DealType     string `json:"deal_type"`
	Status       string `json:"status"`
	IsActive     bool   `json:"is_active"`
}

func (a *EditorAPI) SetClassification(req ClassificationRequest) (domain.Property, error) {
	if err := a.check(); err != nil {
		return domain.Property{}, err
	}
	a.svc.SetPropertyType(domain.PropertyType(req.PropertyType))
	a.svc.SetDealType(domain.DealType(req.DealType))
	a.svc.SetStatus(domain.PropertyStatus(req.Status))
	a.svc.SetActive(req.IsActive)
	return a.svc.Draft(), nil
}

func (a *EditorAPI) SetOwner(o *domain.PropertyOwner) (domain.Property, error) {
	if err := a.check(); err != nil {
		return domain.Property{}, err
	}
	a.svc.SetOwner(o)
	return a.svc.Draft(), nil
}

// Save persists the draft and, after a successful create, points the file
// panel at the new identifier so uploads activate without leaving the
// view.
func (a *EditorAPI) Save() (domain.Property, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return domain.Property{}, err
	}
	saved, err := a.svc.Save(ctx)
	if err != nil {
		return domain.Property{}, err
	}
	a.files.SetProperty(saved.ID)
	return saved, nil
}
