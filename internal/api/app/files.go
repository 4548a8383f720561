package app

import (
	"context"
	"encoding/base64"

	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/usecase/attachments"
	"github.com/DmitruNS/kuc/internal/usecase/auth"
)

type FilesAPI struct {
	guard
	svc *attachments.Service
}

func NewFilesAPI(svc *attachments.Service, authSvc *auth.Service) *FilesAPI {
	return &FilesAPI{guard: guard{auth: authSvc}, svc: svc}
}

func (a *FilesAPI) Refresh() ([]*domain.Attachment, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return nil, err
	}
	if err := a.svc.Refresh(ctx); err != nil {
		return nil, err
	}
	return a.svc.Files(), nil
}

type SelectFileRequest struct {
	Filename string `json:"filename"`
	FileType string `json:"file_type"`
	// ContentB64 is the file bytes, base64-encoded for the webview
	// boundary.
	ContentB64 string `json:"content_b64"`
}

func (a *FilesAPI) Select(req SelectFileRequest) (bool, error) {
	if err := a.check(); err != nil {
		return false, err
	}
	content, err := base64.StdEncoding.DecodeString(req.ContentB64)
	if err != nil {
		return false, err
	}
	if err := a.svc.Select(req.Filename, domain.FileType(req.FileType), content); err != nil {
		return false, err
	}
	return true, nil
}

func (a *FilesAPI) ClearSelection() {
	a.svc.ClearSelection()
}

func (a *FilesAPI) Upload(isPublic bool) (*domain.Attachment, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return nil, err
	}
	return a.svc.Upload(ctx, isPublic)
}

func (a *FilesAPI) SetVisibility(fileID int64, isPublic bool) (bool, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return false, err
	}
	if err := a.svc.SetVisibility(ctx, fileID, isPublic); err != nil {
		return false, err
	}
	return true, nil
}

func (a *FilesAPI) Delete(fileID int64) (bool, error) {
	ctx := context.Background()
	if err := a.check(); err != nil {
		return false, err
	}
	if err := a.svc.Delete(ctx, fileID); err != nil {
		return false, err
	}
	return true, nil
}

func (a *FilesAPI) Files() []*domain.Attachment { return a.svc.Files() }

func (a *FilesAPI) Enabled() bool { return a.svc.Enabled() }

// AcceptedExtensions gives the webview the picker whitelist for a file
// category.
func (a *FilesAPI) AcceptedExtensions(fileType string) []string {
	return attachments.AcceptedExtensions(domain.FileType(fileType))
}
