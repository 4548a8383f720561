package ports

import (
	"context"

	"github.com/DmitruNS/kuc/internal/domain"
)

type UploadRequest struct {
	Filename string
	FileType domain.FileType
	IsPublic bool
	Content  []byte
}

// FileTransfer moves attachments between the console and the remote API.
// Every call is scoped to an owning property id; attachments cannot exist
// without one.
type FileTransfer interface {
	ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Attachment, error)
	Upload(ctx context.Context, propertyID int64, req UploadRequest) (*domain.Attachment, error)
	SetVisibility(ctx context.Context, propertyID, fileID int64, isPublic bool) error
	Delete(ctx context.Context, propertyID, fileID int64) error
}
