package attachments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/ports"
)

// MaxUploadSize is the local upload limit. Larger files are rejected
// before any network call.
const MaxUploadSize = 100 * 1024 * 1024

var (
	ErrNoProperty   = errors.New("property has no identifier yet")
	ErrNoSelection  = errors.New("no file selected")
	ErrFileTooLarge = fmt.Errorf("file size exceeds %d MiB limit", MaxUploadSize/(1024*1024))
	ErrUploadBusy   = errors.New("an upload is already in progress")
)

type selection struct {
	filename string
	fileType domain.FileType
	content  []byte
}

// Service is the file panel behind the record editor. It is inert until
// the owning record has a server-assigned identifier; one upload runs at
// a time, and the local list is patched only after the server confirms a
// mutation.
type Service struct {
	files ports.FileTransfer
	log   *slog.Logger

	mu         sync.Mutex
	propertyID int64
	list       []*domain.Attachment
	selected   *selection
	uploading  bool
}

func New(files ports.FileTransfer, log *slog.Logger) *Service {
	return &Service{files: files, log: log}
}

// SetProperty points the panel at a record and clears panel state. A zero
// id puts the panel in its disabled state.
func (s *Service) SetProperty(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.propertyID = id
	s.list = nil
	s.selected = nil
}

// Refresh loads the record's attachments. Without an identifier there is
// nothing to fetch and the list stays empty. A fetch failure also leaves
// the list empty; the error is the view's to display.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	id := s.propertyID
	s.mu.Unlock()
	if id <= 0 {
		return nil
	}
	list, err := s.files.ListByProperty(ctx, id)
	if err != nil {
		s.log.Error("list attachments failed", "property_id", id, "error", err)
		return fmt.Errorf("load files: %w", err)
	}
	s.mu.Lock()
	s.list = list
	s.mu.Unlock()
	return nil
}

// Select stages a file for upload. Files over MaxUploadSize are rejected
// and the selection is cleared. Only the category restricts content; no
// MIME inspection happens client-side.
func (s *Service) Select(filename string, fileType domain.FileType, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int64(len(content)) > MaxUploadSize {
		s.selected = nil
		return ErrFileTooLarge
	}
	s.selected = &selection{filename: filename, fileType: fileType, content: content}
	return nil
}

// ClearSelection drops the staged file.
func (s *Service) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Upload sends the staged file. It requires a record identifier, and only
// one upload may be in flight; there is no queue. On success the server's
// attachment joins the local list and the selection is cleared.
func (s *Service) Upload(ctx context.Context, isPublic bool) (*domain.Attachment, error) {
	s.mu.Lock()
	if s.propertyID <= 0 {
		s.mu.Unlock()
		return nil, ErrNoProperty
	}
	if s.selected == nil {
		s.mu.Unlock()
		return nil, ErrNoSelection
	}
	if s.uploading {
		s.mu.Unlock()
		return nil, ErrUploadBusy
	}
	s.uploading = true
	id := s.propertyID
	sel := s.selected
	s.mu.Unlock()

	att, err := s.files.Upload(ctx, id, ports.UploadRequest{
		Filename: sel.filename,
		FileType: sel.fileType,
		IsPublic: isPublic,
		Content:  sel.content,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploading = false
	if err != nil {
		s.log.Error("upload failed", "property_id", id, "file", sel.filename, "error", err)
		return nil, err
	}
	s.list = append(s.list, att)
	s.selected = nil
	s.log.Info("file uploaded", "property_id", id, "file_id", att.ID, "type", att.FileType)
	return att, nil
}

// SetVisibility flips a file between public and private. The local entry
// is patched only after the server confirms.
func (s *Service) SetVisibility(ctx context.Context, fileID int64, isPublic bool) error {
	s.mu.Lock()
	id := s.propertyID
	s.mu.Unlock()
	if id <= 0 {
		return ErrNoProperty
	}
	if err := s.files.SetVisibility(ctx, id, fileID, isPublic); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.list {
		if f.ID == fileID {
			f.IsPublic = isPublic
		}
	}
	return nil
}

// Delete removes a file, dropping it from the local list only after the
// server confirms the deletion.
func (s *Service) Delete(ctx context.Context, fileID int64) error {
	s.mu.Lock()
	id := s.propertyID
	s.mu.Unlock()
	if id <= 0 {
		return ErrNoProperty
	}
	if err := s.files.Delete(ctx, id, fileID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.list[:0]
	for _, f := range s.list {
		if f.ID != fileID {
			kept = append(kept, f)
		}
	}
	s.list = kept
	return nil
}

// Files returns the current local list.
func (s *Service) Files() []*domain.Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Attachment(nil), s.list...)
}

// HasSelection reports whether a file is staged for upload.
func (s *Service) HasSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected != nil
}

// Enabled reports whether the panel can act, i.e. the owning record has
// been saved at least once.
func (s *Service) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.propertyID > 0
}

// AcceptedExtensions returns the file-picker extension whitelist for a
// category. This narrows the picker only; the server validates content.
func AcceptedExtensions(t domain.FileType) []string {
	switch t {
	case domain.FileImage:
		return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	case domain.FileVideo:
		return []string{".mp4", ".mov", ".webm", ".avi"}
	case domain.FileDocument:
		return []string{".pdf", ".doc", ".docx", ".txt"}
	default:
		return nil
	}
}
