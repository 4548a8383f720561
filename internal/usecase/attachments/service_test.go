package attachments

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/ports"
)

// ============================================
// Mock of the file transfer port for the tests
// ============================================
type mockTransfer struct {
	listCalls       int
	uploadCalls     int
	visibilityCalls int
	deleteCalls     int

	listResult []*domain.Attachment
	nextID     int64
	failAll    bool

	// entered/release make an upload block so the single-flight rule can
	// be observed from another goroutine
	entered chan struct{}
	release chan struct{}
}

func (m *mockTransfer) ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Attachment, error) {
	m.listCalls++
	if m.failAll {
		return nil, errors.New("server unreachable")
	}
	return m.listResult, nil
}

func (m *mockTransfer) Upload(ctx context.Context, propertyID int64, req ports.UploadRequest) (*domain.Attachment, error) {
	m.uploadCalls++
	if m.entered != nil {
		m.entered <- struct{}{}
		<-m.release
	}
	if m.failAll {
		return nil, errors.New("upload rejected")
	}
	m.nextID++
	return &domain.Attachment{
		ID:         m.nextID,
		PropertyID: propertyID,
		FileType:   req.FileType,
		FilePath:   "uploads/" + req.Filename,
		IsPublic:   req.IsPublic,
	}, nil
}

func (m *mockTransfer) SetVisibility(ctx context.Context, propertyID, fileID int64, isPublic bool) error {
	m.visibilityCalls++
	if m.failAll {
		return errors.New("server unreachable")
	}
	return nil
}

func (m *mockTransfer) Delete(ctx context.Context, propertyID, fileID int64) error {
	m.deleteCalls++
	if m.failAll {
		return errors.New("server unreachable")
	}
	return nil
}

func newTestService(transfer *mockTransfer) *Service {
	return New(transfer, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSelectRejectsOversizedFile(t *testing.T) {
	transfer := &mockTransfer{}
	s := newTestService(transfer)
	s.SetProperty(1)

	big := make([]byte, MaxUploadSize+1)
	if err := s.Select("huge.mp4", domain.FileVideo, big); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if s.HasSelection() {
		t.Error("oversized selection must be cleared")
	}
	if _, err := s.Upload(context.Background(), true); !errors.Is(err, ErrNoSelection) {
		t.Errorf("expected ErrNoSelection, got %v", err)
	}
	if transfer.uploadCalls != 0 {
		t.Errorf("no upload call may be issued, got %d", transfer.uploadCalls)
	}
}

func TestSelectAcceptsFileAtLimit(t *testing.T) {
	s := newTestService(&mockTransfer{})
	s.SetProperty(1)
	if err := s.Select("ok.bin", domain.FileDocument, make([]byte, MaxUploadSize)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.HasSelection() {
		t.Error("selection should be staged")
	}
}

func TestUploadRequiresPropertyID(t *testing.T) {
	transfer := &mockTransfer{}
	s := newTestService(transfer)

	if err := s.Select("a.jpg", domain.FileImage, []byte("img")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Upload(context.Background(), true); !errors.Is(err, ErrNoProperty) {
		t.Fatalf("expected ErrNoProperty, got %v", err)
	}
	if transfer.uploadCalls != 0 {
		t.Errorf("no upload call may be issued without an id, got %d", transfer.uploadCalls)
	}
	if s.Enabled() {
		t.Error("panel must be disabled without an id")
	}
}

func TestUploadAppendsAndClearsSelection(t *testing.T) {
	transfer := &mockTransfer{}
	s := newTestService(transfer)
	s.SetProperty(42)

	if err := s.Select("plan.pdf", domain.FileDocument, []byte("pdf")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	att, err := s.Upload(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if att.PropertyID != 42 || att.FileType != domain.FileDocument || att.IsPublic {
		t.Errorf("unexpected attachment: %+v", att)
	}
	if s.HasSelection() {
		t.Error("selection must be cleared after a successful upload")
	}
	files := s.Files()
	if len(files) != 1 || files[0].ID != att.ID {
		t.Errorf("attachment not appended to local list: %+v", files)
	}
}

func TestUploadFailureKeepsList(t *testing.T) {
	transfer := &mockTransfer{failAll: true}
	s := newTestService(transfer)
	s.SetProperty(1)
	if err := s.Select("a.jpg", domain.FileImage, []byte("img")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Upload(context.Background(), true); err == nil {
		t.Fatal("expected upload error")
	}
	if len(s.Files()) != 0 {
		t.Error("failed upload must not touch the local list")
	}
}

func TestSecondUploadWhileBusy(t *testing.T) {
	transfer := &mockTransfer{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := newTestService(transfer)
	s.SetProperty(1)
	if err := s.Select("a.jpg", domain.FileImage, []byte("img")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := s.Upload(context.Background(), true); err != nil {
			t.Errorf("first upload failed: %v", err)
		}
	}()

	<-transfer.entered
	if _, err := s.Upload(context.Background(), true); !errors.Is(err, ErrUploadBusy) {
		t.Errorf("expected ErrUploadBusy, got %v", err)
	}
	close(transfer.release)
	<-done
}

func TestRefreshWithoutIDIssuesNoCall(t *testing.T) {
	transfer := &mockTransfer{}
	s := newTestService(transfer)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transfer.listCalls != 0 {
		t.Errorf("no fetch may happen without an id, got %d", transfer.listCalls)
	}
}

func TestRefreshLoadsList(t *testing.T) {
	transfer := &mockTransfer{listResult: []*domain.Attachment{
		{ID: 1, FileType: domain.FileImage, FilePath: "uploads/a.jpg", IsPublic: true},
	}}
	s := newTestService(transfer)
	s.SetProperty(3)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Files()) != 1 {
		t.Errorf("expected 1 file, got %d", len(s.Files()))
	}
}

func TestSetVisibilityPatchesAfterConfirmOnly(t *testing.T) {
	transfer := &mockTransfer{listResult: []*domain.Attachment{{ID: 5, IsPublic: true}}}
	s := newTestService(transfer)
	s.SetProperty(3)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transfer.failAll = true
	if err := s.SetVisibility(context.Background(), 5, false); err == nil {
		t.Fatal("expected error")
	}
	if !s.Files()[0].IsPublic {
		t.Error("local entry patched before server confirmation")
	}

	transfer.failAll = false
	if err := s.SetVisibility(context.Background(), 5, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Files()[0].IsPublic {
		t.Error("local entry not patched after confirmation")
	}
}

func TestDeleteRemovesAfterConfirmOnly(t *testing.T) {
	transfer := &mockTransfer{listResult: []*domain.Attachment{{ID: 5}, {ID: 6}}}
	s := newTestService(transfer)
	s.SetProperty(3)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transfer.failAll = true
	if err := s.Delete(context.Background(), 5); err == nil {
		t.Fatal("expected error")
	}
	if len(s.Files()) != 2 {
		t.Error("entry removed before server confirmation")
	}

	transfer.failAll = false
	if err := s.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	files := s.Files()
	if len(files) != 1 || files[0].ID != 6 {
		t.Errorf("unexpected list after delete: %+v", files)
	}
}
