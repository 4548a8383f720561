package editor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/DmitruNS/kuc/internal/domain"
)

// ============================================
// Mock of the remote catalog for the tests
// ============================================
type mockCatalog struct {
	createCalls int
	updateCalls int
	lastSaved   *domain.Property
	nextID      int64
	getResult   *domain.Property
	failGet     bool
	failSave    bool
}

func (m *mockCatalog) List(ctx context.Context, f domain.ListingFilter, language string) ([]*domain.Property, error) {
	return nil, nil
}

func (m *mockCatalog) Get(ctx context.Context, id int64) (*domain.Property, error) {
	if m.failGet {
		return nil, errors.New("server unreachable")
	}
	return m.getResult, nil
}

func (m *mockCatalog) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	m.createCalls++
	if m.failSave {
		return nil, errors.New("save rejected")
	}
	saved := *p
	saved.Details = append([]domain.PropertyDetail(nil), p.Details...)
	saved.ID = m.nextID
	m.lastSaved = &saved
	return &saved, nil
}

func (m *mockCatalog) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	m.updateCalls++
	if m.failSave {
		return nil, errors.New("save rejected")
	}
	saved := *p
	saved.Details = append([]domain.PropertyDetail(nil), p.Details...)
	m.lastSaved = &saved
	return &saved, nil
}

func (m *mockCatalog) SetStatus(ctx context.Context, id int64, isActive bool) error { return nil }
func (m *mockCatalog) ExportAll(ctx context.Context) ([]byte, error)                { return nil, nil }
func (m *mockCatalog) ExportSelected(ctx context.Context, ids []int64) ([]byte, error) {
	return nil, nil
}

var testLanguages = []string{"sr", "en", "ru"}

func newTestService(catalog *mockCatalog) *Service {
	return New(catalog, testLanguages, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFreshDraftHasOneDetailPerLanguage(t *testing.T) {
	s := newTestService(&mockCatalog{})
	draft := s.Draft()

	if draft.PropertyType != domain.Apartment || draft.DealType != domain.Sale || draft.Status != domain.Ready {
		t.Errorf("unexpected default classification: %s/%s/%s", draft.PropertyType, draft.DealType, draft.Status)
	}
	if !draft.IsActive {
		t.Error("fresh draft should be active")
	}
	if len(draft.Details) != len(testLanguages) {
		t.Fatalf("expected %d details, got %d", len(testLanguages), len(draft.Details))
	}
	for i, lang := range testLanguages {
		if draft.Details[i].Language != lang {
			t.Errorf("detail %d: expected language %s, got %s", i, lang, draft.Details[i].Language)
		}
	}
}

func TestUpdateCommonFieldBroadcastsToAllLanguages(t *testing.T) {
	s := newTestService(&mockCatalog{})
	before := s.Draft()

	if err := s.UpdateCommonField("price", float64(100000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := s.Draft()
	for i := range after.Details {
		if after.Details[i].Price != 100000 {
			t.Errorf("detail %s: price not broadcast, got %v", after.Details[i].Language, after.Details[i].Price)
		}
		// nothing else may change
		want := before.Details[i]
		want.Price = 100000
		if !reflect.DeepEqual(after.Details[i], want) {
			t.Errorf("detail %s changed beyond price: %+v", after.Details[i].Language, after.Details[i])
		}
	}
}

func TestUpdateCommonFieldBoolAndInt(t *testing.T) {
	s := newTestService(&mockCatalog{})
	if err := s.UpdateCommonField("registered", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// webview numbers arrive as float64
	if err := s.UpdateCommonField("rooms", float64(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range s.Draft().Details {
		if !d.Registered || d.Rooms != 3 {
			t.Errorf("detail %s: registered=%t rooms=%d", d.Language, d.Registered, d.Rooms)
		}
	}
}

func TestUpdateCommonFieldUnknownField(t *testing.T) {
	s := newTestService(&mockCatalog{})
	err := s.UpdateCommonField("color", "blue")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestUpdateLocalizedFieldTouchesOnlyMatchingLanguage(t *testing.T) {
	s := newTestService(&mockCatalog{})
	before := s.Draft()

	if err := s.UpdateLocalizedField("en", "city", "Belgrade"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := s.Draft()
	for i := range after.Details {
		if after.Details[i].Language == "en" {
			if after.Details[i].City != "Belgrade" {
				t.Errorf("en detail not updated: %+v", after.Details[i])
			}
			continue
		}
		if !reflect.DeepEqual(after.Details[i], before.Details[i]) {
			t.Errorf("detail %s changed: %+v", after.Details[i].Language, after.Details[i])
		}
	}
}

func TestUpdateLocalizedFieldUnknownLanguageIsNoop(t *testing.T) {
	s := newTestService(&mockCatalog{})
	before := s.Draft()
	if err := s.UpdateLocalizedField("de", "city", "Berlin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(s.Draft().Details, before.Details) {
		t.Error("draft changed for unconfigured language")
	}
}

func TestSaveCreatesThenUpdates(t *testing.T) {
	catalog := &mockCatalog{nextID: 42}
	s := newTestService(catalog)
	ctx := context.Background()

	saved, err := s.Save(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 42 {
		t.Errorf("expected server id 42 captured, got %d", saved.ID)
	}
	if catalog.createCalls != 1 || catalog.updateCalls != 0 {
		t.Errorf("expected 1 create / 0 updates, got %d/%d", catalog.createCalls, catalog.updateCalls)
	}

	// the draft now carries the id, so the next save must be an update
	if _, err := s.Save(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.createCalls != 1 || catalog.updateCalls != 1 {
		t.Errorf("expected 1 create / 1 update, got %d/%d", catalog.createCalls, catalog.updateCalls)
	}
}

func TestSaveSendsAllDetailsWithBroadcastPrice(t *testing.T) {
	catalog := &mockCatalog{nextID: 7}
	s := newTestService(catalog)

	for _, lang := range testLanguages {
		if err := s.UpdateLocalizedField(lang, "city", "Belgrade"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := s.UpdateCommonField("price", float64(100000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Save(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.lastSaved == nil {
		t.Fatal("nothing saved")
	}
	if len(catalog.lastSaved.Details) != 3 {
		t.Fatalf("expected 3 details in body, got %d", len(catalog.lastSaved.Details))
	}
	for _, d := range catalog.lastSaved.Details {
		if d.City != "Belgrade" || d.Price != 100000 {
			t.Errorf("detail %s: city=%q price=%v", d.Language, d.City, d.Price)
		}
	}
}

func TestSaveFailureRetainsDraft(t *testing.T) {
	catalog := &mockCatalog{failSave: true}
	s := newTestService(catalog)
	if err := s.UpdateLocalizedField("en", "city", "Novi Sad"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Save(context.Background()); err == nil {
		t.Fatal("expected save error")
	}

	draft := s.Draft()
	if draft.ID != 0 {
		t.Errorf("failed create must not assign an id, got %d", draft.ID)
	}
	if got := draft.Details[1].City; got != "Novi Sad" {
		t.Errorf("draft lost edits after failed save: %q", got)
	}
}

func TestLoadReplacesDraftAndFillsMissingLanguages(t *testing.T) {
	catalog := &mockCatalog{getResult: &domain.Property{
		ID:           9,
		PropertyType: domain.House,
		DealType:     domain.Rent,
		Status:       domain.New,
		Details: []domain.PropertyDetail{
			{Language: "en", City: "Belgrade"},
		},
	}}
	s := newTestService(catalog)

	if err := s.Load(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	draft := s.Draft()
	if draft.ID != 9 || draft.PropertyType != domain.House {
		t.Errorf("draft not replaced: %+v", draft)
	}
	if len(draft.Details) != 3 {
		t.Fatalf("expected all configured languages initialized, got %d details", len(draft.Details))
	}
	if draft.Details[0].Language != "sr" || draft.Details[1].City != "Belgrade" {
		t.Errorf("details not normalized: %+v", draft.Details)
	}
}

func TestLoadFailureKeepsPriorDraft(t *testing.T) {
	catalog := &mockCatalog{failGet: true}
	s := newTestService(catalog)
	if err := s.UpdateLocalizedField("ru", "district", "Vracar"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Load(context.Background(), 5); err == nil {
		t.Fatal("expected load error")
	}
	if got := s.Draft().Details[2].District; got != "Vracar" {
		t.Errorf("prior draft lost after failed load: %q", got)
	}
}
