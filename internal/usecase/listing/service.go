package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/DmitruNS/kuc/internal/adapters/exporter/registry"
	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/ports"
)

var (
	ErrNothingSelected   = errors.New("no properties selected")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// Service backs the listing and dashboard views: the fetched collection,
// the active filter and language, and the selection set for bulk export.
// There is no cross-view cache; every filter or language change refetches
// from the API.
type Service struct {
	catalog   ports.PropertyCatalog
	presets   ports.FilterPresetRepository
	exporters *registry.Registry
	log       *slog.Logger

	language string
	filter   domain.ListingFilter
	items    []*domain.Property
	selected map[int64]struct{}
}

func New(catalog ports.PropertyCatalog, presets ports.FilterPresetRepository, exporters *registry.Registry, language string, log *slog.Logger) *Service {
	return &Service{
		catalog:   catalog,
		presets:   presets,
		exporters: exporters,
		log:       log,
		language:  language,
		selected:  map[int64]struct{}{},
	}
}

// Refresh refetches the list with the current filter and language.
func (s *Service) Refresh(ctx context.Context) error {
	items, err := s.catalog.List(ctx, s.filter, s.language)
	if err != nil {
		s.log.Error("list properties failed", "error", err)
		return fmt.Errorf("load properties: %w", err)
	}
	s.items = items
	return nil
}

// SetFilter replaces the filter and refetches.
func (s *Service) SetFilter(ctx context.Context, f domain.ListingFilter) error {
	s.filter = f
	return s.Refresh(ctx)
}

// SetLanguage switches the display language and refetches.
func (s *Service) SetLanguage(ctx context.Context, language string) error {
	s.language = language
	return s.Refresh(ctx)
}

func (s *Service) Filter() domain.ListingFilter { return s.filter }
func (s *Service) Language() string             { return s.language }

// Items returns the last fetched collection.
func (s *Service) Items() []*domain.Property {
	return append([]*domain.Property(nil), s.items...)
}

// ToggleStatus flips a record's active flag on the server, then refetches
// the whole list. No optimistic update, no partial patch.
func (s *Service) ToggleStatus(ctx context.Context, id int64, isActive bool) error {
	if err := s.catalog.SetStatus(ctx, id, isActive); err != nil {
		s.log.Error("toggle status failed", "id", id, "error", err)
		return fmt.Errorf("update status: %w", err)
	}
	return s.Refresh(ctx)
}

// Select adds a record to the bulk-export selection.
func (s *Service) Select(id int64) { s.selected[id] = struct{}{} }

// Deselect removes a record from the selection.
func (s *Service) Deselect(id int64) { delete(s.selected, id) }

// ClearSelection empties the selection. The selection survives a
// completed export; clearing is always an explicit user action.
func (s *Service) ClearSelection() { s.selected = map[int64]struct{}{} }

// Selected returns the selected ids in ascending order.
func (s *Service) Selected() []int64 {
	out := make([]int64, 0, len(s.selected))
	for id := range s.selected {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ExportAll downloads the server's export of the whole list.
func (s *Service) ExportAll(ctx context.Context) ([]byte, error) {
	blob, err := s.catalog.ExportAll(ctx)
	if err != nil {
		s.log.Error("export failed", "error", err)
		return nil, fmt.Errorf("export properties: %w", err)
	}
	return blob, nil
}

// ExportSelected downloads the server's export of the selected subset.
func (s *Service) ExportSelected(ctx context.Context) ([]byte, error) {
	ids := s.Selected()
	if len(ids) == 0 {
		return nil, ErrNothingSelected
	}
	blob, err := s.catalog.ExportSelected(ctx, ids)
	if err != nil {
		s.log.Error("export failed", "selected", len(ids), "error", err)
		return nil, fmt.Errorf("export properties: %w", err)
	}
	return blob, nil
}

// ExportLocal writes the currently loaded rows with one of the offline
// exporters, without touching the server.
func (s *Service) ExportLocal(format string) ([]byte, error) {
	exp, ok := s.exporters.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return exp.Export(s.language, s.items)
}

// SavePreset stores the current filter under a name for later reuse.
func (s *Service) SavePreset(ctx context.Context, name string) (*ports.FilterPreset, error) {
	return s.presets.Save(ctx, name, s.filter)
}

// Presets lists the stored filter presets.
func (s *Service) Presets(ctx context.Context) ([]*ports.FilterPreset, error) {
	return s.presets.List(ctx)
}

// ApplyPreset activates a stored preset and refetches.
func (s *Service) ApplyPreset(ctx context.Context, id int64) error {
	list, err := s.presets.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range list {
		if p.ID == id {
			return s.SetFilter(ctx, p.Filter)
		}
	}
	return fmt.Errorf("preset %d not found", id)
}

// DeletePreset removes a stored preset.
func (s *Service) DeletePreset(ctx context.Context, id int64) error {
	return s.presets.Delete(ctx, id)
}
