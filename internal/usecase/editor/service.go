package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/ports"
)

var ErrUnknownField = errors.New("unknown field")

// Service owns the in-memory draft of one property record. The draft
// always carries exactly one detail row per configured language; the
// shared numeric and boolean attributes are stored on every row and kept
// identical across rows, matching the wire contract of the listing API.
type Service struct {
	catalog   ports.PropertyCatalog
	log       *slog.Logger
	languages []string
	draft     domain.Property
}

func New(catalog ports.PropertyCatalog, languages []string, log *slog.Logger) *Service {
	s := &Service{catalog: catalog, log: log, languages: languages}
	s.Reset()
	return s
}

// Reset discards the draft and starts a fresh one with default
// classification and one empty detail per configured language.
func (s *Service) Reset() {
	s.draft = domain.Property{
		PropertyType: domain.Apartment,
		DealType:     domain.Sale,
		Status:       domain.Ready,
		IsActive:     true,
	}
	s.normalize(&s.draft)
}

// Draft returns a copy of the current draft.
func (s *Service) Draft() domain.Property {
	return clone(s.draft)
}

// Load fetches an existing record and replaces the draft wholesale. On
// failure the prior draft stays in place and the error is returned for
// the view to display.
func (s *Service) Load(ctx context.Context, id int64) error {
	p, err := s.catalog.Get(ctx, id)
	if err != nil {
		s.log.Error("load property failed", "id", id, "error", err)
		return fmt.Errorf("load property: %w", err)
	}
	s.normalize(p)
	s.draft = *p
	return nil
}

// Save persists the full draft: POST while the record has no identifier,
// PUT afterwards. A successful create captures the server-assigned id
// into the draft so the file panel and subsequent edits activate. On
// failure the draft is retained for a manual retry.
func (s *Service) Save(ctx context.Context) (domain.Property, error) {
	var (
		saved *domain.Property
		err   error
	)
	if s.draft.ID == 0 {
		saved, err = s.catalog.Create(ctx, &s.draft)
	} else {
		saved, err = s.catalog.Update(ctx, &s.draft)
	}
	if err != nil {
		s.log.Error("save property failed", "id", s.draft.ID, "error", err)
		return domain.Property{}, fmt.Errorf("save property: %w", err)
	}
	s.normalize(saved)
	s.draft = *saved
	s.log.Info("property saved", "id", s.draft.ID)
	return clone(s.draft), nil
}

// UpdateLocalizedField sets a language-dependent text field on the
// matching language row only. A language that is not part of the draft is
// a no-op.
func (s *Service) UpdateLocalizedField(language, field string, value any) error {
	d := s.detail(language)
	if d == nil {
		return nil
	}
	v, err := asString(value)
	if err != nil {
		return fmt.Errorf("field %s: %w", field, err)
	}
	switch field {
	case "city":
		d.City = v
	case "district":
		d.District = v
	case "address":
		d.Address = v
	case "heating_type":
		d.HeatingType = v
	case "road_access":
		d.RoadAccess = v
	case "description":
		d.Description = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// UpdateCommonField broadcasts a shared attribute to every language row.
// These values are not language-dependent but the data model stores them
// per language row, so all rows receive the same value.
func (s *Service) UpdateCommonField(field string, value any) error {
	apply, err := commonSetter(field, value)
	if err != nil {
		return err
	}
	for i := range s.draft.Details {
		apply(&s.draft.Details[i])
	}
	return nil
}

func (s *Service) SetPropertyType(t domain.PropertyType) { s.draft.PropertyType = t }
func (s *Service) SetDealType(t domain.DealType)         { s.draft.DealType = t }
func (s *Service) SetStatus(st domain.PropertyStatus)    { s.draft.Status = st }
func (s *Service) SetActive(active bool)                 { s.draft.IsActive = active }

func (s *Service) SetCodes(agentCode, propertyCode string) {
	s.draft.AgentCode = agentCode
	s.draft.PropertyCode = propertyCode
}

func (s *Service) SetOwner(o *domain.PropertyOwner) { s.draft.Owner = o }

func (s *Service) detail(language string) *domain.PropertyDetail {
	for i := range s.draft.Details {
		if s.draft.Details[i].Language == language {
			return &s.draft.Details[i]
		}
	}
	return nil
}

// normalize makes the detail rows match the configured languages: one row
// per language in configured order, empty rows created where the record
// has none, rows in other languages preserved after them.
func (s *Service) normalize(p *domain.Property) {
	byLang := map[string]domain.PropertyDetail{}
	var extra []domain.PropertyDetail
	for _, d := range p.Details {
		if _, known := byLang[d.Language]; !known && s.configured(d.Language) {
			byLang[d.Language] = d
			continue
		}
		extra = append(extra, d)
	}
	details := make([]domain.PropertyDetail, 0, len(s.languages)+len(extra))
	for _, lang := range s.languages {
		if d, ok := byLang[lang]; ok {
			details = append(details, d)
		} else {
			details = append(details, domain.PropertyDetail{Language: lang, PropertyID: p.ID})
		}
	}
	p.Details = append(details, extra...)
}

func (s *Service) configured(language string) bool {
	for _, l := range s.languages {
		if l == language {
			return true
		}
	}
	return false
}

func clone(p domain.Property) domain.Property {
	out := p
	out.Details = append([]domain.PropertyDetail(nil), p.Details...)
	out.Documents = append([]domain.Attachment(nil), p.Documents...)
	if p.Owner != nil {
		owner := *p.Owner
		out.Owner = &owner
	}
	return out
}
