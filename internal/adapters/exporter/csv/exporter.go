package csv

import (
	"bytes"
	"encoding/csv"

	"github.com/DmitruNS/kuc/internal/adapters/exporter/sheet"
	"github.com/DmitruNS/kuc/internal/domain"
)

type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "csv" }

func (e *Exporter) Export(language string, properties []*domain.Property) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(sheet.Headers()); err != nil {
		return nil, err
	}
	for _, p := range properties {
		if err := w.Write(sheet.Row(p, language)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
