package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/DmitruNS/kuc/internal/adapters/exporter/sheet"
	"github.com/DmitruNS/kuc/internal/domain"
)

// Exporter writes listings to an Excel workbook with one sheet per
// property type, matching the layout the server-side export uses.
type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "xlsx" }

var sheets = []struct {
	typ  domain.PropertyType
	name string
}{
	{domain.House, "Houses"},
	{domain.Apartment, "Apartments"},
	{domain.Office, "Offices"},
}

func (e *Exporter) Export(language string, properties []*domain.Property) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for _, s := range sheets {
		index, err := f.NewSheet(s.name)
		if err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if first {
			f.SetActiveSheet(index)
			first = false
		}
		if err := writeRow(f, s.name, 1, sheet.Headers()); err != nil {
			return nil, err
		}
		row := 2
		for _, p := range properties {
			if p.PropertyType != s.typ {
				continue
			}
			if err := writeRow(f, s.name, row, sheet.Row(p, language)); err != nil {
				return nil, err
			}
			row++
		}
	}
	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheetName string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
