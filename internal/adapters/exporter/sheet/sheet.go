package sheet

import (
	"strconv"
	"time"

	"github.com/DmitruNS/kuc/internal/domain"
)

// Headers is the column set shared by the tabular exporters. It mirrors
// the spreadsheet the server-side export produces so offline exports stay
// interchangeable with downloaded ones.
func Headers() []string {
	return []string{
		"Agent Code",
		"Property Code",
		"Deal Type",
		"Status",
		"Active",
		"City",
		"District",
		"Address",
		"Floor",
		"Total Floors",
		"Living Area",
		"Rooms",
		"Bedrooms",
		"Bathrooms",
		"Plot Size",
		"Registered",
		"Heating Type",
		"Water Supply",
		"Sewage",
		"Price",
		"Creation Date",
		"Last Update",
	}
}

// Row flattens one listing into a column row using the detail entry for
// the requested language, falling back to the first detail when the
// language row is missing.
func Row(p *domain.Property, language string) []string {
	var d domain.PropertyDetail
	if len(p.Details) > 0 {
		d = p.Details[0]
	}
	for _, cand := range p.Details {
		if cand.Language == language {
			d = cand
			break
		}
	}
	return []string{
		p.AgentCode,
		p.PropertyCode,
		string(p.DealType),
		string(p.Status),
		strconv.FormatBool(p.IsActive),
		d.City,
		d.District,
		d.Address,
		strconv.Itoa(d.FloorNumber),
		strconv.Itoa(d.TotalFloors),
		formatFloat(d.LivingArea),
		strconv.Itoa(d.Rooms),
		strconv.Itoa(d.Bedrooms),
		strconv.Itoa(d.Bathrooms),
		formatFloat(d.PlotSize),
		yesNo(d.Registered),
		d.HeatingType,
		yesNo(d.WaterSupply),
		yesNo(d.Sewage),
		formatFloat(d.Price),
		formatDate(p.CreatedAt),
		formatDate(p.UpdatedAt),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
