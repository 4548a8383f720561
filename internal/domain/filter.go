package domain

import "net/url"

// ListingFilter holds the dashboard filter inputs. Values are kept as the
// raw strings the UI produces; empty strings mean "not filtered" and are
// omitted from the query.
type ListingFilter struct {
	PropertyType string `json:"property_type"`
	DealType     string `json:"deal_type"`
	City         string `json:"city"`
	PriceMin     string `json:"price_min"`
	PriceMax     string `json:"price_max"`
	RoomsMin     string `json:"rooms_min"`
	RoomsMax     string `json:"rooms_max"`
	AreaMin      string `json:"area_min"`
	AreaMax      string `json:"area_max"`
}

// Values builds the query for GET /api/properties. The language key is
// always present; filter keys appear only when non-empty.
func (f ListingFilter) Values(language string) url.Values {
	v := url.Values{}
	v.Set("language", language)
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("property_type", f.PropertyType)
	set("deal_type", f.DealType)
	set("city", f.City)
	set("price_min", f.PriceMin)
	set("price_max", f.PriceMax)
	set("rooms_min", f.RoomsMin)
	set("rooms_max", f.RoomsMax)
	set("area_min", f.AreaMin)
	set("area_max", f.AreaMax)
	return v
}

// IsZero reports whether no filter input is set.
func (f ListingFilter) IsZero() bool {
	return f == ListingFilter{}
}
