package editor

import (
	"fmt"

	"github.com/DmitruNS/kuc/internal/domain"
)

// commonSetter resolves a shared-field name to a function applying the
// coerced value to one detail row. Coercion happens once, up front, so a
// bad value never leaves the rows half-updated.
func commonSetter(field string, value any) (func(*domain.PropertyDetail), error) {
	switch field {
	case "floor_number", "total_floors", "rooms", "bedrooms", "bathrooms":
		n, err := asInt(value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		return func(d *domain.PropertyDetail) {
			switch field {
			case "floor_number":
				d.FloorNumber = n
			case "total_floors":
				d.TotalFloors = n
			case "rooms":
				d.Rooms = n
			case "bedrooms":
				d.Bedrooms = n
			case "bathrooms":
				d.Bathrooms = n
			}
		}, nil
	case "living_area", "plot_size", "price":
		f, err := asFloat(value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		return func(d *domain.PropertyDetail) {
			switch field {
			case "living_area":
				d.LivingArea = f
			case "plot_size":
				d.PlotSize = f
			case "price":
				d.Price = f
			}
		}, nil
	case "registered", "water_supply", "sewage":
		b, err := asBool(value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		return func(d *domain.PropertyDetail) {
			switch field {
			case "registered":
				d.Registered = b
			case "water_supply":
				d.WaterSupply = b
			case "sewage":
				d.Sewage = b
			}
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
}

// Values arrive from the webview as JSON, so numbers are float64. The
// coercions below also accept native Go types for callers inside the
// process.

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

func asBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected bool, got %T", v)
	}
	return b, nil
}
