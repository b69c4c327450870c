package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// VehicleModel represents one vehicle in the dealership lineup.
type VehicleModel struct {
	// Stable identifier for the model.
	// example: orbit
	ID string `json:"id" example:"orbit"`
	// Display name.
	// example: ORBIT
	Name string `json:"name" example:"ORBIT"`
	// Segment key used as the filter partition (see Segments).
	// example: electric-scooter
	Segment string `json:"segment" example:"electric-scooter"`
	// Price in whole PKR. Nil means "price on request".
	// example: 159000
	Price *int `json:"price" example:"159000"`
	// Top speed in km/h.
	// example: 45
	TopSpeed float64 `json:"topSpeed" example:"45"`
	// Advertised range. Encodes as a number (fixed) or a "low–high" string (bounded).
	Range Range `json:"rangeKm"`
	// Motor power rating in watts.
	// example: 1000
	MotorW int `json:"motorW" example:"1000"`
	// Battery specification, free text.
	// example: 72V 20AH (Hub)
	Battery string `json:"battery" example:"72V 20AH (Hub)"`
	// Availability status.
	// example: Readily Available
	Availability string `json:"availability" example:"Readily Available"`
	// Externally hosted image URL. Never fetched or validated by this service.
	Img string `json:"img"`
	// Color names in display order.
	Colors []string `json:"colors"`
	// Anti-lock brake presence.
	ABS bool `json:"abs"`
}

// PriceLabel renders the price badge text: "from PKR 159,000" or
// "Get a Quote" when the price is on request.
func (m VehicleModel) PriceLabel() string {
	if m.Price == nil {
		return "Get a Quote"
	}
	return "from PKR " + groupThousands(*m.Price)
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return s
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RangeKind discriminates the Range variant.
type RangeKind int

const (
	// RangeUnspecified means no usable range figure is stored.
	RangeUnspecified RangeKind = iota
	// RangeFixed is a single advertised figure in km.
	RangeFixed
	// RangeBounded is a low–high span in km, used where the supplier
	// publishes conflicting figures.
	RangeBounded
)

// Range is the advertised driving range of a model. The source data is
// heterogeneous (plain numbers next to "60–120" strings), so the wire format
// keeps both shapes while the program works with an explicit variant.
type Range struct {
	Kind RangeKind `json:"-"`
	// Km holds the figure for fixed ranges.
	Km float64 `json:"-"`
	// Low and High bound the span for bounded ranges.
	Low  float64 `json:"-"`
	High float64 `json:"-"`
}

// FixedRange returns a fixed range of km kilometers.
func FixedRange(km float64) Range { return Range{Kind: RangeFixed, Km: km} }

// BoundedRange returns a bounded low–high range.
func BoundedRange(low, high float64) Range {
	return Range{Kind: RangeBounded, Low: low, High: high}
}

// String renders the range for display: "80 km", "60–120 km" or "—".
func (r Range) String() string {
	switch r.Kind {
	case RangeFixed:
		return trimFloat(r.Km) + " km"
	case RangeBounded:
		return trimFloat(r.Low) + "–" + trimFloat(r.High) + " km"
	default:
		return "—"
	}
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MarshalJSON encodes fixed ranges as a bare number and bounded ranges as a
// "low–high" string, matching the legacy rangeKm field.
func (r Range) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RangeFixed:
		return json.Marshal(r.Km)
	case RangeBounded:
		return json.Marshal(trimFloat(r.Low) + "–" + trimFloat(r.High))
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number, a "low–high" string (en dash or hyphen) or
// null. Anything else decodes as unspecified rather than failing the record,
// since snapshots are not validated per field.
func (r *Range) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == "" {
		*r = Range{}
		return nil
	}
	var km float64
	if err := json.Unmarshal(b, &km); err == nil {
		*r = FixedRange(km)
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		*r = Range{}
		return nil
	}
	if low, high, ok := splitSpan(raw); ok {
		*r = BoundedRange(low, high)
		return nil
	}
	if km, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		*r = FixedRange(km)
		return nil
	}
	*r = Range{}
	return nil
}

// splitSpan parses "60–120" (also plain hyphen) into its bounds.
func splitSpan(s string) (low, high float64, ok bool) {
	for _, sep := range []string{"–", "-"} {
		parts := strings.SplitN(s, sep, 2)
		if len(parts) != 2 {
			continue
		}
		l, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		h, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err1 == nil && err2 == nil {
			return l, h, true
		}
	}
	return 0, 0, false
}

// Segment is one entry of the filter partition, with its display label.
type Segment struct {
	// Filter key. "all" is the sentinel matching every model.
	// example: electric-scooter
	Key string `json:"key" example:"electric-scooter"`
	// Display label.
	// example: Electric Scooters
	Label string `json:"label" example:"Electric Scooters"`
}

// NewsItem is one entry of the news & events feed.
type NewsItem struct {
	ID    int    `json:"id" example:"1"`
	Title string `json:"title" example:"EV awareness drive in Bahawalnagar"`
	// Publication date, ISO 8601 (date only).
	// example: 2025-08-01
	Date string `json:"date" example:"2025-08-01"`
	Img  string `json:"img"`
}

// Ptr returns a pointer to v. Convenience for optional fields like Price.
func Ptr[T any](v T) *T { return &v }
