package catalog

import (
	"strings"

	"dealerd/pkg/types"
)

// Segment keys. SegmentAll is the sentinel matching every model.
const (
	SegmentAll        = "all"
	SegmentScooter    = "electric-scooter"
	SegmentMotorcycle = "electric-motorcycle"
)

// Availability statuses used by the seed lineup.
const (
	AvailabilityReady   = "Readily Available"
	AvailabilityBooking = "On Booking"
)

// Segments returns the filter partition including the "all" sentinel, in
// display order.
func Segments() []types.Segment {
	return []types.Segment{
		{Key: SegmentAll, Label: "All"},
		{Key: SegmentScooter, Label: "Electric Scooters"},
		{Key: SegmentMotorcycle, Label: "Electric Motorcycles"},
	}
}

// KnownSegment reports whether key is a valid segment filter value.
func KnownSegment(key string) bool {
	for _, s := range Segments() {
		if s.Key == key {
			return true
		}
	}
	return false
}

// Filter returns the models whose segment matches (or segment == "all") and
// whose name contains query case-insensitively. Empty query matches
// everything. Catalog order is preserved; no re-sort.
func Filter(models []types.VehicleModel, segment, query string) []types.VehicleModel {
	q := strings.ToLower(query)
	out := make([]types.VehicleModel, 0, len(models))
	for _, m := range models {
		if segment != SegmentAll && segment != "" && m.Segment != segment {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(m.Name), q) {
			continue
		}
		out = append(out, m)
	}
	return out
}
