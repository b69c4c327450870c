package catalog

import (
	"reflect"
	"testing"

	"dealerd/pkg/types"
)

func ids(models []types.VehicleModel) []string {
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = m.ID
	}
	return out
}

func TestFilterAllEmptyQueryIsIdentity(t *testing.T) {
	c := Default()
	got := Filter(c, SegmentAll, "")
	if !reflect.DeepEqual(ids(got), ids(c)) { t.Fatalf("ids=%v", ids(got)) }
}

func TestFilterSegmentExcludesOthers(t *testing.T) {
	got := Filter(Default(), SegmentMotorcycle, "")
	if len(got) == 0 { t.Fatalf("no motorcycles in seed") }
	for _, m := range got {
		if m.Segment != SegmentMotorcycle { t.Fatalf("leaked segment %q (id=%s)", m.Segment, m.ID) }
	}
}

func TestFilterQueryCaseInsensitive(t *testing.T) {
	upper := Filter(Default(), SegmentAll, "ORB")
	lower := Filter(Default(), SegmentAll, "orb")
	if !reflect.DeepEqual(ids(upper), ids(lower)) { t.Fatalf("ORB=%v orb=%v", ids(upper), ids(lower)) }
	if len(upper) != 1 || upper[0].ID != "orbit" { t.Fatalf("ids=%v", ids(upper)) }
}

func TestFilterSubstringNotPrefix(t *testing.T) {
	got := Filter(Default(), SegmentAll, "rbi")
	if len(got) != 1 || got[0].ID != "orbit" { t.Fatalf("ids=%v", ids(got)) }
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(Default(), SegmentScooter, "o")
	var prev int = -1
	all := ids(Default())
	for _, m := range got {
		idx := -1
		for i, id := range all {
			if id == m.ID { idx = i }
		}
		if idx <= prev { t.Fatalf("order not preserved: %v", ids(got)) }
		prev = idx
	}
}

func TestFilterUnknownSegmentMatchesNothing(t *testing.T) {
	if got := Filter(Default(), "hoverboard", ""); len(got) != 0 { t.Fatalf("ids=%v", ids(got)) }
}

func TestFilterCombined(t *testing.T) {
	got := Filter(Default(), SegmentScooter, "okt")
	if !reflect.DeepEqual(ids(got), []string{"okt-econo", "okt"}) { t.Fatalf("ids=%v", ids(got)) }
}

func TestKnownSegment(t *testing.T) {
	for _, s := range []string{SegmentAll, SegmentScooter, SegmentMotorcycle} {
		if !KnownSegment(s) { t.Fatalf("%s not known", s) }
	}
	if KnownSegment("hoverboard") { t.Fatalf("hoverboard should be unknown") }
}
