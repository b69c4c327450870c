package types

import (
	"encoding/json"
	"testing"
)

func TestRangeUnmarshalNumber(t *testing.T) {
	var r Range
	if err := json.Unmarshal([]byte(`80`), &r); err != nil { t.Fatalf("unmarshal: %v", err) }
	if r.Kind != RangeFixed || r.Km != 80 { t.Fatalf("unexpected range: %+v", r) }
	if got := r.String(); got != "80 km" { t.Fatalf("display=%q", got) }
}

func TestRangeUnmarshalSpan(t *testing.T) {
	for _, in := range []string{`"60–120"`, `"60-120"`, `" 60 – 120 "`} {
		var r Range
		if err := json.Unmarshal([]byte(in), &r); err != nil { t.Fatalf("unmarshal %s: %v", in, err) }
		if r.Kind != RangeBounded || r.Low != 60 || r.High != 120 { t.Fatalf("%s: unexpected range: %+v", in, r) }
		if got := r.String(); got != "60–120 km" { t.Fatalf("%s: display=%q", in, got) }
	}
}

func TestRangeUnmarshalDegraded(t *testing.T) {
	// Unvalidated snapshot data: junk decodes as unspecified, not an error.
	for _, in := range []string{`null`, `"plenty"`, `true`, `{"a":1}`} {
		var r Range
		if err := json.Unmarshal([]byte(in), &r); err != nil { t.Fatalf("unmarshal %s: %v", in, err) }
		if r.Kind != RangeUnspecified { t.Fatalf("%s: kind=%v", in, r.Kind) }
	}
	var r Range
	if got := r.String(); got != "—" { t.Fatalf("display=%q", got) }
}

func TestRangeMarshalRoundTrip(t *testing.T) {
	for _, r := range []Range{FixedRange(80), BoundedRange(60, 120), {}} {
		b, err := json.Marshal(r)
		if err != nil { t.Fatalf("marshal: %v", err) }
		var back Range
		if err := json.Unmarshal(b, &back); err != nil { t.Fatalf("unmarshal %s: %v", b, err) }
		if back != r { t.Fatalf("round trip %s: got %+v want %+v", b, back, r) }
	}
}

func TestRangeMarshalWireShape(t *testing.T) {
	if b, _ := json.Marshal(FixedRange(80)); string(b) != "80" { t.Fatalf("fixed wire=%s", b) }
	if b, _ := json.Marshal(BoundedRange(60, 120)); string(b) != `"60–120"` { t.Fatalf("bounded wire=%s", b) }
	if b, _ := json.Marshal(Range{}); string(b) != "null" { t.Fatalf("unspecified wire=%s", b) }
}

func TestPriceLabel(t *testing.T) {
	m := VehicleModel{Price: Ptr(159000)}
	if got := m.PriceLabel(); got != "from PKR 159,000" { t.Fatalf("label=%q", got) }
	m.Price = Ptr(1500000)
	if got := m.PriceLabel(); got != "from PKR 1,500,000" { t.Fatalf("label=%q", got) }
	m.Price = Ptr(999)
	if got := m.PriceLabel(); got != "from PKR 999" { t.Fatalf("label=%q", got) }
	m.Price = nil
	if got := m.PriceLabel(); got != "Get a Quote" { t.Fatalf("label=%q", got) }
}
