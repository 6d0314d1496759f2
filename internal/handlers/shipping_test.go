package handlers

import "testing"

func TestShippingCostForKnownRegions(t *testing.T) {
	tests := map[string]float64{
		"القاهرة":         60,
		"الجيزة":          65,
		"القاهرة الجديدة": 70,
		"الإسكندرية":      75,
		"الدلتا":          75,
		"الصعيد":          85,
	}
	for governorate, want := range tests {
		cost, ok := shippingCostFor(governorate)
		if !ok {
			t.Fatalf("expected %q to be a known governorate", governorate)
		}
		if cost != want {
			t.Fatalf("expected cost %v for %q, got %v", want, governorate, cost)
		}
	}
}

func TestShippingCostForUnknownRegion(t *testing.T) {
	for _, governorate := range []string{"", "Cairo", "أسوان"} {
		if _, ok := shippingCostFor(governorate); ok {
			t.Fatalf("expected %q to be rejected", governorate)
		}
	}
}

func TestShippingTableHasExactlySixRegions(t *testing.T) {
	if len(shippingRates) != 6 {
		t.Fatalf("expected 6 regions, got %d", len(shippingRates))
	}
	for governorate, cost := range shippingRates {
		if cost < 0 {
			t.Fatalf("negative fee for %q", governorate)
		}
	}
}
