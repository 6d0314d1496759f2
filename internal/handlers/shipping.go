package handlers

// Flat shipping fees per governorate. This table is the single source of
// truth for both the pre-checkout quote and the final order pricing, so the
// quoted and charged amounts can never diverge.
var shippingRates = map[string]float64{
	"القاهرة":         60,
	"الجيزة":          65,
	"القاهرة الجديدة": 70,
	"الإسكندرية":      75,
	"الدلتا":          75,
	"الصعيد":          85,
}

// shippingCostFor resolves the flat fee for a governorate label. The second
// return value is false for unrecognized labels.
func shippingCostFor(governorate string) (float64, bool) {
	cost, ok := shippingRates[governorate]
	return cost, ok
}
