package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func performCalculateShipping(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/orders/calculate-shipping", CalculateShipping())

	req := httptest.NewRequest("POST", "/api/orders/calculate-shipping", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculateShippingKnownRegion(t *testing.T) {
	w := performCalculateShipping(t, `{"governorate":"القاهرة"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"cost":60`) {
		t.Fatalf("expected cost 60 in response, got %s", w.Body.String())
	}
}

func TestCalculateShippingUnknownRegion(t *testing.T) {
	w := performCalculateShipping(t, `{"governorate":"Mars"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid governorate") {
		t.Fatalf("expected invalid governorate message, got %s", w.Body.String())
	}
}

func TestCalculateShippingMissingBody(t *testing.T) {
	w := performCalculateShipping(t, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// The quote path and the checkout path read the same table, so a region the
// quote rejects must be priced identically by checkout validation.
func TestQuoteAndCheckoutAgreeOnRegions(t *testing.T) {
	for governorate := range shippingRates {
		if _, ok := shippingCostFor(governorate); !ok {
			t.Fatalf("checkout rejects governorate %q the quote accepts", governorate)
		}
	}
	if _, ok := shippingCostFor("Atlantis"); ok {
		t.Fatal("checkout accepts a governorate the quote rejects")
	}
}
