package handlers

import (
	"reflect"
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func validTestProductInput() productInput {
	return productInput{
		Title:        "Oversized Hoodie",
		Description:  "Heavyweight cotton hoodie",
		Images:       []string{"https://cdn.example.com/hoodie.jpg"},
		CollectionID: "656565656565656565656565",
		Price:        floatPtr(850),
	}
}

func TestValidateProductInputAcceptsValidInput(t *testing.T) {
	if errs := validateProductInput(validTestProductInput()); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %+v", errs)
	}
}

func TestValidateProductInputOriginalPriceMustExceedPrice(t *testing.T) {
	for _, originalPrice := range []float64{850, 500} {
		req := validTestProductInput()
		req.OriginalPrice = floatPtr(originalPrice)
		errs := validateProductInput(req)
		if len(errs) == 0 {
			t.Fatalf("expected originalPrice=%v to be rejected", originalPrice)
		}
		if errs[0].Field != "originalPrice" {
			t.Fatalf("expected originalPrice field error, got %+v", errs[0])
		}
	}

	req := validTestProductInput()
	req.OriginalPrice = floatPtr(1000)
	if errs := validateProductInput(req); len(errs) != 0 {
		t.Fatalf("expected originalPrice above price to pass, got %+v", errs)
	}
}

func TestValidateProductInputImageURLs(t *testing.T) {
	req := validTestProductInput()
	req.Images = []string{"ftp://example.com/a.jpg"}
	if errs := validateProductInput(req); len(errs) == 0 {
		t.Fatal("expected non-http image URL to be rejected")
	}
}

func TestValidateProductInputPriceBounds(t *testing.T) {
	for _, price := range []float64{-1, 1000001} {
		req := validTestProductInput()
		req.Price = floatPtr(price)
		if errs := validateProductInput(req); len(errs) == 0 {
			t.Fatalf("expected price=%v to be rejected", price)
		}
	}
}

func TestValidateProductInputTitleLength(t *testing.T) {
	req := validTestProductInput()
	req.Title = strings.Repeat("x", 201)
	if errs := validateProductInput(req); len(errs) == 0 {
		t.Fatal("expected over-long title to be rejected")
	}
}

func TestNormalizeSizesUppercasesAndDropsEmpties(t *testing.T) {
	got := normalizeSizes([]string{" m ", "XL", "", "  "})
	want := []string{"M", "XL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeColorsKeepsCase(t *testing.T) {
	got := normalizeColors([]string{" Black ", "", "off-white"})
	want := []string{"Black", "off-white"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
