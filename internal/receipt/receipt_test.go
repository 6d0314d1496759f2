package receipt

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rahhalah-backend/internal/models"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:            primitive.NewObjectID(),
		CustomerName:  "Ahmed Hassan",
		Phone:         "01012345678",
		Address:       "12 Tahrir Street, Downtown",
		Governorate:   "القاهرة",
		PaymentMethod: models.PaymentCashOnDelivery,
		ShippingCost:  60,
		Total:         310,
		Status:        models.StatusConfirmed,
		CreatedAt:     time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ProductID: primitive.NewObjectID(), Quantity: 2, PriceAtPurchase: 100, Size: "L", ProductTitle: "Hoodie"},
			{ProductID: primitive.NewObjectID(), Quantity: 1, PriceAtPurchase: 50, ProductTitle: "Cap"},
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleOrder(), models.DefaultSettings()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF magic header, got %q", buf.Bytes()[:8])
	}
}

func TestItemsSubtotalMatchesInvariantSum(t *testing.T) {
	order := sampleOrder()
	if got := itemsSubtotal(order.Items); got != 250 {
		t.Fatalf("expected subtotal 250, got %v", got)
	}
}

func TestShortOrderID(t *testing.T) {
	order := sampleOrder()
	short := shortOrderID(order)
	if len(short) != 6 {
		t.Fatalf("expected 6 characters, got %q", short)
	}
	if short != strings.ToUpper(short) {
		t.Fatalf("expected uppercase id, got %q", short)
	}
	if !strings.HasSuffix(strings.ToUpper(order.ID.Hex()), short) {
		t.Fatalf("expected %q to be the id suffix", short)
	}
}

func TestGovernorateAndPaymentLabels(t *testing.T) {
	if got := governorateLabel("القاهرة"); got != "Cairo" {
		t.Fatalf("expected Cairo, got %q", got)
	}
	if got := paymentMethodLabel(models.PaymentVodafoneCash); got != "Vodafone Cash" {
		t.Fatalf("expected Vodafone Cash, got %q", got)
	}
	// Unknown values fall back to transliteration, never to empty text.
	if got := paymentMethodLabel("insta-pay"); got == "" {
		t.Fatal("expected a non-empty fallback label")
	}
}

func TestFooterLinesSkipEmptyFields(t *testing.T) {
	settings := models.DefaultSettings()
	if lines := footerLines(settings); len(lines) != 0 {
		t.Fatalf("expected no footer lines for empty contact fields, got %v", lines)
	}

	settings.Phone = "01000000000"
	settings.Instagram = "@rahhalah"
	lines := footerLines(settings)
	if len(lines) != 2 {
		t.Fatalf("expected contact and social lines, got %v", lines)
	}
	if !strings.Contains(lines[0], "01000000000") {
		t.Fatalf("expected phone in contact line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "@rahhalah") {
		t.Fatalf("expected instagram handle in social line, got %q", lines[1])
	}
}
