package handlers

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rahhalah-backend/internal/models"
)

func validTestOrderRequest() createOrderRequest {
	return createOrderRequest{
		CustomerName:  "Ahmed Hassan",
		Phone:         "01012345678",
		Address:       "12 Tahrir Street, Downtown",
		Governorate:   "القاهرة",
		PaymentMethod: models.PaymentCashOnDelivery,
		Items: []createOrderItemRequest{
			{ProductID: primitive.NewObjectID().Hex(), Quantity: 2},
		},
	}
}

func TestValidateOrderRequestAcceptsValidInput(t *testing.T) {
	if errs := validateOrderRequest(validTestOrderRequest()); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %+v", errs)
	}
}

func TestValidateOrderRequestQuantityBounds(t *testing.T) {
	for _, quantity := range []int{0, -1, 101} {
		req := validTestOrderRequest()
		req.Items[0].Quantity = quantity

		errs := validateOrderRequest(req)
		if len(errs) == 0 {
			t.Fatalf("expected validation error for quantity=%d", quantity)
		}
		if !strings.Contains(errs[0].Field, "quantity") {
			t.Fatalf("expected quantity field error, got %+v", errs[0])
		}
	}

	for _, quantity := range []int{1, 100} {
		req := validTestOrderRequest()
		req.Items[0].Quantity = quantity
		if errs := validateOrderRequest(req); len(errs) != 0 {
			t.Fatalf("expected quantity=%d to pass, got %+v", quantity, errs)
		}
	}
}

func TestValidateOrderRequestPhone(t *testing.T) {
	invalid := []string{"", "0101234567", "010123456789", "02012345678", "+201012345678"}
	for _, phone := range invalid {
		req := validTestOrderRequest()
		req.Phone = phone
		if errs := validateOrderRequest(req); len(errs) == 0 {
			t.Fatalf("expected phone %q to be rejected", phone)
		}
	}

	valid := []string{"01012345678", "01112345678", "01212345678", "01512345678"}
	for _, phone := range valid {
		req := validTestOrderRequest()
		req.Phone = phone
		if errs := validateOrderRequest(req); len(errs) != 0 {
			t.Fatalf("expected phone %q to pass, got %+v", phone, errs)
		}
	}
}

func TestValidateOrderRequestPaymentMethod(t *testing.T) {
	req := validTestOrderRequest()
	req.PaymentMethod = "credit-card"
	if errs := validateOrderRequest(req); len(errs) == 0 {
		t.Fatal("expected unknown payment method to be rejected")
	}

	for _, method := range []string{models.PaymentVodafoneCash, models.PaymentCashOnDelivery} {
		req := validTestOrderRequest()
		req.PaymentMethod = method
		if errs := validateOrderRequest(req); len(errs) != 0 {
			t.Fatalf("expected payment method %q to pass, got %+v", method, errs)
		}
	}
}

func TestValidateOrderRequestInvalidProductID(t *testing.T) {
	req := validTestOrderRequest()
	req.Items[0].ProductID = "not-an-object-id"
	if errs := validateOrderRequest(req); len(errs) == 0 {
		t.Fatal("expected invalid product id to be rejected")
	}
}

func TestOrderItemsTotalSpecExample(t *testing.T) {
	// Cart: product A at 100 x2, product B at 50 x1, region fee 60.
	items := []models.OrderItem{
		{ProductID: primitive.NewObjectID(), Quantity: 2, PriceAtPurchase: 100},
		{ProductID: primitive.NewObjectID(), Quantity: 1, PriceAtPurchase: 50},
	}

	if subtotal := orderItemsTotal(items); subtotal != 250 {
		t.Fatalf("expected subtotal 250, got %v", subtotal)
	}
	if err := verifyOrderTotal(items, 60, 310); err != nil {
		t.Fatalf("expected total 310 to verify, got %v", err)
	}
}

func TestVerifyOrderTotalTolerance(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: primitive.NewObjectID(), Quantity: 3, PriceAtPurchase: 33.33},
	}
	// Expected 99.99 + 60 = 159.99; drift within 0.01 is accepted.
	if err := verifyOrderTotal(items, 60, 159.985); err != nil {
		t.Fatalf("expected drift within tolerance to pass, got %v", err)
	}
	if err := verifyOrderTotal(items, 60, 160.5); err == nil {
		t.Fatal("expected mismatch beyond tolerance to fail")
	}
}

func TestVerifyOrderTotalRejectsTamperedTotal(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: primitive.NewObjectID(), Quantity: 1, PriceAtPurchase: 500},
	}
	if err := verifyOrderTotal(items, 60, 1); err == nil {
		t.Fatal("expected client-supplied total to be rejected")
	}
}
