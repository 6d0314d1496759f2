package handlers

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rahhalah-backend/internal/models"
)

// totalTolerance is the allowed float drift between a stored total and the
// recomputed one.
const totalTolerance = 0.01

const (
	minItemQuantity = 1
	maxItemQuantity = 100
)

// Egyptian mobile numbers: 010/011/012/015 plus eight digits.
var phonePattern = regexp.MustCompile(`^01[0-2,5][0-9]{8}$`)

// Checkout fields are validated by validateOrderRequest rather than binding
// tags so failures come back as field-level messages in submission order.
type createOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type createOrderRequest struct {
	CustomerName  string                   `json:"customerName"`
	Phone         string                   `json:"phone"`
	Address       string                   `json:"address"`
	Governorate   string                   `json:"governorate"`
	Items         []createOrderItemRequest `json:"items"`
	PaymentMethod string                   `json:"paymentMethod"`
	Notes         string                   `json:"notes"`
}

// validateOrderRequest applies the field-level rules that must hold before
// any stock is touched. Quantity bounds and id syntax are checked here; stock
// and product existence are checked against live data inside the transaction.
func validateOrderRequest(req createOrderRequest) []fieldError {
	var errs []fieldError

	name := strings.TrimSpace(req.CustomerName)
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		errs = append(errs, fieldError{"customerName", "Name must be between 2 and 100 characters"})
	}

	if !phonePattern.MatchString(strings.TrimSpace(req.Phone)) {
		errs = append(errs, fieldError{"phone", "Please provide a valid Egyptian phone number"})
	}

	address := strings.TrimSpace(req.Address)
	if n := utf8.RuneCountInString(address); n < 10 || n > 500 {
		errs = append(errs, fieldError{"address", "Address must be between 10 and 500 characters"})
	}

	if !validPaymentMethod(req.PaymentMethod) {
		errs = append(errs, fieldError{"paymentMethod", "Invalid payment method"})
	}

	if utf8.RuneCountInString(req.Notes) > 500 {
		errs = append(errs, fieldError{"notes", "Notes cannot exceed 500 characters"})
	}

	for i, item := range req.Items {
		if _, err := primitive.ObjectIDFromHex(item.ProductID); err != nil {
			errs = append(errs, fieldError{
				Field:   fmt.Sprintf("items[%d].productId", i),
				Message: "Invalid product ID",
			})
		}
		if item.Quantity < minItemQuantity || item.Quantity > maxItemQuantity {
			errs = append(errs, fieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "Quantity must be between 1 and 100",
			})
		}
	}

	return errs
}

func validPaymentMethod(method string) bool {
	return method == models.PaymentVodafoneCash || method == models.PaymentCashOnDelivery
}

// orderItemsTotal sums the frozen line prices.
func orderItemsTotal(items []models.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.PriceAtPurchase * float64(item.Quantity)
	}
	return total
}

// verifyOrderTotal recomputes sum(priceAtPurchase*quantity)+shippingCost and
// compares it to the stored total within the tolerance. Every write that
// touches items, shipping or total goes through this check.
func verifyOrderTotal(items []models.OrderItem, shippingCost, total float64) error {
	expected := orderItemsTotal(items) + shippingCost
	if math.Abs(total-expected) > totalTolerance {
		return fmt.Errorf("total price mismatch: got %.2f, expected %.2f", total, expected)
	}
	return nil
}
