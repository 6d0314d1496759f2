// Package receipt renders a fixed-layout PDF delivery receipt for a
// finalized order. It is a pure consumer: nothing here mutates the order.
package receipt

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/mozillazg/go-unidecode"

	"rahhalah-backend/internal/models"
)

// paymentMethodLabels maps wire values to printable labels. Unknown values
// fall back to transliteration.
var paymentMethodLabels = map[string]string{
	models.PaymentVodafoneCash:   "Vodafone Cash",
	models.PaymentCashOnDelivery: "Cash on Delivery",
}

// governorateLabels maps the shipping-zone labels to their English names for
// the Helvetica-only PDF.
var governorateLabels = map[string]string{
	"القاهرة":         "Cairo",
	"الجيزة":          "Giza",
	"القاهرة الجديدة": "New Cairo",
	"الإسكندرية":      "Alexandria",
	"الدلتا":          "Delta",
	"الصعيد":          "Upper Egypt",
}

// toLatin transliterates text so the core PDF fonts can render it.
func toLatin(text string) string {
	return strings.TrimSpace(unidecode.Unidecode(text))
}

func paymentMethodLabel(method string) string {
	if label, ok := paymentMethodLabels[method]; ok {
		return label
	}
	return toLatin(method)
}

func governorateLabel(governorate string) string {
	if label, ok := governorateLabels[governorate]; ok {
		return label
	}
	return toLatin(governorate)
}

// itemsSubtotal recomputes the goods total from the frozen line prices, the
// same sum the order-total invariant is built on. Display only, no
// re-validation here.
func itemsSubtotal(items []models.OrderItem) float64 {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.PriceAtPurchase * float64(item.Quantity)
	}
	return subtotal
}

// shortOrderID is the last six hex digits, uppercased, as printed on the slip.
func shortOrderID(order models.Order) string {
	hex := order.ID.Hex()
	if len(hex) > 6 {
		hex = hex[len(hex)-6:]
	}
	return strings.ToUpper(hex)
}

// footerLines assembles the footer from whichever contact/social settings are
// non-empty.
func footerLines(settings models.Settings) []string {
	var lines []string

	var contact []string
	if settings.Phone != "" {
		contact = append(contact, "Tel: "+settings.Phone)
	}
	if settings.Email != "" {
		contact = append(contact, settings.Email)
	}
	if settings.Address != "" {
		contact = append(contact, toLatin(settings.Address))
	}
	if len(contact) > 0 {
		lines = append(lines, strings.Join(contact, "  |  "))
	}

	var social []string
	if settings.Facebook != "" {
		social = append(social, "Facebook: "+settings.Facebook)
	}
	if settings.Instagram != "" {
		social = append(social, "Instagram: "+settings.Instagram)
	}
	if settings.Twitter != "" {
		social = append(social, "Twitter: "+settings.Twitter)
	}
	if len(social) > 0 {
		lines = append(lines, strings.Join(social, "  |  "))
	}

	return lines
}

// Render writes the receipt PDF for the order to w. Item titles are expected
// to be resolved on the order already.
func Render(w io.Writer, order models.Order, settings models.Settings) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 9, toLatin(settings.SiteName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, toLatin(settings.SiteDescription), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 8, "DELIVERY RECEIPT", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Order / customer box
	boxTop := pdf.GetY()
	pdf.SetFillColor(248, 249, 250)
	pdf.SetDrawColor(222, 226, 230)
	pdf.Rect(18, boxTop, 174, 42, "FD")

	line := func(x, y float64, label, value string) {
		pdf.SetXY(x, y)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(26, 5, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(58, 5, value, "", 0, "L", false, 0, "")
	}

	pdf.SetXY(22, boxTop+4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, 6, "Order Details", "", 0, "L", false, 0, "")
	pdf.SetX(108)
	pdf.CellFormat(80, 6, "Customer", "", 1, "L", false, 0, "")

	line(22, boxTop+12, "Order ID:", shortOrderID(order))
	line(22, boxTop+19, "Date:", order.CreatedAt.Format("02/01/2006"))
	line(22, boxTop+26, "Status:", strings.ToUpper(order.Status))
	line(22, boxTop+33, "Payment:", paymentMethodLabel(order.PaymentMethod))

	line(108, boxTop+12, "Name:", toLatin(order.CustomerName))
	line(108, boxTop+19, "Phone:", order.Phone)
	address := governorateLabel(order.Governorate) + " - " + toLatin(order.Address)
	pdf.SetXY(108, boxTop+26)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(20, 5, "Address:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(58, 4, address, "", "L", false)

	pdf.SetY(boxTop + 48)

	// Items table
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Ordered Items", "", 1, "L", false, 0, "")

	pdf.SetFillColor(51, 51, 51)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(84, 7, "ITEM", "", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "QTY", "", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "SIZE", "", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "COLOR", "", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "PRICE", "", 1, "R", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	for i, item := range order.Items {
		title := item.ProductTitle
		if title == "" {
			title = item.ProductID.Hex()
		}
		if i%2 == 1 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.CellFormat(84, 6, toLatin(title), "", 0, "L", true, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Quantity), "", 0, "C", true, 0, "")
		pdf.CellFormat(20, 6, toLatin(item.Size), "", 0, "C", true, 0, "")
		pdf.CellFormat(20, 6, toLatin(item.Color), "", 0, "C", true, 0, "")
		lineTotal := item.PriceAtPurchase * float64(item.Quantity)
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f EGP", lineTotal), "", 1, "R", true, 0, "")
	}

	// Totals
	pdf.Ln(4)
	totalLine := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(144, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, value, "", 1, "R", false, 0, "")
	}
	totalLine("Subtotal:", fmt.Sprintf("%.2f EGP", itemsSubtotal(order.Items)), false)
	totalLine("Shipping:", fmt.Sprintf("%.2f EGP", order.ShippingCost), false)
	totalLine("Total:", fmt.Sprintf("%.2f EGP", order.Total), true)

	// Footer
	footer := footerLines(settings)
	if len(footer) > 0 {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(120, 120, 120)
		for _, text := range footer {
			pdf.CellFormat(0, 4, text, "", 1, "C", false, 0, "")
		}
	}
	pdf.SetTextColor(120, 120, 120)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Ln(4)
	pdf.CellFormat(0, 4, "Generated "+time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")

	return pdf.Output(w)
}
