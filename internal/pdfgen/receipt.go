package pdfgen

import (
	"time"

	"catering-service/internal/domain"
	"catering-service/internal/i18n"
)

// receipt display caps, matching the browser-rendered receipt
const receiptNoMaxRunes = 25

type receiptLine struct {
	key   string
	value string
}

func receiptLines(o domain.Order, l i18n.Locale) (customer, order, payment []receiptLine) {
	na := i18n.Translate(l, "na")
	val := func(s string) string {
		if s == "" {
			return na
		}
		return s
	}
	customer = []receiptLine{
		{"customer", val(o.Name)},
		{"phoneNumber", val(o.PhoneNumber)},
		{"address", val(o.Address)},
	}
	order = []receiptLine{
		{"date", i18n.ToLocaleDigits(val(o.Date), l)},
		{"time", i18n.ToLocaleDigits(val(o.Time), l)},
		{"deliveryType", i18n.Translate(l, val(o.DeliveryType))},
		{"status", i18n.Translate(l, string(o.CookStatus))},
	}
	payment = []receiptLine{
		{"totalAmount", i18n.FormatCurrency(domain.ParseAmount(o.TotalPayment), l)},
		{"discount", i18n.FormatCurrency(domain.ParseAmount(o.Discount), l)},
		{"advancePayment", i18n.FormatCurrency(domain.ParseAmount(o.AdvancePayment), l)},
		{"balancePayment", i18n.FormatCurrency(o.Balance(), l)},
		{"paymentType", i18n.Translate(l, string(o.PaymentType))},
		{"paymentStatus", i18n.Translate(l, string(o.PaymentStatus))},
	}
	return customer, order, payment
}

func (b *builder) sectionTitle(key string) {
	b.checkPageBreak(18)
	b.y += 4
	b.AddText(b.tr(key), b.sideX(), b.y+6, TextStyle{Size: 12, Bold: true, Color: [3]int{44, 62, 80}, Align: b.sideAlign()})
	b.y += 9
	b.separator()
}

func (b *builder) labeledLine(key, value string) {
	b.checkPageBreak(lineGap)
	label := b.tr(key) + ":"
	if b.locale.IsRTL() {
		b.AddText(label, b.pageW-pageMargin, b.y+5, TextStyle{Size: 10, Bold: true, Color: [3]int{70, 70, 70}, Align: "R"})
		b.AddText(value, b.pageW-pageMargin-55, b.y+5, TextStyle{Size: 10, Color: [3]int{30, 30, 30}, Align: "R", MaxWidth: b.pageW - 2*pageMargin - 60})
	} else {
		b.AddText(label, pageMargin, b.y+5, TextStyle{Size: 10, Bold: true, Color: [3]int{70, 70, 70}})
		b.AddText(value, pageMargin+55, b.y+5, TextStyle{Size: 10, Color: [3]int{30, 30, 30}, MaxWidth: b.pageW - 2*pageMargin - 60})
	}
	b.y += lineGap
}

// sideX is the reading-edge x position: left margin for LTR locales,
// right margin for RTL ones.
func (b *builder) sideX() float64 {
	if b.locale.IsRTL() {
		return b.pageW - pageMargin
	}
	return pageMargin
}

func (b *builder) sideAlign() string {
	if b.locale.IsRTL() {
		return "R"
	}
	return "L"
}

// ReceiptPDF draws a single-order receipt without a browser, portrait A4,
// mirroring the browser-rendered receipt's sections.
func (g *Generator) ReceiptPDF(o domain.Order, locale i18n.Locale, now time.Time) ([]byte, error) {
	b := g.newBuilder("P", locale)
	b.heading(b.tr("receipt"))

	displayNo := o.DisplayNo()
	if runes := []rune(displayNo); len(runes) > receiptNoMaxRunes {
		if locale.IsRTL() {
			displayNo = ellipsis + string(runes[len(runes)-receiptNoMaxRunes:])
		} else {
			displayNo = string(runes[:receiptNoMaxRunes]) + ellipsis
		}
	}
	b.AddText(b.tr("receiptNo")+": "+i18n.ToLocaleDigits(displayNo, locale), b.pageW/2, b.y+5,
		TextStyle{Size: 11, Color: [3]int{90, 90, 90}, Align: "C"})
	b.y += 8
	b.generatedLine(now)
	b.separator()

	customer, orderInfo, payment := receiptLines(o, locale)

	b.sectionTitle("customerInfo")
	for _, ln := range customer {
		b.labeledLine(ln.key, ln.value)
	}

	b.sectionTitle("orderInfo")
	for _, ln := range orderInfo {
		b.labeledLine(ln.key, ln.value)
	}

	if o.OrderDetails != "" {
		b.sectionTitle("orderDetails")
		b.AddText(o.OrderDetails, b.sideX(), b.y+5, TextStyle{
			Size: 10, Color: [3]int{30, 30, 30}, Align: b.sideAlign(), MaxWidth: b.pageW - 2*pageMargin,
		})
		b.y += lineGap
	}

	b.sectionTitle("paymentInfo")
	for _, ln := range payment {
		b.labeledLine(ln.key, ln.value)
	}

	b.y += 8
	b.AddText(b.tr("thankYou"), b.pageW/2, b.y+5, TextStyle{Size: 11, Color: [3]int{120, 120, 120}, Align: "C"})

	return b.output()
}
