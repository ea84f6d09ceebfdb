package pdfgen

import (
	"fmt"
	"time"

	"catering-service/internal/domain"
	"catering-service/internal/i18n"

	"github.com/shopspring/decimal"
)

// column is one report-table column: a translated header and an extractor
// producing the cell value for an order.
type column struct {
	key   string
	width float64
	value func(o domain.Order, l i18n.Locale) string
}

func reportColumns(l i18n.Locale) []column {
	cols := []column{
		{"receiptNo", 32, func(o domain.Order, _ i18n.Locale) string { return o.DisplayNo() }},
		{"customer", 42, func(o domain.Order, _ i18n.Locale) string { return o.Name }},
		{"phoneNumber", 30, func(o domain.Order, _ i18n.Locale) string { return o.PhoneNumber }},
		{"orderDetails", 62, func(o domain.Order, _ i18n.Locale) string { return o.OrderDetails }},
		{"deliveryType", 30, func(o domain.Order, l i18n.Locale) string { return i18n.Translate(l, o.DeliveryType) }},
		{"status", 28, func(o domain.Order, l i18n.Locale) string { return i18n.Translate(l, string(o.CookStatus)) }},
		{"totalAmount", 38, func(o domain.Order, l i18n.Locale) string {
			return i18n.FormatCurrency(domain.ParseAmount(o.TotalPayment), l)
		}},
	}
	if l.IsRTL() {
		// right-to-left readers scan the table from the right edge, so the
		// column order is reversed before any geometry is computed
		for i, j := 0, len(cols)-1; i < j; i, j = i+1, j-1 {
			cols[i], cols[j] = cols[j], cols[i]
		}
	}
	return cols
}

// drawTableHeader paints the shaded header row and returns the x offset
// of each column boundary. Re-invoked after every page break.
func (b *builder) drawTableHeader(cols []column) {
	b.pdf.SetFillColor(52, 73, 94)
	b.pdf.Rect(pageMargin, b.y, b.pageW-2*pageMargin, headerHeight, "F")
	x := pageMargin
	for _, c := range cols {
		b.AddText(b.tr(c.key), x+c.width/2, b.y+headerHeight-3, TextStyle{
			Size: 9, Bold: true, Color: [3]int{255, 255, 255}, Align: "C", MaxWidth: c.width - 2,
		})
		x += c.width
	}
	b.y += headerHeight
}

func (b *builder) drawTableRow(cols []column, o domain.Order, shaded bool) {
	if b.checkPageBreak(rowHeight) {
		b.drawTableHeader(cols)
	}
	if shaded {
		b.pdf.SetFillColor(245, 246, 247)
		b.pdf.Rect(pageMargin, b.y, b.pageW-2*pageMargin, rowHeight, "F")
	}
	x := pageMargin
	for _, c := range cols {
		b.AddText(c.value(o, b.locale), x+c.width/2, b.y+rowHeight-2.5, TextStyle{
			Size: 9, Color: [3]int{40, 40, 40}, Align: "C", MaxWidth: c.width - 2,
		})
		x += c.width
	}
	b.y += rowHeight
}

func (b *builder) drawSummary(orders []domain.Order) {
	b.checkPageBreak(30)
	b.y += 6
	b.separator()
	b.AddText(b.tr("orderSummary"), pageMargin, b.y+6, TextStyle{Size: 12, Bold: true, Color: [3]int{44, 62, 80}})
	b.y += 10

	total := decimal.Zero
	counts := map[domain.CookStatus]int{}
	for _, o := range orders {
		total = total.Add(domain.ParseAmount(o.TotalPayment))
		counts[o.CookStatus]++
	}

	count := fmt.Sprintf("%s: %s", b.tr("totalOrders"),
		i18n.ToLocaleDigits(fmt.Sprintf("%d", len(orders)), b.locale))
	b.AddText(count, pageMargin, b.y+5, TextStyle{Size: 10, Color: [3]int{60, 60, 60}})
	b.y += lineGap

	sum := fmt.Sprintf("%s: %s", b.tr("totalAmount"), i18n.FormatCurrency(total, b.locale))
	b.AddText(sum, pageMargin, b.y+5, TextStyle{Size: 10, Color: [3]int{60, 60, 60}})
	b.y += lineGap

	for _, st := range []domain.CookStatus{domain.CookPending, domain.CookPreparing, domain.CookReady, domain.CookDelivered} {
		if counts[st] == 0 {
			continue
		}
		line := fmt.Sprintf("%s: %s", b.tr(string(st)),
			i18n.ToLocaleDigits(fmt.Sprintf("%d", counts[st]), b.locale))
		b.AddText(line, pageMargin+6, b.y+5, TextStyle{Size: 9, Color: [3]int{100, 100, 100}})
		b.y += 6
	}
}

// ReportPDF draws the daily orders report without a browser. The layout
// is landscape to fit the order table; an empty order list produces a
// document with just the header and a notice.
func (g *Generator) ReportPDF(orders []domain.Order, locale i18n.Locale, showSummary bool, now time.Time) ([]byte, error) {
	b := g.newBuilder("L", locale)
	b.heading(b.tr("todayOrders"))
	b.generatedLine(now)
	b.separator()

	if len(orders) == 0 {
		b.y += 20
		b.AddText(b.tr("noOrders"), b.pageW/2, b.y, TextStyle{Size: 13, Color: [3]int{120, 120, 120}, Align: "C"})
		return b.output()
	}

	cols := reportColumns(locale)
	b.drawTableHeader(cols)
	for i, o := range orders {
		b.drawTableRow(cols, o, i%2 == 1)
	}
	if showSummary {
		b.drawSummary(orders)
	}
	return b.output()
}
