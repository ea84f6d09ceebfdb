package doc

import (
	"testing"

	"catering-service/internal/domain"
	"catering-service/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportEmptyOrders(t *testing.T) {
	html, err := BuildReport(nil, ReportOptions{Locale: i18n.LocaleEn, Now: testNow})
	require.NoError(t, err)

	assert.Contains(t, html, "No Orders to Display")
	assert.NotContains(t, html, `class="order-card"`)

	ar, err := BuildReport([]domain.Order{}, ReportOptions{Locale: i18n.LocaleAr, Now: testNow})
	require.NoError(t, err)
	assert.Contains(t, ar, "لا توجد طلبات للعرض")
	assert.NotContains(t, ar, `class="order-card"`)
}

func TestBuildReportCardsAndSummary(t *testing.T) {
	a := sampleOrder()
	b := sampleOrder()
	b.OrderID = "ord-2"
	b.ReceiptNo = "R-200"
	b.Name = "Maryam Al-Busaidi"
	b.TotalPayment = "5.250"
	b.CookStatus = domain.CookReady

	html, err := BuildReport([]domain.Order{a, b}, ReportOptions{
		Locale:      i18n.LocaleEn,
		ShowSummary: true,
		Now:         testNow,
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Salim Al-Harthy")
	assert.Contains(t, html, "Maryam Al-Busaidi")
	assert.Contains(t, html, "Receipt No: R-100")
	assert.Contains(t, html, "Receipt No: R-200")

	// summary aggregates
	assert.Contains(t, html, "Order Summary")
	assert.Contains(t, html, "OMR 15.250")
	assert.Contains(t, html, "Status Breakdown")
	assert.Contains(t, html, "Preparing")
	assert.Contains(t, html, "Ready")
}

func TestBuildReportSummaryHiddenWhenEmptyOrDisabled(t *testing.T) {
	html, err := BuildReport(nil, ReportOptions{Locale: i18n.LocaleEn, ShowSummary: true, Now: testNow})
	require.NoError(t, err)
	assert.NotContains(t, html, `class="summary-section"`)

	html, err = BuildReport([]domain.Order{sampleOrder()}, ReportOptions{Locale: i18n.LocaleEn, Now: testNow})
	require.NoError(t, err)
	assert.NotContains(t, html, `class="summary-section"`)
}

func TestBuildReportAutoPrint(t *testing.T) {
	html, err := BuildReport([]domain.Order{sampleOrder()}, ReportOptions{
		Locale:    i18n.LocaleAr,
		AutoPrint: true,
		Now:       testNow,
	})
	require.NoError(t, err)

	assert.Contains(t, html, "window.print")
	assert.Contains(t, html, `dir="rtl" lang="ar"`)
}

func TestBuildReportEscapesUserText(t *testing.T) {
	o := sampleOrder()
	o.OrderDetails = `<img src=x onerror=alert(1)>`

	html, err := BuildReport([]domain.Order{o}, ReportOptions{Locale: i18n.LocaleEn, Now: testNow})
	require.NoError(t, err)
	assert.NotContains(t, html, "<img src=x")
}

func TestFilenames(t *testing.T) {
	o := sampleOrder()

	assert.Equal(t, "today-orders-2025-01-20.pdf", ReportFilename(i18n.LocaleEn, testNow, false))
	assert.Equal(t, "طلبات-اليوم-2025-01-20.pdf", ReportFilename(i18n.LocaleAr, testNow, false))
	assert.Equal(t, "today-orders-2025-01-20-fallback.html", ReportFilename(i18n.LocaleEn, testNow, true))

	assert.Equal(t, "receipt-R-100-2025-01-20.pdf", ReceiptFilename(i18n.LocaleEn, o, testNow, false))
	assert.Equal(t, "إيصال-R-100-2025-01-20.pdf", ReceiptFilename(i18n.LocaleAr, o, testNow, false))
	assert.Equal(t, "receipt-fallback-R-100-2025-01-20.html", ReceiptFilename(i18n.LocaleEn, o, testNow, true))
}
