package doc

import (
	"strings"
	"testing"
	"time"

	"catering-service/internal/domain"
	"catering-service/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 1, 20, 14, 30, 0, 0, time.UTC)

func sampleOrder() domain.Order {
	o := domain.Order{
		OrderID:        "ord-1",
		ReceiptNo:      "R-100",
		Name:           "Salim Al-Harthy",
		PhoneNumber:    "+968 9123 4567",
		Address:        "Muscat, Al Khuwair",
		OrderDetails:   "2x kabsa, 1x salad",
		Date:           "2025-01-20",
		Time:           "14:00",
		TotalPayment:   "10.000",
		AdvancePayment: "4.000",
		Discount:       "1.000",
		PaymentType:    domain.PaymentCash,
		CookStatus:     domain.CookPreparing,
	}
	o.Normalize()
	return o
}

func TestBuildReceiptBasics(t *testing.T) {
	html, err := BuildReceipt(sampleOrder(), ReceiptOptions{Locale: i18n.LocaleEn, Now: testNow})
	require.NoError(t, err)

	assert.Contains(t, html, `dir="ltr" lang="en"`)
	assert.Contains(t, html, "Receipt No: R-100")
	assert.Contains(t, html, "Salim Al-Harthy")
	assert.Contains(t, html, "OMR 10.000")
	// balance = 10 - 1 - 4 = 5
	assert.Contains(t, html, "OMR 5.000")
	assert.Contains(t, html, "Preparing")
	assert.NotContains(t, html, "window.print", "no auto-print unless requested")
}

func TestBuildReceiptArabic(t *testing.T) {
	html, err := BuildReceipt(sampleOrder(), ReceiptOptions{Locale: i18n.LocaleAr, Now: testNow, AutoPrint: true})
	require.NoError(t, err)

	assert.Contains(t, html, `dir="rtl" lang="ar"`)
	assert.Contains(t, html, "رقم الإيصال")
	assert.Contains(t, html, "قيد التحضير")
	assert.Contains(t, html, "ر.ع.")
	assert.Contains(t, html, "window.print")
}

func TestBuildReceiptTruncatesLongReceiptNo(t *testing.T) {
	o := sampleOrder()
	o.ReceiptNo = strings.Repeat("X", 30)

	html, err := BuildReceipt(o, ReceiptOptions{Locale: i18n.LocaleEn, Now: testNow})
	require.NoError(t, err)

	// 25 chars then ellipsis on display, full value in the title attribute.
	assert.Contains(t, html, strings.Repeat("X", 25)+"...")
	assert.NotContains(t, html, strings.Repeat("X", 26)+"...")
	assert.Contains(t, html, `title="`+strings.Repeat("X", 30)+`"`)
}

func TestBuildReceiptLogoFallback(t *testing.T) {
	// No logo available: placeholder box with the locale's label.
	html, err := BuildReceipt(sampleOrder(), ReceiptOptions{Locale: i18n.LocaleEn, Now: testNow})
	require.NoError(t, err)
	assert.Contains(t, html, `class="logo-placeholder"`)
	assert.Contains(t, html, "Company Logo")

	ar, err := BuildReceipt(sampleOrder(), ReceiptOptions{Locale: i18n.LocaleAr, Now: testNow})
	require.NoError(t, err)
	assert.Contains(t, ar, "شعار الشركة")

	// With a data URI the image tag is used instead.
	withLogo, err := BuildReceipt(sampleOrder(), ReceiptOptions{
		Locale:      i18n.LocaleEn,
		LogoDataURL: "data:image/png;base64,aGVsbG8=",
		Now:         testNow,
	})
	require.NoError(t, err)
	assert.Contains(t, withLogo, `src="data:image/png;base64,aGVsbG8="`)
	assert.NotContains(t, withLogo, `class="logo-placeholder"`)
}

func TestBuildReceiptEscapesUserText(t *testing.T) {
	o := sampleOrder()
	o.Name = `<script>alert("x")</script>`
	o.OrderDetails = `1x <b>kabsa</b> & rice`

	html, err := BuildReceipt(o, ReceiptOptions{Locale: i18n.LocaleEn, Now: testNow})
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert`)
	assert.NotContains(t, html, "<b>kabsa</b>")
	assert.Contains(t, html, "&amp; rice")
}

func TestBuildReceiptMissingFieldsRenderPlaceholders(t *testing.T) {
	o := domain.Order{OrderID: "ord-2"}
	o.Normalize()

	html, err := BuildReceipt(o, ReceiptOptions{Locale: i18n.LocaleEn, Now: testNow})
	require.NoError(t, err)

	// The grid stays rectangular: missing optional fields show N/A.
	assert.GreaterOrEqual(t, strings.Count(html, ">N/A<"), 5)
	assert.Contains(t, html, "Receipt No: ord-2")
}

func TestBuildReceiptUnknownLocaleDefaultsToEnglish(t *testing.T) {
	html, err := BuildReceipt(sampleOrder(), ReceiptOptions{Locale: "xx", Now: testNow})
	require.NoError(t, err)
	assert.Contains(t, html, `lang="en"`)
}
