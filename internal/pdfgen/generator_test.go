package pdfgen

import (
	"strings"
	"testing"
	"time"

	"catering-service/internal/domain"
	"catering-service/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 1, 20, 14, 30, 0, 0, time.UTC)

func runeWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestTruncateToWidthLTR(t *testing.T) {
	got := truncateToWidth("abcdefghij", 8, false, runeWidth)
	assert.Equal(t, "abcde...", got)
	assert.True(t, strings.HasSuffix(got, ellipsis))
}

func TestTruncateToWidthRTL(t *testing.T) {
	got := truncateToWidth("ابتثجحخدذر", 8, true, runeWidth)
	assert.Equal(t, "...جحخدذر", got)
	assert.True(t, strings.HasPrefix(got, ellipsis))
	// the kept portion is the tail of the original
	assert.True(t, strings.HasSuffix("ابتثجحخدذر", strings.TrimPrefix(got, ellipsis)))
}

func TestTruncateToWidthFits(t *testing.T) {
	assert.Equal(t, "short", truncateToWidth("short", 10, false, runeWidth))
	assert.Equal(t, "short", truncateToWidth("short", 0, false, runeWidth))
}

func TestReportColumnsReversedForArabic(t *testing.T) {
	en := reportColumns(i18n.LocaleEn)
	ar := reportColumns(i18n.LocaleAr)
	require.Equal(t, len(en), len(ar))
	for i := range en {
		assert.Equal(t, en[i].key, ar[len(ar)-1-i].key)
	}
	assert.Equal(t, "receiptNo", en[0].key)
	assert.Equal(t, "receiptNo", ar[len(ar)-1].key)
}

func TestArabicToEnglishKnownPhrases(t *testing.T) {
	assert.Equal(t, "Today's Orders", arabicToEnglish("طلبات اليوم"))
	assert.Equal(t, "Receipt No: 123", arabicToEnglish("رقم الإيصال: ١٢٣"))
	assert.Equal(t, "12.500 OMR", arabicToEnglish("١٢.٥٠٠ ر.ع."))
	// unknown text passes through
	assert.Equal(t, "hello", arabicToEnglish("hello"))
}

func TestCoreFontStrategyProbe(t *testing.T) {
	s := coreFontStrategy{}
	assert.True(t, s.canDraw("Receipt No: R-100"))
	assert.False(t, s.canDraw("إيصال"))
}

func sampleOrder() domain.Order {
	o := domain.Order{
		OrderID:        "b2a7c6ce-1111-4f2a-9df3-000000000001",
		ReceiptNo:      "R-100",
		Name:           "Salim Al-Harthy",
		PhoneNumber:    "99887766",
		Address:        "Al Khuwair, Muscat",
		OrderDetails:   "2x Chicken Mandi, 1x Salad",
		Date:           "20/1/2025",
		Time:           "2:30 PM",
		TotalPayment:   "10.000",
		AdvancePayment: "4.000",
		Discount:       "1.000",
		PaymentType:    domain.PaymentCash,
		PaymentStatus:  domain.PaymentUnpaid,
		DeliveryType:   domain.DeliveryHome,
		CookStatus:     domain.CookPreparing,
	}
	o.Normalize()
	return o
}

func TestReportPDFEnglish(t *testing.T) {
	g := NewGenerator(zap.NewNop(), "")
	out, err := g.ReportPDF([]domain.Order{sampleOrder()}, i18n.LocaleEn, true, testNow)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out[:5]), "%PDF-"))
}

func TestReportPDFEmpty(t *testing.T) {
	g := NewGenerator(zap.NewNop(), "")
	out, err := g.ReportPDF(nil, i18n.LocaleEn, true, testNow)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out[:5]), "%PDF-"))
}

// Without an Arabic font on disk the Arabic path must still produce a
// valid document via the phrase-table fallback.
func TestReportPDFArabicWithoutFont(t *testing.T) {
	g := NewGenerator(zap.NewNop(), "")
	out, err := g.ReportPDF([]domain.Order{sampleOrder()}, i18n.LocaleAr, true, testNow)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out[:5]), "%PDF-"))
}

func TestReceiptPDFBothLocales(t *testing.T) {
	g := NewGenerator(zap.NewNop(), "")
	for _, l := range []i18n.Locale{i18n.LocaleEn, i18n.LocaleAr} {
		out, err := g.ReceiptPDF(sampleOrder(), l, testNow)
		require.NoError(t, err, "locale %s", l)
		assert.True(t, strings.HasPrefix(string(out[:5]), "%PDF-"), "locale %s", l)
	}
}

func TestReceiptPDFLongReceiptNo(t *testing.T) {
	g := NewGenerator(zap.NewNop(), "")
	o := sampleOrder()
	o.ReceiptNo = strings.Repeat("X", 40)
	out, err := g.ReceiptPDF(o, i18n.LocaleEn, testNow)
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestNewGeneratorMissingFont(t *testing.T) {
	g := NewGenerator(zap.NewNop(), "/nonexistent/font.ttf")
	assert.Empty(t, g.fontPath)
	assert.Nil(t, g.fontBytes)
}
