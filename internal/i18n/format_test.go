package i18n

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		locale Locale
		want   string
	}{
		{name: "english basic", amount: decimal.RequireFromString("12.5"), locale: LocaleEn, want: "OMR 12.500"},
		{name: "english zero keeps three digits", amount: decimal.Zero, locale: LocaleEn, want: "OMR 0.000"},
		{name: "english negative", amount: decimal.RequireFromString("-3.25"), locale: LocaleEn, want: "OMR -3.250"},
		{name: "arabic uses arabic-indic digits", amount: decimal.RequireFromString("12.5"), locale: LocaleAr, want: "١٢.٥٠٠ ر.ع."},
		{name: "arabic zero keeps three digits", amount: decimal.Zero, locale: LocaleAr, want: "٠.٠٠٠ ر.ع."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount, tt.locale))
		})
	}
}

func TestToLocaleDigits(t *testing.T) {
	assert.Equal(t, "٠١٢٣٤٥٦٧٨٩", ToLocaleDigits("0123456789", LocaleAr))
	assert.Equal(t, "0123456789", ToLocaleDigits("0123456789", LocaleEn))
	// Non-digits pass through untouched.
	assert.Equal(t, "رقم ٧-أ", ToLocaleDigits("رقم 7-أ", LocaleAr))
}

func TestFormatDateTime(t *testing.T) {
	morning := time.Date(2025, 1, 20, 9, 5, 0, 0, time.UTC)
	evening := time.Date(2025, 1, 20, 21, 5, 9, 0, time.UTC)

	assert.Equal(t, "1/20/2025 9:05:00 AM", FormatDateTime(morning, LocaleEn))
	assert.Equal(t, "1/20/2025 9:05:09 PM", FormatDateTime(evening, LocaleEn))

	ar := FormatDateTime(morning, LocaleAr)
	assert.Contains(t, ar, "ص")
	assert.NotContains(t, ar, "9", "arabic output keeps no ASCII digits")

	arEvening := FormatDateTime(evening, LocaleAr)
	assert.Contains(t, arEvening, "م")
}

func TestTranslate(t *testing.T) {
	// Known keys resolve for both locales.
	assert.Equal(t, "في الانتظار", Translate(LocaleAr, "pending"))
	assert.Equal(t, "Pending", Translate(LocaleEn, "pending"))
	assert.Equal(t, "شعار الشركة", Translate(LocaleAr, "companyLogo"))
	assert.Equal(t, "No Orders to Display", Translate(LocaleEn, "noOrders"))

	// Unknown keys fall back to identity, never panic.
	assert.Equal(t, "some.unknown.key", Translate(LocaleAr, "some.unknown.key"))
	assert.Equal(t, "some.unknown.key", Translate(LocaleEn, "some.unknown.key"))

	// Every status, delivery, payment and chrome label family is covered.
	for _, key := range []string{
		"pending", "preparing", "ready", "delivered", "paid", "unpaid",
		"cancelled", "completed", "pickup", "delivery", "home-delivery",
		"cash", "atm", "transfer", "receipt", "generatedOn", "noOrders",
		"receiptNo", "customer", "orderDetails", "phoneNumber", "date",
		"time", "totalAmount",
	} {
		assert.NotEqual(t, key, Translate(LocaleAr, key), "missing arabic label for %s", key)
	}
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleAr, ParseLocale("ar"))
	assert.Equal(t, LocaleEn, ParseLocale("en"))
	assert.Equal(t, LocaleEn, ParseLocale("fr"))
	assert.Equal(t, LocaleEn, ParseLocale(""))
}
