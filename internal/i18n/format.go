package i18n

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Omani rial, the dashboard's only currency.
const (
	currencyCodeEn   = "OMR"
	currencySymbolAr = "ر.ع."
)

var arabicIndicDigits = map[rune]rune{
	'0': '٠', '1': '١', '2': '٢', '3': '٣', '4': '٤',
	'5': '٥', '6': '٦', '7': '٧', '8': '٨', '9': '٩',
}

// ToLocaleDigits maps ASCII digits to Arabic-Indic glyphs one-for-one for
// the Arabic locale; identity otherwise.
func ToLocaleDigits(text string, l Locale) string {
	if l != LocaleAr {
		return text
	}
	return strings.Map(func(r rune) rune {
		if d, ok := arabicIndicDigits[r]; ok {
			return d
		}
		return r
	}, text)
}

// FormatCurrency renders an amount with three fraction digits: "OMR 1.500"
// for English, "١.٥٠٠ ر.ع." for Arabic. The separator stays the ASCII dot
// in both locales; only the digits are localized. Zero and negative
// amounts format normally.
func FormatCurrency(amount decimal.Decimal, l Locale) string {
	fixed := amount.StringFixed(3)
	if l == LocaleAr {
		return ToLocaleDigits(fixed, l) + " " + currencySymbolAr
	}
	return currencyCodeEn + " " + fixed
}

// FormatDateTime renders a human-readable Gregorian date+time. Arabic uses
// d/m/yyyy with a 12-hour clock and the ص/م markers, in Arabic-Indic digits.
func FormatDateTime(t time.Time, l Locale) string {
	if l == LocaleAr {
		hour12 := t.Hour() % 12
		if hour12 == 0 {
			hour12 = 12
		}
		marker := "ص"
		if t.Hour() >= 12 {
			marker = "م"
		}
		s := fmt.Sprintf("%d/%d/%d - %d:%02d %s",
			t.Day(), int(t.Month()), t.Year(), hour12, t.Minute(), marker)
		return ToLocaleDigits(s, l)
	}
	return t.Format("1/2/2006 3:04:05 PM")
}
