// Package doc builds the printable markup documents: a single-order receipt
// and a multi-order report. Builders are pure functions over their inputs;
// all user-supplied text goes through html/template so characters with
// markup meaning are neutralized.
package doc

import (
	"html/template"
	"strings"
	"time"

	"catering-service/internal/domain"
	"catering-service/internal/i18n"
)

// receipt numbers longer than this are shortened for display, with the full
// value kept in the title attribute
const maxReceiptNoDisplay = 25

type ReceiptOptions struct {
	Locale i18n.Locale
	// LogoDataURL is an inline data: URI for the header logo. Empty means
	// render the placeholder box instead.
	LogoDataURL string
	AutoPrint   bool
	Now         time.Time
}

type ReportOptions struct {
	Locale      i18n.Locale
	ShowSummary bool
	AutoPrint   bool
	Now         time.Time
}

type fieldView struct {
	Label string
	Value string
	// Amount marks monetary values for the accent style.
	Amount bool
}

// naOr substitutes the locale's "not available" placeholder so the info
// grids stay rectangular even when optional fields are missing.
func naOr(l i18n.Locale, v string) string {
	if strings.TrimSpace(v) == "" {
		return i18n.Translate(l, "na")
	}
	return v
}

// translateValue resolves canonical status/delivery/payment values and
// passes free text through unchanged.
func translateValue(l i18n.Locale, v string) string {
	if strings.TrimSpace(v) == "" {
		return i18n.Translate(l, "na")
	}
	return i18n.Translate(l, strings.ToLower(v))
}

func truncateDisplayNo(no string) string {
	r := []rune(no)
	if len(r) <= maxReceiptNoDisplay {
		return no
	}
	return string(r[:maxReceiptNoDisplay]) + "..."
}

func statusClass(s domain.CookStatus) string {
	return "status-" + strings.ToLower(string(s))
}

func langAttrs(l i18n.Locale) (lang, dir string) {
	if l.IsRTL() {
		return "ar", "rtl"
	}
	return "en", "ltr"
}

// ReportFilename suggests a download name for the report document.
func ReportFilename(l i18n.Locale, now time.Time, degraded bool) string {
	date := now.Format("2006-01-02")
	switch {
	case degraded && l == i18n.LocaleAr:
		return "طلبات-اليوم-" + date + "-fallback.html"
	case degraded:
		return "today-orders-" + date + "-fallback.html"
	case l == i18n.LocaleAr:
		return "طلبات-اليوم-" + date + ".pdf"
	default:
		return "today-orders-" + date + ".pdf"
	}
}

// ReceiptFilename suggests a download name for a receipt document.
func ReceiptFilename(l i18n.Locale, o domain.Order, now time.Time, degraded bool) string {
	no := o.DisplayNo()
	if no == "" {
		no = "unknown"
	}
	date := now.Format("2006-01-02")
	prefix := "receipt-"
	if l == i18n.LocaleAr {
		prefix = "إيصال-"
	}
	if degraded {
		return prefix + "fallback-" + no + "-" + date + ".html"
	}
	return prefix + no + "-" + date + ".pdf"
}

// autoPrintScript is shared by both documents. On load it waits a settle
// delay for fonts and images, then triggers printing once; if that is not
// possible it installs a visible print button so the document stays usable.
const autoPrintScript = `{{define "autoprint"}}{{if .AutoPrint}}
    <script>
      window.addEventListener('load', function () {
        setTimeout(function () {
          if (typeof window !== 'undefined' && window.print) {
            try {
              window.print();
            } catch (err) {
              var btn = document.createElement('button');
              btn.textContent = {{.PrintLabel}};
              btn.style.cssText = 'position:fixed;top:20px;right:20px;z-index:9999;' +
                'background:#2563eb;color:white;border:none;padding:12px 24px;' +
                'border-radius:8px;font-size:14px;font-weight:bold;cursor:pointer;';
              btn.onclick = function () { window.print(); };
              document.body.appendChild(btn);
            }
          }
        }, 1500);
      });
      if (document.fonts && document.fonts.ready) {
        document.fonts.ready.then(function () {
          setTimeout(function () {
            if (window.print && !document.querySelector('button')) {
              try { window.print(); } catch (err) {}
            }
          }, 1000);
        });
      }
    </script>
{{end}}{{end}}`

func mustParse(name, body string) *template.Template {
	return template.Must(template.Must(template.New(name).Parse(body)).Parse(autoPrintScript))
}
