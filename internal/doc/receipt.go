package doc

import (
	"html/template"
	"strings"

	"catering-service/internal/domain"
	"catering-service/internal/i18n"
)

type receiptView struct {
	Lang      string
	Dir       string
	IsArabic  bool
	Title     string
	AutoPrint bool

	PrintLabel string

	LogoURL          template.URL
	CompanyLogoLabel string

	ReceiptNoLabel   string
	ReceiptNoDisplay string
	ReceiptNoFull    string

	CustomerFields []fieldView
	OrderFields    []fieldView

	StatusLabel string
	StatusValue string
	StatusClass string

	OrderDetailsLabel string
	OrderDetails      string

	PaymentFields []fieldView

	ThankYou    string
	GeneratedOn string
}

// BuildReceipt produces the complete styled receipt markup for one order.
// It is total over well-formed input; an unknown locale falls back to en.
func BuildReceipt(o domain.Order, opts ReceiptOptions) (string, error) {
	l := i18n.ParseLocale(string(opts.Locale))
	lang, dir := langAttrs(l)

	tr := func(key string) string { return i18n.Translate(l, key) }
	displayNo := o.DisplayNo()
	if displayNo == "" {
		displayNo = tr("na")
	}

	v := receiptView{
		Lang:       lang,
		Dir:        dir,
		IsArabic:   l.IsRTL(),
		Title:      tr("receipt"),
		AutoPrint:  opts.AutoPrint,
		PrintLabel: tr("printSave"),

		LogoURL:          template.URL(opts.LogoDataURL),
		CompanyLogoLabel: tr("companyLogo"),

		ReceiptNoLabel:   tr("receiptNo"),
		ReceiptNoDisplay: truncateDisplayNo(displayNo),
		ReceiptNoFull:    displayNo,

		CustomerFields: []fieldView{
			{Label: tr("customer"), Value: naOr(l, o.Name)},
			{Label: tr("phoneNumber"), Value: naOr(l, o.PhoneNumber)},
			{Label: tr("address"), Value: naOr(l, o.Address)},
		},
		OrderFields: []fieldView{
			{Label: tr("date"), Value: naOr(l, o.Date)},
			{Label: tr("time"), Value: naOr(l, o.Time)},
			{Label: tr("deliveryType"), Value: translateValue(l, o.DeliveryType)},
		},

		StatusLabel: tr("status"),
		StatusValue: translateValue(l, string(o.CookStatus)),
		StatusClass: statusClass(o.CookStatus),

		OrderDetailsLabel: tr("orderDetails"),
		OrderDetails:      naOr(l, o.OrderDetails),

		PaymentFields: []fieldView{
			{Label: tr("totalAmount"), Value: i18n.FormatCurrency(domain.ParseAmount(o.TotalPayment), l), Amount: true},
			{Label: tr("discount"), Value: i18n.FormatCurrency(domain.ParseAmount(o.Discount), l)},
			{Label: tr("advancePayment"), Value: i18n.FormatCurrency(domain.ParseAmount(o.AdvancePayment), l)},
			{Label: tr("balancePayment"), Value: i18n.FormatCurrency(o.Balance(), l)},
			{Label: tr("paymentType"), Value: translateValue(l, string(o.PaymentType))},
			{Label: tr("paymentStatus"), Value: translateValue(l, string(o.PaymentStatus))},
		},

		ThankYou:    tr("thankYou"),
		GeneratedOn: tr("generatedOn") + ": " + i18n.FormatDateTime(opts.Now, l),
	}

	var b strings.Builder
	if err := receiptTmpl.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

var receiptTmpl = mustParse("receipt", `<!DOCTYPE html>
<html dir="{{.Dir}}" lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link href="https://fonts.googleapis.com/css2?family=Amiri:wght@400;700&display=swap" rel="stylesheet">
  <link href="https://fonts.googleapis.com/css2?family=Noto+Sans+Arabic:wght@400;700&display=swap" rel="stylesheet">
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: {{if .IsArabic}}'Noto Sans Arabic', 'Amiri', 'Arial Unicode MS', sans-serif{{else}}'Helvetica Neue', 'Helvetica', 'Arial', sans-serif{{end}};
      direction: {{.Dir}};
      background: #ffffff;
      color: #1e293b;
      font-size: 12px;
      line-height: 1.6;
      padding: 20px;
    }
    .receipt-container {
      max-width: 800px;
      margin: 0 auto;
      background: white;
      border: 2px solid #e2e8f0;
      border-radius: 12px;
      overflow: hidden;
    }
    .header {
      padding: 30px 20px;
      text-align: center;
      border-bottom: 2px solid #e5e7eb;
    }
    .logo { width: 120px; height: 80px; object-fit: contain; margin: 0 auto 20px; display: block; }
    .logo-placeholder {
      width: 120px;
      height: 80px;
      border: 2px dashed #cbd5e1;
      border-radius: 8px;
      margin: 0 auto 20px;
      display: flex;
      align-items: center;
      justify-content: center;
      font-size: 10px;
      color: #94a3b8;
    }
    .receipt-number {
      background: #2563eb;
      color: white;
      padding: 12px 24px;
      border-radius: 25px;
      font-size: 18px;
      font-weight: bold;
      display: inline-block;
      min-width: 200px;
      max-width: 400px;
      white-space: nowrap;
      overflow: hidden;
      text-overflow: ellipsis;
    }
    .content { padding: 30px 20px; }
    .section { margin-bottom: 25px; }
    .info-grid {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
      gap: 15px;
    }
    .info-item {
      background: #f8fafc;
      padding: 15px;
      border-radius: 8px;
      border: 1px solid #e2e8f0;
    }
    .info-label {
      font-size: 11px;
      color: #6b7280;
      margin-bottom: 5px;
      font-weight: 600;
      text-transform: uppercase;
    }
    .info-value { font-size: 14px; color: #1f2937; font-weight: 500; }
    .amount { font-size: 18px; font-weight: bold; color: #059669; }
    .status-badge {
      padding: 6px 12px;
      border-radius: 20px;
      font-size: 12px;
      font-weight: 600;
      text-transform: uppercase;
      display: inline-block;
    }
    .status-pending { background: #fef3c7; color: #92400e; }
    .status-preparing { background: #fde68a; color: #92400e; }
    .status-ready { background: #bbf7d0; color: #166534; }
    .status-delivered { background: #dcfce7; color: #166534; }
    .order-details-box {
      background: #f8fafc;
      padding: 20px;
      border-radius: 8px;
      border: 1px solid #e2e8f0;
      margin-top: 15px;
    }
    .footer {
      background: #f8fafc;
      padding: 20px;
      text-align: center;
      border-top: 1px solid #e2e8f0;
    }
    .thank-you { font-size: 16px; color: #2563eb; font-weight: bold; margin-bottom: 10px; }
    .generated-info { font-size: 11px; color: #6b7280; }
    @media print {
      body { print-color-adjust: exact; -webkit-print-color-adjust: exact; }
      .receipt-container { border: none; }
      button { display: none !important; }
      .receipt-number { background: #2563eb !important; color: white !important; }
    }
  </style>
  {{template "autoprint" .}}
</head>
<body>
  <div class="receipt-container">
    <div class="header">
      {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="Company Logo">{{else}}<div class="logo-placeholder">{{.CompanyLogoLabel}}</div>{{end}}
      <div class="receipt-number" title="{{.ReceiptNoFull}}">{{.ReceiptNoLabel}}: {{.ReceiptNoDisplay}}</div>
    </div>
    <div class="content">
      <div class="section">
        <div class="info-grid">
          {{range .CustomerFields}}<div class="info-item">
            <div class="info-label">{{.Label}}</div>
            <div class="info-value">{{.Value}}</div>
          </div>
          {{end}}
        </div>
      </div>
      <div class="section">
        <div class="info-grid">
          {{range .OrderFields}}<div class="info-item">
            <div class="info-label">{{.Label}}</div>
            <div class="info-value">{{.Value}}</div>
          </div>
          {{end}}<div class="info-item">
            <div class="info-label">{{.StatusLabel}}</div>
            <div class="status-badge {{.StatusClass}}">{{.StatusValue}}</div>
          </div>
        </div>
        <div class="order-details-box">
          <div class="info-label">{{.OrderDetailsLabel}}</div>
          <div class="info-value">{{.OrderDetails}}</div>
        </div>
      </div>
      <div class="section">
        <div class="info-grid">
          {{range .PaymentFields}}<div class="info-item">
            <div class="info-label">{{.Label}}</div>
            <div class="info-value{{if .Amount}} amount{{end}}">{{.Value}}</div>
          </div>
          {{end}}
        </div>
      </div>
    </div>
    <div class="footer">
      <div class="thank-you">{{.ThankYou}}</div>
      <div class="generated-info">{{.GeneratedOn}}</div>
    </div>
  </div>
</body>
</html>
`)
