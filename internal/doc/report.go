package doc

import (
	"sort"
	"strings"

	"catering-service/internal/domain"
	"catering-service/internal/i18n"
	"github.com/shopspring/decimal"
)

type reportCard struct {
	ReceiptNo   string
	StatusValue string
	StatusClass string
	Fields      []fieldView
	Details     string
}

type statusCount struct {
	Label string
	Count int
}

type reportView struct {
	Lang      string
	Dir       string
	IsArabic  bool
	Title     string
	AutoPrint bool

	PrintLabel  string
	GeneratedOn string

	NoOrders string
	Cards    []reportCard

	ShowSummary       bool
	SummaryTitle      string
	TotalOrdersLabel  string
	TotalOrders       int
	TotalAmountLabel  string
	TotalAmount       string
	BreakdownLabel    string
	Breakdown         []statusCount
	OrderDetailsLabel string
}

// BuildReport produces the multi-order report markup. An empty orders slice
// renders the locale's "no orders" message and no cards.
func BuildReport(orders []domain.Order, opts ReportOptions) (string, error) {
	l := i18n.ParseLocale(string(opts.Locale))
	lang, dir := langAttrs(l)
	tr := func(key string) string { return i18n.Translate(l, key) }

	cards := make([]reportCard, 0, len(orders))
	total := decimal.Zero
	counts := map[string]int{}
	for _, o := range orders {
		displayNo := o.DisplayNo()
		if displayNo == "" {
			displayNo = tr("na")
		}
		cards = append(cards, reportCard{
			ReceiptNo:   tr("receiptNo") + ": " + displayNo,
			StatusValue: translateValue(l, string(o.CookStatus)),
			StatusClass: statusClass(o.CookStatus),
			Fields: []fieldView{
				{Label: tr("customer"), Value: naOr(l, o.Name)},
				{Label: tr("phoneNumber"), Value: naOr(l, o.PhoneNumber)},
				{Label: tr("deliveryType"), Value: translateValue(l, o.DeliveryType)},
				{Label: tr("date"), Value: naOr(l, o.Date)},
				{Label: tr("time"), Value: naOr(l, o.Time)},
				{Label: tr("totalAmount"), Value: i18n.FormatCurrency(domain.ParseAmount(o.TotalPayment), l), Amount: true},
			},
			Details: naOr(l, o.OrderDetails),
		})
		total = total.Add(domain.ParseAmount(o.TotalPayment))
		status := string(o.CookStatus)
		if status == "" {
			status = string(domain.CookPending)
		}
		counts[status]++
	}

	breakdown := make([]statusCount, 0, len(counts))
	for status, n := range counts {
		breakdown = append(breakdown, statusCount{Label: translateValue(l, status), Count: n})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Label < breakdown[j].Label })

	v := reportView{
		Lang:        lang,
		Dir:         dir,
		IsArabic:    l.IsRTL(),
		Title:       tr("todayOrders"),
		AutoPrint:   opts.AutoPrint,
		PrintLabel:  tr("printSave"),
		GeneratedOn: tr("generatedOn") + ": " + i18n.FormatDateTime(opts.Now, l),

		NoOrders: tr("noOrders"),
		Cards:    cards,

		ShowSummary:       opts.ShowSummary && len(orders) > 0,
		SummaryTitle:      tr("orderSummary"),
		TotalOrdersLabel:  tr("totalOrders"),
		TotalOrders:       len(orders),
		TotalAmountLabel:  tr("totalAmount"),
		TotalAmount:       i18n.FormatCurrency(total, l),
		BreakdownLabel:    tr("statusBreakdown"),
		Breakdown:         breakdown,
		OrderDetailsLabel: tr("orderDetails"),
	}

	var b strings.Builder
	if err := reportTmpl.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

var reportTmpl = mustParse("report", `<!DOCTYPE html>
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
    .container { max-width: 1200px; margin: 0 auto; background: white; }
    .header {
      text-align: center;
      margin-bottom: 40px;
      padding-bottom: 20px;
      border-bottom: 3px solid #e2e8f0;
    }
    .title { font-size: 28px; color: #2563eb; margin-bottom: 10px; font-weight: bold; }
    .subtitle { color: #64748b; font-size: 14px; }
    .orders-grid { display: grid; gap: 15px; }
    .order-card {
      border: 2px solid #e5e7eb;
      border-radius: 12px;
      padding: 20px;
      background: #f9fafb;
    }
    .order-header {
      display: flex;
      justify-content: space-between;
      align-items: center;
      margin-bottom: 15px;
      flex-wrap: wrap;
      gap: 10px;
    }
    .receipt-no {
      font-size: 16px;
      font-weight: bold;
      color: #1f2937;
      background: #dbeafe;
      padding: 4px 12px;
      border-radius: 6px;
    }
    .status-badge {
      padding: 6px 12px;
      border-radius: 20px;
      font-size: 12px;
      font-weight: 600;
      text-transform: uppercase;
    }
    .status-pending { background: #fef3c7; color: #92400e; }
    .status-preparing { background: #fde68a; color: #92400e; }
    .status-ready { background: #bbf7d0; color: #166534; }
    .status-delivered { background: #dcfce7; color: #166534; }
    .order-details {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
      gap: 15px;
      margin-top: 15px;
    }
    .detail-label {
      font-size: 11px;
      color: #6b7280;
      margin-bottom: 4px;
      font-weight: 600;
      text-transform: uppercase;
    }
    .detail-value { font-size: 13px; color: #1f2937; font-weight: 500; }
    .amount { font-size: 16px; font-weight: bold; color: #059669; }
    .details-box { margin-top: 15px; padding-top: 15px; border-top: 1px solid #e5e7eb; }
    .no-orders { text-align: center; padding: 60px 20px; color: #6b7280; font-size: 16px; }
    .summary-section {
      background: #f8fafc;
      border: 2px solid #e2e8f0;
      border-radius: 12px;
      padding: 25px;
      margin-top: 40px;
    }
    .summary-title { font-size: 20px; font-weight: bold; color: #1f2937; margin-bottom: 20px; }
    .summary-grid {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
      gap: 20px;
    }
    .summary-item { background: white; padding: 15px; border-radius: 8px; border: 1px solid #e5e7eb; }
    .summary-label { font-size: 12px; color: #6b7280; margin-bottom: 5px; }
    .summary-value { font-size: 18px; font-weight: bold; color: #1f2937; }
    .status-breakdown {
      display: grid;
      grid-template-columns: repeat(auto-fill, minmax(120px, 1fr));
      gap: 10px;
      margin-top: 15px;
    }
    .status-item { background: white; padding: 10px; border-radius: 6px; text-align: center; border: 1px solid #e5e7eb; }
    .status-count { font-size: 16px; font-weight: bold; color: #1f2937; }
    .status-label { font-size: 11px; color: #6b7280; margin-top: 2px; }
    @media print {
      body { print-color-adjust: exact; -webkit-print-color-adjust: exact; }
      .order-card { break-inside: avoid; page-break-inside: avoid; }
      button { display: none !important; }
    }
  </style>
  {{template "autoprint" .}}
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 class="title">{{.Title}}</h1>
      <div class="subtitle">{{.GeneratedOn}}</div>
    </div>
    {{if not .Cards}}
    <div class="no-orders"><p>{{.NoOrders}}</p></div>
    {{else}}
    <div class="orders-grid">
      {{range .Cards}}<div class="order-card">
        <div class="order-header">
          <div class="receipt-no">{{.ReceiptNo}}</div>
          <div class="status-badge {{.StatusClass}}">{{.StatusValue}}</div>
        </div>
        <div class="order-details">
          {{range .Fields}}<div class="detail-item">
            <div class="detail-label">{{.Label}}</div>
            <div class="detail-value{{if .Amount}} amount{{end}}">{{.Value}}</div>
          </div>
          {{end}}
        </div>
        <div class="details-box">
          <div class="detail-label">{{$.OrderDetailsLabel}}</div>
          <div class="detail-value">{{.Details}}</div>
        </div>
      </div>
      {{end}}
    </div>
    {{end}}
    {{if .ShowSummary}}
    <div class="summary-section">
      <h2 class="summary-title">{{.SummaryTitle}}</h2>
      <div class="summary-grid">
        <div class="summary-item">
          <div class="summary-label">{{.TotalOrdersLabel}}</div>
          <div class="summary-value">{{.TotalOrders}}</div>
        </div>
        <div class="summary-item">
          <div class="summary-label">{{.TotalAmountLabel}}</div>
          <div class="summary-value">{{.TotalAmount}}</div>
        </div>
      </div>
      <div class="status-breakdown">
        {{range .Breakdown}}<div class="status-item">
          <div class="status-count">{{.Count}}</div>
          <div class="status-label">{{.Label}}</div>
        </div>
        {{end}}
      </div>
    </div>
    {{end}}
  </div>
</body>
</html>
`)
