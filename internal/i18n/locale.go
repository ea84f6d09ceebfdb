package i18n

type Locale string

const (
	LocaleAr Locale = "ar"
	LocaleEn Locale = "en"
)

// ParseLocale maps anything that is not Arabic to English.
func ParseLocale(s string) Locale {
	if s == string(LocaleAr) {
		return LocaleAr
	}
	return LocaleEn
}

func (l Locale) IsRTL() bool {
	return l == LocaleAr
}

func (l Locale) Direction() Direction {
	if l.IsRTL() {
		return DirRTL
	}
	return DirLTR
}

// Translate looks key up in the locale's label set. A missing key comes back
// unchanged, so callers can pass through free-text values without guarding.
func Translate(l Locale, key string) string {
	var dict map[string]string
	if l == LocaleAr {
		dict = arabicLabels
	} else {
		dict = englishLabels
	}
	if v, ok := dict[key]; ok {
		return v
	}
	return key
}

var arabicLabels = map[string]string{
	"todayOrders":     "طلبات اليوم",
	"generatedOn":     "تاريخ الإنشاء",
	"noOrders":        "لا توجد طلبات للعرض",
	"receipt":         "إيصال",
	"receiptNo":       "رقم الإيصال",
	"customer":        "العميل",
	"customerInfo":    "معلومات العميل",
	"orderInfo":       "تفاصيل الطلب",
	"orderDetails":    "تفاصيل الطلب",
	"phoneNumber":     "رقم الهاتف",
	"address":         "العنوان",
	"deliveryType":    "نوع التوصيل",
	"date":            "التاريخ",
	"time":            "الوقت",
	"status":          "الحالة",
	"totalAmount":     "المبلغ الإجمالي",
	"advancePayment":  "الدفعة المقدمة",
	"balancePayment":  "المبلغ المتبقي",
	"discount":        "الخصم",
	"paymentInfo":     "معلومات الدفع",
	"paymentType":     "نوع الدفع",
	"paymentStatus":   "حالة الدفع",
	"delivery":        "توصيل",
	"pickup":          "استلام",
	"home-delivery":   "توصيل منزلي",
	"pending":         "في الانتظار",
	"preparing":       "قيد التحضير",
	"ready":           "جاهز",
	"delivered":       "تم التوصيل",
	"completed":       "مكتمل",
	"cancelled":       "ملغي",
	"paid":            "مدفوع",
	"unpaid":          "غير مدفوع",
	"cash":            "نقدي",
	"atm":             "بطاقة",
	"card":            "بطاقة",
	"transfer":        "تحويل",
	"page":            "صفحة",
	"of":              "من",
	"orderSummary":    "ملخص الطلبات",
	"totalOrders":     "إجمالي الطلبات",
	"statusBreakdown": "توزيع الحالات",
	"na":              "غير محدد",
	"thankYou":        "شكراً لك على طلبك!",
	"companyLogo":     "شعار الشركة",
	"printSave":       "طباعة / حفظ كـ PDF",
}

var englishLabels = map[string]string{
	"todayOrders":     "Today's Orders",
	"generatedOn":     "Generated On",
	"noOrders":        "No Orders to Display",
	"receipt":         "Receipt",
	"receiptNo":       "Receipt No",
	"customer":        "Customer",
	"customerInfo":    "Customer Information",
	"orderInfo":       "Order Information",
	"orderDetails":    "Order Details",
	"phoneNumber":     "Phone Number",
	"address":         "Address",
	"deliveryType":    "Delivery Type",
	"date":            "Date",
	"time":            "Time",
	"status":          "Status",
	"totalAmount":     "Total Amount",
	"advancePayment":  "Advance Payment",
	"balancePayment":  "Balance Payment",
	"discount":        "Discount",
	"paymentInfo":     "Payment Information",
	"paymentType":     "Payment Type",
	"paymentStatus":   "Payment Status",
	"delivery":        "Delivery",
	"pickup":          "Pickup",
	"home-delivery":   "Home Delivery",
	"pending":         "Pending",
	"preparing":       "Preparing",
	"ready":           "Ready",
	"delivered":       "Delivered",
	"completed":       "Completed",
	"cancelled":       "Cancelled",
	"paid":            "Paid",
	"unpaid":          "Unpaid",
	"cash":            "Cash",
	"atm":             "Card",
	"card":            "Card",
	"transfer":        "Transfer",
	"page":            "Page",
	"of":              "of",
	"orderSummary":    "Order Summary",
	"totalOrders":     "Total Orders",
	"statusBreakdown": "Status Breakdown",
	"na":              "N/A",
	"thankYou":        "Thank you for your order!",
	"companyLogo":     "Company Logo",
	"printSave":       "Print / Save as PDF",
}
