package pdfgen

import "strings"

// phraseTable maps the Arabic phrases the documents actually emit to
// English equivalents. Longer phrases are matched before shorter ones so
// compound labels do not get partially translated.
var phraseTable = []struct {
	ar, en string
}{
	{"لا توجد طلبات للعرض", "No Orders to Display"},
	{"شكراً لك على طلبك!", "Thank you for your order!"},
	{"طباعة / حفظ كـ PDF", "Print / Save as PDF"},
	{"المبلغ الإجمالي", "Total Amount"},
	{"الدفعة المقدمة", "Advance Payment"},
	{"المبلغ المتبقي", "Balance Payment"},
	{"معلومات العميل", "Customer Information"},
	{"معلومات الدفع", "Payment Information"},
	{"تفاصيل الطلب", "Order Details"},
	{"إجمالي الطلبات", "Total Orders"},
	{"ملخص الطلبات", "Order Summary"},
	{"توزيع الحالات", "Status Breakdown"},
	{"طلبات اليوم", "Today's Orders"},
	{"تاريخ الإنشاء", "Generated On"},
	{"رقم الإيصال", "Receipt No"},
	{"رقم الهاتف", "Phone Number"},
	{"نوع التوصيل", "Delivery Type"},
	{"توصيل منزلي", "Home Delivery"},
	{"نوع الدفع", "Payment Type"},
	{"حالة الدفع", "Payment Status"},
	{"شعار الشركة", "Company Logo"},
	{"في الانتظار", "Pending"},
	{"قيد التحضير", "Preparing"},
	{"تم التوصيل", "Delivered"},
	{"غير مدفوع", "Unpaid"},
	{"غير محدد", "N/A"},
	{"العنوان", "Address"},
	{"التاريخ", "Date"},
	{"استلام", "Pickup"},
	{"توصيل", "Delivery"},
	{"العميل", "Customer"},
	{"الحالة", "Status"},
	{"الخصم", "Discount"},
	{"الوقت", "Time"},
	{"مكتمل", "Completed"},
	{"ملغي", "Cancelled"},
	{"مدفوع", "Paid"},
	{"بطاقة", "Card"},
	{"تحويل", "Transfer"},
	{"نقدي", "Cash"},
	{"إيصال", "Receipt"},
	{"جاهز", "Ready"},
	{"صفحة", "Page"},
	{"ر.ع.", "OMR"},
	{"من", "of"},
	{"ص", "AM"},
	{"م", "PM"},
}

// arabicToEnglish replaces every known Arabic phrase in text with its
// English equivalent and maps Arabic-Indic digits back to Western ones.
// Unknown phrases pass through untouched.
func arabicToEnglish(text string) string {
	for _, p := range phraseTable {
		text = strings.ReplaceAll(text, p.ar, p.en)
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r >= '٠' && r <= '٩' {
			r = '0' + (r - '٠')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
