package services

import (
	"catering-service/internal/domain"
)

func createMockOrder(id, receiptNo string) *domain.Order {
	o := &domain.Order{
		OrderID:        id,
		ReceiptNo:      receiptNo,
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
		CookStatus:     domain.CookPending,
	}
	o.Normalize()
	return o
}

const (
	testOrderID   = "b2a7c6ce-1111-4f2a-9df3-000000000001"
	testReceiptNo = "R-100"
)
