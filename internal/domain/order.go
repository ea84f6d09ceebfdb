package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentCash     PaymentType = "cash"
	PaymentATM      PaymentType = "atm"
	PaymentTransfer PaymentType = "transfer"
)

type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

// CookStatus is the kitchen workflow state. Transitions are not restricted:
// the dashboard lets a receptionist move an order backwards (delivered back
// to pending) and that behavior is kept.
type CookStatus string

const (
	CookPending   CookStatus = "pending"
	CookPreparing CookStatus = "preparing"
	CookReady     CookStatus = "ready"
	CookDelivered CookStatus = "delivered"
)

// Canonical delivery-type values. DeliveryType itself stays free text.
const (
	DeliveryPickup  = "pickup"
	DeliveryCourier = "delivery"
	DeliveryHome    = "home-delivery"
)

var (
	ErrInvalidPaymentType   = errors.New("invalid payment type")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidCookStatus    = errors.New("invalid cook status")
)

// Order is the single customer request flowing through intake, the kitchen
// and the document pipeline. Money fields are decimal strings as entered by
// the receptionist; they are only parsed when a total or balance is needed.
type Order struct {
	OrderID   string `json:"orderId" gorm:"primaryKey;size:36"`
	ReceiptNo string `json:"receiptNo" gorm:"index;size:191"`

	Name         string `json:"name"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	Location     string `json:"location"`
	OrderDetails string `json:"orderDetails"`

	Date string `json:"date"`
	Time string `json:"time"`

	TotalPayment   string `json:"totalPayment"`
	AdvancePayment string `json:"advancePayment"`
	BalancePayment string `json:"balancePayment"`
	Discount       string `json:"discount"`

	PaymentType   PaymentType   `json:"paymentType" gorm:"size:16"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"size:16"`
	DeliveryType  string        `json:"deliveryType" gorm:"size:32"`
	CookStatus    CookStatus    `json:"cookStatus" gorm:"size:16;index"`

	SharedToCook bool `json:"sharedToCook"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Normalize fills the defaults the dashboard relies on. Called once at the
// data-store boundary so consumers never re-check field presence.
func (o *Order) Normalize() {
	if o.TotalPayment == "" {
		o.TotalPayment = "0"
	}
	if o.AdvancePayment == "" {
		o.AdvancePayment = "0"
	}
	if o.Discount == "" {
		o.Discount = "0"
	}
	if o.CookStatus == "" {
		o.CookStatus = CookPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentUnpaid
	}
	if o.PaymentType == "" {
		o.PaymentType = PaymentCash
	}
	o.DeliveryType = strings.TrimSpace(o.DeliveryType)
	o.BalancePayment = o.Balance().StringFixed(3)
}

// Validate checks the closed enumerations. Free-text fields are accepted
// as-is; neutralizing them is the template builder's job.
func (o *Order) Validate() error {
	switch o.PaymentType {
	case PaymentCash, PaymentATM, PaymentTransfer:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPaymentType, o.PaymentType)
	}
	switch o.PaymentStatus {
	case PaymentPaid, PaymentUnpaid:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, o.PaymentStatus)
	}
	switch o.CookStatus {
	case CookPending, CookPreparing, CookReady, CookDelivered:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCookStatus, o.CookStatus)
	}
	return nil
}

// ParseAmount reads a decimal-string money field. Blank or malformed input
// counts as zero, matching how the intake forms behave.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FinalTotal is totalPayment minus discount.
func (o Order) FinalTotal() decimal.Decimal {
	return ParseAmount(o.TotalPayment).Sub(ParseAmount(o.Discount))
}

// Balance is what the customer still owes: final total minus advance,
// clamped at zero so an overpaying advance never shows a negative balance.
func (o Order) Balance() decimal.Decimal {
	b := o.FinalTotal().Sub(ParseAmount(o.AdvancePayment))
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// DisplayNo is the number shown on documents: the user-assigned receipt
// number when present, otherwise the system order ID.
func (o Order) DisplayNo() string {
	if o.ReceiptNo != "" {
		return o.ReceiptNo
	}
	return o.OrderID
}
