package models

import (
	"styledecor/src/types"
	"time"
)

// Payment is a ledger row. TransactionID is the provider's payment intent id
// and is unique across the ledger.
type Payment struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	Amount        int64               `json:"amount"`
	Currency      string              `json:"currency"`
	CustomerEmail string              `gorm:"index" json:"customerEmail"`
	ServiceID     string              `json:"serviceId"`
	ServiceTitle  string              `json:"serviceTitle"`
	TransactionID string              `gorm:"uniqueIndex;not null" json:"transactionId"`
	PaymentStatus types.PaymentStatus `json:"paymentStatus"`
	PaidAt        time.Time           `json:"paidAt"`
	TrackingID    string              `gorm:"index" json:"trackingId"`
}
