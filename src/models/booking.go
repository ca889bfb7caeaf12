package models

import "styledecor/src/types"

type Booking struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	ServiceID     uint                `gorm:"index" json:"serviceId"`
	ServiceTitle  string              `json:"serviceTitle"`
	CustomerEmail string              `gorm:"index" json:"customerEmail"`
	CustomerName  string              `json:"customerName,omitempty"`
	BookingDate   string              `gorm:"index" json:"bookingDate"`
	Location      string              `json:"location,omitempty"`
	Price         int64               `json:"price"`
	Status        types.BookingStatus `json:"status,omitempty"`
	TrackingID    string              `gorm:"index" json:"trackingId,omitempty"`

	types.Timestamps
}
