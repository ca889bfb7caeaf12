package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

type JSONBArray []any

func (a JSONBArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONBArray) Scan(value any) error {
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		return nil
	default:
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// ServiceQueryFilters mirrors the /services query string. Prices stay strings so
// that an empty parameter means "no bound" while "0" is still a bound.
type ServiceQueryFilters struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Sort     string `form:"sort" binding:"omitempty,sortorder"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
}

type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type EmailRequestParams struct {
	Email string `uri:"email" binding:"required,email"`
}

type TrackingRequestParams struct {
	TrackingID string `uri:"trackingId" binding:"required"`
}

type CreateServiceRequestBody struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Price       *int64 `json:"price" binding:"required,min=0"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type CreatePackageRequestBody struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description,omitempty"`
	Price       *int64   `json:"price" binding:"required,min=0"`
	Image       string   `json:"image,omitempty"`
	Features    []string `json:"features,omitempty"`
}

type CreateBookingRequestBody struct {
	ServiceID     uint   `json:"serviceId" binding:"required"`
	ServiceTitle  string `json:"serviceTitle" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerName  string `json:"customerName,omitempty"`
	BookingDate   string `json:"bookingDate" binding:"required"`
	Location      string `json:"location,omitempty"`
	Price         int64  `json:"price" binding:"min=0"`
}

type CreateCheckoutRequestBody struct {
	Price         int64  `json:"price" binding:"required,min=1"`
	ServiceTitle  string `json:"serviceTitle" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	ServiceID     string `json:"serviceId" binding:"required"`
	BookingID     string `json:"bookingId,omitempty"`
}

type PaymentSuccessQuery struct {
	SessionID string `form:"session_id" binding:"required"`
}

type PaymentsQuery struct {
	Email string `form:"email" binding:"required,email"`
}

type UpsertUserRequestBody struct {
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photoURL,omitempty"`
}

type UpdateRoleRequestBody struct {
	Role string `json:"role" binding:"required,oneof=user decorator admin"`
}

type CreateDecoratorRequestBody struct {
	Name        string   `json:"name" binding:"required"`
	Specialties []string `json:"specialties,omitempty"`
	Experience  uint     `json:"experience,omitempty"`
	Phone       string   `json:"phone,omitempty"`
}

type DecoratorsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

type UpdateDecoratorStatusRequestBody struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type BookingStatus string

const (
	BOOKING_UNPAID BookingStatus = ""
	BOOKING_PAID   BookingStatus = "Paid"
)

type PaymentStatus string

const (
	PAYMENT_PAID   PaymentStatus = "paid"
	PAYMENT_UNPAID PaymentStatus = "unpaid"
)

type Role string

const (
	ROLE_USER      Role = "user"
	ROLE_DECORATOR Role = "decorator"
	ROLE_ADMIN     Role = "admin"
)

type DecoratorStatus string

const (
	DECORATOR_PENDING  DecoratorStatus = "pending"
	DECORATOR_APPROVED DecoratorStatus = "approved"
	DECORATOR_REJECTED DecoratorStatus = "rejected"
)

// InsertResult, UpdateResult and DeleteResult are the write acknowledgements
// returned to API clients.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   uint `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Claims are carried by locally issued tokens (API_ENV=local).
type Claims struct {
	Email string `json:"email"`
	UID   string `json:"uid"`
	jwt.RegisteredClaims
}
