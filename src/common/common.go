package common

import "errors"

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingPaid       = errors.New("paid bookings cannot be cancelled")
	ErrPaymentInProgress = errors.New("payment confirmation already in progress")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrInvalidMetadata   = errors.New("checkout session metadata has no booking reference")
	ErrInvalidBooking    = errors.New("invalid booking")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidRole       = errors.New("invalid role")
	ErrDecoratorNotFound = errors.New("decorator application not found")
	ErrDecoratorExists   = errors.New("decorator application already submitted")
	ErrDecoratorDecided  = errors.New("decorator application already decided")
)
