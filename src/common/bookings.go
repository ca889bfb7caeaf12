package common

import (
	"context"
	"errors"
	"fmt"
	"styledecor/src/config"
	"styledecor/src/db"
	"styledecor/src/models"
	"styledecor/src/models/scopes"
	"styledecor/src/types"
	"time"

	"gorm.io/gorm"
)

func CreateBooking(ctx context.Context, body *types.CreateBookingRequestBody) (*types.InsertResult, error) {
	if _, err := time.Parse(config.BOOKING_DATE_FORMAT, body.BookingDate); err != nil {
		return nil, fmt.Errorf("%w: bookingDate %q", ErrInvalidBooking, body.BookingDate)
	}
	booking := &models.Booking{
		ServiceID:     body.ServiceID,
		ServiceTitle:  body.ServiceTitle,
		CustomerEmail: body.CustomerEmail,
		CustomerName:  body.CustomerName,
		BookingDate:   body.BookingDate,
		Location:      body.Location,
		Price:         body.Price,
		Status:        types.BOOKING_UNPAID,
	}
	db := db.GetDb()
	if err := db.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, err
	}
	return &types.InsertResult{Acknowledged: true, InsertedID: booking.ID}, nil
}

// ListBookingsByEmail returns a customer's bookings, earliest booking date first.
func ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	db := db.GetDb()
	err := db.
		WithContext(ctx).
		Where(&models.Booking{CustomerEmail: email}).
		Order("booking_date ASC").
		Order("id ASC").
		Find(&bookings).
		Error
	return bookings, err
}

func GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	db := db.GetDb()
	if err := db.
		WithContext(ctx).
		Scopes(scopes.WithID(id)).
		First(&booking).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking hard-deletes an unpaid booking.
func DeleteBooking(ctx context.Context, id uint) (*types.DeleteResult, error) {
	var result types.DeleteResult
	db := db.GetDb()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Scopes(scopes.WithID(id)).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status == types.BOOKING_PAID {
			return ErrBookingPaid
		}
		res := tx.Delete(&models.Booking{}, id)
		if res.Error != nil {
			return res.Error
		}
		result = types.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
