package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"styledecor/src/config"
	"styledecor/src/db"
	"styledecor/src/lib"
	"styledecor/src/lib/mailer"
	"styledecor/src/models"
	"styledecor/src/models/scopes"
	"styledecor/src/types"
	"styledecor/src/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const paymentLockTTL = 30 * time.Second

// ConfirmationResult is the outcome of reconciling one checkout session.
// Exactly one of Success or AlreadyExists is set for a paid session; both
// are false when the provider reports the session unpaid.
type ConfirmationResult struct {
	Success       bool
	AlreadyExists bool
	TrackingID    string
	TransactionID string
	Modified      *types.UpdateResult
	Payment       *models.Payment
}

// InitiateCheckout opens a hosted checkout for one booking and returns the
// redirect URL. Nothing is written locally.
func InitiateCheckout(ctx context.Context, body *types.CreateCheckoutRequestBody) (string, error) {
	metadata := map[string]string{
		"serviceId":    body.ServiceID,
		"serviceTitle": body.ServiceTitle,
	}
	if body.BookingID != "" {
		metadata["bookingId"] = body.BookingID
	}
	domain := config.SiteDomain()
	cs, err := lib.GetCheckoutProvider().CreateSession(ctx, &lib.CheckoutSessionParams{
		Price:         body.Price,
		Currency:      config.Currency(),
		Title:         body.ServiceTitle,
		CustomerEmail: body.CustomerEmail,
		SuccessURL:    fmt.Sprintf("%s/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}", domain),
		CancelURL:     fmt.Sprintf("%s/dashboard/payment-cancelled", domain),
		Metadata:      metadata,
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	log.Printf("CheckoutSessionID: %s\n", cs.ID)
	return cs.URL, nil
}

// ConfirmPayment retrieves the session from the provider and reconciles it.
func ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmationResult, error) {
	cs, err := lib.GetCheckoutProvider().RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session %s: %w", sessionID, err)
	}
	return ReconcileSession(ctx, cs)
}

// ReconcileSession marks the referenced booking paid and appends one ledger
// row per transaction. Repeated calls for a recorded transaction return the
// stored tracking id without writing.
func ReconcileSession(ctx context.Context, cs *lib.CheckoutSession) (*ConfirmationResult, error) {
	release, err := lib.AcquireLock(ctx, "payment:lock:"+cs.ID, uuid.NewString(), paymentLockTTL)
	if err != nil {
		if errors.Is(err, lib.ErrLockHeld) {
			return nil, ErrPaymentInProgress
		}
		return nil, err
	}
	defer release()

	transactionID := cs.PaymentIntentID
	if transactionID != "" {
		existing, err := FindPaymentByTransaction(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return alreadyRecorded(existing), nil
		}
	}

	if cs.PaymentStatus != string(types.PAYMENT_PAID) {
		log.Printf("[CheckoutSession] %s is %s, nothing to record\n", cs.ID, cs.PaymentStatus)
		return &ConfirmationResult{Success: false}, nil
	}
	if transactionID == "" {
		return nil, fmt.Errorf("checkout session %s is paid but has no payment intent", cs.ID)
	}

	bookingID, err := bookingRef(cs.Metadata)
	if err != nil {
		return nil, err
	}

	trackingID := utils.NewTrackingID()
	payment := &models.Payment{
		Amount:        cs.AmountTotal,
		Currency:      cs.Currency,
		CustomerEmail: cs.CustomerEmail,
		ServiceID:     cs.Metadata["serviceId"],
		ServiceTitle:  cs.Metadata["serviceTitle"],
		TransactionID: transactionID,
		PaymentStatus: types.PaymentStatus(cs.PaymentStatus),
		PaidAt:        time.Now().UTC(),
		TrackingID:    trackingID,
	}
	var modified types.UpdateResult
	db := db.GetDb()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&models.Booking{}).
			Where("id = ?", bookingID).
			Scopes(scopes.WithUnpaidStatus).
			Updates(map[string]any{
				"status":      types.BOOKING_PAID,
				"tracking_id": trackingID,
			})
		if res.Error != nil {
			return res.Error
		}
		modified = types.UpdateResult{Acknowledged: true, ModifiedCount: res.RowsAffected}
		if res.RowsAffected == 0 {
			log.Printf("[CheckoutSession] %s: booking %d was not updated (missing or already paid)\n", cs.ID, bookingID)
		}
		return tx.Create(payment).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, ferr := FindPaymentByTransaction(ctx, transactionID)
		if ferr != nil {
			return nil, ferr
		}
		if existing != nil {
			return alreadyRecorded(existing), nil
		}
	}
	if err != nil {
		log.Printf("Error recording payment %s: %s\n", transactionID, err.Error())
		return nil, err
	}
	log.Printf("[CheckoutSession] %s recorded as %s\n", cs.ID, trackingID)

	go mailer.SendPaymentReceipt(payment)

	return &ConfirmationResult{
		Success:       true,
		TrackingID:    trackingID,
		TransactionID: transactionID,
		Modified:      &modified,
		Payment:       payment,
	}, nil
}

func alreadyRecorded(p *models.Payment) *ConfirmationResult {
	return &ConfirmationResult{
		AlreadyExists: true,
		TrackingID:    p.TrackingID,
		TransactionID: p.TransactionID,
		Payment:       p,
	}
}

// bookingRef reads the booking id from session metadata; sessions created
// without bookingId carry it in serviceId.
func bookingRef(md map[string]string) (uint, error) {
	ref := md["bookingId"]
	if ref == "" {
		ref = md["serviceId"]
	}
	if ref == "" {
		return 0, ErrInvalidMetadata
	}
	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMetadata, ref)
	}
	return uint(id), nil
}

// FindPaymentByTransaction returns nil, nil when no row exists.
func FindPaymentByTransaction(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payments []models.Payment
	db := db.GetDb()
	if err := db.
		WithContext(ctx).
		Where(&models.Payment{TransactionID: transactionID}).
		Limit(1).
		Find(&payments).
		Error; err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, nil
	}
	return &payments[0], nil
}

func FindPaymentByTracking(ctx context.Context, trackingID string) (*models.Payment, error) {
	var payment models.Payment
	db := db.GetDb()
	if err := db.
		WithContext(ctx).
		Where(&models.Payment{TrackingID: trackingID}).
		First(&payment).
		Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListPayments returns a customer's ledger rows, newest first.
func ListPayments(ctx context.Context, email string) ([]models.Payment, error) {
	payments := []models.Payment{}
	db := db.GetDb()
	err := db.
		WithContext(ctx).
		Where(&models.Payment{CustomerEmail: email}).
		Order("paid_at DESC").
		Order("id DESC").
		Find(&payments).
		Error
	return payments, err
}
