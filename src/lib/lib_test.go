package lib

import (
	"bytes"
	"context"
	"image/jpeg"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func TestJWTVerifierRoundTrip(t *testing.T) {
	v := NewJWTVerifier("secret")
	token, err := v.Issue("ana@example.com", "uid-1", time.Minute)
	require.NoError(t, err)

	id, err := v.VerifyIDToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", id.Email)
	assert.Equal(t, "uid-1", id.UID)

	_, err = NewJWTVerifier("other").VerifyIDToken(context.Background(), token)
	assert.Error(t, err)

	noEmail, err := v.Issue("", "uid-2", time.Minute)
	require.NoError(t, err)
	_, err = v.VerifyIDToken(context.Background(), noEmail)
	assert.Error(t, err)
}

func TestAcquireLock(t *testing.T) {
	t.Run("no redis configured", func(t *testing.T) {
		NewRedisClient(nil)
		release, err := AcquireLock(context.Background(), "k", "v", time.Second)
		require.NoError(t, err)
		release()
	})

	t.Run("acquired and released", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		NewRedisClient(rdb)
		t.Cleanup(func() { NewRedisClient(nil) })

		mock.ExpectSetNX("payment:lock:cs", "req-1", 30*time.Second).SetVal(true)
		mock.ExpectEval(releaseLock, []string{"payment:lock:cs"}, "req-1").SetVal(int64(1))

		release, err := AcquireLock(context.Background(), "payment:lock:cs", "req-1", 30*time.Second)
		require.NoError(t, err)
		release()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expired and taken over", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		NewRedisClient(rdb)
		t.Cleanup(func() { NewRedisClient(nil) })

		mock.ExpectSetNX("payment:lock:cs", "req-1", 30*time.Second).SetVal(true)
		// the script matches nothing once another holder owns the key
		mock.ExpectEval(releaseLock, []string{"payment:lock:cs"}, "req-1").SetVal(int64(0))

		release, err := AcquireLock(context.Background(), "payment:lock:cs", "req-1", 30*time.Second)
		require.NoError(t, err)
		release()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("held elsewhere", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		NewRedisClient(rdb)
		t.Cleanup(func() { NewRedisClient(nil) })

		mock.ExpectSetNX("payment:lock:cs", "req-2", 30*time.Second).SetVal(false)

		_, err := AcquireLock(context.Background(), "payment:lock:cs", "req-2", 30*time.Second)
		assert.ErrorIs(t, err, ErrLockHeld)
	})
}

func TestWriteQRCode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteQRCode(&buf, "SD-ABC123-DEF456"))
	_, err := jpeg.Decode(&buf)
	assert.NoError(t, err)
}

func TestFromStripeSession(t *testing.T) {
	cs := &stripe.CheckoutSession{
		ID:            "cs_1",
		URL:           "https://checkout.stripe.com/c/cs_1",
		Status:        stripe.CheckoutSessionStatusComplete,
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_1"},
		CustomerDetails: &stripe.CheckoutSessionCustomerDetails{
			Email: "ana@example.com",
		},
		AmountTotal: 4200,
		Currency:    stripe.CurrencyUSD,
		Metadata:    map[string]string{"bookingId": "3"},
	}
	out := FromStripeSession(cs)
	assert.Equal(t, "paid", out.PaymentStatus)
	assert.Equal(t, "complete", out.Status)
	assert.Equal(t, "pi_1", out.PaymentIntentID)
	assert.Equal(t, "ana@example.com", out.CustomerEmail)
	assert.Equal(t, int64(4200), out.AmountTotal)
	assert.Equal(t, "usd", out.Currency)
	assert.Equal(t, "3", out.Metadata["bookingId"])
}
