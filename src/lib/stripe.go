package lib

import (
	"context"
	"os"

	"github.com/stripe/stripe-go/v82"
)

// CheckoutSession is the subset of a provider checkout session the
// reconciler works with.
type CheckoutSession struct {
	ID              string
	URL             string
	Status          string
	PaymentStatus   string
	PaymentIntentID string
	CustomerEmail   string
	AmountTotal     int64
	Currency        string
	Metadata        map[string]string
}

type CheckoutSessionParams struct {
	Price         int64
	Currency      string
	Title         string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

type CheckoutProvider interface {
	CreateSession(ctx context.Context, params *CheckoutSessionParams) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, id string) (*CheckoutSession, error)
}

var stripeClient *stripe.Client
var checkoutProvider CheckoutProvider

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

func GetCheckoutProvider() CheckoutProvider {
	if checkoutProvider != nil {
		return checkoutProvider
	}
	checkoutProvider = &StripeCheckout{client: GetStripeClient()}
	return checkoutProvider
}

// NewCheckoutProvider replaces the checkout provider, e.g. with a fake in tests.
func NewCheckoutProvider(p CheckoutProvider) {
	checkoutProvider = p
}

type StripeCheckout struct {
	client *stripe.Client
}

func (s *StripeCheckout) CreateSession(ctx context.Context, p *CheckoutSessionParams) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionCreateParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(p.CustomerEmail),
		SuccessURL:    stripe.String(p.SuccessURL),
		CancelURL:     stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripe.String(p.Currency),
					UnitAmount: stripe.Int64(p.Price),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(p.Title),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: p.Metadata,
	}
	cs, err := s.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	return FromStripeSession(cs), nil
}

func (s *StripeCheckout) RetrieveSession(ctx context.Context, id string) (*CheckoutSession, error) {
	cs, err := s.client.V1CheckoutSessions.Retrieve(ctx, id, &stripe.CheckoutSessionRetrieveParams{})
	if err != nil {
		return nil, err
	}
	return FromStripeSession(cs), nil
}

func FromStripeSession(cs *stripe.CheckoutSession) *CheckoutSession {
	out := &CheckoutSession{
		ID:            cs.ID,
		URL:           cs.URL,
		Status:        string(cs.Status),
		PaymentStatus: string(cs.PaymentStatus),
		CustomerEmail: cs.CustomerEmail,
		AmountTotal:   cs.AmountTotal,
		Currency:      string(cs.Currency),
		Metadata:      cs.Metadata,
	}
	if cs.PaymentIntent != nil {
		out.PaymentIntentID = cs.PaymentIntent.ID
	}
	if out.CustomerEmail == "" && cs.CustomerDetails != nil {
		out.CustomerEmail = cs.CustomerDetails.Email
	}
	return out
}
