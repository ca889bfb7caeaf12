package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"styledecor/src/common"
	"styledecor/src/lib"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

func stripeWebhookRoute(g *gin.Engine) *gin.RouterGroup {
	hooks := g.Group("/webhook")
	hooks.POST("/stripe", func(ctx *gin.Context) {
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		whsecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
		event, err := webhook.ConstructEvent(payload, ctx.GetHeader("Stripe-Signature"), whsecret)
		if err != nil {
			log.Printf("Error verifying webhook signature: %s\n", err.Error())
			ctx.Status(http.StatusBadRequest)
			return
		}
		log.Printf("[StripeEvent] %s\n", event.Type)
		switch event.Type {
		case "checkout.session.completed", "checkout.session.async_payment_succeeded":
			var cs stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
				log.Printf("[Stripe] Error parsing CheckoutSession: %s\n", err.Error())
				ctx.Status(http.StatusBadRequest)
				return
			}
			log.Printf("[CheckoutSession] ID: %s %s\n", cs.ID, cs.PaymentStatus)
			result, err := common.ReconcileSession(ctx, lib.FromStripeSession(&cs))
			if err != nil {
				if errors.Is(err, common.ErrPaymentInProgress) {
					break
				}
				if errors.Is(err, common.ErrInvalidMetadata) {
					// retrying cannot fix the session metadata
					log.Printf("[CheckoutSession] %s dropped: %s\n", cs.ID, err.Error())
					break
				}
				log.Printf("Error reconciling CheckoutSession %s: %s\n", cs.ID, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			log.Printf("[CheckoutSession] %s success=%v existing=%v tracking=%s\n", cs.ID, result.Success, result.AlreadyExists, result.TrackingID)
		default:
			log.Printf("[StripeEvent] unhandled event type: %s\n", event.Type)
		}
		ctx.Status(http.StatusOK)
	})
	return hooks
}
