package mailer

import (
	"context"
	"fmt"
	"html"
	"log"
	"os"
	"strings"
	"styledecor/src/lib"
	"styledecor/src/models"
	"time"
)

func NewPaymentReceipt(p *models.Payment) *lib.SendMailInput {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Thank you for booking %s</h2>", html.EscapeString(p.ServiceTitle))
	fmt.Fprintf(&b, "<p>Amount: %s %s</p>", formatAmount(p.Amount), html.EscapeString(strings.ToUpper(p.Currency)))
	fmt.Fprintf(&b, "<p>Transaction: %s</p>", html.EscapeString(p.TransactionID))
	fmt.Fprintf(&b, "<p>Tracking ID: <strong>%s</strong></p>", html.EscapeString(p.TrackingID))
	fmt.Fprintf(&b, "<p>Paid at: %s</p>", p.PaidAt.Format(time.RFC1123))
	return &lib.SendMailInput{
		From:     os.Getenv("MAIL_FROM"),
		FromName: "StyleDecor",
		ReplyTo:  os.Getenv("MAIL_REPLY_TO"),
		To:       []string{p.CustomerEmail},
		Subject:  fmt.Sprintf("Payment receipt %s", p.TrackingID),
		Body:     b.String(),
		Html:     true,
	}
}

// SendPaymentReceipt mails the receipt if a mailer is configured. Errors are
// only logged; the payment is already recorded.
func SendPaymentReceipt(p *models.Payment) {
	m := lib.GetMailer()
	if m == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := m.Send(ctx, NewPaymentReceipt(p)); err != nil {
		log.Printf("Error sending receipt for %s: %s\n", p.TrackingID, err.Error())
	}
}

func formatAmount(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}
