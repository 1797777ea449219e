package stripe

import (
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/refund"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Event = stripe.Event

// Client is the payment boundary the order service talks to.
type Client interface {
	CreatePaymentIntent(amount int64, currency string, description string) (*stripe.PaymentIntent, error)
	ConfirmPaymentIntent(paymentIntentID string) (*stripe.PaymentIntent, error)
	RefundPayment(paymentIntentID string, amount int64) (*stripe.Refund, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

func (s *stripeClient) CreatePaymentIntent(amount int64, currency string, description string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}

	return paymentintent.New(params)
}

func (s *stripeClient) ConfirmPaymentIntent(paymentIntentID string) (*stripe.PaymentIntent, error) {
	return paymentintent.Confirm(paymentIntentID, &stripe.PaymentIntentConfirmParams{})
}

func (s *stripeClient) RefundPayment(paymentIntentID string, amount int64) (*stripe.Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}

	if amount > 0 {
		params.Amount = stripe.Int64(amount)
	}

	return refund.New(params)
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}
