package services

import (
	"context"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

// PaymentGateway creates payment intents for an amount in the smallest
// currency unit and returns the client secret used to complete payment
// out-of-band.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type StripeService struct {
	secretKey string
}

// NewStripeService configures the Stripe client with the injected key.
func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{secretKey: secretKey}
}

func (s *StripeService) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrPaymentFailed, err)
	}
	return pi.ClientSecret, nil
}
