package services

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentIntents คือ port ไปหา payment processor ภายนอก
type PaymentIntents interface {
	Create(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

type stripeIntents struct{}

func NewStripeIntents(secretKey string) PaymentIntents {
	stripe.Key = secretKey
	return stripeIntents{}
}

func (stripeIntents) Create(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
