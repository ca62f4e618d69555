package payment

import (
	"fmt"

	"randevio/config"
	"randevio/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Intent is the client-side handle for a created payment.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// PaymentService defines business logic for premium-plan payments.
type PaymentService interface {
	// CreateIntent opens a payment of amount (minor units) for a business's
	// premium subscription and returns the client secret.
	CreateIntent(businessID string, amount int64, currency string) (*Intent, error)
}

// StripePaymentService is the production implementation.
type StripePaymentService struct{}

func (s *StripePaymentService) CreateIntent(businessID string, amount int64, currency string) (*Intent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if currency == "" {
		currency = "try"
	}
	stripe.Key = config.AppConfig.StripeKey

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("business_id", businessID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	utils.GetLogger().Info("payment intent created",
		zap.String("businessID", businessID),
		zap.String("intentID", intent.ID),
		zap.Int64("amount", amount))

	return &Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}
