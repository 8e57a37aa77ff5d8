// Package payments wraps the Stripe API calls the billing module needs.
package payments

//go:generate mockgen -source=stripe.go -destination=../mocks/payments_mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/logger"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/paymentmethod"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Stripe event types handled by the billing module
const (
	EventInvoicePaid          = "invoice.paid"
	EventInvoicePaymentFailed = "invoice.payment_failed"
)

// CardDetails is what Stripe reports about a card payment method
type CardDetails struct {
	Brand    string
	LastFour string
	ExpMonth int
	ExpYear  int
}

// InvoiceEvent is the part of a Stripe invoice webhook the billing module acts on
type InvoiceEvent struct {
	Type          string
	InvoiceNumber string
	TransactionID string
	OccurredAt    time.Time
}

// Gateway is the payment provider used by the billing service
type Gateway interface {
	Enabled() bool
	EnsureCustomer(ctx context.Context, customerID, email, name, organizationID string) (string, error)
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) (*CardDetails, error)
	ParseInvoiceEvent(payload []byte, signature string) (*InvoiceEvent, error)
}

// StripeGateway talks to Stripe with the package-level client
type StripeGateway struct {
	webhookSecret string
}

// NewStripeGateway configures the Stripe key and returns a gateway; an empty key yields a disabled gateway
func NewStripeGateway(secretKey, webhookSecret string) Gateway {
	if secretKey == "" {
		return DisabledGateway{}
	}
	stripe.Key = secretKey
	return &StripeGateway{webhookSecret: webhookSecret}
}

// Enabled implements Gateway
func (g *StripeGateway) Enabled() bool { return true }

// EnsureCustomer returns customerID when set, otherwise creates a Stripe customer for the organization
func (g *StripeGateway) EnsureCustomer(ctx context.Context, customerID, email, name, organizationID string) (string, error) {
	if customerID != "" {
		return customerID, nil
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.AddMetadata("organization_id", organizationID)
	params.Context = ctx

	c, err := customer.New(params)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to create stripe customer")
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}
	return c.ID, nil
}

// AttachPaymentMethod attaches a payment method to the customer and returns its card details
func (g *StripeGateway) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) (*CardDetails, error) {
	getParams := &stripe.PaymentMethodParams{}
	getParams.Context = ctx
	pm, err := paymentmethod.Get(paymentMethodID, getParams)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Invalid Stripe payment method: %v", err))
	}

	if pm.Customer == nil || pm.Customer.ID != customerID {
		attachParams := &stripe.PaymentMethodAttachParams{Customer: stripe.String(customerID)}
		attachParams.Context = ctx
		pm, err = paymentmethod.Attach(paymentMethodID, attachParams)
		if err != nil {
			return nil, fmt.Errorf("failed to attach payment method: %w", err)
		}
	}

	return cardDetails(pm), nil
}

func cardDetails(pm *stripe.PaymentMethod) *CardDetails {
	details := &CardDetails{}
	if pm.Card != nil {
		details.Brand = string(pm.Card.Brand)
		details.LastFour = pm.Card.Last4
		details.ExpMonth = int(pm.Card.ExpMonth)
		details.ExpYear = int(pm.Card.ExpYear)
	}
	return details
}

// ParseInvoiceEvent verifies the webhook signature and decodes invoice events; other
// event types come back with an empty InvoiceNumber
func (g *StripeGateway) ParseInvoiceEvent(payload []byte, signature string) (*InvoiceEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, apperrors.ErrInvalidWebhookSignature
	}
	return decodeInvoiceEvent(event)
}

func decodeInvoiceEvent(event stripe.Event) (*InvoiceEvent, error) {
	out := &InvoiceEvent{
		Type:       string(event.Type),
		OccurredAt: time.Unix(event.Created, 0).UTC(),
	}
	if out.Type != EventInvoicePaid && out.Type != EventInvoicePaymentFailed {
		return out, nil
	}
	if event.Data == nil {
		return nil, apperrors.NewBadRequestError("webhook event has no data")
	}

	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("failed to decode invoice: %v", err))
	}

	out.InvoiceNumber = invoice.Metadata["invoice_number"]
	out.TransactionID = invoice.ID
	if invoice.PaymentIntent != nil && invoice.PaymentIntent.ID != "" {
		out.TransactionID = invoice.PaymentIntent.ID
	}
	if invoice.StatusTransitions != nil && invoice.StatusTransitions.PaidAt > 0 {
		out.OccurredAt = time.Unix(invoice.StatusTransitions.PaidAt, 0).UTC()
	}
	return out, nil
}

// DisabledGateway is used when no Stripe key is configured
type DisabledGateway struct{}

// Enabled implements Gateway
func (DisabledGateway) Enabled() bool { return false }

// EnsureCustomer implements Gateway
func (DisabledGateway) EnsureCustomer(context.Context, string, string, string, string) (string, error) {
	return "", apperrors.ErrPaymentGatewayDisabled
}

// AttachPaymentMethod implements Gateway
func (DisabledGateway) AttachPaymentMethod(context.Context, string, string) (*CardDetails, error) {
	return nil, apperrors.ErrPaymentGatewayDisabled
}

// ParseInvoiceEvent implements Gateway
func (DisabledGateway) ParseInvoiceEvent([]byte, string) (*InvoiceEvent, error) {
	return nil, apperrors.ErrPaymentGatewayDisabled
}
