package payments

import (
	"context"
	"testing"
	"time"

	apperrors "phishing-simulator-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func signedPayload(t *testing.T, payload string) (*webhook.SignedPayload, []byte) {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed, signed.Payload
}

func TestParseInvoiceEvent(t *testing.T) {
	gateway := &StripeGateway{webhookSecret: testWebhookSecret}

	t.Run("invoice paid", func(t *testing.T) {
		signed, payload := signedPayload(t, `{
			"id": "evt_1",
			"object": "event",
			"type": "invoice.paid",
			"created": 1700000000,
			"data": {"object": {
				"id": "in_123",
				"object": "invoice",
				"metadata": {"invoice_number": "INV-2024-0001"},
				"payment_intent": "pi_456",
				"status_transitions": {"paid_at": 1700000100}
			}}
		}`)

		event, err := gateway.ParseInvoiceEvent(payload, signed.Header)
		require.NoError(t, err)
		assert.Equal(t, EventInvoicePaid, event.Type)
		assert.Equal(t, "INV-2024-0001", event.InvoiceNumber)
		assert.Equal(t, "pi_456", event.TransactionID)
		assert.Equal(t, time.Unix(1700000100, 0).UTC(), event.OccurredAt)
	})

	t.Run("unrelated event", func(t *testing.T) {
		signed, payload := signedPayload(t, `{"id":"evt_2","object":"event","type":"customer.created","created":1700000000,"data":{"object":{}}}`)

		event, err := gateway.ParseInvoiceEvent(payload, signed.Header)
		require.NoError(t, err)
		assert.Equal(t, "customer.created", event.Type)
		assert.Empty(t, event.InvoiceNumber)
	})

	t.Run("bad signature", func(t *testing.T) {
		_, payload := signedPayload(t, `{"id":"evt_3","object":"event","type":"invoice.paid"}`)

		_, err := gateway.ParseInvoiceEvent(payload, "t=1,v1=deadbeef")
		assert.Equal(t, apperrors.ErrInvalidWebhookSignature, err)
	})
}

func TestDecodeInvoiceEventFallsBackToInvoiceID(t *testing.T) {
	event := stripe.Event{
		Type:    "invoice.payment_failed",
		Created: 1700000000,
		Data:    &stripe.EventData{Raw: []byte(`{"id":"in_999","metadata":{"invoice_number":"INV-9"}}`)},
	}

	out, err := decodeInvoiceEvent(event)
	require.NoError(t, err)
	assert.Equal(t, "in_999", out.TransactionID)
	assert.Equal(t, "INV-9", out.InvoiceNumber)
}

func TestDisabledGateway(t *testing.T) {
	gateway := NewStripeGateway("", "")
	assert.False(t, gateway.Enabled())

	_, err := gateway.EnsureCustomer(context.Background(), "", "a@example.com", "Acme", "org")
	assert.True(t, apperrors.IsConfiguration(err))

	_, err = gateway.ParseInvoiceEvent(nil, "")
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestCardDetails(t *testing.T) {
	details := cardDetails(&stripe.PaymentMethod{Card: &stripe.PaymentMethodCard{
		Brand:    stripe.PaymentMethodCardBrandVisa,
		Last4:    "4242",
		ExpMonth: 12,
		ExpYear:  2030,
	}})
	assert.Equal(t, "visa", details.Brand)
	assert.Equal(t, "4242", details.LastFour)
	assert.Equal(t, 12, details.ExpMonth)
	assert.Equal(t, 2030, details.ExpYear)
}
