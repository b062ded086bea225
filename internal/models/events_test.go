package models_test

import (
	"testing"

	"github.com/lk-black/sms-sender/internal/models"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestGhostPayEvent_MissingFields(t *testing.T) {
	event := models.GhostPayEvent{
		PaymentMethod: "PIX",
		Status:        "PENDING",
	}

	missing := event.MissingFields()

	assert.ElementsMatch(t, []string{"amount", "customerPhone"}, missing)
}

func TestGhostPayEvent_MissingFields_Complete(t *testing.T) {
	event := models.GhostPayEvent{
		PaymentMethod: "PIX",
		Status:        "PENDING",
		Amount:        int64Ptr(1050),
		CustomerPhone: "5511999999999",
	}

	assert.Empty(t, event.MissingFields())
}

func TestGhostPayEvent_ToPaymentEvent_TrimsFields(t *testing.T) {
	event := models.GhostPayEvent{
		PaymentID:     "pay-1",
		PaymentMethod: " PIX ",
		Status:        " PENDING ",
		Amount:        int64Ptr(1050),
		CustomerPhone: " 5511999999999 ",
	}

	payment := event.ToPaymentEvent()

	assert.Equal(t, models.MethodPIX, payment.Method)
	assert.Equal(t, models.StatusPending, payment.Status)
	assert.Equal(t, int64(1050), payment.AmountCents)
	assert.Equal(t, "5511999999999", payment.CustomerPhone)
}

func TestGhostPayEvent_ToPaymentEvent_PixQrCodeFallback(t *testing.T) {
	event := models.GhostPayEvent{
		PaymentMethod: "PIX",
		Status:        "PENDING",
		Amount:        int64Ptr(1050),
		CustomerPhone: "5511999999999",
		PixQrCode:     "https://pay.example.com/qr",
	}

	assert.Equal(t, "https://pay.example.com/qr", event.ToPaymentEvent().CheckoutURL)

	event.CheckoutURL = "https://pay.example.com/checkout"
	assert.Equal(t, "https://pay.example.com/checkout", event.ToPaymentEvent().CheckoutURL)
}

func TestDuckfyEvent_MissingFields(t *testing.T) {
	event := models.DuckfyEvent{
		Transaction: &models.DuckfyTransaction{
			ID:     "tx-1",
			Status: "PENDING",
		},
		Client: &models.DuckfyClient{},
	}

	missing := event.MissingFields()

	assert.ElementsMatch(t, []string{"transaction.paymentMethod", "transaction.amount", "client.phone"}, missing)
}

func TestDuckfyEvent_ToPaymentEvent_PaymentLinkFallback(t *testing.T) {
	event := models.DuckfyEvent{
		Transaction: &models.DuckfyTransaction{
			ID:            "tx-1",
			Status:        "PENDING",
			PaymentMethod: "PIX",
			Amount:        int64Ptr(4990),
			PaymentLink:   "https://pay.example.com/link",
		},
		Client: &models.DuckfyClient{Name: "João", Phone: "5511988887777"},
	}

	payment := event.ToPaymentEvent()

	assert.Equal(t, "tx-1", payment.ID)
	assert.Equal(t, "https://pay.example.com/link", payment.CheckoutURL)
	assert.Equal(t, "João", payment.CustomerName)
}
