package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lk-black/sms-sender/internal/models"
	"github.com/lk-black/sms-sender/internal/notifier"
)

type PaymentNotifier interface {
	Process(ctx context.Context, event models.PaymentEvent) (notifier.Outcome, error)
}

type WebhookHandler struct {
	Notifier    PaymentNotifier
	DuckfyToken string
}

func NewWebhookHandler(n PaymentNotifier, duckfyToken string) *WebhookHandler {
	return &WebhookHandler{
		Notifier:    n,
		DuckfyToken: duckfyToken,
	}
}

// POST /webhook/ghostpay
// TODO: verify the GhostPay signature once the provider documents one.
func (h *WebhookHandler) GhostPayWebhook(c *gin.Context) {
	var event models.GhostPayEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		logrus.Warnf("GhostPay webhook: invalid JSON body: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Request must be JSON"})
		return
	}

	if missing := event.MissingFields(); len(missing) > 0 {
		msg := fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))
		logrus.Warnf("GhostPay webhook for payment %s: %s", event.PaymentID, msg)
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": msg})
		return
	}

	payment := event.ToPaymentEvent()
	payment.CustomerPhone = notifier.FormatPhone(payment.CustomerPhone)
	payment.TraceID = uuid.New().String()

	h.respond(c, payment)
}

// POST /webhook/duckfy
func (h *WebhookHandler) DuckfyWebhook(c *gin.Context) {
	var event models.DuckfyEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		logrus.Warnf("Duckfy webhook: invalid JSON body: %s", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Request must be JSON"})
		return
	}

	if h.DuckfyToken != "" && event.Token != h.DuckfyToken {
		logrus.Warn("Duckfy webhook: invalid token received")
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Invalid token"})
		return
	}

	if event.Transaction == nil || event.Client == nil {
		logrus.Warn("Duckfy webhook: missing or invalid transaction or client data structure")
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Missing or invalid transaction or client data structure"})
		return
	}

	if missing := event.MissingFields(); len(missing) > 0 {
		msg := fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))
		logrus.Warnf("Duckfy webhook for transaction %s: %s", event.Transaction.ID, msg)
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": msg})
		return
	}

	payment := event.ToPaymentEvent()
	payment.CustomerPhone = notifier.FormatPhone(payment.CustomerPhone)
	payment.TraceID = uuid.New().String()

	if payment.Method != models.MethodPIX {
		logrus.Infof("Duckfy webhook: transaction %s method %s ignored, only PIX is accepted", payment.ID, payment.Method)
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "message": fmt.Sprintf("Payment method %s not supported. Only PIX is accepted.", payment.Method)})
		return
	}

	h.respond(c, payment)
}

// GET /health
func (h *WebhookHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *WebhookHandler) respond(c *gin.Context, payment models.PaymentEvent) {
	outcome, err := h.Notifier.Process(c.Request.Context(), payment)
	if err != nil {
		logrus.WithField("trace_id", payment.TraceID).
			Errorf("Webhook for payment %s: failed to send SMS to %s: %s", payment.ID, payment.CustomerPhone, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to send SMS reminder."})
		return
	}

	switch outcome {
	case notifier.OutcomeSent:
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "SMS reminder sent for pending PIX."})
	case notifier.OutcomeResolved:
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": fmt.Sprintf("Payment %s, no reminder needed.", payment.Status)})
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "message": "Event not relevant for PIX reminder or already handled."})
	}
}
