package notifier

import (
	"context"
	"fmt"

	"github.com/lk-black/sms-sender/internal/models"
	"github.com/sirupsen/logrus"
)

// Outcome classifies what the service did with a payment event.
type Outcome string

const (
	// OutcomeSent means an SMS reminder was delivered to the provider.
	OutcomeSent Outcome = "SENT"
	// OutcomeResolved means the payment is already approved or completed.
	OutcomeResolved Outcome = "RESOLVED"
	// OutcomeIgnored means the event does not match the reminder criteria.
	OutcomeIgnored Outcome = "IGNORED"
)

// SMSSender defines the interface for sending an SMS to a customer.
type SMSSender interface {
	Send(ctx context.Context, to string, body string) (string, error)
}

// ReminderService decides whether a payment event deserves an SMS reminder
// and composes and sends the message when it does.
type ReminderService struct {
	Sender    SMSSender
	StoreName string
}

// NewReminderService creates a new ReminderService with the provided sender.
// StoreName is embedded in the reminder copy.
func NewReminderService(sender SMSSender, storeName string) *ReminderService {
	return &ReminderService{
		Sender:    sender,
		StoreName: storeName,
	}
}

// Process applies the reminder filter to a payment event. Exactly one SMS is
// sent when the payment is a pending PIX charge; every other combination is a
// no-op. Method and status are matched exactly, per the provider contract.
func (s *ReminderService) Process(ctx context.Context, event models.PaymentEvent) (Outcome, error) {
	log := logrus.WithFields(logrus.Fields{
		"payment_id": event.ID,
		"trace_id":   event.TraceID,
	})

	switch {
	case event.Method == models.MethodPIX && event.Status == models.StatusPending:
		sid, err := s.Sender.Send(ctx, event.CustomerPhone, s.composeReminder(event))
		if err != nil {
			log.Errorf("Error sending SMS reminder to %s: %s", event.CustomerPhone, err.Error())
			return "", err
		}
		log.Infof("SMS reminder sent to %s: %s", event.CustomerPhone, sid)
		return OutcomeSent, nil

	case event.Status == models.StatusApproved || event.Status == models.StatusCompleted:
		log.Infof("Payment is %s, no reminder needed", event.Status)
		return OutcomeResolved, nil

	default:
		log.Infof("Event ignored (status: %s, method: %s)", event.Status, event.Method)
		return OutcomeIgnored, nil
	}
}

func (s *ReminderService) composeReminder(event models.PaymentEvent) string {
	body := fmt.Sprintf("%s: seu pagamento PIX de %s ainda está pendente. Finalize agora para garantir seu pedido.",
		s.StoreName, FormatBRL(event.AmountCents))
	if event.CheckoutURL != "" {
		body = fmt.Sprintf("%s Acesse: %s", body, event.CheckoutURL)
	}
	return body
}
