package models

import "strings"

type PaymentMethod string
type PaymentStatus string

const (
	MethodPIX PaymentMethod = "PIX"

	StatusPending   PaymentStatus = "PENDING"
	StatusApproved  PaymentStatus = "APPROVED"
	StatusCompleted PaymentStatus = "COMPLETED"
)

// GhostPayEvent is the webhook body GhostPay posts on payment state changes.
// Amount is in centavos.
type GhostPayEvent struct {
	PaymentID     string `json:"paymentId"`
	PaymentMethod string `json:"paymentMethod"`
	Status        string `json:"status"`
	Amount        *int64 `json:"amount"`
	CustomerPhone string `json:"customerPhone"`
	CustomerName  string `json:"customerName"`
	CheckoutURL   string `json:"checkoutUrl"`
	PixQrCode     string `json:"pixQrCode"`
}

// MissingFields reports which fields required for the reminder flow are absent.
func (e GhostPayEvent) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(e.PaymentMethod) == "" {
		missing = append(missing, "paymentMethod")
	}
	if strings.TrimSpace(e.Status) == "" {
		missing = append(missing, "status")
	}
	if e.Amount == nil {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(e.CustomerPhone) == "" {
		missing = append(missing, "customerPhone")
	}
	return missing
}

func (e GhostPayEvent) ToPaymentEvent() PaymentEvent {
	var amount int64
	if e.Amount != nil {
		amount = *e.Amount
	}
	checkout := e.CheckoutURL
	if checkout == "" {
		checkout = e.PixQrCode
	}
	return PaymentEvent{
		ID:            e.PaymentID,
		Method:        PaymentMethod(strings.TrimSpace(e.PaymentMethod)),
		Status:        PaymentStatus(strings.TrimSpace(e.Status)),
		AmountCents:   amount,
		CustomerPhone: strings.TrimSpace(e.CustomerPhone),
		CustomerName:  strings.TrimSpace(e.CustomerName),
		CheckoutURL:   checkout,
	}
}

// DuckfyEvent is the webhook body Duckfy posts, with transaction and client
// data nested under their own keys.
type DuckfyEvent struct {
	Token       string             `json:"token"`
	Transaction *DuckfyTransaction `json:"transaction"`
	Client      *DuckfyClient      `json:"client"`
}

type DuckfyTransaction struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	Amount        *int64 `json:"amount"`
	CheckoutURL   string `json:"checkoutUrl"`
	PaymentLink   string `json:"paymentLink"`
}

type DuckfyClient struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// MissingFields reports absent required fields. Callers must have checked
// that Transaction and Client are present.
func (e DuckfyEvent) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(e.Transaction.ID) == "" {
		missing = append(missing, "transaction.id")
	}
	if strings.TrimSpace(e.Transaction.Status) == "" {
		missing = append(missing, "transaction.status")
	}
	if strings.TrimSpace(e.Transaction.PaymentMethod) == "" {
		missing = append(missing, "transaction.paymentMethod")
	}
	if e.Transaction.Amount == nil {
		missing = append(missing, "transaction.amount")
	}
	if strings.TrimSpace(e.Client.Phone) == "" {
		missing = append(missing, "client.phone")
	}
	return missing
}

func (e DuckfyEvent) ToPaymentEvent() PaymentEvent {
	var amount int64
	if e.Transaction.Amount != nil {
		amount = *e.Transaction.Amount
	}
	checkout := e.Transaction.CheckoutURL
	if checkout == "" {
		checkout = e.Transaction.PaymentLink
	}
	return PaymentEvent{
		ID:            e.Transaction.ID,
		Method:        PaymentMethod(strings.TrimSpace(e.Transaction.PaymentMethod)),
		Status:        PaymentStatus(strings.TrimSpace(e.Transaction.Status)),
		AmountCents:   amount,
		CustomerPhone: strings.TrimSpace(e.Client.Phone),
		CustomerName:  strings.TrimSpace(e.Client.Name),
		CheckoutURL:   checkout,
	}
}

// PaymentEvent is the provider-independent view of a webhook delivery. It
// lives only for the duration of the request that carried it.
type PaymentEvent struct {
	ID            string
	Method        PaymentMethod
	Status        PaymentStatus
	AmountCents   int64
	CustomerPhone string
	CustomerName  string
	CheckoutURL   string
	TraceID       string
}
