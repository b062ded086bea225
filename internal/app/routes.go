package app

import "github.com/lk-black/sms-sender/internal/handlers"

func (a *App) RegisterRoutes(h *handlers.WebhookHandler) {
	a.Router.GET("/health", h.HealthCheck)

	webhook := a.Router.Group("/webhook")
	webhook.POST("/ghostpay", h.GhostPayWebhook)
	webhook.POST("/duckfy", h.DuckfyWebhook)
}
