package app

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lk-black/sms-sender/config"
	"github.com/lk-black/sms-sender/internal/handlers"
	"github.com/lk-black/sms-sender/internal/notifier"
	"github.com/lk-black/sms-sender/internal/sms"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg

	var sender sms.Sender
	if missing := cfg.Twilio.MissingVars(); len(missing) > 0 {
		logrus.Errorf("Missing Twilio credentials: %s. SMS functionality will be disabled.", strings.Join(missing, ", "))
		sender = sms.DisabledSender{}
	} else {
		sender = sms.NewTwilioSender(cfg.Twilio)
		logrus.Info("Twilio client initialized successfully")
	}

	reminderService := notifier.NewReminderService(sender, cfg.Notification.StoreName)
	webhookHandler := handlers.NewWebhookHandler(reminderService, cfg.Duckfy.WebhookToken)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(webhookHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
