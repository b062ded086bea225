package sms_test

import (
	"context"
	"testing"

	"github.com/lk-black/sms-sender/config"
	"github.com/lk-black/sms-sender/internal/sms"
	"github.com/stretchr/testify/assert"
)

func TestDisabledSender_AlwaysFails(t *testing.T) {
	sender := sms.DisabledSender{}

	sid, err := sender.Send(context.Background(), "+5511999999999", "hello")

	assert.Empty(t, sid)
	assert.ErrorIs(t, err, sms.ErrSenderDisabled)
}

func TestNewTwilioSender(t *testing.T) {
	sender := sms.NewTwilioSender(config.Twilio{
		AccountSID:   "AC123",
		APIKeySID:    "SK123",
		APIKeySecret: "secret",
		PhoneNumber:  "+15550001111",
	})

	assert.NotNil(t, sender)
}
