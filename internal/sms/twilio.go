package sms

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/lk-black/sms-sender/config"
)

// ErrSenderDisabled is returned by DisabledSender when Twilio credentials
// were not configured at startup.
var ErrSenderDisabled = errors.New("sms sender disabled: missing Twilio credentials")

// Sender represents a client capable of sending SMS messages.
type Sender interface {
	Send(ctx context.Context, to string, body string) (string, error)
}

// TwilioSender sends SMS through the Twilio REST API, authenticating with an
// API key against the configured account.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(cfg config.Twilio) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.APIKeySID,
		Password:   cfg.APIKeySecret,
		AccountSid: cfg.AccountSID,
	})
	return &TwilioSender{
		client: client,
		from:   cfg.PhoneNumber,
	}
}

// Send submits one message and returns the Twilio message SID. There is no
// retry; the caller decides what a failed send means.
func (s *TwilioSender) Send(ctx context.Context, to string, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}

	var sid string
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	logrus.Infof("SMS sent to %s: %s", to, sid)
	return sid, nil
}

// DisabledSender stands in for TwilioSender when credentials are missing, so
// the service keeps acknowledging webhooks while sends fail loudly.
type DisabledSender struct{}

func (DisabledSender) Send(ctx context.Context, to string, body string) (string, error) {
	return "", ErrSenderDisabled
}
