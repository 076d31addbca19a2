package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tapetashop/tapeta/internal/config"
	"github.com/tapetashop/tapeta/internal/verification/domain"
	"go.uber.org/zap"
)

// New returns the gateway sender when an API token is configured and a
// log-only sender otherwise, so development setups work without an SMS
// account.
func New(cfg config.Config, log *zap.Logger) domain.Sender {
	if cfg.SMSAPIToken == "" {
		return &logSender{log: log.Named("sms.log")}
	}
	return &gatewaySender{
		log:         log.Named("sms.gateway"),
		client:      &http.Client{Timeout: 10 * time.Second},
		url:         cfg.SMSAPIURL,
		token:       cfg.SMSAPIToken,
		alphaNameID: cfg.SMSAlphaNameID,
	}
}

type logSender struct {
	log *zap.Logger
}

func (s *logSender) Send(_ context.Context, phoneNumber, message string) error {
	s.log.Info("sms suppressed, no api token configured",
		zap.String("phone_number", phoneNumber),
		zap.String("message", message),
	)
	return nil
}

type gatewaySender struct {
	log         *zap.Logger
	client      *http.Client
	url         string
	token       string
	alphaNameID string
}

type gatewayRequest struct {
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	Token       string `json:"token"`
	AlphaNameID string `json:"alphaname_id,omitempty"`
}

type gatewayResponse struct {
	Success bool `json:"success"`
}

func (s *gatewaySender) Send(ctx context.Context, phoneNumber, message string) error {
	body, err := json.Marshal(gatewayRequest{
		Phone:       phoneNumber,
		Message:     message,
		Token:       s.token,
		AlphaNameID: s.alphaNameID,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	defer resp.Body.Close()

	var parsed gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("sms gateway response: %w", err)
	}
	if !parsed.Success {
		return fmt.Errorf("sms gateway rejected message, status %d", resp.StatusCode)
	}

	s.log.Info("sms sent", zap.String("phone_number", phoneNumber))
	return nil
}
