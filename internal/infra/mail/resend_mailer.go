// Package mail implements the Mailer domain service against the Resend HTTP API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"pressroom/config"
	"pressroom/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultEndpoint = "https://api.resend.com/emails"

// sendRequest is the Resend API payload.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type resendMailer struct {
	apiKey     string
	from       string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// noopMailer drops every message. Used when no mail provider is configured,
// so environments without credentials still run all primary operations.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(_ context.Context, email *service.Email) error {
	m.logger.Debug("Mail disabled, dropping message", slog.String("subject", email.Subject))

	return nil
}

// NewMailer builds the Mailer from configuration. An empty API key yields the
// no-op implementation.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail == nil || cfg.Mail.APIKey == "" {
		logger.Info("Mail provider not configured, outbound email disabled")

		return &noopMailer{logger: logger}
	}

	endpoint := cfg.Mail.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &resendMailer{
		apiKey:   cfg.Mail.APIKey,
		from:     cfg.Mail.From,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Send posts one message to the provider. The caller decides whether a
// failure is fatal; on the request path it never is.
func (m *resendMailer) Send(ctx context.Context, email *service.Email) error {
	if len(email.To) == 0 {
		return errors.New("at least one recipient is required")
	}

	payload := sendRequest{
		From:    m.from,
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal email payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach email provider")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read email provider response")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(respBody, &errResp); jsonErr == nil && errResp.Message != "" {
			return errors.Errorf("email provider error (status %d): %s", resp.StatusCode, errResp.Message)
		}

		return errors.Errorf("email provider error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var sent sendResponse
	if err := json.Unmarshal(respBody, &sent); err == nil && sent.ID != "" {
		m.logger.Debug("Email sent", slog.String("emailID", sent.ID), slog.String("subject", email.Subject))
	}

	return nil
}
