package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"casegate/internal/pkg/config"
	"casegate/internal/pkg/errs"
)

// maxErrorBody caps how much of a provider error response is kept.
const maxErrorBody = 4 << 10

// ProviderError is a non-2xx answer from the email API.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email provider responded with status %d: %s", e.Status, e.Body)
}

// ResendSender talks to a Resend-compatible HTTP API.
type ResendSender struct {
	client *http.Client
	apiURL string
	apiKey string
}

func NewResendSender(cfg config.MailConfig) (*ResendSender, error) {
	if cfg.ResendAPIKey == "" {
		return nil, errs.New("RESEND_API_KEY is required for the resend mail driver")
	}
	return &ResendSender{
		client: &http.Client{Timeout: cfg.Timeout},
		apiURL: strings.TrimSuffix(cfg.ResendAPIURL, "/"),
		apiKey: cfg.ResendAPIKey,
	}, nil
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	payload, err := json.Marshal(resendRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", errs.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "email provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &ProviderError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	// the mail is accepted once the status is 2xx, even with an unreadable body
	var out resendResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&out); err != nil {
		slog.Warn("email accepted but provider response was unreadable",
			slog.Int("status", resp.StatusCode),
			slog.String("error", err.Error()))
		return "", nil
	}
	return out.ID, nil
}
