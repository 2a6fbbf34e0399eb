package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client defines the outbound SMS interface.
type Client interface {
	Send(ctx context.Context, to, body string) error
}

// Config holds Twilio credentials and the default sender identity. It is
// constructed once at process start and injected wherever SMS is needed.
type Config struct {
	AccountSID          string
	AuthToken           string
	MessagingServiceSID string
	FromNumber          string
}

// TwilioClient implements Client against the Twilio Messages REST API.
type TwilioClient struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewTwilioClient creates a Twilio SMS client.
func NewTwilioClient(cfg Config, logger *zap.Logger) *TwilioClient {
	return &TwilioClient{
		cfg:        cfg,
		baseURL:    "https://api.twilio.com",
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// Send posts one outbound message. The messaging service SID takes
// precedence over the bare from-number when both are configured.
func (c *TwilioClient) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("Body", body)
	if c.cfg.MessagingServiceSID != "" {
		form.Set("MessagingServiceSid", c.cfg.MessagingServiceSID)
	} else {
		form.Set("From", c.cfg.FromNumber)
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.cfg.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build twilio request: %w", err)
	}
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("twilio rejected message",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		return fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}

	c.logger.Info("SMS sent", zap.String("to", to))
	return nil
}
