package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"voyago/config"
	"voyago/infras/otel"
	"voyago/shared/constant"
)

const (
	otelScopeName = "mail"

	templateVerificationCode = "verification_code"

	defaultTimeoutSeconds = 10
)

// RateLimitError is returned when the delivery service throttles a send.
// Message carries the upstream response text, which may contain a
// retry-after duration.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// Gateway delivers transactional mail through the external
// email-rendering service. Template rendering happens upstream;
// this client only posts template name and variables.
type Gateway interface {
	SendVerificationCode(ctx context.Context, recipient, code string) error
}

type sendRequest struct {
	To        string            `json:"to"`
	From      string            `json:"from"`
	Template  string            `json:"template"`
	Variables map[string]string `json:"variables"`
}

type sendResponse struct {
	Message string `json:"message"`
}

type gatewayImpl struct {
	config *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Gateway {
	timeout := cfg.External.Mail.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &gatewayImpl{
		config: cfg,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		otel:   otel,
	}
}

func (g *gatewayImpl) SendVerificationCode(ctx context.Context, recipient, code string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".SendVerificationCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := sendRequest{
		To:       recipient,
		From:     g.config.External.Mail.Sender,
		Template: templateVerificationCode,
		Variables: map[string]string{
			"code": code,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.External.Mail.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAPIKey, g.config.External.Mail.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("recipient", recipient).Msg("failed to call mail service")

		return fmt.Errorf("failed to call mail service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		var decoded sendResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&decoded); decodeErr != nil {
			decoded.Message = "too many requests"
		}

		log.Warn().Str("recipient", recipient).Str("message", decoded.Message).Msg("mail service throttled send")

		return &RateLimitError{Message: decoded.Message}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		log.Error().Int("status", resp.StatusCode).Str("recipient", recipient).Msg("mail service rejected send")

		return fmt.Errorf("mail service responded with status %d", resp.StatusCode)
	}

	log.Info().Str("recipient", recipient).Msg("verification mail accepted for delivery")

	return nil
}
