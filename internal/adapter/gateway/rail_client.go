package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/transfergate/internal/domain"
	"github.com/iho/transfergate/internal/infrastructure/metrics"
)

// RailClient implements usecase.RailGateway against the interbank
// settlement endpoint. One attempt per settlement; the orchestrator
// treats a rejection and an outage identically.
type RailClient struct {
	baseURL string
	client  *http.Client
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewRailClient creates a new RailClient. m may be nil.
func NewRailClient(baseURL string, timeout time.Duration, m *metrics.Metrics, logger zerolog.Logger) *RailClient {
	return &RailClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		metrics: m,
		logger:  logger,
	}
}

type settlementPayload struct {
	BankCode              string          `json:"bank_code"`
	ExternalAccountNumber string          `json:"external_account_number"`
	Amount                decimal.Decimal `json:"amount"`
	Description           string          `json:"description,omitempty"`
}

// Send forwards funds to an external account through the rail.
func (c *RailClient) Send(ctx context.Context, bankCode, externalAccountNumber string, amount decimal.Decimal, description string) error {
	encoded, err := json.Marshal(settlementPayload{
		BankCode:              bankCode,
		ExternalAccountNumber: externalAccountNumber,
		Amount:                amount,
		Description:           description,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/settlements", bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()

	resp, err := c.client.Do(req)

	if c.metrics != nil {
		c.metrics.GatewayRequests.WithLabelValues("rail", "send").Inc()
		c.metrics.GatewayDuration.WithLabelValues("rail", "send").Observe(time.Since(start).Seconds())
		if err != nil {
			c.metrics.GatewayErrors.WithLabelValues("rail", "send").Inc()
		}
	}

	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("bank_code", bankCode).
			Msg("settlement rail call failed")

		return fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: rail returned %d", domain.ErrRailRejected, resp.StatusCode)
	default:
		return fmt.Errorf("%w: rail returned %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}
}
