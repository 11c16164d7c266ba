package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/transfergate/internal/domain"
	"github.com/iho/transfergate/internal/infrastructure/metrics"
)

// AccountsClient implements usecase.AccountGateway against the accounts
// service HTTP API. Every method is a single attempt: no retries, one
// request per orchestrator step.
type AccountsClient struct {
	baseURL string
	client  *http.Client
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewAccountsClient creates a new AccountsClient. m may be nil.
func NewAccountsClient(baseURL string, timeout time.Duration, m *metrics.Metrics, logger zerolog.Logger) *AccountsClient {
	return &AccountsClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		metrics: m,
		logger:  logger,
	}
}

type accountPayload struct {
	ID       string          `json:"id"`
	OwnerID  string          `json:"owner_id"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Status   string          `json:"status"`
}

type balanceCheckPayload struct {
	HasFunds bool `json:"has_funds"`
}

type movementPayload struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Get returns a snapshot of the account.
func (c *AccountsClient) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	resp, err := c.do(ctx, "get_account", http.MethodGet, c.accountURL(accountID, ""), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrAccountNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: accounts service returned %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}

	var payload accountPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding account: %s", domain.ErrGatewayUnavailable, err)
	}

	return &domain.Account{
		ID:       payload.ID,
		OwnerID:  payload.OwnerID,
		Currency: payload.Currency,
		Balance:  payload.Balance,
		Status:   domain.AccountStatus(payload.Status),
	}, nil
}

// ValidateBalance reports whether the account holds at least amount.
func (c *AccountsClient) ValidateBalance(ctx context.Context, accountID string, amount decimal.Decimal) (bool, error) {
	endpoint := c.accountURL(accountID, "/validate-balance") + "?amount=" + url.QueryEscape(amount.String())

	resp, err := c.do(ctx, "validate_balance", http.MethodPost, endpoint, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, domain.ErrAccountNotFound
	case resp.StatusCode != http.StatusOK:
		return false, fmt.Errorf("%w: accounts service returned %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}

	var payload balanceCheckPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("%w: decoding balance check: %s", domain.ErrGatewayUnavailable, err)
	}

	return payload.HasFunds, nil
}

// Debit withdraws amount from the account.
func (c *AccountsClient) Debit(ctx context.Context, accountID string, amount decimal.Decimal, description string) error {
	resp, err := c.do(ctx, "withdraw", http.MethodPost, c.accountURL(accountID, "/withdraw"), movementPayload{
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusPaymentRequired:
		return domain.ErrInsufficientFunds
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrAccountNotFound
	default:
		return fmt.Errorf("%w: withdraw returned %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}
}

// Credit deposits amount into the account.
func (c *AccountsClient) Credit(ctx context.Context, accountID string, amount decimal.Decimal, description string) error {
	resp, err := c.do(ctx, "deposit", http.MethodPost, c.accountURL(accountID, "/deposit"), movementPayload{
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrAccountNotFound
	default:
		return fmt.Errorf("%w: deposit returned %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}
}

func (c *AccountsClient) accountURL(accountID, suffix string) string {
	return c.baseURL + "/accounts/" + url.PathEscape(accountID) + suffix
}

func (c *AccountsClient) do(ctx context.Context, operation, method, endpoint string, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()

	resp, err := c.client.Do(req)

	if c.metrics != nil {
		c.metrics.GatewayRequests.WithLabelValues("accounts", operation).Inc()
		c.metrics.GatewayDuration.WithLabelValues("accounts", operation).Observe(time.Since(start).Seconds())
		if err != nil {
			c.metrics.GatewayErrors.WithLabelValues("accounts", operation).Inc()
		}
	}

	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("operation", operation).
			Msg("accounts service call failed")

		return nil, fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, err)
	}

	return resp, nil
}
