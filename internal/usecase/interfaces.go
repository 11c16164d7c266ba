package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/transfergate/internal/domain"
)

// AccountGateway is the client-side view of the accounts service. Every
// call crosses a network boundary and may fail independently; there is no
// transaction spanning two calls.
type AccountGateway interface {
	// Get returns a snapshot of the account, or domain.ErrAccountNotFound.
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	// ValidateBalance reports whether the account currently holds at
	// least amount.
	ValidateBalance(ctx context.Context, accountID string, amount decimal.Decimal) (bool, error)
	// Debit withdraws amount from the account. Returns
	// domain.ErrInsufficientFunds, domain.ErrAccountNotFound or
	// domain.ErrGatewayUnavailable on failure.
	Debit(ctx context.Context, accountID string, amount decimal.Decimal, description string) error
	// Credit deposits amount into the account.
	Credit(ctx context.Context, accountID string, amount decimal.Decimal, description string) error
}

// RailGateway is the client-side view of the interbank settlement rail.
type RailGateway interface {
	// Send forwards funds to an external account. A nil error means the
	// rail accepted the settlement; domain.ErrRailRejected and
	// domain.ErrGatewayUnavailable are both terminal for the attempt.
	Send(ctx context.Context, bankCode, externalAccountNumber string, amount decimal.Decimal, description string) error
}

// TransferLedger is the durable, append-only record of transfer attempts.
type TransferLedger interface {
	// Append stores the record immutably, assigning an identifier if the
	// record has none, and returns the identifier.
	Append(ctx context.Context, transfer *domain.Transfer) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Transfer, error)
	List(ctx context.Context, filter domain.TransferFilter) ([]*domain.Transfer, error)
}

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.TransferRecorded) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
