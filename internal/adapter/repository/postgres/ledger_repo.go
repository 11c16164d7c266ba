package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/transfergate/internal/domain"
	"github.com/iho/transfergate/internal/infrastructure/metrics"
)

// LedgerRepository implements usecase.TransferLedger on PostgreSQL.
// Records are insert-only: there is no UPDATE or DELETE path.
type LedgerRepository struct {
	pool    *pgxpool.Pool
	idGen   *ULIDGenerator
	metrics *metrics.Metrics
}

// NewLedgerRepository creates a new LedgerRepository. m may be nil.
func NewLedgerRepository(pool *pgxpool.Pool, m *metrics.Metrics) *LedgerRepository {
	return &LedgerRepository{
		pool:    pool,
		idGen:   NewULIDGenerator(),
		metrics: m,
	}
}

// Append stores the record immutably, assigning an identifier if the
// record has none, and returns the identifier.
func (r *LedgerRepository) Append(ctx context.Context, transfer *domain.Transfer) (string, error) {
	if transfer.ID == "" {
		transfer.ID = r.idGen.Generate()
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO transfers (
			id, kind, source_account_id, destination_account_id,
			bank_code, external_account_number, amount, description,
			status, reason, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		transfer.ID,
		string(transfer.Kind),
		transfer.SourceAccountID,
		nullable(transfer.DestinationAccountID),
		nullable(transfer.BankCode),
		nullable(transfer.ExternalAccountNumber),
		transfer.Amount,
		nullable(transfer.Description),
		string(transfer.Status),
		nullable(transfer.Reason),
		transfer.CompletedAt,
	)
	if err != nil {
		if r.metrics != nil {
			r.metrics.LedgerAppendErrors.Inc()
		}
		return "", fmt.Errorf("inserting transfer record: %w", err)
	}

	if r.metrics != nil {
		r.metrics.LedgerAppends.Inc()
	}

	return transfer.ID, nil
}

// GetByID retrieves a transfer by ID.
func (r *LedgerRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, kind, source_account_id, destination_account_id,
		       bank_code, external_account_number, amount, description,
		       status, reason, completed_at
		FROM transfers
		WHERE id = $1`, id)

	transfer, err := scanTransfer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransferNotFound
		}
		return nil, err
	}

	return transfer, nil
}

// List returns transfers matching the filter, newest first. An account
// filter matches records where the account is source or destination.
func (r *LedgerRepository) List(ctx context.Context, filter domain.TransferFilter) ([]*domain.Transfer, error) {
	query := `
		SELECT id, kind, source_account_id, destination_account_id,
		       bank_code, external_account_number, amount, description,
		       status, reason, completed_at
		FROM transfers`

	var (
		conditions []string
		args       []any
	)

	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		conditions = append(conditions, fmt.Sprintf("(source_account_id = $%d OR destination_account_id = $%d)", len(args), len(args)))
	}

	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY completed_at DESC, id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []*domain.Transfer
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, transfer)
	}

	return transfers, rows.Err()
}

func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	var (
		transfer    domain.Transfer
		kind        string
		status      string
		destination *string
		bankCode    *string
		externalNum *string
		description *string
		reason      *string
		amount      decimal.Decimal
		completedAt time.Time
	)

	err := row.Scan(
		&transfer.ID,
		&kind,
		&transfer.SourceAccountID,
		&destination,
		&bankCode,
		&externalNum,
		&amount,
		&description,
		&status,
		&reason,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	transfer.Kind = domain.TransferKind(kind)
	transfer.Status = domain.TransferStatus(status)
	transfer.Amount = amount
	transfer.CompletedAt = completedAt
	transfer.DestinationAccountID = deref(destination)
	transfer.BankCode = deref(bankCode)
	transfer.ExternalAccountNumber = deref(externalNum)
	transfer.Description = deref(description)
	transfer.Reason = deref(reason)

	return &transfer, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
