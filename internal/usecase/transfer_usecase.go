package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/transfergate/internal/domain"
	"github.com/iho/transfergate/internal/infrastructure/metrics"
)

// Movement descriptions sent to the accounts service.
const (
	debitDescription  = "transfer sent"
	creditDescription = "transfer received"
)

// TransferUseCase orchestrates the cross-service funds movement: it
// authorizes the caller, checks funds, drives the debit/credit (or
// debit/settlement) sequence and writes exactly one ledger record per
// attempt. There is no transaction spanning the gateway calls and no
// compensation: a credit or settlement failure after a successful debit
// leaves the source debited, and the record says REJECTED.
type TransferUseCase struct {
	accounts AccountGateway
	rail     RailGateway
	ledger   TransferLedger
	idGen    IDGenerator
	events   EventPublisher
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewTransferUseCase creates a new TransferUseCase. events and metrics
// may be nil.
func NewTransferUseCase(
	accounts AccountGateway,
	rail RailGateway,
	ledger TransferLedger,
	idGen IDGenerator,
	events EventPublisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		accounts: accounts,
		rail:     rail,
		ledger:   ledger,
		idGen:    idGen,
		events:   events,
		metrics:  m,
		logger:   logger,
	}
}

// ExecuteTransferInput represents one transfer request. The destination
// fields follow the kind: intra-bank kinds carry DestinationAccountID,
// the interbank kind carries BankCode and ExternalAccountNumber.
type ExecuteTransferInput struct {
	Kind                  domain.TransferKind
	SourceAccountID       string
	DestinationAccountID  string
	BankCode              string
	ExternalAccountNumber string
	Amount                decimal.Decimal
	Description           string
}

// Execute runs one transfer attempt for the given caller. Validation and
// authorization failures return an error without touching the ledger;
// everything past the funds check ends in a recorded outcome, SUCCEEDED
// or REJECTED, returned with a nil error.
func (uc *TransferUseCase) Execute(ctx context.Context, callerID string, input ExecuteTransferInput) (*domain.Transfer, error) {
	start := time.Now()

	transfer, err := uc.execute(ctx, callerID, input)
	if uc.metrics != nil {
		// Failing attempts count too: slow rejections are as much a
		// latency signal as slow successes.
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
	}

	return transfer, err
}

func (uc *TransferUseCase) execute(ctx context.Context, callerID string, input ExecuteTransferInput) (*domain.Transfer, error) {
	transfer := &domain.Transfer{
		Kind:                  input.Kind,
		SourceAccountID:       input.SourceAccountID,
		DestinationAccountID:  input.DestinationAccountID,
		BankCode:              input.BankCode,
		ExternalAccountNumber: input.ExternalAccountNumber,
		Amount:                input.Amount,
		Description:           input.Description,
	}

	if err := transfer.Validate(); err != nil {
		return nil, err
	}

	source, err := uc.accounts.Get(ctx, transfer.SourceAccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if !source.OwnedBy(callerID) {
		return nil, domain.ErrUnauthorized
	}

	hasFunds, err := uc.accounts.ValidateBalance(ctx, transfer.SourceAccountID, transfer.Amount)
	if err != nil {
		return nil, err
	}

	if !hasFunds {
		return uc.record(ctx, transfer, domain.StatusRejected, domain.ReasonInsufficientFunds)
	}

	if err := uc.accounts.Debit(ctx, transfer.SourceAccountID, transfer.Amount, debitDescription); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return uc.record(ctx, transfer, domain.StatusRejected, domain.ReasonInsufficientFunds)
		}
		return uc.record(ctx, transfer, domain.StatusRejected, domain.ReasonDebitFailed)
	}

	// The debit has landed. From here the attempt runs to completion
	// even if the caller goes away, so the outcome always gets recorded.
	ctx = context.WithoutCancel(ctx)

	status, reason := domain.StatusSucceeded, ""

	if transfer.Kind.Interbank() {
		if err := uc.rail.Send(ctx, transfer.BankCode, transfer.ExternalAccountNumber, transfer.Amount, transfer.Description); err != nil {
			status, reason = domain.StatusRejected, domain.ReasonSettlementFailed
			uc.logger.Error().
				Err(err).
				Str("source_account_id", transfer.SourceAccountID).
				Str("bank_code", transfer.BankCode).
				Str("amount", transfer.Amount.String()).
				Msg("settlement failed after debit; source remains debited")
		}
	} else {
		if err := uc.accounts.Credit(ctx, transfer.DestinationAccountID, transfer.Amount, creditDescription); err != nil {
			status, reason = domain.StatusRejected, domain.ReasonCreditFailed
			uc.logger.Error().
				Err(err).
				Str("source_account_id", transfer.SourceAccountID).
				Str("destination_account_id", transfer.DestinationAccountID).
				Str("amount", transfer.Amount.String()).
				Msg("credit failed after debit; source remains debited")
		}
	}

	return uc.record(ctx, transfer, status, reason)
}

// record writes the single ledger entry for the attempt and publishes the
// recorded event. An append failure is fatal for the request even though
// money may already have moved.
func (uc *TransferUseCase) record(ctx context.Context, transfer *domain.Transfer, status domain.TransferStatus, reason string) (*domain.Transfer, error) {
	transfer.ID = uc.idGen.Generate()
	transfer.Status = status
	transfer.Reason = reason
	transfer.CompletedAt = time.Now().UTC()

	if _, err := uc.ledger.Append(ctx, transfer); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrLedgerWrite, err)
	}

	if uc.metrics != nil {
		uc.metrics.TransfersRecorded.WithLabelValues(string(transfer.Kind), string(status)).Inc()

		amount, _ := transfer.Amount.Float64()
		uc.metrics.TransferAmount.Observe(amount)
	}

	if uc.events != nil {
		if err := uc.events.Publish(ctx, transfer.RecordedEvent()); err != nil {
			uc.logger.Warn().
				Err(err).
				Str("transfer_id", transfer.ID).
				Msg("failed to publish transfer event")
		}
	}

	return transfer, nil
}

// GetTransfer retrieves a transfer by ID. Records whose source account
// the caller does not own are reported as not found.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, callerID, id string) (*domain.Transfer, error) {
	transfer, err := uc.ledger.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !uc.callerOwnsSource(ctx, callerID, transfer.SourceAccountID) {
		return nil, domain.ErrTransferNotFound
	}

	return transfer, nil
}

// ListTransfers lists transfers matching the filter, restricted to those
// whose source account the caller owns.
func (uc *TransferUseCase) ListTransfers(ctx context.Context, callerID string, filter domain.TransferFilter) ([]*domain.Transfer, error) {
	transfers, err := uc.ledger.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool)

	result := make([]*domain.Transfer, 0, len(transfers))
	for _, t := range transfers {
		owns, seen := owned[t.SourceAccountID]
		if !seen {
			owns = uc.callerOwnsSource(ctx, callerID, t.SourceAccountID)
			owned[t.SourceAccountID] = owns
		}

		if owns {
			result = append(result, t)
		}
	}

	return result, nil
}

func (uc *TransferUseCase) callerOwnsSource(ctx context.Context, callerID, accountID string) bool {
	account, err := uc.accounts.Get(ctx, accountID)
	if err != nil {
		return false
	}

	return account.OwnedBy(callerID)
}
