package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	EventTypeTransferRecorded = "transfer.recorded"
)

// TransferRecorded is published after a transfer attempt has been written
// to the ledger, whatever its outcome.
type TransferRecorded struct {
	TransferID            string          `json:"transfer_id"`
	Kind                  TransferKind    `json:"kind"`
	SourceAccountID       string          `json:"source_account_id"`
	DestinationAccountID  string          `json:"destination_account_id,omitempty"`
	BankCode              string          `json:"bank_code,omitempty"`
	ExternalAccountNumber string          `json:"external_account_number,omitempty"`
	Amount                decimal.Decimal `json:"amount"`
	Status                TransferStatus  `json:"status"`
	Reason                string          `json:"reason,omitempty"`
	OccurredAt            time.Time       `json:"occurred_at"`
}

// RecordedEvent builds the event payload for a completed transfer.
func (t *Transfer) RecordedEvent() TransferRecorded {
	return TransferRecorded{
		TransferID:            t.ID,
		Kind:                  t.Kind,
		SourceAccountID:       t.SourceAccountID,
		DestinationAccountID:  t.DestinationAccountID,
		BankCode:              t.BankCode,
		ExternalAccountNumber: t.ExternalAccountNumber,
		Amount:                t.Amount,
		Status:                t.Status,
		Reason:                t.Reason,
		OccurredAt:            t.CompletedAt,
	}
}
