package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/transfergate/internal/domain"
	"github.com/iho/transfergate/internal/usecase"
)

// CreateTransferRequest represents a request to execute a transfer.
// Amount is a string to avoid float rounding on the wire.
type CreateTransferRequest struct {
	Kind                  string `json:"kind"`
	SourceAccountID       string `json:"source_account_id"`
	DestinationAccountID  string `json:"destination_account_id,omitempty"`
	BankCode              string `json:"bank_code,omitempty"`
	ExternalAccountNumber string `json:"external_account_number,omitempty"`
	Amount                string `json:"amount"`
	Description           string `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() (usecase.ExecuteTransferInput, error) {
	kind := domain.TransferKind(r.Kind)
	if !kind.Valid() {
		return usecase.ExecuteTransferInput{}, domain.ErrInvalidKind
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return usecase.ExecuteTransferInput{}, domain.ErrInvalidAmount
	}

	return usecase.ExecuteTransferInput{
		Kind:                  kind,
		SourceAccountID:       r.SourceAccountID,
		DestinationAccountID:  r.DestinationAccountID,
		BankCode:              r.BankCode,
		ExternalAccountNumber: r.ExternalAccountNumber,
		Amount:                amount,
		Description:           r.Description,
	}, nil
}

// ListTransfersRequest carries the query filters for listing transfers.
type ListTransfersRequest struct {
	AccountID string
	Kind      string
}

// ToFilter converts to a domain filter.
func (r *ListTransfersRequest) ToFilter() (domain.TransferFilter, error) {
	filter := domain.TransferFilter{AccountID: r.AccountID}

	if r.Kind != "" {
		kind := domain.TransferKind(r.Kind)
		if !kind.Valid() {
			return domain.TransferFilter{}, domain.ErrInvalidKind
		}
		filter.Kind = kind
	}

	return filter, nil
}
