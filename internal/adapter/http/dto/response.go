package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/transfergate/internal/domain"
)

// TransferResponse represents a transfer in API responses.
type TransferResponse struct {
	ID                    string          `json:"id"`
	Kind                  string          `json:"kind"`
	SourceAccountID       string          `json:"source_account_id"`
	DestinationAccountID  string          `json:"destination_account_id,omitempty"`
	BankCode              string          `json:"bank_code,omitempty"`
	ExternalAccountNumber string          `json:"external_account_number,omitempty"`
	Amount                decimal.Decimal `json:"amount"`
	Description           string          `json:"description,omitempty"`
	Status                string          `json:"status"`
	Reason                string          `json:"reason,omitempty"`
	CompletedAt           time.Time       `json:"completed_at"`
}

// TransferFromDomain converts domain transfer to response.
func TransferFromDomain(t *domain.Transfer) *TransferResponse {
	return &TransferResponse{
		ID:                    t.ID,
		Kind:                  string(t.Kind),
		SourceAccountID:       t.SourceAccountID,
		DestinationAccountID:  t.DestinationAccountID,
		BankCode:              t.BankCode,
		ExternalAccountNumber: t.ExternalAccountNumber,
		Amount:                t.Amount,
		Description:           t.Description,
		Status:                string(t.Status),
		Reason:                t.Reason,
		CompletedAt:           t.CompletedAt,
	}
}

// TransfersFromDomain converts domain transfers to responses.
func TransfersFromDomain(transfers []*domain.Transfer) []*TransferResponse {
	result := make([]*TransferResponse, len(transfers))
	for i, t := range transfers {
		result[i] = TransferFromDomain(t)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
