package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferKind identifies the flavour of funds movement.
type TransferKind string

const (
	// KindIntraOwn moves money between two accounts of the same client.
	KindIntraOwn TransferKind = "INTRA_OWN"
	// KindIntraThirdParty moves money to another client's account at this bank.
	KindIntraThirdParty TransferKind = "INTRA_THIRD_PARTY"
	// KindInterbank forwards money to an account at another institution
	// through the settlement rail.
	KindInterbank TransferKind = "INTERBANK"
)

// Valid reports whether the kind is one of the known values.
func (k TransferKind) Valid() bool {
	switch k {
	case KindIntraOwn, KindIntraThirdParty, KindInterbank:
		return true
	}
	return false
}

// Interbank reports whether the destination is external to this bank.
func (k TransferKind) Interbank() bool {
	return k == KindInterbank
}

// TransferStatus is the final outcome of a transfer attempt.
type TransferStatus string

const (
	StatusSucceeded TransferStatus = "SUCCEEDED"
	StatusRejected  TransferStatus = "REJECTED"
)

// Rejection reasons recorded alongside a REJECTED status.
const (
	ReasonInsufficientFunds = "INSUFFICIENT_FUNDS"
	ReasonDebitFailed       = "DEBIT_FAILED"
	ReasonCreditFailed      = "CREDIT_FAILED"
	ReasonSettlementFailed  = "SETTLEMENT_FAILED"
)

// Transfer is the immutable record of one transfer attempt. It is created
// once, after the outcome is known, and never updated.
type Transfer struct {
	ID                    string
	Kind                  TransferKind
	SourceAccountID       string
	DestinationAccountID  string
	BankCode              string
	ExternalAccountNumber string
	Amount                decimal.Decimal
	Description           string
	Status                TransferStatus
	Reason                string
	CompletedAt           time.Time
}

// Validate checks the request-side fields of a transfer before any
// external call is made. Exactly one of the destination account or the
// external bank details must be populated, according to the kind.
func (t *Transfer) Validate() error {
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.SourceAccountID == "" {
		return ErrMissingSource
	}

	if t.Kind.Interbank() {
		if t.DestinationAccountID != "" {
			return ErrAmbiguousDestination
		}
		if t.BankCode == "" || t.ExternalAccountNumber == "" {
			return ErrMissingExternalDetails
		}
		return nil
	}

	if t.BankCode != "" || t.ExternalAccountNumber != "" {
		return ErrAmbiguousDestination
	}

	if t.DestinationAccountID == "" {
		return ErrMissingDestination
	}

	if t.DestinationAccountID == t.SourceAccountID {
		return ErrSameAccount
	}

	return nil
}

// TransferFilter narrows a ledger listing. A non-empty AccountID matches
// transfers where the account is either source or destination.
type TransferFilter struct {
	AccountID string
	Kind      TransferKind
}
