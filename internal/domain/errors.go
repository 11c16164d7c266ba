package domain

import "errors"

var (
	// Request validation errors. These reject a transfer before any
	// external call is made and never reach the ledger.
	ErrInvalidKind            = errors.New("unknown transfer kind")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrMissingSource          = errors.New("source account is required")
	ErrMissingDestination     = errors.New("destination account is required")
	ErrMissingExternalDetails = errors.New("bank code and external account number are required")
	ErrAmbiguousDestination   = errors.New("exactly one of destination account or external bank details must be set")
	ErrSameAccount            = errors.New("cannot transfer to the same account")

	// Authorization errors.
	ErrUnauthorized = errors.New("caller does not own the source account")

	// Downstream errors.
	ErrAccountNotFound    = errors.New("account not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrGatewayUnavailable = errors.New("downstream service unavailable")
	ErrRailRejected       = errors.New("settlement rail rejected the transfer")

	// Ledger errors.
	ErrTransferNotFound = errors.New("transfer not found")
	ErrLedgerWrite      = errors.New("failed to persist transfer record")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
