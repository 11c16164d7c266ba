package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransfer_Validate(t *testing.T) {
	tests := []struct {
		name        string
		transfer    Transfer
		expectError error
	}{
		{
			name: "valid intra own",
			transfer: Transfer{
				Kind:                 KindIntraOwn,
				SourceAccountID:      "acc-1",
				DestinationAccountID: "acc-2",
				Amount:               decimal.NewFromInt(100),
			},
			expectError: nil,
		},
		{
			name: "valid third party",
			transfer: Transfer{
				Kind:                 KindIntraThirdParty,
				SourceAccountID:      "acc-1",
				DestinationAccountID: "acc-2",
				Amount:               decimal.NewFromInt(100),
			},
			expectError: nil,
		},
		{
			name: "valid interbank",
			transfer: Transfer{
				Kind:                  KindInterbank,
				SourceAccountID:       "acc-1",
				BankCode:              "BANK01",
				ExternalAccountNumber: "000123456",
				Amount:                decimal.NewFromInt(100),
			},
			expectError: nil,
		},
		{
			name: "unknown kind",
			transfer: Transfer{
				Kind:                 TransferKind("WIRE"),
				SourceAccountID:      "acc-1",
				DestinationAccountID: "acc-2",
				Amount:               decimal.NewFromInt(100),
			},
			expectError: ErrInvalidKind,
		},
		{
			name: "zero amount",
			transfer: Transfer{
				Kind:                 KindIntraOwn,
				SourceAccountID:      "acc-1",
				DestinationAccountID: "acc-2",
				Amount:               decimal.Zero,
			},
			expectError: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			transfer: Transfer{
				Kind:                 KindIntraOwn,
				SourceAccountID:      "acc-1",
				DestinationAccountID: "acc-2",
				Amount:               decimal.NewFromInt(-50),
			},
			expectError: ErrInvalidAmount,
		},
		{
			name: "missing source",
			transfer: Transfer{
				Kind:                 KindIntraOwn,
				DestinationAccountID: "acc-2",
				Amount:               decimal.NewFromInt(100),
			},
			expectError: ErrMissingSource,
		},
		{
			name: "same account",
			transfer: Transfer{
				Kind:                 KindIntraOwn,
				SourceAccountID:      "acc-1",
				DestinationAccountID: "acc-1",
				Amount:               decimal.NewFromInt(100),
			},
			expectError: ErrSameAccount,
		},
		{
			name: "intra without destination",
			transfer: Transfer{
				Kind:            KindIntraThirdParty,
				SourceAccountID: "acc-1",
				Amount:          decimal.NewFromInt(100),
			},
			expectError: ErrMissingDestination,
		},
		{
			name: "intra with external details",
			transfer: Transfer{
				Kind:                 KindIntraOwn,
				SourceAccountID:      "acc-1",
				DestinationAccountID: "acc-2",
				BankCode:             "BANK01",
				Amount:               decimal.NewFromInt(100),
			},
			expectError: ErrAmbiguousDestination,
		},
		{
			name: "interbank without bank code",
			transfer: Transfer{
				Kind:                  KindInterbank,
				SourceAccountID:       "acc-1",
				ExternalAccountNumber: "000123456",
				Amount:                decimal.NewFromInt(100),
			},
			expectError: ErrMissingExternalDetails,
		},
		{
			name: "interbank with internal destination",
			transfer: Transfer{
				Kind:                  KindInterbank,
				SourceAccountID:       "acc-1",
				DestinationAccountID:  "acc-2",
				BankCode:              "BANK01",
				ExternalAccountNumber: "000123456",
				Amount:                decimal.NewFromInt(100),
			},
			expectError: ErrAmbiguousDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transfer.Validate()

			if tt.expectError == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectError != nil && err != tt.expectError {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestTransferKind_Valid(t *testing.T) {
	for _, k := range []TransferKind{KindIntraOwn, KindIntraThirdParty, KindInterbank} {
		if !k.Valid() {
			t.Errorf("expected %s to be valid", k)
		}
	}

	if TransferKind("").Valid() {
		t.Error("expected empty kind to be invalid")
	}
	if TransferKind("CASH").Valid() {
		t.Error("expected unknown kind to be invalid")
	}
}

func TestAccount_OwnedBy(t *testing.T) {
	acc := &Account{ID: "acc-1", OwnerID: "client-1"}

	if !acc.OwnedBy("client-1") {
		t.Error("expected owner to match")
	}
	if acc.OwnedBy("client-2") {
		t.Error("expected non-owner to not match")
	}
	if acc.OwnedBy("") {
		t.Error("expected empty caller to never match")
	}
}
