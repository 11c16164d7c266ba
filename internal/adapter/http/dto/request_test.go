package dto

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/transfergate/internal/domain"
)

func TestCreateTransferRequest_ToUseCaseInput(t *testing.T) {
	tests := []struct {
		name    string
		request *CreateTransferRequest
		wantErr error
	}{
		{
			name: "valid intra-bank request",
			request: &CreateTransferRequest{
				Kind:                 "INTRA_OWN",
				SourceAccountID:      "acc-1",
				DestinationAccountID: "acc-2",
				Amount:               "12.34",
			},
		},
		{
			name: "valid interbank request",
			request: &CreateTransferRequest{
				Kind:                  "INTERBANK",
				SourceAccountID:       "acc-1",
				BankCode:              "001",
				ExternalAccountNumber: "9999",
				Amount:                "50",
			},
		},
		{
			name: "unknown kind",
			request: &CreateTransferRequest{
				Kind:            "WIRE",
				SourceAccountID: "acc-1",
				Amount:          "10",
			},
			wantErr: domain.ErrInvalidKind,
		},
		{
			name: "unparseable amount",
			request: &CreateTransferRequest{
				Kind:                 "INTRA_OWN",
				SourceAccountID:      "acc-1",
				DestinationAccountID: "acc-2",
				Amount:               "ten",
			},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToUseCaseInput()

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want, _ := decimal.NewFromString(tt.request.Amount)
			if !got.Amount.Equal(want) {
				t.Fatalf("expected amount %s, got %s", want, got.Amount)
			}
			if string(got.Kind) != tt.request.Kind {
				t.Fatalf("expected kind %s, got %s", tt.request.Kind, got.Kind)
			}
		})
	}
}

func TestListTransfersRequest_ToFilter(t *testing.T) {
	req := &ListTransfersRequest{AccountID: "acc-1", Kind: "INTERBANK"}

	filter, err := req.ToFilter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filter.AccountID != "acc-1" || filter.Kind != domain.KindInterbank {
		t.Fatalf("unexpected filter: %+v", filter)
	}

	bad := &ListTransfersRequest{Kind: "WIRE"}
	if _, err := bad.ToFilter(); !errors.Is(err, domain.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}
