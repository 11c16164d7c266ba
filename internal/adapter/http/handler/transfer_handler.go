package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/transfergate/internal/adapter/http/dto"
	"github.com/iho/transfergate/internal/adapter/http/middleware"
	"github.com/iho/transfergate/internal/domain"
	"github.com/iho/transfergate/internal/usecase"
)

// TransferService is the use case surface the handler needs.
type TransferService interface {
	Execute(ctx context.Context, callerID string, input usecase.ExecuteTransferInput) (*domain.Transfer, error)
	GetTransfer(ctx context.Context, callerID, id string) (*domain.Transfer, error)
	ListTransfers(ctx context.Context, callerID string, filter domain.TransferFilter) ([]*domain.Transfer, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	service TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(service TransferService) *TransferHandler {
	return &TransferHandler{service: service}
}

// Create executes a transfer attempt. A rejected transfer is still a
// recorded outcome, so it returns 201 like a successful one; only
// requests that never reach the ledger map to error statuses.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing client identity", "")
		return
	}

	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid transfer request", err.Error())
		return
	}

	transfer, err := h.service.Execute(r.Context(), callerID, input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to execute transfer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferFromDomain(transfer))
}

// Get retrieves a transfer by ID.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing client identity", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transfer ID", "")
		return
	}

	transfer, err := h.service.GetTransfer(r.Context(), callerID, id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transfer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransferFromDomain(transfer))
}

// List lists transfers visible to the caller.
func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing client identity", "")
		return
	}

	req := dto.ListTransfersRequest{
		AccountID: r.URL.Query().Get("account_id"),
		Kind:      r.URL.Query().Get("kind"),
	}

	filter, err := req.ToFilter()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid filter", err.Error())
		return
	}

	transfers, err := h.service.ListTransfers(r.Context(), callerID, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transfers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransfersFromDomain(transfers))
}
