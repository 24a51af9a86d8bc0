package http

import (
	"net/http"

	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
	"github.com/fractalglobal/fgc/pkg/httpx"
)

// TransactionHandler serves credit transfers and their history.
type TransactionHandler struct {
	TransactionService *service.TransactionService
}

// Get godoc
//
//	@Summary		Get transaction
//	@Description	Users only see transactions they took part in.
//	@Tags			Transactions
//	@Produce		json
//	@Param			id	path		int	true	"transaction id"
//	@Success		200	{object}	fractalsdk.TransactionDTO
//	@Failure		404	{object}	fractalsdk.ResponseDTO
//	@Security		BearerAuth
//	@Router			/v1/transaction/{id} [get].
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var viewer *uint64
	if !isAdmin(r) {
		self, _ := caller(r)
		viewer = &self
	}

	t, err := h.TransactionService.Get(r.Context(), id, viewer)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transactionDTO(t))
}

// Create godoc
//
//	@Summary	New transaction
//	@Tags		Transactions
//	@Accept		json
//	@Produce	json
//	@Param		body	body		fractalsdk.GenerateTransactionDTO	true	"transfer"
//	@Success	200		{object}	fractalsdk.ResponseDTO
//	@Failure	202		{object}	fractalsdk.ResponseDTO	"insufficient funds or bad destination"
//	@Security	BearerAuth
//	@Router		/v1/new_transaction [post].
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req fractalsdk.GenerateTransactionDTO
	if !decodeBody(w, r, &req) {
		return
	}
	if self, _ := caller(r); self != req.OriginID {
		writeForbidden(w, "origin does not match token")
		return
	}

	_, err := h.TransactionService.Transfer(r.Context(), req.OriginID, req.DestinationID,
		string(req.DestinationAddress), int64(req.Amount))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// ListSince godoc
//
//	@Summary	List transactions after an id
//	@Tags		Transactions
//	@Produce	json
//	@Param		since	path	int	true	"exclusive lower transaction id"
//	@Success	200		{array}	fractalsdk.TransactionDTO
//	@Security	BearerAuth
//	@Router		/v1/all_transactions/{since} [get].
func (h *TransactionHandler) ListSince(w http.ResponseWriter, r *http.Request) {
	since, ok := pathID(w, r, "since")
	if !ok {
		return
	}
	txs, err := h.TransactionService.ListSince(r.Context(), since)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transactionDTOs(txs))
}
