package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
	reportService      services.ReportServicer
	auditor            services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer, reportService services.ReportServicer, auditor services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		reportService:      reportService,
		auditor:            auditor,
	}
}

// TransactionRequest represents the create/update transaction payload.
// The same shape serves both because updates replace every mutable field.
type TransactionRequest struct {
	Description string                 `json:"description" binding:"required,max=255"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Category    *models.Category       `json:"category" binding:"omitempty,category"`
	Date        models.Date            `json:"date" binding:"required"`
}

// TransactionResponse represents a transaction in responses
type TransactionResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      int64   `json:"amount"`
	Type        string  `json:"type"`
	Category    *string `json:"category"`
	Date        string  `json:"date"`
}

func transactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Date:        tx.Date.String(),
	}
	if tx.Category != nil {
		category := string(*tx.Category)
		resp.Category = &category
	}
	return resp
}

// mutationResponse bundles the written row with a freshly recomputed
// snapshot so clients never display stale aggregates after a write.
func (h *TransactionHandler) mutationResponse(c *gin.Context, status int, tx *models.Transaction) {
	userID, _ := getUserID(c)
	snapshot, err := h.reportService.Snapshot(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	body := gin.H{"snapshot": snapshot}
	if tx != nil {
		body["transaction"] = transactionResponse(tx)
	}
	c.JSON(status, body)
}

// CreateTransaction handles transaction creation
// @Summary     Create a transaction
// @Description Record an income or expense; the response carries the recomputed report snapshot
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction data"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.transactionService.CreateTransaction(userID, req.Description, req.Amount, req.Type, req.Category, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditor.Log(userID, "create", "transaction", tx.ID, c.ClientIP(), map[string]interface{}{
		"amount": tx.Amount,
		"type":   string(tx.Type),
	})

	h.mutationResponse(c, http.StatusCreated, tx)
}

// UpdateTransaction handles transaction updates
// @Summary     Update a transaction
// @Description Replace every mutable field of an owned transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction data"
// @Success     200 {object} TransactionResponse "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.transactionService.UpdateTransaction(userID, transactionID, req.Description, req.Amount, req.Type, req.Category, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditor.Log(userID, "update", "transaction", tx.ID, c.ClientIP(), map[string]interface{}{
		"amount": tx.Amount,
		"type":   string(tx.Type),
	})

	h.mutationResponse(c, http.StatusOK, tx)
}

// DeleteTransaction handles transaction deletion
// @Summary     Delete a transaction
// @Description Delete an owned transaction; the response carries the recomputed report snapshot
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]interface{} "Recomputed snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditor.Log(userID, "delete", "transaction", transactionID, c.ClientIP(), nil)

	h.mutationResponse(c, http.StatusOK, nil)
}

// GetTransaction returns one owned transaction
// @Summary     Get a transaction
// @Description Get a single transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transactionResponse(tx)})
}

// ListTransactions returns the user's full ledger
// @Summary     List transactions
// @Description List all of the user's transactions, newest first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} TransactionResponse "Transactions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txs, err := h.transactionService.ListTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	responses := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, transactionResponse(&txs[i]))
	}

	c.JSON(http.StatusOK, gin.H{"transactions": responses})
}
