// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/usecase/transaction"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
	"github.com/alquimia/backend/internal/integration/entrypoint/dto"
	"github.com/alquimia/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase      *transaction.CreateTransactionUseCase
	listUseCase        *transaction.ListTransactionsUseCase
	updateUseCase      *transaction.UpdateTransactionUseCase
	deleteUseCase      *transaction.DeleteTransactionUseCase
	deleteGroupUseCase *transaction.DeleteInstallmentGroupUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	deleteGroupUseCase *transaction.DeleteInstallmentGroupUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:      createUseCase,
		listUseCase:        listUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		deleteGroupUseCase: deleteGroupUseCase,
	}
}

// Create handles POST /transactions requests. A credit purchase with
// installments > 1 comes back as the full set of generated legs.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeInvalidTransactionAmount),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	listID, walletID, entityID, err := parseTransactionRefs(req.ListID, req.WalletID, req.EntityID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:       userID,
		Type:         entity.TransactionType(req.Type),
		Amount:       amount,
		Description:  req.Description,
		ListID:       listID,
		Element:      entity.Element(req.Element),
		WalletID:     walletID,
		EntityID:     entityID,
		Date:         date,
		Feeling:      parseFeeling(req.Feeling),
		Installments: req.Installments,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	transactions := make([]dto.TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = dto.ToTransactionResponse(txn)
	}

	ctx.JSON(http.StatusCreated, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        int64(len(transactions)),
	})
}

// List handles GET /transactions requests with optional filters.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
		Search: ctx.Query("search"),
	}

	if v := ctx.Query("start_date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid start_date"})
			return
		}
		input.StartDate = &parsed
	}
	if v := ctx.Query("end_date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end_date"})
			return
		}
		input.EndDate = &parsed
	}
	if v := ctx.Query("list_id"); v != "" {
		parsed, err := uuid.Parse(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid list_id"})
			return
		}
		input.ListID = &parsed
	}
	if v := ctx.Query("wallet_id"); v != "" {
		parsed, err := uuid.Parse(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid wallet_id"})
			return
		}
		input.WalletID = &parsed
	}
	if v := ctx.Query("original_id"); v != "" {
		parsed, err := uuid.Parse(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid original_id"})
			return
		}
		input.OriginalID = &parsed
	}
	if v := ctx.Query("element"); v != "" {
		element := entity.Element(v)
		input.Element = &element
	}
	if v := ctx.Query("type"); v != "" {
		transactionType := entity.TransactionType(v)
		input.Type = &transactionType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction id"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeInvalidTransactionAmount),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	listID, walletID, entityID, err := parseTransactionRefs(req.ListID, req.WalletID, req.EntityID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Type:          entity.TransactionType(req.Type),
		Amount:        amount,
		Description:   req.Description,
		ListID:        listID,
		Element:       entity.Element(req.Element),
		WalletID:      walletID,
		EntityID:      entityID,
		Date:          date,
		Feeling:       parseFeeling(req.Feeling),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests. Deletion is idempotent.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction id"})
		return
	}

	input := transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

// DeleteInstallmentGroup handles DELETE /transactions/installments/:originalId
// requests, removing every leg of the group.
func (c *TransactionController) DeleteInstallmentGroup(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	originalID, err := uuid.Parse(ctx.Param("originalId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid installment group id"})
		return
	}

	input := transaction.DeleteInstallmentGroupInput{
		UserID:     userID,
		OriginalID: originalID,
	}

	output, err := c.deleteGroupUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteInstallmentGroupResponse{
		DeletedCount: output.DeletedCount,
	})
}

// handleTransactionError maps domain errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var walletErr *domainerror.WalletError
	if errors.As(err, &walletErr) {
		status := http.StatusBadRequest
		if walletErr.Code == domainerror.ErrCodeWalletNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: walletErr.Message,
			Code:  string(walletErr.Code),
		})
		return
	}

	var scheduleErr *domainerror.ScheduleError
	if errors.As(err, &scheduleErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: scheduleErr.Message,
			Code:  string(scheduleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeInstallmentGroupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidElement,
		domainerror.ErrCodeInvalidFeeling,
		domainerror.ErrCodeMissingListReference,
		domainerror.ErrCodeMissingWalletReference,
		domainerror.ErrCodeDescriptionTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseTransactionRefs parses the list/wallet/entity reference ids shared by
// create and update payloads.
func parseTransactionRefs(listID, walletID string, entityID *string) (uuid.UUID, uuid.UUID, *uuid.UUID, error) {
	parsedListID, err := uuid.Parse(listID)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, errors.New("invalid list_id")
	}
	parsedWalletID, err := uuid.Parse(walletID)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, errors.New("invalid wallet_id")
	}
	var parsedEntityID *uuid.UUID
	if entityID != nil && *entityID != "" {
		parsed, err := uuid.Parse(*entityID)
		if err != nil {
			return uuid.Nil, uuid.Nil, nil, errors.New("invalid entity_id")
		}
		parsedEntityID = &parsed
	}
	return parsedListID, parsedWalletID, parsedEntityID, nil
}

// parseFeeling converts an optional request feeling into the domain type.
func parseFeeling(feeling *string) *entity.Feeling {
	if feeling == nil || *feeling == "" {
		return nil
	}
	f := entity.Feeling(*feeling)
	return &f
}

// respondUnauthorized writes the standard missing-identity response.
func respondUnauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Unauthorized",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// respondInvalidBody writes the standard malformed-body response.
func respondInvalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
	})
}
