// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/usecase/list"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
	"github.com/alquimia/backend/internal/integration/entrypoint/dto"
	"github.com/alquimia/backend/internal/integration/entrypoint/middleware"
)

// ListController handles transmutation list endpoints.
type ListController struct {
	createUseCase       *list.CreateListUseCase
	listUseCase         *list.ListListsUseCase
	updateUseCase       *list.UpdateListUseCase
	deleteUseCase       *list.DeleteListUseCase
	addItemUseCase      *list.AddItemUseCase
	toggleItemUseCase   *list.ToggleItemUseCase
	completeItemUseCase *list.CompleteItemUseCase
	deleteItemUseCase   *list.DeleteItemUseCase
}

// NewListController creates a new list controller instance.
func NewListController(
	createUseCase *list.CreateListUseCase,
	listUseCase *list.ListListsUseCase,
	updateUseCase *list.UpdateListUseCase,
	deleteUseCase *list.DeleteListUseCase,
	addItemUseCase *list.AddItemUseCase,
	toggleItemUseCase *list.ToggleItemUseCase,
	completeItemUseCase *list.CompleteItemUseCase,
	deleteItemUseCase *list.DeleteItemUseCase,
) *ListController {
	return &ListController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		addItemUseCase:      addItemUseCase,
		toggleItemUseCase:   toggleItemUseCase,
		completeItemUseCase: completeItemUseCase,
		deleteItemUseCase:   deleteItemUseCase,
	}
}

// Create handles POST /lists requests.
func (c *ListController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), list.CreateListInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToListResponse(output.List))
}

// List handles GET /lists requests. Reserved views missing from the store are
// synthesized before responding.
func (c *ListController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), list.ListListsInput{UserID: userID})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	lists := make([]dto.ListResponse, len(output.Lists))
	for i, l := range output.Lists {
		lists[i] = dto.ToListResponse(l)
	}

	ctx.JSON(http.StatusOK, dto.ListListResponse{Lists: lists})
}

// Update handles PUT /lists/:id requests (rename only).
func (c *ListController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	listID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid list id"})
		return
	}

	var req dto.UpdateListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), list.UpdateListInput{
		ListID: listID,
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListResponse(output.List))
}

// Delete handles DELETE /lists/:id requests.
func (c *ListController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	listID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid list id"})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), list.DeleteListInput{
		ListID: listID,
		UserID: userID,
	}); err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "List deleted"})
}

// AddItem handles POST /lists/:id/items requests.
func (c *ListController) AddItem(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	listID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid list id"})
		return
	}

	var req dto.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid amount"})
		return
	}

	output, err := c.addItemUseCase.Execute(ctx.Request.Context(), list.AddItemInput{
		ListID:      listID,
		UserID:      userID,
		Name:        req.Name,
		Amount:      amount,
		DueDate:     req.DueDate,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToItemResponse(output.Item))
}

// ToggleItem handles POST /lists/:id/items/:itemId/toggle requests.
func (c *ListController) ToggleItem(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	listID, itemID, ok := parseItemPath(ctx)
	if !ok {
		return
	}

	output, err := c.toggleItemUseCase.Execute(ctx.Request.Context(), list.ToggleItemInput{
		ListID: listID,
		ItemID: itemID,
		UserID: userID,
	})
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item))
}

// CompleteItem handles POST /lists/:id/items/:itemId/complete requests. The
// item becomes an expense transaction and is marked completed atomically.
func (c *ListController) CompleteItem(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	listID, itemID, ok := parseItemPath(ctx)
	if !ok {
		return
	}

	var req dto.CompleteItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid wallet_id"})
		return
	}

	input := list.CompleteItemInput{
		ListID:   listID,
		ItemID:   itemID,
		UserID:   userID,
		WalletID: walletID,
		Element:  entity.Element(req.Element),
		Feeling:  parseFeeling(req.Feeling),
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		input.Date = date
	}

	output, err := c.completeItemUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CompleteItemResponse{
		Item:          dto.ToItemResponse(output.Item),
		TransactionID: output.Transaction.String(),
	})
}

// DeleteItem handles DELETE /lists/:id/items/:itemId requests.
func (c *ListController) DeleteItem(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	listID, itemID, ok := parseItemPath(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteItemUseCase.Execute(ctx.Request.Context(), list.DeleteItemInput{
		ListID: listID,
		ItemID: itemID,
		UserID: userID,
	}); err != nil {
		c.handleListError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Item deleted"})
}

// parseItemPath parses the list and item ids from the request path, writing
// the error response itself when either is malformed.
func parseItemPath(ctx *gin.Context) (listID, itemID uuid.UUID, ok bool) {
	listID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid list id"})
		return uuid.Nil, uuid.Nil, false
	}
	itemID, err = uuid.Parse(ctx.Param("itemId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid item id"})
		return uuid.Nil, uuid.Nil, false
	}
	return listID, itemID, true
}

// handleListError maps list errors to HTTP responses.
func (c *ListController) handleListError(ctx *gin.Context, err error) {
	var listErr *domainerror.ListError
	if errors.As(err, &listErr) {
		ctx.JSON(c.getStatusCodeForListError(listErr.Code), dto.ErrorResponse{
			Error: listErr.Message,
			Code:  string(listErr.Code),
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

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForListError maps list error codes to HTTP status codes.
func (c *ListController) getStatusCodeForListError(code domainerror.ListErrorCode) int {
	switch code {
	case domainerror.ErrCodeListNotFound,
		domainerror.ErrCodeListItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeReservedList,
		domainerror.ErrCodeItemAlreadyCompleted:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidListName,
		domainerror.ErrCodeInvalidItemName,
		domainerror.ErrCodeInvalidItemDueDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
