// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/usecase/wallet"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
	"github.com/alquimia/backend/internal/integration/entrypoint/dto"
	"github.com/alquimia/backend/internal/integration/entrypoint/middleware"
)

// WalletController handles wallet endpoints.
type WalletController struct {
	createUseCase *wallet.CreateWalletUseCase
	listUseCase   *wallet.ListWalletsUseCase
	updateUseCase *wallet.UpdateWalletUseCase
	deleteUseCase *wallet.DeleteWalletUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	createUseCase *wallet.CreateWalletUseCase,
	listUseCase *wallet.ListWalletsUseCase,
	updateUseCase *wallet.UpdateWalletUseCase,
	deleteUseCase *wallet.DeleteWalletUseCase,
) *WalletController {
	return &WalletController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /wallets requests.
func (c *WalletController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := wallet.CreateWalletInput{
		UserID:     userID,
		Name:       req.Name,
		Kind:       entity.WalletKind(req.Kind),
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWalletResponse(output.Wallet))
}

// List handles GET /wallets requests. An empty registry is seeded with the
// default wallets before responding.
func (c *WalletController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), wallet.ListWalletsInput{UserID: userID})
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	wallets := make([]dto.WalletResponse, len(output.Wallets))
	for i, w := range output.Wallets {
		wallets[i] = dto.ToWalletResponse(w)
	}

	ctx.JSON(http.StatusOK, dto.WalletListResponse{Wallets: wallets})
}

// Update handles PUT /wallets/:id requests.
func (c *WalletController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	walletID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid wallet id"})
		return
	}

	var req dto.UpdateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := wallet.UpdateWalletInput{
		WalletID:   walletID,
		UserID:     userID,
		Name:       req.Name,
		Kind:       entity.WalletKind(req.Kind),
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Delete handles DELETE /wallets/:id requests.
func (c *WalletController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	walletID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid wallet id"})
		return
	}

	input := wallet.DeleteWalletInput{
		WalletID: walletID,
		UserID:   userID,
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteWalletResponse{
		Success:              output.Success,
		DanglingTransactions: output.DanglingTransactions,
	})
}

// handleWalletError maps wallet errors to HTTP responses.
func (c *WalletController) handleWalletError(ctx *gin.Context, err error) {
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
