// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alquimia/backend/internal/application/usecase/advisor"
	"github.com/alquimia/backend/internal/integration/entrypoint/dto"
	"github.com/alquimia/backend/internal/integration/entrypoint/middleware"
)

// maxReceiptImageSize bounds receipt uploads at 10 MB.
const maxReceiptImageSize = 10 << 20

// AdvisorController handles the generative advisory endpoints. These never
// fail the request when the upstream model is down; they degrade to fallback
// content instead.
type AdvisorController struct {
	tipUseCase        *advisor.GetTipUseCase
	promotionsUseCase *advisor.GetPromotionsUseCase
	receiptUseCase    *advisor.AnalyzeReceiptUseCase
}

// NewAdvisorController creates a new advisor controller instance.
func NewAdvisorController(
	tipUseCase *advisor.GetTipUseCase,
	promotionsUseCase *advisor.GetPromotionsUseCase,
	receiptUseCase *advisor.AnalyzeReceiptUseCase,
) *AdvisorController {
	return &AdvisorController{
		tipUseCase:        tipUseCase,
		promotionsUseCase: promotionsUseCase,
		receiptUseCase:    receiptUseCase,
	}
}

// Tip handles GET /advisor/tip requests.
func (c *AdvisorController) Tip(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.tipUseCase.Execute(ctx.Request.Context(), advisor.GetTipInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.TipResponse{Tip: output.Tip, Fallback: output.Fallback})
}

// Promotions handles GET /advisor/promotions requests.
func (c *AdvisorController) Promotions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.promotionsUseCase.Execute(ctx.Request.Context(), advisor.GetPromotionsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPromotionsResponse(output.Promotions, output.Fallback))
}

// Receipt handles POST /advisor/receipt requests. The image travels as a
// multipart form field named "image".
func (c *AdvisorController) Receipt(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing image file"})
		return
	}
	if fileHeader.Size > maxReceiptImageSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "Image too large"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Unsupported file type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read image file"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxReceiptImageSize))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read image file"})
		return
	}

	output, err := c.receiptUseCase.Execute(ctx.Request.Context(), advisor.AnalyzeReceiptInput{
		UserID:    userID,
		ImageData: imageData,
		MimeType:  mimeType,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiptResponse(output.Receipt, output.Fallback))
}
