// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alquimia/backend/internal/application/usecase/sync"
	domainerror "github.com/alquimia/backend/internal/domain/error"
	"github.com/alquimia/backend/internal/integration/entrypoint/dto"
	"github.com/alquimia/backend/internal/integration/entrypoint/middleware"
)

// SyncController handles the document snapshot and merge-patch endpoints.
type SyncController struct {
	snapshotUseCase *sync.GetSnapshotUseCase
	patchUseCase    *sync.ApplyPatchUseCase
}

// NewSyncController creates a new sync controller instance.
func NewSyncController(
	snapshotUseCase *sync.GetSnapshotUseCase,
	patchUseCase *sync.ApplyPatchUseCase,
) *SyncController {
	return &SyncController{
		snapshotUseCase: snapshotUseCase,
		patchUseCase:    patchUseCase,
	}
}

// Snapshot handles GET /sync requests, returning the whole per-user document.
// Missing sections come back seeded with their defaults.
func (c *SyncController) Snapshot(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.snapshotUseCase.Execute(ctx.Request.Context(), sync.GetSnapshotInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSnapshotResponse(output))
}

// Patch handles PATCH /sync requests. Each supplied section replaces the
// stored one wholesale.
func (c *SyncController) Patch(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.PatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input, err := req.ToPatchInput(userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.patchUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSyncError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PatchResponse{AppliedSections: output.AppliedSections})
}

// handleSyncError maps sync errors to HTTP responses.
func (c *SyncController) handleSyncError(ctx *gin.Context, err error) {
	var syncErr *domainerror.SyncError
	if errors.As(err, &syncErr) {
		status := http.StatusInternalServerError
		switch syncErr.Code {
		case domainerror.ErrCodeEmptyPatch, domainerror.ErrCodeUnknownSection:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: syncErr.Message,
			Code:  string(syncErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
