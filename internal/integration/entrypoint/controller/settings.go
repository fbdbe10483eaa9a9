// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/usecase/settings"
	domainerror "github.com/alquimia/backend/internal/domain/error"
	"github.com/alquimia/backend/internal/integration/entrypoint/dto"
	"github.com/alquimia/backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles user settings endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /settings requests. A user with no stored settings gets the
// seeded defaults.
func (c *SettingsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), settings.GetSettingsInput{UserID: userID})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PUT /settings requests. The document is replaced wholesale.
func (c *SettingsController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input, err := toUpdateSettingsInput(userID, &req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// toUpdateSettingsInput parses the request decimals and ids.
func toUpdateSettingsInput(userID uuid.UUID, req *dto.UpdateSettingsRequest) (settings.UpdateSettingsInput, error) {
	input := settings.UpdateSettingsInput{
		UserID:       userID,
		HourlyRate:   decimal.Zero,
		MonthlyHours: decimal.Zero,
		Budgets:      map[uuid.UUID]decimal.Decimal{},
	}

	if req.HourlyRate != "" {
		parsed, err := decimal.NewFromString(req.HourlyRate)
		if err != nil {
			return settings.UpdateSettingsInput{}, errors.New("invalid hourly_rate")
		}
		input.HourlyRate = parsed
	}
	if req.MonthlyHours != "" {
		parsed, err := decimal.NewFromString(req.MonthlyHours)
		if err != nil {
			return settings.UpdateSettingsInput{}, errors.New("invalid monthly_hours")
		}
		input.MonthlyHours = parsed
	}

	input.Assets = make([]settings.AssetInput, len(req.Assets))
	for i, asset := range req.Assets {
		amount, err := decimal.NewFromString(asset.Amount)
		if err != nil {
			return settings.UpdateSettingsInput{}, errors.New("invalid asset amount")
		}
		input.Assets[i] = settings.AssetInput{Name: asset.Name, Amount: amount}
		if asset.ID != nil {
			id, err := uuid.Parse(*asset.ID)
			if err != nil {
				return settings.UpdateSettingsInput{}, errors.New("invalid asset id")
			}
			input.Assets[i].ID = &id
		}
	}

	input.Entities = make([]settings.EntityInput, len(req.Entities))
	for i, e := range req.Entities {
		input.Entities[i] = settings.EntityInput{Name: e.Name}
		if e.ID != nil {
			id, err := uuid.Parse(*e.ID)
			if err != nil {
				return settings.UpdateSettingsInput{}, errors.New("invalid entity id")
			}
			input.Entities[i].ID = &id
		}
	}

	for listIDStr, amountStr := range req.Budgets {
		listID, err := uuid.Parse(listIDStr)
		if err != nil {
			return settings.UpdateSettingsInput{}, errors.New("invalid budget list id")
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return settings.UpdateSettingsInput{}, errors.New("invalid budget amount")
		}
		input.Budgets[listID] = amount
	}

	return input, nil
}

// handleSettingsError maps settings errors to HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		status := http.StatusBadRequest
		if settingsErr.Code == domainerror.ErrCodeSettingsNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
