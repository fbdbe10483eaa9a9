// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/alquimia/backend/internal/application/usecase/summary"
)

// ListBreakdownResponse is one list's expense total within the month.
type ListBreakdownResponse struct {
	ListID string  `json:"list_id"`
	Total  string  `json:"total"`
	Budget *string `json:"budget,omitempty"`
}

// MonthlySummaryResponse represents the monthly summary in API responses.
type MonthlySummaryResponse struct {
	Income          string                  `json:"income"`
	Expenses        string                  `json:"expenses"`
	Balance         string                  `json:"balance"`
	SavingsRate     string                  `json:"savings_rate"`
	ExpensesInHours string                  `json:"expenses_in_hours"`
	Breakdown       []ListBreakdownResponse `json:"breakdown"`
}

// MonthSeriesResponse is one month's aggregate in the yearly series.
type MonthSeriesResponse struct {
	Month    int    `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// YearlySummaryResponse represents the yearly summary in API responses.
type YearlySummaryResponse struct {
	Year     int                   `json:"year"`
	Months   []MonthSeriesResponse `json:"months"`
	Elements map[string]string     `json:"elements"`
}

// HoursEquivalentRequest represents the request body for the hours-of-life
// conversion.
type HoursEquivalentRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// HoursEquivalentResponse represents the conversion result.
type HoursEquivalentResponse struct {
	Hours string `json:"hours"`
}

// ToMonthlySummaryResponse converts a MonthlySummaryOutput to its DTO.
func ToMonthlySummaryResponse(output *summary.MonthlySummaryOutput) MonthlySummaryResponse {
	breakdown := make([]ListBreakdownResponse, len(output.Breakdown))
	for i, entry := range output.Breakdown {
		breakdown[i] = ListBreakdownResponse{
			ListID: entry.ListID.String(),
			Total:  entry.Total.String(),
		}
		if entry.Budget != nil {
			budgetStr := entry.Budget.String()
			breakdown[i].Budget = &budgetStr
		}
	}

	return MonthlySummaryResponse{
		Income:          output.Income.String(),
		Expenses:        output.Expenses.String(),
		Balance:         output.Balance.String(),
		SavingsRate:     output.SavingsRate.String(),
		ExpensesInHours: output.ExpensesInHours.String(),
		Breakdown:       breakdown,
	}
}

// ToYearlySummaryResponse converts a YearlySummaryOutput to its DTO.
func ToYearlySummaryResponse(output *summary.YearlySummaryOutput) YearlySummaryResponse {
	months := make([]MonthSeriesResponse, len(output.Months))
	for i, entry := range output.Months {
		months[i] = MonthSeriesResponse{
			Month:    int(entry.Month),
			Income:   entry.Income.String(),
			Expenses: entry.Expenses.String(),
			Balance:  entry.Balance.String(),
		}
	}

	elements := make(map[string]string, len(output.Elements))
	for element, total := range output.Elements {
		elements[string(element)] = total.String()
	}

	return YearlySummaryResponse{
		Year:     output.Year,
		Months:   months,
		Elements: elements,
	}
}
