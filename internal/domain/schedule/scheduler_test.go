// Package schedule implements the installment scheduler.
package schedule

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
	"github.com/alquimia/backend/internal/domain/valueobject"
)

func intPtr(v int) *int { return &v }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func baseRequest() Request {
	return Request{
		UserID:       uuid.New(),
		Amount:       decimal.NewFromInt(100),
		PurchaseDate: date(2024, time.March, 12),
		Installments: 1,
		WalletKind:   entity.WalletKindCredit,
		Type:         entity.TransactionTypeExpense,
		Description:  "Compra",
		ListID:       uuid.New(),
		Element:      entity.ElementAgua,
		WalletID:     uuid.New(),
	}
}

func TestExpand_SinglePayment(t *testing.T) {
	req := baseRequest()
	req.WalletKind = entity.WalletKindCash
	req.Cycle = valueobject.Cycle{ClosingDay: intPtr(25), DueDay: intPtr(5)}

	legs, err := Expand(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(legs) != 1 {
		t.Fatalf("expected 1 leg, got %d", len(legs))
	}
	leg := legs[0]
	if !leg.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected amount 100, got %s", leg.Amount)
	}
	if !leg.Date.Equal(req.PurchaseDate) {
		t.Errorf("expected purchase date unmodified, got %s", leg.Date)
	}
	if leg.Installments != nil {
		t.Error("expected no installment group on a single payment")
	}
	if leg.Description != "Compra" {
		t.Errorf("expected description without suffix, got %q", leg.Description)
	}
}

func TestExpand_SumPreservation(t *testing.T) {
	amounts := []string{"100", "99.99", "1234.56", "0.05", "73"}

	for _, amountStr := range amounts {
		for count := 2; count <= 12; count++ {
			t.Run(fmt.Sprintf("amount %s in %d installments", amountStr, count), func(t *testing.T) {
				req := baseRequest()
				req.Amount = decimal.RequireFromString(amountStr)
				req.Installments = count

				legs, err := Expand(req)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(legs) != count {
					t.Fatalf("expected %d legs, got %d", count, len(legs))
				}

				sum := decimal.Zero
				for _, leg := range legs {
					sum = sum.Add(leg.Amount)
				}
				tolerance := decimal.NewFromInt(int64(count)).Mul(decimal.RequireFromString("0.01"))
				drift := sum.Sub(req.Amount).Abs()
				if drift.GreaterThan(tolerance) {
					t.Errorf("sum %s drifts %s from %s, beyond tolerance %s", sum, drift, amountStr, tolerance)
				}
			})
		}
	}
}

// Per-leg rounding is independent, so the sum can drift from the original
// total. 100 in 3 legs of 33.33 loses one cent. This pins the preserved
// behavior rather than a remainder-distribution fix.
func TestExpand_RoundingDriftPreserved(t *testing.T) {
	req := baseRequest()
	req.Installments = 3

	legs, err := Expand(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := decimal.RequireFromString("33.33")
	sum := decimal.Zero
	for _, leg := range legs {
		if !leg.Amount.Equal(want) {
			t.Errorf("expected each leg to be 33.33, got %s", leg.Amount)
		}
		sum = sum.Add(leg.Amount)
	}
	if !sum.Equal(decimal.RequireFromString("99.99")) {
		t.Errorf("expected drifted sum 99.99, got %s", sum)
	}
}

func TestExpand_SequentialNumbering(t *testing.T) {
	req := baseRequest()
	req.Installments = 6

	legs, err := Expand(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var groupID uuid.UUID
	seenIDs := map[uuid.UUID]bool{}
	for i, leg := range legs {
		if leg.Installments == nil {
			t.Fatalf("leg %d has no installment group", i)
		}
		if leg.Installments.Current != i+1 {
			t.Errorf("leg %d: expected current %d, got %d", i, i+1, leg.Installments.Current)
		}
		if leg.Installments.Total != 6 {
			t.Errorf("leg %d: expected total 6, got %d", i, leg.Installments.Total)
		}
		if i == 0 {
			groupID = leg.Installments.OriginalID
		} else if leg.Installments.OriginalID != groupID {
			t.Errorf("leg %d: original id differs from first leg", i)
		}
		if seenIDs[leg.ID] {
			t.Errorf("leg %d: duplicate leg id %s", i, leg.ID)
		}
		seenIDs[leg.ID] = true

		wantDesc := fmt.Sprintf("Compra (%d/6)", i+1)
		if leg.Description != wantDesc {
			t.Errorf("leg %d: expected description %q, got %q", i, wantDesc, leg.Description)
		}
	}
}

func TestExpand_ClosingDayBoundary(t *testing.T) {
	// Due day 28 keeps dueDay >= closingDay, isolating the offset rule.
	cycle := valueobject.Cycle{ClosingDay: intPtr(25), DueDay: intPtr(28)}

	t.Run("purchase on closing day belongs to current statement", func(t *testing.T) {
		req := baseRequest()
		req.PurchaseDate = date(2024, time.March, 25)
		req.Installments = 2
		req.Cycle = cycle

		legs, err := Expand(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := date(2024, time.March, 28); !legs[0].Date.Equal(want) {
			t.Errorf("expected first leg due %s, got %s", want, legs[0].Date)
		}
	})

	t.Run("purchase the day after closing shifts one month", func(t *testing.T) {
		req := baseRequest()
		req.PurchaseDate = date(2024, time.March, 26)
		req.Installments = 2
		req.Cycle = cycle

		legs, err := Expand(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := date(2024, time.April, 28); !legs[0].Date.Equal(want) {
			t.Errorf("expected first leg due %s, got %s", want, legs[0].Date)
		}
	})
}

func TestExpand_DueBeforeCloseShiftsOneMonth(t *testing.T) {
	req := baseRequest()
	req.PurchaseDate = date(2024, time.January, 10)
	req.Installments = 2
	req.Cycle = valueobject.Cycle{ClosingDay: intPtr(25), DueDay: intPtr(5)}

	legs, err := Expand(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Billing month January, due day before the close: payment lands Feb 5.
	if want := date(2024, time.February, 5); !legs[0].Date.Equal(want) {
		t.Errorf("expected first leg due %s, got %s", want, legs[0].Date)
	}
	if want := date(2024, time.March, 5); !legs[1].Date.Equal(want) {
		t.Errorf("expected second leg due %s, got %s", want, legs[1].Date)
	}
}

func TestExpand_DefaultCycle(t *testing.T) {
	t.Run("single installment returns the raw date regardless of cycle", func(t *testing.T) {
		req := baseRequest()
		req.PurchaseDate = date(2024, time.March, 15)

		legs, err := Expand(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !legs[0].Date.Equal(date(2024, time.March, 15)) {
			t.Errorf("expected raw purchase date, got %s", legs[0].Date)
		}
	})

	t.Run("no cycle behaves as closing 31, due 10", func(t *testing.T) {
		req := baseRequest()
		req.PurchaseDate = date(2024, time.March, 15)
		req.Installments = 2

		legs, err := Expand(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Closing at month end is never missed; due 10 < closing 31 shifts the
		// payment into the month after each billing month.
		if want := date(2024, time.April, 10); !legs[0].Date.Equal(want) {
			t.Errorf("expected first leg due %s, got %s", want, legs[0].Date)
		}
		if want := date(2024, time.May, 10); !legs[1].Date.Equal(want) {
			t.Errorf("expected second leg due %s, got %s", want, legs[1].Date)
		}
	})
}

func TestExpand_MonthEndClamping(t *testing.T) {
	req := baseRequest()
	req.PurchaseDate = date(2024, time.January, 31)
	req.Installments = 2
	req.Cycle = valueobject.Cycle{ClosingDay: intPtr(25), DueDay: intPtr(30)}

	legs, err := Expand(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Day 31 misses the Jan 25 close; billing months are Feb and Mar. Due day
	// 30 does not exist in February 2024 and clamps to the 29th.
	if want := date(2024, time.February, 29); !legs[0].Date.Equal(want) {
		t.Errorf("expected first leg due %s, got %s", want, legs[0].Date)
	}
	if want := date(2024, time.March, 30); !legs[1].Date.Equal(want) {
		t.Errorf("expected second leg due %s, got %s", want, legs[1].Date)
	}
}

func TestExpand_EndToEndScenario(t *testing.T) {
	req := baseRequest()
	req.Amount = decimal.NewFromInt(120)
	req.PurchaseDate = date(2024, time.March, 12)
	req.Installments = 3
	req.Cycle = valueobject.Cycle{ClosingDay: intPtr(10), DueDay: intPtr(20)}

	legs, err := Expand(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(legs) != 3 {
		t.Fatalf("expected 3 legs, got %d", len(legs))
	}

	wantDates := []time.Time{
		date(2024, time.April, 20),
		date(2024, time.May, 20),
		date(2024, time.June, 20),
	}
	wantAmount := decimal.RequireFromString("40")
	for i, leg := range legs {
		if !leg.Amount.Equal(wantAmount) {
			t.Errorf("leg %d: expected amount 40, got %s", i, leg.Amount)
		}
		if !leg.Date.Equal(wantDates[i]) {
			t.Errorf("leg %d: expected due %s, got %s", i, wantDates[i], leg.Date)
		}
	}
}

func TestExpand_Determinism(t *testing.T) {
	req := baseRequest()
	req.Installments = 4
	req.Cycle = valueobject.Cycle{ClosingDay: intPtr(20), DueDay: intPtr(15)}

	first, err := Expand(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Expand(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first {
		if !first[i].Date.Equal(second[i].Date) {
			t.Errorf("leg %d: dates differ across runs: %s vs %s", i, first[i].Date, second[i].Date)
		}
		if !first[i].Amount.Equal(second[i].Amount) {
			t.Errorf("leg %d: amounts differ across runs", i)
		}
	}
}

func TestExpand_Errors(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		req := baseRequest()
		req.Amount = decimal.Zero

		if _, err := Expand(req); !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("installment count below 1", func(t *testing.T) {
		req := baseRequest()
		req.Installments = 0

		if _, err := Expand(req); !errors.Is(err, domainerror.ErrInvalidScheduleRequest) {
			t.Errorf("expected ErrInvalidScheduleRequest, got %v", err)
		}
	})

	t.Run("multiple installments on a cash wallet", func(t *testing.T) {
		req := baseRequest()
		req.Installments = 3
		req.WalletKind = entity.WalletKindCash

		if _, err := Expand(req); !errors.Is(err, domainerror.ErrInvalidScheduleRequest) {
			t.Errorf("expected ErrInvalidScheduleRequest, got %v", err)
		}
	})

	t.Run("out-of-range closing day", func(t *testing.T) {
		req := baseRequest()
		req.Installments = 2
		req.Cycle = valueobject.Cycle{ClosingDay: intPtr(32)}

		if _, err := Expand(req); !errors.Is(err, domainerror.ErrInvalidCycleConfig) {
			t.Errorf("expected ErrInvalidCycleConfig, got %v", err)
		}
	})

	t.Run("out-of-range due day", func(t *testing.T) {
		req := baseRequest()
		req.Installments = 2
		req.Cycle = valueobject.Cycle{DueDay: intPtr(0)}

		if _, err := Expand(req); !errors.Is(err, domainerror.ErrInvalidCycleConfig) {
			t.Errorf("expected ErrInvalidCycleConfig, got %v", err)
		}
	})
}
