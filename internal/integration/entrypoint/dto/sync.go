// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alquimia/backend/internal/application/usecase/sync"
	"github.com/alquimia/backend/internal/domain/entity"
)

// SyncTransaction is the document form of a ledger entry. IDs are
// client-supplied so offline-created documents keep their identity.
type SyncTransaction struct {
	ID           string               `json:"id" binding:"required,uuid"`
	Type         string               `json:"type" binding:"required,oneof=expense income"`
	Amount       string               `json:"amount" binding:"required"`
	Description  string               `json:"description" binding:"required"`
	ListID       string               `json:"list_id" binding:"required,uuid"`
	Element      string               `json:"element" binding:"required"`
	WalletID     string               `json:"wallet_id" binding:"required,uuid"`
	EntityID     *string              `json:"entity_id,omitempty" binding:"omitempty,uuid"`
	Date         string               `json:"date" binding:"required"`
	Feeling      *string              `json:"feeling,omitempty"`
	Installment  *InstallmentResponse `json:"installment,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// SyncWallet is the document form of a wallet.
type SyncWallet struct {
	ID         string    `json:"id" binding:"required,uuid"`
	Name       string    `json:"name" binding:"required"`
	Kind       string    `json:"kind" binding:"required,oneof=cash debit credit"`
	ClosingDay *int      `json:"closing_day,omitempty"`
	DueDay     *int      `json:"due_day,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SyncItem is the document form of a planned item.
type SyncItem struct {
	ID          string `json:"id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	IsCompleted bool   `json:"is_completed"`
	DueDate     *int   `json:"due_date,omitempty"`
	IsRecurring bool   `json:"is_recurring"`
}

// SyncList is the document form of a transmutation list.
type SyncList struct {
	ID               string     `json:"id" binding:"required,uuid"`
	Name             string     `json:"name" binding:"required"`
	Items            []SyncItem `json:"items"`
	IsCreditCardView bool       `json:"is_credit_card_view"`
	IsLoansView      bool       `json:"is_loans_view"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SnapshotResponse is the whole per-user document.
type SnapshotResponse struct {
	Transactions       []SyncTransaction `json:"transactions"`
	Wallets            []SyncWallet      `json:"wallets"`
	TransmutationLists []SyncList        `json:"transmutation_lists"`
	Settings           SettingsResponse  `json:"settings"`
	Theme              string            `json:"theme"`
	CreatedAt          time.Time         `json:"created_at"`
}

// PatchRequest is a merge patch over the document. Only supplied sections are
// applied; each one replaces the stored section wholesale.
type PatchRequest struct {
	Transactions       *[]SyncTransaction     `json:"transactions,omitempty"`
	Wallets            *[]SyncWallet          `json:"wallets,omitempty"`
	TransmutationLists *[]SyncList            `json:"transmutation_lists,omitempty"`
	Settings           *UpdateSettingsRequest `json:"settings,omitempty"`
	Theme              *string                `json:"theme,omitempty" binding:"omitempty,oneof=light dark"`
}

// PatchResponse reports which sections were applied.
type PatchResponse struct {
	AppliedSections []string `json:"applied_sections"`
}

// ToSnapshotResponse converts a snapshot output to its DTO.
func ToSnapshotResponse(output *sync.GetSnapshotOutput) SnapshotResponse {
	transactions := make([]SyncTransaction, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = toSyncTransaction(t)
	}

	wallets := make([]SyncWallet, len(output.Wallets))
	for i, w := range output.Wallets {
		wallets[i] = SyncWallet{
			ID:         w.ID.String(),
			Name:       w.Name,
			Kind:       string(w.Kind),
			ClosingDay: w.ClosingDay,
			DueDay:     w.DueDay,
			CreatedAt:  w.CreatedAt,
			UpdatedAt:  w.UpdatedAt,
		}
	}

	lists := make([]SyncList, len(output.TransmutationLists))
	for i, l := range output.TransmutationLists {
		lists[i] = toSyncList(l)
	}

	return SnapshotResponse{
		Transactions:       transactions,
		Wallets:            wallets,
		TransmutationLists: lists,
		Settings:           toSettingsDocument(output.Settings),
		Theme:              string(output.Theme),
		CreatedAt:          output.CreatedAt,
	}
}

// ToPatchInput converts a patch request into the use case input. Malformed
// section contents surface as an error mapped to a 400 by the controller.
func (r *PatchRequest) ToPatchInput(userID uuid.UUID) (sync.ApplyPatchInput, error) {
	input := sync.ApplyPatchInput{UserID: userID}

	if r.Transactions != nil {
		input.HasTransactions = true
		input.Transactions = make([]*entity.Transaction, len(*r.Transactions))
		for i, t := range *r.Transactions {
			parsed, err := t.toEntity(userID)
			if err != nil {
				return sync.ApplyPatchInput{}, fmt.Errorf("transactions[%d]: %w", i, err)
			}
			input.Transactions[i] = parsed
		}
	}

	if r.Wallets != nil {
		input.HasWallets = true
		input.Wallets = make([]*entity.Wallet, len(*r.Wallets))
		for i, w := range *r.Wallets {
			parsed, err := w.toEntity(userID)
			if err != nil {
				return sync.ApplyPatchInput{}, fmt.Errorf("wallets[%d]: %w", i, err)
			}
			input.Wallets[i] = parsed
		}
	}

	if r.TransmutationLists != nil {
		input.HasLists = true
		input.TransmutationLists = make([]*entity.TransmutationList, len(*r.TransmutationLists))
		for i, l := range *r.TransmutationLists {
			parsed, err := l.toEntity(userID)
			if err != nil {
				return sync.ApplyPatchInput{}, fmt.Errorf("transmutation_lists[%d]: %w", i, err)
			}
			input.TransmutationLists[i] = parsed
		}
	}

	if r.Settings != nil {
		parsed, err := r.Settings.ToEntity(userID)
		if err != nil {
			return sync.ApplyPatchInput{}, fmt.Errorf("settings: %w", err)
		}
		input.Settings = parsed
	}

	if r.Theme != nil {
		theme := entity.Theme(*r.Theme)
		input.Theme = &theme
	}

	return input, nil
}

func toSyncTransaction(t *entity.Transaction) SyncTransaction {
	out := SyncTransaction{
		ID:          t.ID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount.String(),
		Description: t.Description,
		ListID:      t.ListID.String(),
		Element:     string(t.Element),
		WalletID:    t.WalletID.String(),
		Date:        t.Date.Format("2006-01-02"),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.EntityID != nil {
		entityIDStr := t.EntityID.String()
		out.EntityID = &entityIDStr
	}
	if t.Feeling != nil {
		feelingStr := string(*t.Feeling)
		out.Feeling = &feelingStr
	}
	if t.Installments != nil {
		out.Installment = &InstallmentResponse{
			Current:    t.Installments.Current,
			Total:      t.Installments.Total,
			OriginalID: t.Installments.OriginalID.String(),
		}
	}
	return out
}

func toSyncList(l *entity.TransmutationList) SyncList {
	items := make([]SyncItem, len(l.Items))
	for i, item := range l.Items {
		items[i] = SyncItem{
			ID:          item.ID.String(),
			Name:        item.Name,
			Amount:      item.Amount.String(),
			IsCompleted: item.IsCompleted,
			DueDate:     item.DueDate,
			IsRecurring: item.IsRecurring,
		}
	}
	return SyncList{
		ID:               l.ID.String(),
		Name:             l.Name,
		Items:            items,
		IsCreditCardView: l.IsCreditCardView,
		IsLoansView:      l.IsLoansView,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func toSettingsDocument(s *entity.Settings) SettingsResponse {
	assets := make([]AssetResponse, len(s.Assets))
	for i, asset := range s.Assets {
		assets[i] = AssetResponse{
			ID:     asset.ID.String(),
			Name:   asset.Name,
			Amount: asset.Amount.String(),
		}
	}
	entities := make([]EntityResponse, len(s.Entities))
	for i, e := range s.Entities {
		entities[i] = EntityResponse{
			ID:   e.ID.String(),
			Name: e.Name,
		}
	}
	budgets := make(map[string]string, len(s.Budgets))
	for listID, amount := range s.Budgets {
		budgets[listID.String()] = amount.String()
	}
	return SettingsResponse{
		HourlyRate:   s.HourlyRate.String(),
		MonthlyHours: s.MonthlyHours.String(),
		Assets:       assets,
		Entities:     entities,
		Budgets:      budgets,
	}
}

func (t *SyncTransaction) toEntity(userID uuid.UUID) (*entity.Transaction, error) {
	id, err := uuid.Parse(t.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid id: %w", err)
	}
	amount, err := decimal.NewFromString(t.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	listID, err := uuid.Parse(t.ListID)
	if err != nil {
		return nil, fmt.Errorf("invalid list_id: %w", err)
	}
	walletID, err := uuid.Parse(t.WalletID)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet_id: %w", err)
	}
	date, err := time.Parse("2006-01-02", t.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	parsed := &entity.Transaction{
		ID:          id,
		UserID:      userID,
		Type:        entity.TransactionType(t.Type),
		Amount:      amount,
		Description: t.Description,
		ListID:      listID,
		Element:     entity.Element(t.Element),
		WalletID:    walletID,
		Date:        date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.EntityID != nil {
		entityID, err := uuid.Parse(*t.EntityID)
		if err != nil {
			return nil, fmt.Errorf("invalid entity_id: %w", err)
		}
		parsed.EntityID = &entityID
	}
	if t.Feeling != nil {
		feeling := entity.Feeling(*t.Feeling)
		parsed.Feeling = &feeling
	}
	if t.Installment != nil {
		originalID, err := uuid.Parse(t.Installment.OriginalID)
		if err != nil {
			return nil, fmt.Errorf("invalid installment original_id: %w", err)
		}
		parsed.Installments = &entity.InstallmentInfo{
			Current:    t.Installment.Current,
			Total:      t.Installment.Total,
			OriginalID: originalID,
		}
	}

	return parsed, nil
}

func (w *SyncWallet) toEntity(userID uuid.UUID) (*entity.Wallet, error) {
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid id: %w", err)
	}
	return &entity.Wallet{
		ID:         id,
		UserID:     userID,
		Name:       w.Name,
		Kind:       entity.WalletKind(w.Kind),
		ClosingDay: w.ClosingDay,
		DueDay:     w.DueDay,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}, nil
}

func (l *SyncList) toEntity(userID uuid.UUID) (*entity.TransmutationList, error) {
	id, err := uuid.Parse(l.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid id: %w", err)
	}
	items := make([]*entity.TransmutationItem, len(l.Items))
	for i, item := range l.Items {
		itemID, err := uuid.Parse(item.ID)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: invalid id: %w", i, err)
		}
		amount, err := decimal.NewFromString(item.Amount)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: invalid amount: %w", i, err)
		}
		items[i] = &entity.TransmutationItem{
			ID:          itemID,
			Name:        item.Name,
			Amount:      amount,
			IsCompleted: item.IsCompleted,
			DueDate:     item.DueDate,
			IsRecurring: item.IsRecurring,
		}
	}
	return &entity.TransmutationList{
		ID:               id,
		UserID:           userID,
		Name:             l.Name,
		Items:            items,
		IsCreditCardView: l.IsCreditCardView,
		IsLoansView:      l.IsLoansView,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}, nil
}

// ToEntity converts a settings update request into the settings entity.
func (r *UpdateSettingsRequest) ToEntity(userID uuid.UUID) (*entity.Settings, error) {
	hourlyRate := decimal.Zero
	if r.HourlyRate != "" {
		parsed, err := decimal.NewFromString(r.HourlyRate)
		if err != nil {
			return nil, fmt.Errorf("invalid hourly_rate: %w", err)
		}
		hourlyRate = parsed
	}
	monthlyHours := decimal.Zero
	if r.MonthlyHours != "" {
		parsed, err := decimal.NewFromString(r.MonthlyHours)
		if err != nil {
			return nil, fmt.Errorf("invalid monthly_hours: %w", err)
		}
		monthlyHours = parsed
	}

	assets := make([]*entity.Asset, len(r.Assets))
	for i, asset := range r.Assets {
		amount, err := decimal.NewFromString(asset.Amount)
		if err != nil {
			return nil, fmt.Errorf("assets[%d]: invalid amount: %w", i, err)
		}
		assetID := uuid.New()
		if asset.ID != nil {
			parsed, err := uuid.Parse(*asset.ID)
			if err != nil {
				return nil, fmt.Errorf("assets[%d]: invalid id: %w", i, err)
			}
			assetID = parsed
		}
		assets[i] = &entity.Asset{ID: assetID, Name: asset.Name, Amount: amount}
	}

	entities := make([]*entity.SpendingEntity, len(r.Entities))
	for i, e := range r.Entities {
		entityID := uuid.New()
		if e.ID != nil {
			parsed, err := uuid.Parse(*e.ID)
			if err != nil {
				return nil, fmt.Errorf("entities[%d]: invalid id: %w", i, err)
			}
			entityID = parsed
		}
		entities[i] = &entity.SpendingEntity{ID: entityID, Name: e.Name}
	}

	budgets := make(map[uuid.UUID]decimal.Decimal, len(r.Budgets))
	for listIDStr, amountStr := range r.Budgets {
		listID, err := uuid.Parse(listIDStr)
		if err != nil {
			return nil, fmt.Errorf("budgets: invalid list id %q: %w", listIDStr, err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("budgets[%s]: invalid amount: %w", listIDStr, err)
		}
		budgets[listID] = amount
	}

	return &entity.Settings{
		UserID:       userID,
		HourlyRate:   hourlyRate,
		MonthlyHours: monthlyHours,
		Assets:       assets,
		Entities:     entities,
		Budgets:      budgets,
		UpdatedAt:    time.Now().UTC(),
	}, nil
}
