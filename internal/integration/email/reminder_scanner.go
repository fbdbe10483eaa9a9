// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
)

// ReminderScanner periodically scans for installment legs due within the
// reminder window and queues one reminder email per leg. The queue's
// reference check makes repeated scans idempotent.
type ReminderScanner struct {
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
	userRepo        adapter.UserRepository
	queue           adapter.EmailQueueRepository
	emailService    adapter.EmailService
	windowDays      int
	scanInterval    time.Duration
}

// ReminderScannerConfig holds configuration for the reminder scanner.
type ReminderScannerConfig struct {
	WindowDays   int
	ScanInterval time.Duration
}

// NewReminderScanner creates a new reminder scanner.
func NewReminderScanner(
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
	userRepo adapter.UserRepository,
	queue adapter.EmailQueueRepository,
	emailService adapter.EmailService,
	config ReminderScannerConfig,
) *ReminderScanner {
	return &ReminderScanner{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		userRepo:        userRepo,
		queue:           queue,
		emailService:    emailService,
		windowDays:      config.WindowDays,
		scanInterval:    config.ScanInterval,
	}
}

// Start begins the scan loop. It blocks until the context is cancelled.
func (s *ReminderScanner) Start(ctx context.Context) {
	slog.Info("installment reminder scanner started",
		"window_days", s.windowDays,
		"scan_interval", s.scanInterval,
	)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	s.Scan(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("installment reminder scanner shutting down")
			return
		case <-ticker.C:
			s.Scan(ctx)
		}
	}
}

// Scan runs a single pass over the upcoming window.
func (s *ReminderScanner) Scan(ctx context.Context) {
	now := time.Now().UTC()
	end := now.AddDate(0, 0, s.windowDays)

	legs, err := s.transactionRepo.FindDueBetween(ctx, now, end)
	if err != nil {
		slog.Error("failed to scan upcoming installment legs", "error", err)
		return
	}

	for _, leg := range legs {
		select {
		case <-ctx.Done():
			return
		default:
			s.queueReminder(ctx, leg)
		}
	}
}

// queueReminder queues a reminder for one leg unless one already exists.
func (s *ReminderScanner) queueReminder(ctx context.Context, leg *entity.Transaction) {
	if leg.Installments == nil {
		return
	}

	reference := ReminderReference(leg.ID)
	exists, err := s.queue.ExistsForReference(ctx, reference)
	if err != nil {
		slog.Error("failed to check reminder reference", "error", err, "transaction_id", leg.ID)
		return
	}
	if exists {
		return
	}

	user, err := s.userRepo.FindByID(ctx, leg.UserID)
	if err != nil {
		slog.Error("failed to load user for reminder", "error", err, "user_id", leg.UserID)
		return
	}

	walletName := ""
	if wallet, err := s.walletRepo.FindByID(ctx, leg.WalletID); err == nil {
		walletName = wallet.Name
	}

	input := adapter.QueueInstallmentReminderInput{
		UserID:      leg.UserID.String(),
		UserEmail:   user.Email,
		UserName:    user.Name,
		Description: leg.Description,
		Amount:      leg.Amount.StringFixed(2),
		DueDate:     leg.Date.Format("2006-01-02"),
		WalletName:  walletName,
		Reference:   reference,
	}

	if err := s.emailService.QueueInstallmentReminderEmail(ctx, input); err != nil {
		slog.Error("failed to queue installment reminder", "error", err, "transaction_id", leg.ID)
		return
	}

	slog.Info("installment reminder queued",
		"transaction_id", leg.ID,
		"due_date", input.DueDate,
	)
}

// ReminderReference builds the dedup key for one installment leg.
func ReminderReference(transactionID uuid.UUID) string {
	return fmt.Sprintf("installment-reminder:%s", transactionID)
}
