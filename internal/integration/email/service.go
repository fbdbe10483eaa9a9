// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/alquimia/backend/internal/application/adapter"
	"github.com/alquimia/backend/internal/domain/entity"
	domainerror "github.com/alquimia/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueInstallmentReminderEmail queues a due-date reminder for one installment
// leg. The Reference dedup key keeps repeated scans from queueing the same leg
// twice; callers check ExistsForReference before calling.
func (s *Service) QueueInstallmentReminderEmail(ctx context.Context, input adapter.QueueInstallmentReminderInput) error {
	subject := fmt.Sprintf("Cuota próxima a vencer: %s - Alquimia", input.Description)

	templateData := map[string]interface{}{
		"user_name":   input.UserName,
		"description": input.Description,
		"amount":      input.Amount,
		"due_date":    input.DueDate,
		"wallet_name": input.WalletName,
		"app_url":     s.appBaseURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateInstallmentReminder,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)
	job.Reference = input.Reference

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue installment reminder email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
