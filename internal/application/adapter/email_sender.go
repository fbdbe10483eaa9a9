// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueInstallmentReminderEmail queues a due-date reminder email.
	QueueInstallmentReminderEmail(ctx context.Context, input QueueInstallmentReminderInput) error
}

// QueueInstallmentReminderInput represents the input for queueing a reminder.
type QueueInstallmentReminderInput struct {
	UserID      string
	UserEmail   string
	UserName    string
	Description string
	Amount      string
	DueDate     string
	WalletName  string
	Reference   string // dedup key, one reminder per installment leg
}
