package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/portal-api/internal/lib/email"
	"github.com/hibiken/asynq"
)

// Mailer is the part of email.Client the task handlers use.
type Mailer interface {
	SendWelcomeEmail(to, name string) error
	SendPaymentReceipt(to string, r email.Receipt) error
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}

func (j *JobService) handlePaymentReceiptTask(ctx context.Context, t *asynq.Task) error {
	var p PaymentReceiptPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal payment receipt payload: %w", err)
	}

	logger := j.logger.With().
		Str("type", "payment_receipt").
		Str("to", p.To).
		Str("payment_id", p.PaymentID).
		Logger()

	logger.Info().Msg("Processing payment receipt task")

	err := j.mailer.SendPaymentReceipt(p.To, email.Receipt{
		CustomerName: p.CustomerName,
		PaymentID:    p.PaymentID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Method:       p.Method,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to send payment receipt")
		return err
	}

	logger.Info().Msg("Successfully sent payment receipt")
	return nil
}
