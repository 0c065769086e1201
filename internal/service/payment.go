package service

import (
	"github.com/deppfellow/portal-api/internal/lib/job"
	"github.com/deppfellow/portal-api/internal/middleware"
	"github.com/deppfellow/portal-api/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type PaymentService struct {
	store     PaymentStore
	customers CustomerStore
	jobs      TaskEnqueuer
}

func NewPaymentService(store PaymentStore, customers CustomerStore, jobs TaskEnqueuer) *PaymentService {
	return &PaymentService{store: store, customers: customers, jobs: jobs}
}

// CreatePayment stores a payment, pending unless the client says otherwise.
func (s *PaymentService) CreatePayment(c echo.Context, params model.CreatePaymentParams) (*model.Payment, error) {
	if params.Status == nil {
		pending := model.PaymentStatusPending
		params.Status = &pending
	}

	payment, err := s.store.Create(c.Request().Context(), params)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("failed to create payment")
		return nil, err
	}

	if payment.Status == model.PaymentStatusPaid {
		s.sendReceipt(c, payment)
	}

	return payment, nil
}

func (s *PaymentService) GetPayment(c echo.Context, id uuid.UUID) (*model.Payment, error) {
	return s.store.GetByID(c.Request().Context(), id)
}

func (s *PaymentService) ListPayments(c echo.Context, filter model.PaymentFilter) ([]model.Payment, error) {
	return s.store.List(c.Request().Context(), filter)
}

// UpdatePayment applies the change and sends a receipt when this update
// moves the payment into paid. Re-sending paid to a paid payment is a no-op
// for the customer.
func (s *PaymentService) UpdatePayment(c echo.Context, id uuid.UUID, params model.UpdatePaymentParams) (*model.Payment, error) {
	ctx := c.Request().Context()
	logger := middleware.GetLogger(c).With().Str("payment_id", id.String()).Logger()

	markingPaid := params.Status != nil && *params.Status == model.PaymentStatusPaid
	wasPaid := false
	if markingPaid {
		current, err := s.store.GetByID(ctx, id)
		if err != nil {
			logger.Error().Err(err).Msg("failed to load payment before update")
			return nil, err
		}
		wasPaid = current.Status == model.PaymentStatusPaid
	}

	payment, err := s.store.Update(ctx, id, params)
	if err != nil {
		logger.Error().Err(err).Msg("failed to update payment")
		return nil, err
	}

	if markingPaid && !wasPaid {
		s.sendReceipt(c, payment)
	}

	return payment, nil
}

func (s *PaymentService) DeletePayment(c echo.Context, id uuid.UUID) error {
	return s.store.Delete(c.Request().Context(), id)
}

// sendReceipt queues the receipt email. Failures are logged only.
func (s *PaymentService) sendReceipt(c echo.Context, payment *model.Payment) {
	ctx := c.Request().Context()
	logger := middleware.GetLogger(c).With().Str("payment_id", payment.ID.String()).Logger()

	customer, err := s.customers.GetByID(ctx, payment.CustomerID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load customer for payment receipt")
		return
	}

	task, err := job.NewPaymentReceiptTask(job.PaymentReceiptPayload{
		To:           customer.Email,
		CustomerName: customer.Name,
		PaymentID:    payment.ID.String(),
		Amount:       payment.Amount,
		Currency:     payment.Currency,
		Method:       payment.Method,
	})
	if err == nil {
		_, err = s.jobs.EnqueueContext(ctx, task)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to enqueue payment receipt")
		return
	}

	logger.Info().Str("event", "payment_receipt_queued").Msg("payment receipt queued")
}
