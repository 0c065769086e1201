package service

import (
	"github.com/deppfellow/portal-api/internal/lib/job"
	"github.com/deppfellow/portal-api/internal/middleware"
	"github.com/deppfellow/portal-api/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CustomerService struct {
	store CustomerStore
	jobs  TaskEnqueuer
}

func NewCustomerService(store CustomerStore, jobs TaskEnqueuer) *CustomerService {
	return &CustomerService{store: store, jobs: jobs}
}

// CreateCustomer stores the customer and queues a welcome email. A failed
// enqueue is logged and does not fail the request.
func (s *CustomerService) CreateCustomer(c echo.Context, params model.CreateCustomerParams) (*model.Customer, error) {
	logger := middleware.GetLogger(c)

	customer, err := s.store.Create(c.Request().Context(), params)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create customer")
		return nil, err
	}

	task, err := job.NewWelcomeEmailTask(customer.Email, customer.Name)
	if err == nil {
		_, err = s.jobs.EnqueueContext(c.Request().Context(), task)
	}
	if err != nil {
		logger.Error().Err(err).Str("customer_id", customer.ID.String()).Msg("failed to enqueue welcome email")
	}

	logger.Info().
		Str("event", "customer_created").
		Str("customer_id", customer.ID.String()).
		Msg("customer created")

	return customer, nil
}

func (s *CustomerService) GetCustomer(c echo.Context, id uuid.UUID) (*model.Customer, error) {
	return s.store.GetByID(c.Request().Context(), id)
}

func (s *CustomerService) ListCustomers(c echo.Context, filter model.CustomerFilter) ([]model.Customer, error) {
	return s.store.List(c.Request().Context(), filter)
}

func (s *CustomerService) UpdateCustomer(c echo.Context, id uuid.UUID, params model.UpdateCustomerParams) (*model.Customer, error) {
	customer, err := s.store.Update(c.Request().Context(), id, params)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Str("customer_id", id.String()).Msg("failed to update customer")
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(c echo.Context, id uuid.UUID) error {
	return s.store.Delete(c.Request().Context(), id)
}
