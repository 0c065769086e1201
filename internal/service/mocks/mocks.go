// Package mocks holds testify mocks of the service dependencies.
package mocks

import (
	"context"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
)

// Store mocks any of the service.*Store interfaces.
type Store[M, F, C, U any] struct {
	mock.Mock
}

func (m *Store[M, F, C, U]) Create(ctx context.Context, params C) (*M, error) {
	args := m.Called(ctx, params)
	return record[M](args), args.Error(1)
}

func (m *Store[M, F, C, U]) GetByID(ctx context.Context, id uuid.UUID) (*M, error) {
	args := m.Called(ctx, id)
	return record[M](args), args.Error(1)
}

func (m *Store[M, F, C, U]) List(ctx context.Context, filter F) ([]M, error) {
	args := m.Called(ctx, filter)
	records, _ := args.Get(0).([]M)
	return records, args.Error(1)
}

func (m *Store[M, F, C, U]) Update(ctx context.Context, id uuid.UUID, params U) (*M, error) {
	args := m.Called(ctx, id, params)
	return record[M](args), args.Error(1)
}

func (m *Store[M, F, C, U]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func record[M any](args mock.Arguments) *M {
	r, _ := args.Get(0).(*M)
	return r
}

type (
	CustomerStore     = Store[model.Customer, model.CustomerFilter, model.CreateCustomerParams, model.UpdateCustomerParams]
	ServiceStore      = Store[model.Service, model.ServiceFilter, model.CreateServiceParams, model.UpdateServiceParams]
	ProductStore      = Store[model.Product, model.ProductFilter, model.CreateProductParams, model.UpdateProductParams]
	PaymentStore      = Store[model.Payment, model.PaymentFilter, model.CreatePaymentParams, model.UpdatePaymentParams]
	VerificationStore = Store[model.Verification, model.VerificationFilter, model.CreateVerificationParams, model.UpdateVerificationParams]
	SessionStore      = Store[model.Session, model.SessionFilter, model.CreateSessionParams, model.UpdateSessionParams]
)

type TaskEnqueuer struct {
	mock.Mock
}

func (m *TaskEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

// TaskOfType matches an *asynq.Task argument by type name.
func TaskOfType(name string) any {
	return mock.MatchedBy(func(t *asynq.Task) bool { return t.Type() == name })
}
