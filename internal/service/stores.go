package service

import (
	"context"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// The Store interfaces are satisfied by the repository package.

type CustomerStore interface {
	Create(ctx context.Context, params model.CreateCustomerParams) (*model.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context, filter model.CustomerFilter) ([]model.Customer, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateCustomerParams) (*model.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceStore interface {
	Create(ctx context.Context, params model.CreateServiceParams) (*model.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error)
	List(ctx context.Context, filter model.ServiceFilter) ([]model.Service, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateServiceParams) (*model.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductStore interface {
	Create(ctx context.Context, params model.CreateProductParams) (*model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateProductParams) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentStore interface {
	Create(ctx context.Context, params model.CreatePaymentParams) (*model.Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	List(ctx context.Context, filter model.PaymentFilter) ([]model.Payment, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdatePaymentParams) (*model.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type VerificationStore interface {
	Create(ctx context.Context, params model.CreateVerificationParams) (*model.Verification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Verification, error)
	List(ctx context.Context, filter model.VerificationFilter) ([]model.Verification, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateVerificationParams) (*model.Verification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SessionStore interface {
	Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Session, error)
	List(ctx context.Context, filter model.SessionFilter) ([]model.Session, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateSessionParams) (*model.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskEnqueuer is implemented by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
