package repository

import (
	"context"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	paymentsTable   = "payments"
	paymentIDColumn = "payment_id"
	paymentColumns  = `payment_id, customer_id, product_id, amount::text AS amount, currency, method, status,
		external_ref, created_at, updated_at, deleted_at`
)

type PaymentRepository struct {
	server *server.Server
}

func NewPaymentRepository(s *server.Server) *PaymentRepository {
	return &PaymentRepository{server: s}
}

func (r *PaymentRepository) Create(ctx context.Context, params model.CreatePaymentParams) (*model.Payment, error) {
	stmt := `
		INSERT INTO payments (customer_id, product_id, amount, currency, method, status, external_ref)
		VALUES (
			@customer_id,
			@product_id,
			(@amount::text)::numeric,
			@currency,
			@method,
			COALESCE(@status::text, 'pending'),
			@external_ref
		)
		RETURNING ` + paymentColumns

	return insertOne[model.Payment](ctx, r.server.DB.Pool, paymentsTable, stmt, pgx.NamedArgs{
		"customer_id":  params.CustomerID,
		"product_id":   params.ProductID,
		"amount":       params.Amount,
		"currency":     params.Currency,
		"method":       params.Method,
		"status":       params.Status,
		"external_ref": params.ExternalRef,
	})
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return getByID[model.Payment](ctx, r.server.DB.Pool, paymentsTable, paymentIDColumn, paymentColumns, id)
}

func (r *PaymentRepository) List(ctx context.Context, filter model.PaymentFilter) ([]model.Payment, error) {
	l := newList(filter.Limit, filter.Offset)
	whereIf(l, "customer_id", filter.CustomerID)
	whereIf(l, "status", filter.Status)

	return list[model.Payment](ctx, r.server.DB.Pool, l, paymentsTable, paymentColumns)
}

func (r *PaymentRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdatePaymentParams) (*model.Payment, error) {
	u := newUpdate(id)
	setIf(u, "customer_id", params.CustomerID)
	setIf(u, "product_id", params.ProductID)
	if params.Amount != nil {
		u.raw("amount = (@amount::text)::numeric")
		u.args["amount"] = *params.Amount
	}
	setIf(u, "currency", params.Currency)
	setIf(u, "method", params.Method)
	setIf(u, "status", params.Status)
	setIf(u, "external_ref", params.ExternalRef)

	return updateOne[model.Payment](ctx, r.server.DB.Pool, u, paymentsTable, paymentIDColumn, paymentColumns, id)
}

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.server.DB.Pool, paymentsTable, paymentIDColumn, id)
}
