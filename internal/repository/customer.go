package repository

import (
	"context"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	customersTable   = "customers"
	customerIDColumn = "customer_id"
	customerColumns  = `customer_id, name, email, phone, address, active, created_at, updated_at, deleted_at`
)

type CustomerRepository struct {
	server *server.Server
}

func NewCustomerRepository(s *server.Server) *CustomerRepository {
	return &CustomerRepository{server: s}
}

func (r *CustomerRepository) Create(ctx context.Context, params model.CreateCustomerParams) (*model.Customer, error) {
	stmt := `
		INSERT INTO customers (name, email, phone, address, active)
		VALUES (@name, @email, @phone, @address, COALESCE(@active::boolean, TRUE))
		RETURNING ` + customerColumns

	return insertOne[model.Customer](ctx, r.server.DB.Pool, customersTable, stmt, pgx.NamedArgs{
		"name":    params.Name,
		"email":   params.Email,
		"phone":   params.Phone,
		"address": params.Address,
		"active":  params.Active,
	})
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	return getByID[model.Customer](ctx, r.server.DB.Pool, customersTable, customerIDColumn, customerColumns, id)
}

func (r *CustomerRepository) List(ctx context.Context, filter model.CustomerFilter) ([]model.Customer, error) {
	l := newList(filter.Limit, filter.Offset)
	whereIf(l, "active", filter.Active)

	return list[model.Customer](ctx, r.server.DB.Pool, l, customersTable, customerColumns)
}

func (r *CustomerRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateCustomerParams) (*model.Customer, error) {
	u := newUpdate(id)
	setIf(u, "name", params.Name)
	setIf(u, "email", params.Email)
	setIf(u, "phone", params.Phone)
	setIf(u, "address", params.Address)
	setIf(u, "active", params.Active)

	return updateOne[model.Customer](ctx, r.server.DB.Pool, u, customersTable, customerIDColumn, customerColumns, id)
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.server.DB.Pool, customersTable, customerIDColumn, id)
}
