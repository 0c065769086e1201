package repository

import (
	"context"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	servicesTable   = "services"
	serviceIDColumn = "service_id"
	serviceColumns  = `service_id, customer_id, name, description, active, created_at, updated_at, deleted_at`
)

type ServiceRepository struct {
	server *server.Server
}

func NewServiceRepository(s *server.Server) *ServiceRepository {
	return &ServiceRepository{server: s}
}

func (r *ServiceRepository) Create(ctx context.Context, params model.CreateServiceParams) (*model.Service, error) {
	stmt := `
		INSERT INTO services (customer_id, name, description, active)
		VALUES (@customer_id, @name, @description, COALESCE(@active::boolean, TRUE))
		RETURNING ` + serviceColumns

	return insertOne[model.Service](ctx, r.server.DB.Pool, servicesTable, stmt, pgx.NamedArgs{
		"customer_id": params.CustomerID,
		"name":        params.Name,
		"description": params.Description,
		"active":      params.Active,
	})
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return getByID[model.Service](ctx, r.server.DB.Pool, servicesTable, serviceIDColumn, serviceColumns, id)
}

func (r *ServiceRepository) List(ctx context.Context, filter model.ServiceFilter) ([]model.Service, error) {
	l := newList(filter.Limit, filter.Offset)
	whereIf(l, "customer_id", filter.CustomerID)
	whereIf(l, "active", filter.Active)

	return list[model.Service](ctx, r.server.DB.Pool, l, servicesTable, serviceColumns)
}

func (r *ServiceRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateServiceParams) (*model.Service, error) {
	u := newUpdate(id)
	setIf(u, "customer_id", params.CustomerID)
	setIf(u, "name", params.Name)
	setIf(u, "description", params.Description)
	setIf(u, "active", params.Active)

	return updateOne[model.Service](ctx, r.server.DB.Pool, u, servicesTable, serviceIDColumn, serviceColumns, id)
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.server.DB.Pool, servicesTable, serviceIDColumn, id)
}
