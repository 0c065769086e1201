package repository

import (
	"context"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	productsTable   = "products"
	productIDColumn = "product_id"
	// price is read back as text so it never passes through a float.
	productColumns = `product_id, name, description, price::text AS price, currency, active, created_at, updated_at, deleted_at`
)

type ProductRepository struct {
	server *server.Server
}

func NewProductRepository(s *server.Server) *ProductRepository {
	return &ProductRepository{server: s}
}

func (r *ProductRepository) Create(ctx context.Context, params model.CreateProductParams) (*model.Product, error) {
	stmt := `
		INSERT INTO products (name, description, price, currency, active)
		VALUES (@name, @description, (@price::text)::numeric, @currency, COALESCE(@active::boolean, TRUE))
		RETURNING ` + productColumns

	return insertOne[model.Product](ctx, r.server.DB.Pool, productsTable, stmt, pgx.NamedArgs{
		"name":        params.Name,
		"description": params.Description,
		"price":       params.Price,
		"currency":    params.Currency,
		"active":      params.Active,
	})
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return getByID[model.Product](ctx, r.server.DB.Pool, productsTable, productIDColumn, productColumns, id)
}

func (r *ProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	l := newList(filter.Limit, filter.Offset)
	whereIf(l, "active", filter.Active)

	return list[model.Product](ctx, r.server.DB.Pool, l, productsTable, productColumns)
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateProductParams) (*model.Product, error) {
	u := newUpdate(id)
	setIf(u, "name", params.Name)
	setIf(u, "description", params.Description)
	if params.Price != nil {
		u.raw("price = (@price::text)::numeric")
		u.args["price"] = *params.Price
	}
	setIf(u, "currency", params.Currency)
	setIf(u, "active", params.Active)

	return updateOne[model.Product](ctx, r.server.DB.Pool, u, productsTable, productIDColumn, productColumns, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.server.DB.Pool, productsTable, productIDColumn, id)
}
