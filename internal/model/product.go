package model

import (
	"time"

	"github.com/deppfellow/portal-api/internal/validation"
	"github.com/google/uuid"
)

// Product is a sellable item referenced by payments. Price is kept as a
// decimal string end to end.
type Product struct {
	ID          uuid.UUID  `db:"product_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Price       string     `db:"price"`
	Currency    string     `db:"currency"`
	Active      bool       `db:"active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

var productSchema = validation.Schema{
	validation.Field("name", validation.Required(), validation.MaxLength(200)),
	validation.Field("description", validation.MaxLength(500)),
	validation.Field("price", validation.Required(), validation.Decimal(),
		validation.DecimalPrecision(MoneyPrecision, MoneyScale), validation.Positive()),
	validation.Field("currency", validation.Required(), validation.Currency()),
	validation.Field("active", validation.Boolean()),
}

type productFields struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Currency    *string `json:"currency"`
	Active      any     `json:"active"`
}

func (f *productFields) Normalize() {
	validation.Apply(f.Name, validation.NormalizeText)
	validation.Apply(f.Description, validation.NormalizeText)
	validation.Apply(f.Price, validation.NormalizeDecimal)
	validation.Apply(f.Currency, validation.NormalizeCurrency)
}

func (f *productFields) values() validation.Values {
	return validation.Values{
		"name":        validation.Str(f.Name),
		"description": validation.Str(f.Description),
		"price":       validation.Str(f.Price),
		"currency":    validation.Str(f.Currency),
		"active":      f.Active,
	}
}

type CreateProductRequest struct {
	productFields
}

func (r *CreateProductRequest) Validate() error {
	return productSchema.Validate(r.values(), validation.Full)
}

func (r *CreateProductRequest) Params() CreateProductParams {
	return CreateProductParams{
		Name:        deref(r.Name),
		Description: deref(r.Description),
		Price:       deref(r.Price),
		Currency:    deref(r.Currency),
		Active:      optionalBool(r.Active),
	}
}

type CreateProductParams struct {
	Name        string
	Description string
	Price       string
	Currency    string
	Active      *bool
}

type UpdateProductRequest struct {
	IDRequest
	productFields
}

func (r *UpdateProductRequest) Validate() error {
	return validation.Merge(idSchema, productSchema).
		Validate(mergeValues(r.IDRequest, r.values()), validation.Partial)
}

func (r *UpdateProductRequest) Params() UpdateProductParams {
	return UpdateProductParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Currency:    r.Currency,
		Active:      optionalBool(r.Active),
	}
}

type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *string
	Currency    *string
	Active      *bool
}

type ListProductsRequest struct {
	Pagination
	Active string `query:"active"`
}

func (r *ListProductsRequest) Validate() error {
	values := r.Pagination.values()
	values["active"] = queryValue(r.Active)
	return validation.Merge(paginationSchema, activeFilterSchema).Validate(values, validation.Full)
}

func (r *ListProductsRequest) Filter() ProductFilter {
	return ProductFilter{Page: r.Page(), Active: optionalBool(queryValue(r.Active))}
}

type ProductFilter struct {
	Page
	Active *bool
}

type ProductResponse struct {
	ID          uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Currency    string    `json:"currency"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
