package model

import (
	"time"

	"github.com/deppfellow/portal-api/internal/validation"
	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID  `db:"customer_id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Phone     string     `db:"phone"`
	Address   string     `db:"address"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

var customerSchema = validation.Schema{
	validation.Field("name", validation.Required(), validation.MaxLength(200)),
	validation.Field("email", validation.Required(), validation.MaxLength(100), validation.Email()),
	validation.Field("phone", validation.Required(), validation.MaxLength(20)),
	validation.Field("address", validation.Required(), validation.MaxLength(255)),
	validation.Field("active", validation.Boolean()),
}

// customerFields is shared by the create and update payloads.
type customerFields struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Active  any     `json:"active"`
}

func (f *customerFields) Normalize() {
	validation.Apply(f.Name, validation.NormalizeText)
	validation.Apply(f.Email, validation.NormalizeEmail)
	validation.Apply(f.Phone, validation.NormalizePhone)
	validation.Apply(f.Address, validation.NormalizeText)
}

func (f *customerFields) values() validation.Values {
	return validation.Values{
		"name":    validation.Str(f.Name),
		"email":   validation.Str(f.Email),
		"phone":   validation.Str(f.Phone),
		"address": validation.Str(f.Address),
		"active":  f.Active,
	}
}

type CreateCustomerRequest struct {
	customerFields
}

func (r *CreateCustomerRequest) Validate() error {
	return customerSchema.Validate(r.values(), validation.Full)
}

// Params returns the validated values.
func (r *CreateCustomerRequest) Params() CreateCustomerParams {
	return CreateCustomerParams{
		Name:    deref(r.Name),
		Email:   deref(r.Email),
		Phone:   deref(r.Phone),
		Address: deref(r.Address),
		Active:  optionalBool(r.Active),
	}
}

type CreateCustomerParams struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Active  *bool
}

type UpdateCustomerRequest struct {
	IDRequest
	customerFields
}

func (r *UpdateCustomerRequest) Validate() error {
	return validation.Merge(idSchema, customerSchema).
		Validate(mergeValues(r.IDRequest, r.values()), validation.Partial)
}

func (r *UpdateCustomerRequest) Params() UpdateCustomerParams {
	return UpdateCustomerParams{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Active:  optionalBool(r.Active),
	}
}

// UpdateCustomerParams holds the fields to change; nil leaves a column as is.
type UpdateCustomerParams struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Active  *bool
}

type ListCustomersRequest struct {
	Pagination
	Active string `query:"active"`
}

func (r *ListCustomersRequest) Validate() error {
	values := r.Pagination.values()
	values["active"] = queryValue(r.Active)
	return validation.Merge(paginationSchema, activeFilterSchema).Validate(values, validation.Full)
}

func (r *ListCustomersRequest) Filter() CustomerFilter {
	return CustomerFilter{Page: r.Page(), Active: optionalBool(queryValue(r.Active))}
}

type CustomerFilter struct {
	Page
	Active *bool
}

// CustomerResponse is the public shape of a customer.
type CustomerResponse struct {
	ID        uuid.UUID `json:"customer_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCustomerResponse(c *Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
