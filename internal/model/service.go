package model

import (
	"time"

	"github.com/deppfellow/portal-api/internal/validation"
	"github.com/google/uuid"
)

// Service is a contracted service that belongs to a customer.
type Service struct {
	ID          uuid.UUID  `db:"service_id"`
	CustomerID  uuid.UUID  `db:"customer_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Active      bool       `db:"active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

var serviceSchema = validation.Schema{
	validation.Field("customer_id", validation.Required(), validation.UUID()),
	validation.Field("name", validation.Required(), validation.MaxLength(100)),
	validation.Field("description", validation.Required(), validation.MaxLength(500)),
	validation.Field("active", validation.Boolean()),
}

type serviceFields struct {
	CustomerID  *string `json:"customer_id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      any     `json:"active"`
}

func (f *serviceFields) Normalize() {
	validation.Apply(f.CustomerID, validation.NormalizeText)
	validation.Apply(f.Name, validation.NormalizeText)
	validation.Apply(f.Description, validation.NormalizeText)
}

func (f *serviceFields) values() validation.Values {
	return validation.Values{
		"customer_id": validation.Str(f.CustomerID),
		"name":        validation.Str(f.Name),
		"description": validation.Str(f.Description),
		"active":      f.Active,
	}
}

type CreateServiceRequest struct {
	serviceFields
}

func (r *CreateServiceRequest) Validate() error {
	return serviceSchema.Validate(r.values(), validation.Full)
}

func (r *CreateServiceRequest) Params() CreateServiceParams {
	return CreateServiceParams{
		CustomerID:  uuid.MustParse(deref(r.CustomerID)),
		Name:        deref(r.Name),
		Description: deref(r.Description),
		Active:      optionalBool(r.Active),
	}
}

type CreateServiceParams struct {
	CustomerID  uuid.UUID
	Name        string
	Description string
	Active      *bool
}

type UpdateServiceRequest struct {
	IDRequest
	serviceFields
}

func (r *UpdateServiceRequest) Validate() error {
	return validation.Merge(idSchema, serviceSchema).
		Validate(mergeValues(r.IDRequest, r.values()), validation.Partial)
}

func (r *UpdateServiceRequest) Params() UpdateServiceParams {
	return UpdateServiceParams{
		CustomerID:  optionalUUID(r.CustomerID),
		Name:        r.Name,
		Description: r.Description,
		Active:      optionalBool(r.Active),
	}
}

type UpdateServiceParams struct {
	CustomerID  *uuid.UUID
	Name        *string
	Description *string
	Active      *bool
}

type ListServicesRequest struct {
	Pagination
	CustomerID string `query:"customer_id"`
	Active     string `query:"active"`
}

var serviceFilterSchema = validation.Schema{
	validation.Field("customer_id", validation.UUID()),
	validation.Field("active", validation.Boolean()),
}

func (r *ListServicesRequest) Validate() error {
	values := r.Pagination.values()
	values["customer_id"] = queryValue(r.CustomerID)
	values["active"] = queryValue(r.Active)
	return validation.Merge(paginationSchema, serviceFilterSchema).Validate(values, validation.Full)
}

func (r *ListServicesRequest) Filter() ServiceFilter {
	return ServiceFilter{
		Page:       r.Page(),
		CustomerID: queryUUID(r.CustomerID),
		Active:     optionalBool(queryValue(r.Active)),
	}
}

type ServiceFilter struct {
	Page
	CustomerID *uuid.UUID
	Active     *bool
}

type ServiceResponse struct {
	ID          uuid.UUID `json:"service_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewServiceResponse(s *Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		CustomerID:  s.CustomerID,
		Name:        s.Name,
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
