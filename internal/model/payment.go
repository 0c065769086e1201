package model

import (
	"time"

	"github.com/deppfellow/portal-api/internal/validation"
	"github.com/google/uuid"
)

// Payment records a charge of a product to a customer. Amount is a decimal
// string; it is never converted to a float.
type Payment struct {
	ID          uuid.UUID     `db:"payment_id"`
	CustomerID  uuid.UUID     `db:"customer_id"`
	ProductID   uuid.UUID     `db:"product_id"`
	Amount      string        `db:"amount"`
	Currency    string        `db:"currency"`
	Method      string        `db:"method"`
	Status      PaymentStatus `db:"status"`
	ExternalRef *string       `db:"external_ref"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
	DeletedAt   *time.Time    `db:"deleted_at"`
}

var paymentSchema = validation.Schema{
	validation.Field("customer_id", validation.Required(), validation.UUID()),
	validation.Field("product_id", validation.Required(), validation.UUID()),
	validation.Field("amount", validation.Required(), validation.Decimal(),
		validation.DecimalPrecision(MoneyPrecision, MoneyScale), validation.Positive()),
	validation.Field("currency", validation.Required(), validation.Currency()),
	validation.Field("method", validation.Required(), validation.MaxLength(50)),
	validation.Field("status", validation.OneOf(PaymentStatuses...)),
	validation.Field("external_ref", validation.MaxLength(100)),
}

type paymentFields struct {
	CustomerID  *string `json:"customer_id"`
	ProductID   *string `json:"product_id"`
	Amount      *string `json:"amount"`
	Currency    *string `json:"currency"`
	Method      *string `json:"method"`
	Status      *string `json:"status"`
	ExternalRef *string `json:"external_ref"`
}

func (f *paymentFields) Normalize() {
	validation.Apply(f.CustomerID, validation.NormalizeText)
	validation.Apply(f.ProductID, validation.NormalizeText)
	validation.Apply(f.Amount, validation.NormalizeDecimal)
	validation.Apply(f.Currency, validation.NormalizeCurrency)
	validation.Apply(f.Method, validation.NormalizeText)
	validation.Apply(f.Status, validation.NormalizeText)
	validation.Apply(f.ExternalRef, validation.NormalizeText)
}

func (f *paymentFields) values() validation.Values {
	return validation.Values{
		"customer_id":  validation.Str(f.CustomerID),
		"product_id":   validation.Str(f.ProductID),
		"amount":       validation.Str(f.Amount),
		"currency":     validation.Str(f.Currency),
		"method":       validation.Str(f.Method),
		"status":       validation.Str(f.Status),
		"external_ref": validation.Str(f.ExternalRef),
	}
}

func (f *paymentFields) status() *PaymentStatus {
	if f.Status == nil || *f.Status == "" {
		return nil
	}
	s := PaymentStatus(*f.Status)
	return &s
}

type CreatePaymentRequest struct {
	paymentFields
}

func (r *CreatePaymentRequest) Validate() error {
	return paymentSchema.Validate(r.values(), validation.Full)
}

func (r *CreatePaymentRequest) Params() CreatePaymentParams {
	return CreatePaymentParams{
		CustomerID:  uuid.MustParse(deref(r.CustomerID)),
		ProductID:   uuid.MustParse(deref(r.ProductID)),
		Amount:      deref(r.Amount),
		Currency:    deref(r.Currency),
		Method:      deref(r.Method),
		Status:      r.status(),
		ExternalRef: optionalString(deref(r.ExternalRef)),
	}
}

// CreatePaymentParams leaves Status nil when the client did not send one;
// the service fills in the default.
type CreatePaymentParams struct {
	CustomerID  uuid.UUID
	ProductID   uuid.UUID
	Amount      string
	Currency    string
	Method      string
	Status      *PaymentStatus
	ExternalRef *string
}

type UpdatePaymentRequest struct {
	IDRequest
	paymentFields
}

func (r *UpdatePaymentRequest) Validate() error {
	return validation.Merge(idSchema, paymentSchema).
		Validate(mergeValues(r.IDRequest, r.values()), validation.Partial)
}

func (r *UpdatePaymentRequest) Params() UpdatePaymentParams {
	return UpdatePaymentParams{
		CustomerID:  optionalUUID(r.CustomerID),
		ProductID:   optionalUUID(r.ProductID),
		Amount:      r.Amount,
		Currency:    r.Currency,
		Method:      r.Method,
		Status:      r.status(),
		ExternalRef: r.ExternalRef,
	}
}

type UpdatePaymentParams struct {
	CustomerID  *uuid.UUID
	ProductID   *uuid.UUID
	Amount      *string
	Currency    *string
	Method      *string
	Status      *PaymentStatus
	ExternalRef *string
}

type ListPaymentsRequest struct {
	Pagination
	CustomerID string `query:"customer_id"`
	Status     string `query:"status"`
}

var paymentFilterSchema = validation.Schema{
	validation.Field("customer_id", validation.UUID()),
	validation.Field("status", validation.OneOf(PaymentStatuses...)),
}

func (r *ListPaymentsRequest) Validate() error {
	values := r.Pagination.values()
	values["customer_id"] = queryValue(r.CustomerID)
	values["status"] = queryValue(r.Status)
	return validation.Merge(paginationSchema, paymentFilterSchema).Validate(values, validation.Full)
}

func (r *ListPaymentsRequest) Filter() PaymentFilter {
	return PaymentFilter{
		Page:       r.Page(),
		CustomerID: queryUUID(r.CustomerID),
		Status:     optionalString(r.Status),
	}
}

type PaymentFilter struct {
	Page
	CustomerID *uuid.UUID
	Status     *string
}

type PaymentResponse struct {
	ID          uuid.UUID     `json:"payment_id"`
	CustomerID  uuid.UUID     `json:"customer_id"`
	ProductID   uuid.UUID     `json:"product_id"`
	Amount      string        `json:"amount"`
	Currency    string        `json:"currency"`
	Method      string        `json:"method"`
	Status      PaymentStatus `json:"status"`
	ExternalRef *string       `json:"external_ref"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func NewPaymentResponse(p *Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		ProductID:   p.ProductID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Method:      p.Method,
		Status:      p.Status,
		ExternalRef: p.ExternalRef,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
