package model

import (
	"time"

	"github.com/deppfellow/portal-api/internal/validation"
	"github.com/google/uuid"
)

// Verification is an identity check of a customer, optionally tied to the
// session or payment that triggered it.
type Verification struct {
	ID         uuid.UUID          `db:"verification_id"`
	CustomerID uuid.UUID          `db:"customer_id"`
	SessionID  *uuid.UUID         `db:"session_id"`
	PaymentID  *uuid.UUID         `db:"payment_id"`
	Type       string             `db:"type"`
	Status     VerificationStatus `db:"status"`
	Attempts   int                `db:"attempts"`
	CreatedAt  time.Time          `db:"created_at"`
	UpdatedAt  time.Time          `db:"updated_at"`
	DeletedAt  *time.Time         `db:"deleted_at"`
}

var verificationSchema = validation.Schema{
	validation.Field("customer_id", validation.Required(), validation.UUID()),
	validation.Field("session_id", validation.UUID()),
	validation.Field("payment_id", validation.UUID()),
	validation.Field("type", validation.Required(), validation.MaxLength(50)),
	validation.Field("status", validation.OneOf(VerificationStatuses...)),
	validation.Field("attempts", validation.Min(0)),
}

type verificationFields struct {
	CustomerID *string `json:"customer_id"`
	SessionID  *string `json:"session_id"`
	PaymentID  *string `json:"payment_id"`
	Type       *string `json:"type"`
	Status     *string `json:"status"`
	Attempts   *int    `json:"attempts"`
}

func (f *verificationFields) Normalize() {
	validation.Apply(f.CustomerID, validation.NormalizeText)
	validation.Apply(f.SessionID, validation.NormalizeText)
	validation.Apply(f.PaymentID, validation.NormalizeText)
	validation.Apply(f.Type, validation.NormalizeText)
	validation.Apply(f.Status, validation.NormalizeText)
}

func (f *verificationFields) values() validation.Values {
	return validation.Values{
		"customer_id": validation.Str(f.CustomerID),
		"session_id":  validation.Str(f.SessionID),
		"payment_id":  validation.Str(f.PaymentID),
		"type":        validation.Str(f.Type),
		"status":      validation.Str(f.Status),
		"attempts":    validation.Int(f.Attempts),
	}
}

func (f *verificationFields) status() *VerificationStatus {
	if f.Status == nil || *f.Status == "" {
		return nil
	}
	s := VerificationStatus(*f.Status)
	return &s
}

type CreateVerificationRequest struct {
	verificationFields
}

func (r *CreateVerificationRequest) Validate() error {
	return verificationSchema.Validate(r.values(), validation.Full)
}

func (r *CreateVerificationRequest) Params() CreateVerificationParams {
	return CreateVerificationParams{
		CustomerID: uuid.MustParse(deref(r.CustomerID)),
		SessionID:  optionalUUID(r.SessionID),
		PaymentID:  optionalUUID(r.PaymentID),
		Type:       deref(r.Type),
		Status:     r.status(),
		Attempts:   r.Attempts,
	}
}

type CreateVerificationParams struct {
	CustomerID uuid.UUID
	SessionID  *uuid.UUID
	PaymentID  *uuid.UUID
	Type       string
	Status     *VerificationStatus
	Attempts   *int
}

type UpdateVerificationRequest struct {
	IDRequest
	verificationFields
}

func (r *UpdateVerificationRequest) Validate() error {
	return validation.Merge(idSchema, verificationSchema).
		Validate(mergeValues(r.IDRequest, r.values()), validation.Partial)
}

func (r *UpdateVerificationRequest) Params() UpdateVerificationParams {
	return UpdateVerificationParams{
		CustomerID: optionalUUID(r.CustomerID),
		SessionID:  optionalUUID(r.SessionID),
		PaymentID:  optionalUUID(r.PaymentID),
		Type:       r.Type,
		Status:     r.status(),
		Attempts:   r.Attempts,
	}
}

type UpdateVerificationParams struct {
	CustomerID *uuid.UUID
	SessionID  *uuid.UUID
	PaymentID  *uuid.UUID
	Type       *string
	Status     *VerificationStatus
	Attempts   *int
}

type ListVerificationsRequest struct {
	Pagination
	CustomerID string `query:"customer_id"`
	Status     string `query:"status"`
}

var verificationFilterSchema = validation.Schema{
	validation.Field("customer_id", validation.UUID()),
	validation.Field("status", validation.OneOf(VerificationStatuses...)),
}

func (r *ListVerificationsRequest) Validate() error {
	values := r.Pagination.values()
	values["customer_id"] = queryValue(r.CustomerID)
	values["status"] = queryValue(r.Status)
	return validation.Merge(paginationSchema, verificationFilterSchema).Validate(values, validation.Full)
}

func (r *ListVerificationsRequest) Filter() VerificationFilter {
	return VerificationFilter{
		Page:       r.Page(),
		CustomerID: queryUUID(r.CustomerID),
		Status:     optionalString(r.Status),
	}
}

type VerificationFilter struct {
	Page
	CustomerID *uuid.UUID
	Status     *string
}

type VerificationResponse struct {
	ID         uuid.UUID          `json:"verification_id"`
	CustomerID uuid.UUID          `json:"customer_id"`
	SessionID  *uuid.UUID         `json:"session_id"`
	PaymentID  *uuid.UUID         `json:"payment_id"`
	Type       string             `json:"type"`
	Status     VerificationStatus `json:"status"`
	Attempts   int                `json:"attempts"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func NewVerificationResponse(v *Verification) VerificationResponse {
	return VerificationResponse{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		SessionID:  v.SessionID,
		PaymentID:  v.PaymentID,
		Type:       v.Type,
		Status:     v.Status,
		Attempts:   v.Attempts,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
