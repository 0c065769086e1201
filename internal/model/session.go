package model

import (
	"time"

	"github.com/deppfellow/portal-api/internal/validation"
	"github.com/google/uuid"
)

// Session is a customer's portal session. StartedAt and EndedAt are set by
// the store, never by clients.
type Session struct {
	ID         uuid.UUID     `db:"session_id"`
	CustomerID uuid.UUID     `db:"customer_id"`
	UserAgent  string        `db:"user_agent"`
	Status     SessionStatus `db:"status"`
	StartedAt  time.Time     `db:"started_at"`
	EndedAt    *time.Time    `db:"ended_at"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
	DeletedAt  *time.Time    `db:"deleted_at"`
}

var sessionSchema = validation.Schema{
	validation.Field("customer_id", validation.Required(), validation.UUID()),
	validation.Field("user_agent", validation.MaxLength(255)),
	validation.Field("status", validation.OneOf(SessionStatuses...)),
}

type sessionFields struct {
	CustomerID *string `json:"customer_id"`
	UserAgent  *string `json:"user_agent"`
	Status     *string `json:"status"`
}

func (f *sessionFields) Normalize() {
	validation.Apply(f.CustomerID, validation.NormalizeText)
	validation.Apply(f.UserAgent, validation.NormalizeText)
	validation.Apply(f.Status, validation.NormalizeText)
}

func (f *sessionFields) values() validation.Values {
	return validation.Values{
		"customer_id": validation.Str(f.CustomerID),
		"user_agent":  validation.Str(f.UserAgent),
		"status":      validation.Str(f.Status),
	}
}

func (f *sessionFields) status() *SessionStatus {
	if f.Status == nil || *f.Status == "" {
		return nil
	}
	s := SessionStatus(*f.Status)
	return &s
}

type CreateSessionRequest struct {
	sessionFields
}

func (r *CreateSessionRequest) Validate() error {
	return sessionSchema.Validate(r.values(), validation.Full)
}

func (r *CreateSessionRequest) Params() CreateSessionParams {
	return CreateSessionParams{
		CustomerID: uuid.MustParse(deref(r.CustomerID)),
		UserAgent:  optionalString(deref(r.UserAgent)),
		Status:     r.status(),
	}
}

// CreateSessionParams carries the request's User-Agent header next to the
// body value; the header is stored when the body has none.
type CreateSessionParams struct {
	CustomerID      uuid.UUID
	UserAgent       *string
	UserAgentHeader string
	Status          *SessionStatus
}

type UpdateSessionRequest struct {
	IDRequest
	sessionFields
}

func (r *UpdateSessionRequest) Validate() error {
	return validation.Merge(idSchema, sessionSchema).
		Validate(mergeValues(r.IDRequest, r.values()), validation.Partial)
}

func (r *UpdateSessionRequest) Params() UpdateSessionParams {
	return UpdateSessionParams{
		CustomerID: optionalUUID(r.CustomerID),
		UserAgent:  r.UserAgent,
		Status:     r.status(),
	}
}

type UpdateSessionParams struct {
	CustomerID *uuid.UUID
	UserAgent  *string
	Status     *SessionStatus
}

type ListSessionsRequest struct {
	Pagination
	CustomerID string `query:"customer_id"`
	Status     string `query:"status"`
}

var sessionFilterSchema = validation.Schema{
	validation.Field("customer_id", validation.UUID()),
	validation.Field("status", validation.OneOf(SessionStatuses...)),
}

func (r *ListSessionsRequest) Validate() error {
	values := r.Pagination.values()
	values["customer_id"] = queryValue(r.CustomerID)
	values["status"] = queryValue(r.Status)
	return validation.Merge(paginationSchema, sessionFilterSchema).Validate(values, validation.Full)
}

func (r *ListSessionsRequest) Filter() SessionFilter {
	return SessionFilter{
		Page:       r.Page(),
		CustomerID: queryUUID(r.CustomerID),
		Status:     optionalString(r.Status),
	}
}

type SessionFilter struct {
	Page
	CustomerID *uuid.UUID
	Status     *string
}

type SessionResponse struct {
	ID         uuid.UUID     `json:"session_id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	UserAgent  string        `json:"user_agent"`
	Status     SessionStatus `json:"status"`
	StartedAt  time.Time     `json:"started_at"`
	EndedAt    *time.Time    `json:"ended_at"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func NewSessionResponse(s *Session) SessionResponse {
	return SessionResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		UserAgent:  s.UserAgent,
		Status:     s.Status,
		StartedAt:  s.StartedAt,
		EndedAt:    s.EndedAt,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
