// Package model defines the portal entities and the request and response
// shapes built around them.
//
// Every entity has a storage record, a create payload, an update payload in
// which every field is optional, and a response projection. Projections list
// exposed fields explicitly; storage-only columns such as deleted_at never
// leave the service.
package model

import (
	"github.com/deppfellow/portal-api/internal/validation"
	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	// MoneyPrecision and MoneyScale match the NUMERIC(14, 2) amount and
	// price columns.
	MoneyPrecision = 14
	MoneyScale     = 2
)

var idSchema = validation.Schema{
	validation.Field("id", validation.Required(), validation.UUID()),
}

// IDRequest carries the `:id` path parameter of single-resource routes.
type IDRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *IDRequest) Validate() error {
	return idSchema.Validate(validation.Values{"id": r.ID}, validation.Full)
}

// UUID returns the parsed identifier. Call it only after Validate.
func (r *IDRequest) UUID() uuid.UUID {
	return uuid.MustParse(r.ID)
}

// Pagination is the limit/offset pair accepted by every list route.
type Pagination struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

var paginationSchema = validation.Schema{
	validation.Field("limit", validation.Min(0), validation.Max(MaxLimit)),
	validation.Field("offset", validation.Min(0)),
}

var activeFilterSchema = validation.Schema{
	validation.Field("active", validation.Boolean()),
}

func (p Pagination) values() validation.Values {
	return validation.Values{"limit": p.Limit, "offset": p.Offset}
}

// Page resolves the defaults: a zero limit means DefaultLimit.
func (p Pagination) Page() Page {
	limit := p.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	return Page{Limit: limit, Offset: p.Offset}
}

type Page struct {
	Limit  int
	Offset int
}

// ListResponse is the envelope of every list route.
type ListResponse[T any] struct {
	Data   []T `json:"data"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func (r ListResponse[T]) Len() int {
	return len(r.Data)
}

// NewListResponse projects each record through project.
func NewListResponse[M any, T any](records []M, page Page, project func(*M) T) ListResponse[T] {
	data := make([]T, 0, len(records))
	for i := range records {
		data = append(data, project(&records[i]))
	}
	return ListResponse[T]{Data: data, Limit: page.Limit, Offset: page.Offset}
}

// optionalBool reads a validated boolean value; nil stays nil.
func optionalBool(value any) *bool {
	if value == nil {
		return nil
	}
	b, err := validation.ToBool(value)
	if err != nil {
		return nil
	}
	return &b
}

// queryValue treats an empty query parameter as absent.
func queryValue(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id := uuid.MustParse(*s)
	return &id
}

func queryUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	return optionalUUID(&s)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// mergeValues adds the path identifier to a payload's values. The id is a
// plain string, so it is never treated as absent by validation.Partial.
func mergeValues(id IDRequest, values validation.Values) validation.Values {
	values["id"] = id.ID
	return values
}
