package repository

import (
	"context"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	verificationsTable   = "verifications"
	verificationIDColumn = "verification_id"
	verificationColumns  = `verification_id, customer_id, session_id, payment_id, type, status, attempts,
		created_at, updated_at, deleted_at`
)

type VerificationRepository struct {
	server *server.Server
}

func NewVerificationRepository(s *server.Server) *VerificationRepository {
	return &VerificationRepository{server: s}
}

func (r *VerificationRepository) Create(ctx context.Context, params model.CreateVerificationParams) (*model.Verification, error) {
	stmt := `
		INSERT INTO verifications (customer_id, session_id, payment_id, type, status, attempts)
		VALUES (
			@customer_id,
			@session_id,
			@payment_id,
			@type,
			COALESCE(@status::text, 'pending'),
			COALESCE(@attempts::integer, 0)
		)
		RETURNING ` + verificationColumns

	return insertOne[model.Verification](ctx, r.server.DB.Pool, verificationsTable, stmt, pgx.NamedArgs{
		"customer_id": params.CustomerID,
		"session_id":  params.SessionID,
		"payment_id":  params.PaymentID,
		"type":        params.Type,
		"status":      params.Status,
		"attempts":    params.Attempts,
	})
}

func (r *VerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Verification, error) {
	return getByID[model.Verification](ctx, r.server.DB.Pool, verificationsTable, verificationIDColumn, verificationColumns, id)
}

func (r *VerificationRepository) List(ctx context.Context, filter model.VerificationFilter) ([]model.Verification, error) {
	l := newList(filter.Limit, filter.Offset)
	whereIf(l, "customer_id", filter.CustomerID)
	whereIf(l, "status", filter.Status)

	return list[model.Verification](ctx, r.server.DB.Pool, l, verificationsTable, verificationColumns)
}

func (r *VerificationRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateVerificationParams) (*model.Verification, error) {
	u := newUpdate(id)
	setIf(u, "customer_id", params.CustomerID)
	setIf(u, "session_id", params.SessionID)
	setIf(u, "payment_id", params.PaymentID)
	setIf(u, "type", params.Type)
	setIf(u, "status", params.Status)
	setIf(u, "attempts", params.Attempts)

	return updateOne[model.Verification](ctx, r.server.DB.Pool, u, verificationsTable, verificationIDColumn, verificationColumns, id)
}

func (r *VerificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.server.DB.Pool, verificationsTable, verificationIDColumn, id)
}
