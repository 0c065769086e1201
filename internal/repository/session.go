package repository

import (
	"context"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	sessionsTable   = "sessions"
	sessionIDColumn = "session_id"
	sessionColumns  = `session_id, customer_id, user_agent, status, started_at, ended_at, created_at, updated_at, deleted_at`
)

type SessionRepository struct {
	server *server.Server
}

func NewSessionRepository(s *server.Server) *SessionRepository {
	return &SessionRepository{server: s}
}

// Create stores a session; started_at is set by the database, and a session
// created already closed gets its ended_at right away.
func (r *SessionRepository) Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error) {
	stmt := `
		INSERT INTO sessions (customer_id, user_agent, status, ended_at)
		VALUES (
			@customer_id,
			COALESCE(@user_agent::text, ''),
			COALESCE(@status::text, 'active'),
			CASE WHEN @status::text IN ('ended', 'revoked') THEN now() END
		)
		RETURNING ` + sessionColumns

	return insertOne[model.Session](ctx, r.server.DB.Pool, sessionsTable, stmt, pgx.NamedArgs{
		"customer_id": params.CustomerID,
		"user_agent":  params.UserAgent,
		"status":      params.Status,
	})
}

func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	return getByID[model.Session](ctx, r.server.DB.Pool, sessionsTable, sessionIDColumn, sessionColumns, id)
}

func (r *SessionRepository) List(ctx context.Context, filter model.SessionFilter) ([]model.Session, error) {
	l := newList(filter.Limit, filter.Offset)
	whereIf(l, "customer_id", filter.CustomerID)
	whereIf(l, "status", filter.Status)

	return list[model.Session](ctx, r.server.DB.Pool, l, sessionsTable, sessionColumns)
}

// Update applies the given fields. Moving a session to ended or revoked
// stamps ended_at once; later updates keep the first value.
func (r *SessionRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateSessionParams) (*model.Session, error) {
	u := newUpdate(id)
	setIf(u, "customer_id", params.CustomerID)
	setIf(u, "user_agent", params.UserAgent)
	if params.Status != nil {
		u.set("status", *params.Status)
		if params.Status.Closed() {
			u.raw("ended_at = COALESCE(ended_at, now())")
		}
	}

	return updateOne[model.Session](ctx, r.server.DB.Pool, u, sessionsTable, sessionIDColumn, sessionColumns, id)
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, r.server.DB.Pool, sessionsTable, sessionIDColumn, id)
}
