package service

import (
	"github.com/deppfellow/portal-api/internal/lib/utils"
	"github.com/deppfellow/portal-api/internal/middleware"
	"github.com/deppfellow/portal-api/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MaxUserAgentLength matches the sessions.user_agent column.
const MaxUserAgentLength = 255

type SessionService struct {
	store SessionStore
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{store: store}
}

// CreateSession opens a session. Without a user_agent in the body the
// request's User-Agent header is stored, cut to the column size.
func (s *SessionService) CreateSession(c echo.Context, params model.CreateSessionParams) (*model.Session, error) {
	if params.UserAgent == nil && params.UserAgentHeader != "" {
		ua := utils.TruncateRunes(params.UserAgentHeader, MaxUserAgentLength)
		params.UserAgent = &ua
	}
	if params.Status == nil {
		active := model.SessionStatusActive
		params.Status = &active
	}

	session, err := s.store.Create(c.Request().Context(), params)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("failed to create session")
		return nil, err
	}
	return session, nil
}

func (s *SessionService) GetSession(c echo.Context, id uuid.UUID) (*model.Session, error) {
	return s.store.GetByID(c.Request().Context(), id)
}

func (s *SessionService) ListSessions(c echo.Context, filter model.SessionFilter) ([]model.Session, error) {
	return s.store.List(c.Request().Context(), filter)
}

func (s *SessionService) UpdateSession(c echo.Context, id uuid.UUID, params model.UpdateSessionParams) (*model.Session, error) {
	return s.store.Update(c.Request().Context(), id, params)
}

func (s *SessionService) DeleteSession(c echo.Context, id uuid.UUID) error {
	return s.store.Delete(c.Request().Context(), id)
}
