package handler

import (
	"net/http"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/deppfellow/portal-api/internal/service"
	"github.com/labstack/echo/v4"
)

type SessionHandler struct {
	Handler
	sessions *service.SessionService
}

func NewSessionHandler(s *server.Server, sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{
		Handler:   NewHandler(s),
		sessions: sessions,
	}
}

func (h *SessionHandler) CreateSession(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.CreateSessionRequest) (model.SessionResponse, error) {
		params := req.Params()
		params.UserAgentHeader = c.Request().UserAgent()

		session, err := h.sessions.CreateSession(c, params)
		if err != nil {
			return model.SessionResponse{}, err
		}
		return model.NewSessionResponse(session), nil
	}, http.StatusCreated, &model.CreateSessionRequest{})(c)
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.IDRequest) (model.SessionResponse, error) {
		session, err := h.sessions.GetSession(c, req.UUID())
		if err != nil {
			return model.SessionResponse{}, err
		}
		return model.NewSessionResponse(session), nil
	}, http.StatusOK, &model.IDRequest{})(c)
}

func (h *SessionHandler) ListSessions(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.ListSessionsRequest) (model.ListResponse[model.SessionResponse], error) {
		filter := req.Filter()
		sessions, err := h.sessions.ListSessions(c, filter)
		if err != nil {
			return model.ListResponse[model.SessionResponse]{}, err
		}
		return model.NewListResponse(sessions, filter.Page, model.NewSessionResponse), nil
	}, http.StatusOK, &model.ListSessionsRequest{})(c)
}

func (h *SessionHandler) UpdateSession(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.UpdateSessionRequest) (model.SessionResponse, error) {
		session, err := h.sessions.UpdateSession(c, req.UUID(), req.Params())
		if err != nil {
			return model.SessionResponse{}, err
		}
		return model.NewSessionResponse(session), nil
	}, http.StatusOK, &model.UpdateSessionRequest{})(c)
}

func (h *SessionHandler) DeleteSession(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *model.IDRequest) error {
		return h.sessions.DeleteSession(c, req.UUID())
	}, http.StatusNoContent, &model.IDRequest{})(c)
}
