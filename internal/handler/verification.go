package handler

import (
	"net/http"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/deppfellow/portal-api/internal/service"
	"github.com/labstack/echo/v4"
)

type VerificationHandler struct {
	Handler
	verifications *service.VerificationService
}

func NewVerificationHandler(s *server.Server, verifications *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		Handler:   NewHandler(s),
		verifications: verifications,
	}
}

func (h *VerificationHandler) CreateVerification(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.CreateVerificationRequest) (model.VerificationResponse, error) {
		verification, err := h.verifications.CreateVerification(c, req.Params())
		if err != nil {
			return model.VerificationResponse{}, err
		}
		return model.NewVerificationResponse(verification), nil
	}, http.StatusCreated, &model.CreateVerificationRequest{})(c)
}

func (h *VerificationHandler) GetVerification(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.IDRequest) (model.VerificationResponse, error) {
		verification, err := h.verifications.GetVerification(c, req.UUID())
		if err != nil {
			return model.VerificationResponse{}, err
		}
		return model.NewVerificationResponse(verification), nil
	}, http.StatusOK, &model.IDRequest{})(c)
}

func (h *VerificationHandler) ListVerifications(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.ListVerificationsRequest) (model.ListResponse[model.VerificationResponse], error) {
		filter := req.Filter()
		verifications, err := h.verifications.ListVerifications(c, filter)
		if err != nil {
			return model.ListResponse[model.VerificationResponse]{}, err
		}
		return model.NewListResponse(verifications, filter.Page, model.NewVerificationResponse), nil
	}, http.StatusOK, &model.ListVerificationsRequest{})(c)
}

func (h *VerificationHandler) UpdateVerification(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.UpdateVerificationRequest) (model.VerificationResponse, error) {
		verification, err := h.verifications.UpdateVerification(c, req.UUID(), req.Params())
		if err != nil {
			return model.VerificationResponse{}, err
		}
		return model.NewVerificationResponse(verification), nil
	}, http.StatusOK, &model.UpdateVerificationRequest{})(c)
}

func (h *VerificationHandler) DeleteVerification(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *model.IDRequest) error {
		return h.verifications.DeleteVerification(c, req.UUID())
	}, http.StatusNoContent, &model.IDRequest{})(c)
}
