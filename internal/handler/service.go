package handler

import (
	"net/http"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/deppfellow/portal-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ServiceHandler struct {
	Handler
	services *service.ServiceService
}

func NewServiceHandler(s *server.Server, services *service.ServiceService) *ServiceHandler {
	return &ServiceHandler{
		Handler:   NewHandler(s),
		services: services,
	}
}

func (h *ServiceHandler) CreateService(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.CreateServiceRequest) (model.ServiceResponse, error) {
		svc, err := h.services.CreateService(c, req.Params())
		if err != nil {
			return model.ServiceResponse{}, err
		}
		return model.NewServiceResponse(svc), nil
	}, http.StatusCreated, &model.CreateServiceRequest{})(c)
}

func (h *ServiceHandler) GetService(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.IDRequest) (model.ServiceResponse, error) {
		svc, err := h.services.GetService(c, req.UUID())
		if err != nil {
			return model.ServiceResponse{}, err
		}
		return model.NewServiceResponse(svc), nil
	}, http.StatusOK, &model.IDRequest{})(c)
}

func (h *ServiceHandler) ListServices(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.ListServicesRequest) (model.ListResponse[model.ServiceResponse], error) {
		filter := req.Filter()
		records, err := h.services.ListServices(c, filter)
		if err != nil {
			return model.ListResponse[model.ServiceResponse]{}, err
		}
		return model.NewListResponse(records, filter.Page, model.NewServiceResponse), nil
	}, http.StatusOK, &model.ListServicesRequest{})(c)
}

func (h *ServiceHandler) UpdateService(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.UpdateServiceRequest) (model.ServiceResponse, error) {
		svc, err := h.services.UpdateService(c, req.UUID(), req.Params())
		if err != nil {
			return model.ServiceResponse{}, err
		}
		return model.NewServiceResponse(svc), nil
	}, http.StatusOK, &model.UpdateServiceRequest{})(c)
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *model.IDRequest) error {
		return h.services.DeleteService(c, req.UUID())
	}, http.StatusNoContent, &model.IDRequest{})(c)
}
