package handler

import (
	"net/http"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/deppfellow/portal-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	Handler
	customers *service.CustomerService
}

func NewCustomerHandler(s *server.Server, customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler:   NewHandler(s),
		customers: customers,
	}
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.CreateCustomerRequest) (model.CustomerResponse, error) {
		customer, err := h.customers.CreateCustomer(c, req.Params())
		if err != nil {
			return model.CustomerResponse{}, err
		}
		return model.NewCustomerResponse(customer), nil
	}, http.StatusCreated, &model.CreateCustomerRequest{})(c)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.IDRequest) (model.CustomerResponse, error) {
		customer, err := h.customers.GetCustomer(c, req.UUID())
		if err != nil {
			return model.CustomerResponse{}, err
		}
		return model.NewCustomerResponse(customer), nil
	}, http.StatusOK, &model.IDRequest{})(c)
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.ListCustomersRequest) (model.ListResponse[model.CustomerResponse], error) {
		filter := req.Filter()
		customers, err := h.customers.ListCustomers(c, filter)
		if err != nil {
			return model.ListResponse[model.CustomerResponse]{}, err
		}
		return model.NewListResponse(customers, filter.Page, model.NewCustomerResponse), nil
	}, http.StatusOK, &model.ListCustomersRequest{})(c)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.UpdateCustomerRequest) (model.CustomerResponse, error) {
		customer, err := h.customers.UpdateCustomer(c, req.UUID(), req.Params())
		if err != nil {
			return model.CustomerResponse{}, err
		}
		return model.NewCustomerResponse(customer), nil
	}, http.StatusOK, &model.UpdateCustomerRequest{})(c)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *model.IDRequest) error {
		return h.customers.DeleteCustomer(c, req.UUID())
	}, http.StatusNoContent, &model.IDRequest{})(c)
}
