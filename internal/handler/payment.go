package handler

import (
	"net/http"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/deppfellow/portal-api/internal/service"
	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	Handler
	payments *service.PaymentService
}

func NewPaymentHandler(s *server.Server, payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		Handler:   NewHandler(s),
		payments: payments,
	}
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.CreatePaymentRequest) (model.PaymentResponse, error) {
		payment, err := h.payments.CreatePayment(c, req.Params())
		if err != nil {
			return model.PaymentResponse{}, err
		}
		return model.NewPaymentResponse(payment), nil
	}, http.StatusCreated, &model.CreatePaymentRequest{})(c)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.IDRequest) (model.PaymentResponse, error) {
		payment, err := h.payments.GetPayment(c, req.UUID())
		if err != nil {
			return model.PaymentResponse{}, err
		}
		return model.NewPaymentResponse(payment), nil
	}, http.StatusOK, &model.IDRequest{})(c)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.ListPaymentsRequest) (model.ListResponse[model.PaymentResponse], error) {
		filter := req.Filter()
		payments, err := h.payments.ListPayments(c, filter)
		if err != nil {
			return model.ListResponse[model.PaymentResponse]{}, err
		}
		return model.NewListResponse(payments, filter.Page, model.NewPaymentResponse), nil
	}, http.StatusOK, &model.ListPaymentsRequest{})(c)
}

func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.UpdatePaymentRequest) (model.PaymentResponse, error) {
		payment, err := h.payments.UpdatePayment(c, req.UUID(), req.Params())
		if err != nil {
			return model.PaymentResponse{}, err
		}
		return model.NewPaymentResponse(payment), nil
	}, http.StatusOK, &model.UpdatePaymentRequest{})(c)
}

func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *model.IDRequest) error {
		return h.payments.DeletePayment(c, req.UUID())
	}, http.StatusNoContent, &model.IDRequest{})(c)
}
