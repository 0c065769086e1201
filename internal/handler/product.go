package handler

import (
	"net/http"

	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/deppfellow/portal-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	products *service.ProductService
}

func NewProductHandler(s *server.Server, products *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:   NewHandler(s),
		products: products,
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.CreateProductRequest) (model.ProductResponse, error) {
		product, err := h.products.CreateProduct(c, req.Params())
		if err != nil {
			return model.ProductResponse{}, err
		}
		return model.NewProductResponse(product), nil
	}, http.StatusCreated, &model.CreateProductRequest{})(c)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.IDRequest) (model.ProductResponse, error) {
		product, err := h.products.GetProduct(c, req.UUID())
		if err != nil {
			return model.ProductResponse{}, err
		}
		return model.NewProductResponse(product), nil
	}, http.StatusOK, &model.IDRequest{})(c)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.ListProductsRequest) (model.ListResponse[model.ProductResponse], error) {
		filter := req.Filter()
		products, err := h.products.ListProducts(c, filter)
		if err != nil {
			return model.ListResponse[model.ProductResponse]{}, err
		}
		return model.NewListResponse(products, filter.Page, model.NewProductResponse), nil
	}, http.StatusOK, &model.ListProductsRequest{})(c)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.UpdateProductRequest) (model.ProductResponse, error) {
		product, err := h.products.UpdateProduct(c, req.UUID(), req.Params())
		if err != nil {
			return model.ProductResponse{}, err
		}
		return model.NewProductResponse(product), nil
	}, http.StatusOK, &model.UpdateProductRequest{})(c)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *model.IDRequest) error {
		return h.products.DeleteProduct(c, req.UUID())
	}, http.StatusNoContent, &model.IDRequest{})(c)
}
