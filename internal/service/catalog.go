package service

import (
	"github.com/deppfellow/portal-api/internal/middleware"
	"github.com/deppfellow/portal-api/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ServiceService manages the services contracted by customers.
type ServiceService struct {
	store ServiceStore
}

func NewServiceService(store ServiceStore) *ServiceService {
	return &ServiceService{store: store}
}

func (s *ServiceService) CreateService(c echo.Context, params model.CreateServiceParams) (*model.Service, error) {
	svc, err := s.store.Create(c.Request().Context(), params)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("failed to create service")
		return nil, err
	}
	return svc, nil
}

func (s *ServiceService) GetService(c echo.Context, id uuid.UUID) (*model.Service, error) {
	return s.store.GetByID(c.Request().Context(), id)
}

func (s *ServiceService) ListServices(c echo.Context, filter model.ServiceFilter) ([]model.Service, error) {
	return s.store.List(c.Request().Context(), filter)
}

func (s *ServiceService) UpdateService(c echo.Context, id uuid.UUID, params model.UpdateServiceParams) (*model.Service, error) {
	return s.store.Update(c.Request().Context(), id, params)
}

func (s *ServiceService) DeleteService(c echo.Context, id uuid.UUID) error {
	return s.store.Delete(c.Request().Context(), id)
}

type ProductService struct {
	store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) CreateProduct(c echo.Context, params model.CreateProductParams) (*model.Product, error) {
	product, err := s.store.Create(c.Request().Context(), params)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("failed to create product")
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProduct(c echo.Context, id uuid.UUID) (*model.Product, error) {
	return s.store.GetByID(c.Request().Context(), id)
}

func (s *ProductService) ListProducts(c echo.Context, filter model.ProductFilter) ([]model.Product, error) {
	return s.store.List(c.Request().Context(), filter)
}

func (s *ProductService) UpdateProduct(c echo.Context, id uuid.UUID, params model.UpdateProductParams) (*model.Product, error) {
	return s.store.Update(c.Request().Context(), id, params)
}

func (s *ProductService) DeleteProduct(c echo.Context, id uuid.UUID) error {
	return s.store.Delete(c.Request().Context(), id)
}
