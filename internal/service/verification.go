package service

import (
	"github.com/deppfellow/portal-api/internal/middleware"
	"github.com/deppfellow/portal-api/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type VerificationService struct {
	store VerificationStore
}

func NewVerificationService(store VerificationStore) *VerificationService {
	return &VerificationService{store: store}
}

// CreateVerification defaults to a pending check with no attempts.
func (s *VerificationService) CreateVerification(c echo.Context, params model.CreateVerificationParams) (*model.Verification, error) {
	if params.Status == nil {
		pending := model.VerificationStatusPending
		params.Status = &pending
	}
	if params.Attempts == nil {
		zero := 0
		params.Attempts = &zero
	}

	verification, err := s.store.Create(c.Request().Context(), params)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("failed to create verification")
		return nil, err
	}
	return verification, nil
}

func (s *VerificationService) GetVerification(c echo.Context, id uuid.UUID) (*model.Verification, error) {
	return s.store.GetByID(c.Request().Context(), id)
}

func (s *VerificationService) ListVerifications(c echo.Context, filter model.VerificationFilter) ([]model.Verification, error) {
	return s.store.List(c.Request().Context(), filter)
}

func (s *VerificationService) UpdateVerification(c echo.Context, id uuid.UUID, params model.UpdateVerificationParams) (*model.Verification, error) {
	return s.store.Update(c.Request().Context(), id, params)
}

func (s *VerificationService) DeleteVerification(c echo.Context, id uuid.UUID) error {
	return s.store.Delete(c.Request().Context(), id)
}
