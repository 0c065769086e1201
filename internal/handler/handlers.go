// Package handler is the HTTP layer. Handlers bind and validate requests,
// call the service layer and project results into response shapes.
package handler

import (
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/deppfellow/portal-api/internal/service"
)

type Handlers struct {
	Health        *HealthHandler
	OpenAPI       *OpenAPIHandler
	EmailPreview  *EmailPreviewHandler
	Customers     *CustomerHandler
	Services      *ServiceHandler
	Products      *ProductHandler
	Payments      *PaymentHandler
	Verifications *VerificationHandler
	Sessions      *SessionHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(s),
		OpenAPI:       NewOpenAPIHandler(s),
		EmailPreview:  NewEmailPreviewHandler(s),
		Customers:     NewCustomerHandler(s, services.Customers),
		Services:      NewServiceHandler(s, services.Services),
		Products:      NewProductHandler(s, services.Products),
		Payments:      NewPaymentHandler(s, services.Payments),
		Verifications: NewVerificationHandler(s, services.Verifications),
		Sessions:      NewSessionHandler(s, services.Sessions),
	}
}
