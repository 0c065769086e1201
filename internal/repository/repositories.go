package repository

import (
	"github.com/deppfellow/portal-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Customers     *CustomerRepository
	Services      *ServiceRepository
	Products      *ProductRepository
	Payments      *PaymentRepository
	Verifications *VerificationRepository
	Sessions      *SessionRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Customers:     NewCustomerRepository(s),
		Services:      NewServiceRepository(s),
		Products:      NewProductRepository(s),
		Payments:      NewPaymentRepository(s),
		Verifications: NewVerificationRepository(s),
		Sessions:      NewSessionRepository(s),
	}
}
