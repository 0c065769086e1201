// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, applies business defaults,
// queues background jobs and calls the stores to persist data.
package service

import (
	"github.com/deppfellow/portal-api/internal/lib/job"
	"github.com/deppfellow/portal-api/internal/repository"
	"github.com/deppfellow/portal-api/internal/server"
)

type Services struct {
	Auth          *AuthService
	Job           *job.JobService
	Customers     *CustomerService
	Services      *ServiceService
	Products      *ProductService
	Payments      *PaymentService
	Verifications *VerificationService
	Sessions      *SessionService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)
	jobs := s.Job.Client

	return &Services{
		Job:           s.Job,
		Auth:          authService,
		Customers:     NewCustomerService(repos.Customers, jobs),
		Services:      NewServiceService(repos.Services),
		Products:      NewProductService(repos.Products),
		Payments:      NewPaymentService(repos.Payments, repos.Customers, jobs),
		Verifications: NewVerificationService(repos.Verifications),
		Sessions:      NewSessionService(repos.Sessions),
	}, nil
}
