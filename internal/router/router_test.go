package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/portal-api/internal/config"
	"github.com/deppfellow/portal-api/internal/handler"
	"github.com/deppfellow/portal-api/internal/model"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/deppfellow/portal-api/internal/service"
	"github.com/deppfellow/portal-api/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fixture struct {
	echo      *echo.Echo
	customers *mocks.CustomerStore
	payments  *mocks.PaymentStore
}

func newFixture(env string) fixture {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: env}},
		Logger: &logger,
	}

	customers := &mocks.CustomerStore{}
	payments := &mocks.PaymentStore{}
	jobs := &mocks.TaskEnqueuer{}

	services := &service.Services{
		Auth:          service.NewAuthService(s),
		Customers:     service.NewCustomerService(customers, jobs),
		Services:      service.NewServiceService(&mocks.ServiceStore{}),
		Products:      service.NewProductService(&mocks.ProductStore{}),
		Payments:      service.NewPaymentService(payments, customers, jobs),
		Verifications: service.NewVerificationService(&mocks.VerificationStore{}),
		Sessions:      service.NewSessionService(&mocks.SessionStore{}),
	}

	return fixture{
		echo:      NewRouter(s, handler.NewHandlers(s, services), services),
		customers: customers,
		payments:  payments,
	}
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_GuardsEveryIDRoute(t *testing.T) {
	f := newFixture("test")

	for _, path := range []string{"customers", "services", "products", "payments", "verifications", "sessions"} {
		for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
			t.Run(method+" "+path, func(t *testing.T) {
				rec := serve(f.echo, method, APIPrefix+"/"+path+"/123")

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.JSONEq(t, `{"message":"Parámetro id inválido"}`, rec.Body.String())
			})
		}
	}

	f.customers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.customers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRouter_ReachesHandlerWithFullID(t *testing.T) {
	f := newFixture("test")
	id := uuid.New()

	f.payments.On("GetByID", mock.Anything, id).Return(&model.Payment{ID: id, Status: model.PaymentStatusPaid}, nil).Once()

	rec := serve(f.echo, http.MethodGet, APIPrefix+"/payments/"+id.String())

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	f.payments.AssertExpectations(t)
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newFixture("test")

	rec := serve(f.echo, http.MethodGet, APIPrefix+"/invoices")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestRouter_EmailPreviewOnlyLocal(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(newFixture("local").echo, http.MethodGet, "/emails/welcome").Code)
	assert.Equal(t, http.StatusNotFound, serve(newFixture("production").echo, http.MethodGet, "/emails/welcome").Code)
}
