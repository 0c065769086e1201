package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGuard(t *testing.T, id string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/customers/:id")
	c.SetParamNames(IDParam)
	c.SetParamValues(id)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, RequireIDParam("customer")(next)(c))
	return rec, called
}

func TestRequireIDParam_RejectsShortIDs(t *testing.T) {
	for _, id := range []string{"", "123", "not-a-uuid", uuid.NewString()[:35]} {
		t.Run(id, func(t *testing.T) {
			rec, called := runGuard(t, id)

			assert.False(t, called, "handler must not run")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message":"Parámetro id inválido"}`, rec.Body.String())
		})
	}
}

func TestRequireIDParam_PassesThrough(t *testing.T) {
	rec, called := runGuard(t, uuid.NewString())

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// The guard checks length only; malformed ids of full length reach the
// handler, which validates the UUID itself.
func TestRequireIDParam_LengthOnly(t *testing.T) {
	_, called := runGuard(t, "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz")

	assert.True(t, called)
}
