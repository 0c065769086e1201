package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/portal-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactPayload struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (p *contactPayload) Normalize() {
	Apply(p.Phone, NormalizePhone)
}

func (p *contactPayload) Validate() error {
	return Schema{
		Field("name", Required(), MaxLength(20)),
		Field("phone", Required(), MaxLength(10)),
	}.Validate(Values{
		"name":  Str(p.Name),
		"phone": Str(p.Phone),
	}, Full)
}

func newJSONContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateNormalizesBeforeValidating(t *testing.T) {
	payload := &contactPayload{}

	err := BindAndValidate(newJSONContext(`{"name":"Ana","phone":"55 1234-5678"}`), payload)

	require.NoError(t, err)
	assert.Equal(t, "5512345678", *payload.Phone)
}

func TestBindAndValidateReturnsAllFieldErrors(t *testing.T) {
	err := BindAndValidate(newJSONContext(`{}`), &contactPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.CodeValidationFailed, httpErr.Code)
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, "required", httpErr.Errors[0].Reason)
	assert.Equal(t, "phone", httpErr.Errors[1].Field)
}

func TestBindAndValidateRejectsMalformedJSON(t *testing.T) {
	err := BindAndValidate(newJSONContext(`{"name":`), &contactPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidateReportsMistypedField(t *testing.T) {
	t.Run("with other failures", func(t *testing.T) {
		err := BindAndValidate(newJSONContext(`{"name":5}`), &contactPayload{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, errs.CodeValidationFailed, httpErr.Code)
		require.Len(t, httpErr.Errors, 2)
		assert.Equal(t, "name", httpErr.Errors[0].Field)
		assert.Equal(t, "invalid_format", httpErr.Errors[0].Reason)
		assert.Equal(t, "phone", httpErr.Errors[1].Field)
		assert.Equal(t, "required", httpErr.Errors[1].Reason)
	})

	t.Run("alone", func(t *testing.T) {
		err := BindAndValidate(newJSONContext(`{"name":"Ana","phone":true}`), &contactPayload{})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, errs.CodeValidationFailed, httpErr.Code)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "phone", httpErr.Errors[0].Field)
		assert.Equal(t, "invalid_format", httpErr.Errors[0].Reason)
	})
}

func TestToFieldErrorsFallback(t *testing.T) {
	fieldErrors := ToFieldErrors(assert.AnError)

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "request", fieldErrors[0].Field)
}
