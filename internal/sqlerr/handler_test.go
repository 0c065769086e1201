package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/portal-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorForeignKey(t *testing.T) {
	err := HandleError(fmt.Errorf("insert payment: %w", &pgconn.PgError{
		Code:           "23503",
		Severity:       "ERROR",
		TableName:      "payments",
		ConstraintName: "payments_customer_id_fkey",
	}))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Customer does not exist", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "customer_id", httpErr.Errors[0].Field)
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		TableName:      "customers",
		ConstraintName: "customers_email_key",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, "CUSTOMER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Customer with this Email already exists", httpErr.Message)
}

func TestHandleErrorNotNull(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", TableName: "services", ColumnName: "name"})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, "required", httpErr.Errors[0].Reason)
}

func TestHandleErrorNoRows(t *testing.T) {
	err := HandleError(fmt.Errorf("get customer %s:%w", TablePrefix+"customers", pgx.ErrNoRows))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Customer not found", httpErr.Message)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", httpErr.Code)

	httpErr = asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleErrorHidesUnknownFailures(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("dial tcp 10.0.0.5:5432: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "10.0.0.5")
}

func TestHandleErrorPassesHTTPErrorsThrough(t *testing.T) {
	original := errs.NewForbiddenError("no", false)

	assert.Same(t, original, HandleError(original))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23514", Severity: "ERROR"})

	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
	assert.Equal(t, SeverityError, converted.Severity)
}
