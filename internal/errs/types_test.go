package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewBadRequestErrorDefaultsCode(t *testing.T) {
	err := NewBadRequestError("nope", false, nil, nil, nil)

	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)

	custom := "CUSTOMER_NOT_FOUND"
	err = NewBadRequestError("nope", false, &custom, nil, nil)
	assert.Equal(t, custom, err.Code)
}

func TestValidationFailedErrorCarriesEveryField(t *testing.T) {
	limit := 100
	err := NewValidationFailedError([]FieldError{
		{Field: "customer_id", Reason: "required", Error: "is required"},
		{Field: "name", Reason: "max_length", Error: "must not exceed 100 characters", Limit: &limit},
	})

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, CodeValidationFailed, decoded["code"])
	fields := decoded["errors"].([]any)
	require.Len(t, fields, 2)
	assert.Equal(t, "customer_id", fields[0].(map[string]any)["field"])
	assert.Equal(t, "required", fields[0].(map[string]any)["reason"])
	assert.NotContains(t, fields[0].(map[string]any), "limit")
	assert.EqualValues(t, 100, fields[1].(map[string]any)["limit"])
}

func TestHTTPErrorIsMatchesByType(t *testing.T) {
	wrapped := fmt.Errorf("loading customer: %w", NewNotFoundError("Customer not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	base := NewForbiddenError("forbidden", false)
	changed := base.WithMessage("no access to this customer")

	assert.Equal(t, "forbidden", base.Message)
	assert.Equal(t, "no access to this customer", changed.Message)
	assert.Equal(t, base.Status, changed.Status)
}
