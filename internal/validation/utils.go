package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/deppfellow/portal-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by every request payload.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds path, query and body values into payload, runs its
// normalizers and then its rules. Any failure comes back as an *errs.HTTPError
// with status 400. A JSON value of the wrong type is reported as an
// invalid_format error on its field, next to the rest of the payload's errors.
func BindAndValidate(c echo.Context, payload Validatable) error {
	var typeErr *json.UnmarshalTypeError
	if err := c.Bind(payload); err != nil {
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
		}
	}

	if n, ok := payload.(Normalizable); ok {
		n.Normalize()
	}

	fieldErrors := validateStruct(payload)
	if typeErr != nil {
		fieldErrors = withTypeError(fieldErrors, typeErr.Field)
	}
	if fieldErrors != nil {
		return errs.NewValidationFailedError(fieldErrors)
	}

	return nil
}

// withTypeError puts an invalid_format error for field in place of whatever
// the rules reported for it. The decoder leaves a mistyped field unset, so
// those reports (usually required) would be misleading.
func withTypeError(fieldErrors []errs.FieldError, field string) []errs.FieldError {
	v := ValidationError{Field: field, Reason: ReasonInvalidFormat}
	typed := errs.FieldError{Field: field, Reason: string(v.Reason), Error: v.Message()}

	out := make([]errs.FieldError, 0, len(fieldErrors)+1)
	placed := false
	for _, fe := range fieldErrors {
		if fe.Field != field {
			out = append(out, fe)
			continue
		}
		if !placed {
			out = append(out, typed)
			placed = true
		}
	}
	if !placed {
		out = append(out, typed)
	}
	return out
}

func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
		return http.StatusText(echoErr.Code)
	}
	return "Invalid request payload"
}

func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return ToFieldErrors(err)
	}
	return nil
}

// ToFieldErrors converts validation failures into the client-facing field
// error list, preserving their order.
func ToFieldErrors(err error) []errs.FieldError {
	var violations Errors
	if errors.As(err, &violations) {
		fieldErrors := make([]errs.FieldError, 0, len(violations))
		for _, v := range violations {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field:   v.Field,
				Reason:  string(v.Reason),
				Error:   v.Message(),
				Limit:   v.Limit,
				Allowed: v.Allowed,
			})
		}
		return fieldErrors
	}

	var single ValidationError
	if errors.As(err, &single) {
		return ToFieldErrors(Errors{single})
	}

	return []errs.FieldError{{Field: "request", Error: fmt.Sprint(err)}}
}
