package validation

import (
	"errors"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Rule checks one field value. It returns nil when the value satisfies it.
// Every rule except Required and OneOf treats an absent or empty value as
// satisfied.
type Rule func(field string, value any) *ValidationError

// UUIDLength is the length of the canonical hyphenated UUID form.
const UUIDLength = 36

var (
	// validate backs the shape checks the go-playground validator already
	// implements well (email). It is safe for concurrent use.
	validate = validator.New()

	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

	errNotBoolean = errors.New("value is not a boolean")
)

func violation(field string, reason Reason) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// Required fails when the value is absent, null or the empty string.
func Required() Rule {
	return func(field string, value any) *ValidationError {
		if isEmpty(value) {
			return violation(field, ReasonRequired)
		}
		return nil
	}
}

// MaxLength fails when a string has more than limit characters.
func MaxLength(limit int) Rule {
	return func(field string, value any) *ValidationError {
		if isEmpty(value) {
			return nil
		}
		s, ok := value.(string)
		if !ok {
			return violation(field, ReasonInvalidFormat)
		}
		if utf8.RuneCountInString(s) > limit {
			return &ValidationError{Field: field, Reason: ReasonMaxLength, Limit: &limit}
		}
		return nil
	}
}

// Email fails when the value is not shaped like an email address.
func Email() Rule {
	return func(field string, value any) *ValidationError {
		if isEmpty(value) {
			return nil
		}
		s, ok := value.(string)
		if !ok || validate.Var(s, "email") != nil {
			return violation(field, ReasonInvalidFormat)
		}
		return nil
	}
}

// UUID fails unless the value is a UUID in its canonical 36-character
// hyphenated form.
func UUID() Rule {
	return func(field string, value any) *ValidationError {
		if isEmpty(value) {
			return nil
		}
		s, ok := value.(string)
		if !ok || !IsValidUUID(s) {
			return violation(field, ReasonInvalidFormat)
		}
		return nil
	}
}

// IsValidUUID reports whether s is a canonical hyphenated UUID.
func IsValidUUID(s string) bool {
	if len(s) != UUIDLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// OneOf fails when the value is not one of allowed. A present empty string
// is not a member and fails too.
func OneOf(allowed ...string) Rule {
	return func(field string, value any) *ValidationError {
		if value == nil {
			return nil
		}
		s, ok := value.(string)
		if !ok || !slices.Contains(allowed, s) {
			return &ValidationError{Field: field, Reason: ReasonInvalidEnum, Allowed: allowed}
		}
		return nil
	}
}

// Boolean fails when a present value cannot be read as a boolean.
// JSON booleans, strconv.ParseBool strings and the numbers 0 and 1 pass.
func Boolean() Rule {
	return func(field string, value any) *ValidationError {
		if value == nil {
			return nil
		}
		if _, err := ToBool(value); err != nil {
			return violation(field, ReasonInvalidBoolean)
		}
		return nil
	}
}

// ToBool coerces a decoded JSON or query value into a bool.
func ToBool(value any) (bool, error) {
	switch v := value.(type) {
	case float64:
		if v != 0 && v != 1 {
			return false, errNotBoolean
		}
	case int:
		if v != 0 && v != 1 {
			return false, errNotBoolean
		}
	case bool, string:
	default:
		return false, errNotBoolean
	}
	return cast.ToBoolE(value)
}

// Decimal fails unless the value is a decimal number written as a string.
func Decimal() Rule {
	return func(field string, value any) *ValidationError {
		if isEmpty(value) {
			return nil
		}
		s, ok := value.(string)
		if !ok {
			return violation(field, ReasonInvalidFormat)
		}
		if _, err := decimal.NewFromString(s); err != nil {
			return violation(field, ReasonInvalidFormat)
		}
		return nil
	}
}

// DecimalPrecision fails when a decimal string does not fit NUMERIC(precision,
// scale): more than scale fractional digits, or more than precision-scale
// integer digits. Unparseable values are left to Decimal.
func DecimalPrecision(precision, scale int) Rule {
	limit := decimal.New(1, int32(precision-scale))
	return func(field string, value any) *ValidationError {
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil
		}
		if !d.Equal(d.Truncate(int32(scale))) || d.Abs().GreaterThanOrEqual(limit) {
			return violation(field, ReasonInvalidFormat)
		}
		return nil
	}
}

// Positive fails when a decimal string is zero or negative. Unparseable
// values are left to Decimal.
func Positive() Rule {
	return func(field string, value any) *ValidationError {
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil
		}
		if !d.IsPositive() {
			return violation(field, ReasonNotPositive)
		}
		return nil
	}
}

// Currency fails unless the value is a three-letter upper-case code.
func Currency() Rule {
	return func(field string, value any) *ValidationError {
		if isEmpty(value) {
			return nil
		}
		s, ok := value.(string)
		if !ok || !currencyPattern.MatchString(s) {
			return violation(field, ReasonInvalidFormat)
		}
		return nil
	}
}

// Min fails when an integer is below limit.
func Min(limit int) Rule {
	return func(field string, value any) *ValidationError {
		n, ok := value.(int)
		if !ok {
			return nil
		}
		if n < limit {
			return &ValidationError{Field: field, Reason: ReasonMinValue, Limit: &limit}
		}
		return nil
	}
}

// Max fails when an integer is above limit.
func Max(limit int) Rule {
	return func(field string, value any) *ValidationError {
		n, ok := value.(int)
		if !ok {
			return nil
		}
		if n > limit {
			return &ValidationError{Field: field, Reason: ReasonMaxValue, Limit: &limit}
		}
		return nil
	}
}
