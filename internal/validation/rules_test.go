package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	rule := Required()

	for _, value := range []any{nil, ""} {
		v := rule("name", value)
		require.NotNil(t, v)
		assert.Equal(t, ReasonRequired, v.Reason)
		assert.Equal(t, "name", v.Field)
	}

	assert.Nil(t, rule("name", "Ana"))
	assert.Nil(t, rule("active", false))
}

func TestMaxLengthCountsCharacters(t *testing.T) {
	rule := MaxLength(5)

	assert.Nil(t, rule("name", "Peñas"))
	assert.Nil(t, rule("name", nil))
	assert.Nil(t, rule("name", ""))

	v := rule("name", "Peñasco")
	require.NotNil(t, v)
	assert.Equal(t, ReasonMaxLength, v.Reason)
	require.NotNil(t, v.Limit)
	assert.Equal(t, 5, *v.Limit)
}

func TestEmail(t *testing.T) {
	rule := Email()

	assert.Nil(t, rule("email", "ana@example.com"))
	assert.Nil(t, rule("email", nil))

	for _, bad := range []any{"ana", "ana@", "@example.com", 42} {
		v := rule("email", bad)
		require.NotNil(t, v, "%v", bad)
		assert.Equal(t, ReasonInvalidFormat, v.Reason)
	}
}

func TestUUID(t *testing.T) {
	rule := UUID()

	assert.Nil(t, rule("customer_id", "583e2f58-e0b6-4fd2-adb1-c6b948fe32ad"))

	for _, bad := range []any{
		"abc",
		"583e2f58e0b64fd2adb1c6b948fe32ad",
		"urn:uuid:583e2f58-e0b6-4fd2-adb1-c6b948fe32ad",
		"583e2f58-e0b6-4fd2-adb1-c6b948fe32az",
	} {
		v := rule("customer_id", bad)
		require.NotNil(t, v, "%v", bad)
		assert.Equal(t, ReasonInvalidFormat, v.Reason)
	}
}

func TestOneOf(t *testing.T) {
	rule := OneOf("pending", "paid", "failed", "refunded")

	assert.Nil(t, rule("status", "paid"))
	assert.Nil(t, rule("status", nil))

	v := rule("status", "PAID")
	require.NotNil(t, v)
	assert.Equal(t, ReasonInvalidEnum, v.Reason)
	assert.Equal(t, []string{"pending", "paid", "failed", "refunded"}, v.Allowed)
	assert.Contains(t, v.Message(), "pending, paid, failed, refunded")

	v = rule("status", "")
	require.NotNil(t, v, "a present empty string is not a member")
	assert.Equal(t, ReasonInvalidEnum, v.Reason)
}

func TestDecimalPrecision(t *testing.T) {
	rule := DecimalPrecision(14, 2)

	for _, ok := range []any{nil, "", "10", "10.1", "10.12", "10.120", "999999999999.99", "-5.5", "ten", 42} {
		assert.Nil(t, rule("amount", ok), "%v", ok)
	}

	for _, bad := range []string{"10.125", "0.001", "1e20", "1000000000000", "-1000000000000.5"} {
		v := rule("amount", bad)
		require.NotNil(t, v, bad)
		assert.Equal(t, ReasonInvalidFormat, v.Reason)
	}
}

func TestBoolean(t *testing.T) {
	rule := Boolean()

	for _, ok := range []any{nil, true, false, "true", "false", "1", "0", float64(1), float64(0)} {
		assert.Nil(t, rule("active", ok), "%v", ok)
	}

	for _, bad := range []any{"yes", "", float64(2), []any{}, map[string]any{}} {
		v := rule("active", bad)
		require.NotNil(t, v, "%v", bad)
		assert.Equal(t, ReasonInvalidBoolean, v.Reason)
	}
}

func TestToBool(t *testing.T) {
	b, err := ToBool("true")
	require.NoError(t, err)
	assert.True(t, b)

	b, err = ToBool(float64(0))
	require.NoError(t, err)
	assert.False(t, b)

	_, err = ToBool(float64(3))
	assert.Error(t, err)
}

func TestDecimalAndPositive(t *testing.T) {
	decimalRule := Decimal()
	positiveRule := Positive()

	assert.Nil(t, decimalRule("amount", "199.99"))
	assert.Nil(t, positiveRule("amount", "199.99"))

	v := decimalRule("amount", "12,50")
	require.NotNil(t, v)
	assert.Equal(t, ReasonInvalidFormat, v.Reason)
	assert.Nil(t, positiveRule("amount", "12,50"))

	v = positiveRule("amount", "0")
	require.NotNil(t, v)
	assert.Equal(t, ReasonNotPositive, v.Reason)

	v = positiveRule("amount", "-3")
	require.NotNil(t, v)
}

func TestCurrency(t *testing.T) {
	rule := Currency()

	assert.Nil(t, rule("currency", "MXN"))
	for _, bad := range []string{"mxn", "MX", "MXNN", "M1N"} {
		assert.NotNil(t, rule("currency", bad), bad)
	}
}

func TestMinMax(t *testing.T) {
	assert.Nil(t, Min(0)("attempts", 0))
	assert.Nil(t, Min(0)("attempts", nil))

	v := Min(0)("attempts", -1)
	require.NotNil(t, v)
	assert.Equal(t, ReasonMinValue, v.Reason)

	v = Max(100)("limit", 101)
	require.NotNil(t, v)
	assert.Equal(t, ReasonMaxValue, v.Reason)
	assert.True(t, strings.Contains(v.Message(), "100"))
}
