package model

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/deppfellow/portal-api/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func violations(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	return errs
}

func TestCreateServiceRequest_CollectsEveryViolation(t *testing.T) {
	req := &CreateServiceRequest{serviceFields{Name: ptr("Hosting")}}

	errs := violations(t, req.Validate())

	require.Len(t, errs, 2)
	assert.Equal(t, "customer_id", errs[0].Field)
	assert.Equal(t, validation.ReasonRequired, errs[0].Reason)
	assert.Equal(t, "description", errs[1].Field)
	assert.Equal(t, validation.ReasonRequired, errs[1].Reason)
}

func TestCreateCustomerRequest(t *testing.T) {
	t.Run("valid payload after normalization", func(t *testing.T) {
		req := &CreateCustomerRequest{customerFields{
			Name:    ptr("  Ana López "),
			Email:   ptr(" Ana@Example.com"),
			Phone:   ptr("+52 (55) 1234-5678"),
			Address: ptr("Av. Reforma 1"),
			Active:  "true",
		}}
		req.Normalize()

		require.NoError(t, req.Validate())
		params := req.Params()
		assert.Equal(t, "Ana López", params.Name)
		assert.Equal(t, "ana@example.com", params.Email)
		assert.Equal(t, "+525512345678", params.Phone)
		require.NotNil(t, params.Active)
		assert.True(t, *params.Active)
	})

	t.Run("reports rules in schema order", func(t *testing.T) {
		req := &CreateCustomerRequest{customerFields{
			Email:   ptr("not-an-email"),
			Phone:   ptr("123456789012345678901"),
			Address: ptr("x"),
			Active:  "maybe",
		}}

		errs := violations(t, req.Validate())

		assert.Equal(t, []string{"name", "email", "phone", "active"}, errs.Fields())
		assert.Equal(t, validation.ReasonInvalidFormat, errs[1].Reason)
		assert.Equal(t, validation.ReasonMaxLength, errs[2].Reason)
		require.NotNil(t, errs[2].Limit)
		assert.Equal(t, 20, *errs[2].Limit)
		assert.Equal(t, validation.ReasonInvalidBoolean, errs[3].Reason)
	})
}

func TestUpdateRequests_EmptyBodyIsValid(t *testing.T) {
	id := uuid.NewString()

	assert.NoError(t, (&UpdateCustomerRequest{IDRequest: IDRequest{ID: id}}).Validate())
	assert.NoError(t, (&UpdateServiceRequest{IDRequest: IDRequest{ID: id}}).Validate())
	assert.NoError(t, (&UpdateProductRequest{IDRequest: IDRequest{ID: id}}).Validate())
	assert.NoError(t, (&UpdatePaymentRequest{IDRequest: IDRequest{ID: id}}).Validate())
	assert.NoError(t, (&UpdateVerificationRequest{IDRequest: IDRequest{ID: id}}).Validate())
	assert.NoError(t, (&UpdateSessionRequest{IDRequest: IDRequest{ID: id}}).Validate())
}

func TestUpdateRequest_ChecksPresentFieldsOnly(t *testing.T) {
	req := &UpdateCustomerRequest{
		IDRequest:      IDRequest{ID: uuid.NewString()},
		customerFields: customerFields{Email: ptr("bad")},
	}

	errs := violations(t, req.Validate())

	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestUpdateRequest_ExplicitEmptyStringIsChecked(t *testing.T) {
	req := &UpdateServiceRequest{
		IDRequest:     IDRequest{ID: uuid.NewString()},
		serviceFields: serviceFields{Name: ptr("")},
	}

	errs := violations(t, req.Validate())

	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, validation.ReasonRequired, errs[0].Reason)
}

func TestIDRequest_RejectsMalformedID(t *testing.T) {
	errs := violations(t, (&IDRequest{ID: "123"}).Validate())
	assert.Equal(t, "id", errs[0].Field)
	assert.Equal(t, validation.ReasonInvalidFormat, errs[0].Reason)
}

func TestStatusEnums(t *testing.T) {
	customerID := uuid.NewString()

	t.Run("payment", func(t *testing.T) {
		req := &CreatePaymentRequest{paymentFields{
			CustomerID: ptr(customerID),
			ProductID:  ptr(uuid.NewString()),
			Amount:     ptr("10.50"),
			Currency:   ptr("mxn"),
			Method:     ptr("card"),
			Status:     ptr("settled"),
		}}
		req.Normalize()

		errs := violations(t, req.Validate())

		require.Len(t, errs, 1)
		assert.Equal(t, "status", errs[0].Field)
		assert.Equal(t, validation.ReasonInvalidEnum, errs[0].Reason)
		assert.Equal(t, PaymentStatuses, errs[0].Allowed)
	})

	t.Run("verification", func(t *testing.T) {
		req := &CreateVerificationRequest{verificationFields{
			CustomerID: ptr(customerID),
			Type:       ptr("ine"),
			Status:     ptr("done"),
			Attempts:   ptr(-1),
		}}

		errs := violations(t, req.Validate())

		assert.Equal(t, []string{"status", "attempts"}, errs.Fields())
		assert.Equal(t, validation.ReasonMinValue, errs[1].Reason)
	})

	t.Run("session", func(t *testing.T) {
		req := &CreateSessionRequest{sessionFields{CustomerID: ptr(customerID), Status: ptr("closed")}}

		errs := violations(t, req.Validate())

		assert.Equal(t, []string{"status"}, errs.Fields())
	})
}

func TestCreatePaymentRequest_Amounts(t *testing.T) {
	base := func(amount string) *CreatePaymentRequest {
		return &CreatePaymentRequest{paymentFields{
			CustomerID: ptr(uuid.NewString()),
			ProductID:  ptr(uuid.NewString()),
			Amount:     ptr(amount),
			Currency:   ptr("USD"),
			Method:     ptr("card"),
		}}
	}

	ok := base(" 0100.50 ")
	ok.Normalize()
	require.NoError(t, ok.Validate())
	params := ok.Params()
	assert.Equal(t, "100.5", params.Amount)
	assert.Nil(t, params.Status)

	assert.Equal(t, validation.ReasonNotPositive, violations(t, base("0").Validate())[0].Reason)
	assert.Equal(t, validation.ReasonInvalidFormat, violations(t, base("ten").Validate())[0].Reason)

	for _, amount := range []string{"10.125", "1e20"} {
		req := base(amount)
		req.Normalize()

		errs := violations(t, req.Validate())
		assert.Equal(t, []string{"amount"}, errs.Fields(), amount)
		assert.Equal(t, validation.ReasonInvalidFormat, errs[0].Reason, amount)
	}
}

func TestProductPrice_FitsColumn(t *testing.T) {
	for _, price := range []string{"10.125", "1e20"} {
		req := &CreateProductRequest{productFields{
			Name:     ptr("Plan"),
			Price:    ptr(price),
			Currency: ptr("USD"),
		}}
		req.Normalize()

		errs := violations(t, req.Validate())
		assert.Equal(t, []string{"price"}, errs.Fields(), price)
		assert.Equal(t, validation.ReasonInvalidFormat, errs[0].Reason, price)
	}

	update := &UpdateProductRequest{IDRequest: IDRequest{ID: uuid.NewString()}, productFields: productFields{Price: ptr("0.999")}}
	update.Normalize()
	assert.Equal(t, []string{"price"}, violations(t, update.Validate()).Fields())
}

func TestStatusEnums_RejectEmptyStatus(t *testing.T) {
	customerID := uuid.NewString()
	id := IDRequest{ID: uuid.NewString()}

	for _, status := range []string{"", "   "} {
		requests := map[string]interface {
			validation.Validatable
			validation.Normalizable
		}{
			"create payment": &CreatePaymentRequest{paymentFields{
				CustomerID: ptr(customerID),
				ProductID:  ptr(uuid.NewString()),
				Amount:     ptr("10"),
				Currency:   ptr("MXN"),
				Method:     ptr("card"),
				Status:     ptr(status),
			}},
			"update payment": &UpdatePaymentRequest{IDRequest: id, paymentFields: paymentFields{Status: ptr(status)}},
			"create session": &CreateSessionRequest{sessionFields{CustomerID: ptr(customerID), Status: ptr(status)}},
			"update session": &UpdateSessionRequest{IDRequest: id, sessionFields: sessionFields{Status: ptr(status)}},
			"create verification": &CreateVerificationRequest{verificationFields{
				CustomerID: ptr(customerID),
				Type:       ptr("ine"),
				Status:     ptr(status),
			}},
			"update verification": &UpdateVerificationRequest{IDRequest: id, verificationFields: verificationFields{Status: ptr(status)}},
		}

		for name, req := range requests {
			t.Run(name+" "+strconv.Quote(status), func(t *testing.T) {
				req.Normalize()

				errs := violations(t, req.Validate())
				assert.Equal(t, []string{"status"}, errs.Fields())
				assert.Equal(t, validation.ReasonInvalidEnum, errs[0].Reason)
			})
		}
	}
}

func TestListRequests(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req := &ListPaymentsRequest{}
		require.NoError(t, req.Validate())

		filter := req.Filter()
		assert.Equal(t, DefaultLimit, filter.Limit)
		assert.Zero(t, filter.Offset)
		assert.Nil(t, filter.CustomerID)
		assert.Nil(t, filter.Status)
	})

	t.Run("limit bounds", func(t *testing.T) {
		errs := violations(t, (&ListCustomersRequest{Pagination: Pagination{Limit: 101, Offset: -1}}).Validate())
		assert.Equal(t, []string{"limit", "offset"}, errs.Fields())
	})

	t.Run("filters", func(t *testing.T) {
		id := uuid.New()
		req := &ListServicesRequest{CustomerID: id.String(), Active: "false"}
		require.NoError(t, req.Validate())

		filter := req.Filter()
		require.NotNil(t, filter.CustomerID)
		assert.Equal(t, id, *filter.CustomerID)
		require.NotNil(t, filter.Active)
		assert.False(t, *filter.Active)
	})

	t.Run("bad filters", func(t *testing.T) {
		errs := violations(t, (&ListSessionsRequest{CustomerID: "abc", Status: "gone"}).Validate())
		assert.Equal(t, []string{"customer_id", "status"}, errs.Fields())
	})
}

func TestResponses_OmitStorageColumns(t *testing.T) {
	now := time.Now()
	deleted := now.Add(time.Hour)

	cases := map[string]any{
		"customer":     NewCustomerResponse(&Customer{ID: uuid.New(), DeletedAt: &deleted}),
		"service":      NewServiceResponse(&Service{ID: uuid.New(), DeletedAt: &deleted}),
		"product":      NewProductResponse(&Product{ID: uuid.New(), DeletedAt: &deleted}),
		"payment":      NewPaymentResponse(&Payment{ID: uuid.New(), DeletedAt: &deleted}),
		"verification": NewVerificationResponse(&Verification{ID: uuid.New(), DeletedAt: &deleted}),
		"session":      NewSessionResponse(&Session{ID: uuid.New(), DeletedAt: &deleted}),
	}

	for name, response := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := json.Marshal(response)
			require.NoError(t, err)

			var fields map[string]any
			require.NoError(t, json.Unmarshal(raw, &fields))
			assert.NotContains(t, fields, "deleted_at")
			assert.Contains(t, fields, name+"_id")
		})
	}
}

func TestCustomerResponse_Keys(t *testing.T) {
	raw, err := json.Marshal(NewCustomerResponse(&Customer{ID: uuid.New(), Name: "Ana"}))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{
		"customer_id", "name", "email", "phone", "address", "active", "created_at", "updated_at",
	}, keys)
}

func TestNewListResponse(t *testing.T) {
	records := []Product{{Name: "a"}, {Name: "b"}}

	res := NewListResponse(records, Page{Limit: 2, Offset: 4}, NewProductResponse)

	require.Len(t, res.Data, 2)
	assert.Equal(t, "b", res.Data[1].Name)
	assert.Equal(t, 2, res.Limit)
	assert.Equal(t, 4, res.Offset)

	empty := NewListResponse([]Product(nil), Page{Limit: 20}, NewProductResponse)
	assert.NotNil(t, empty.Data)
}

func TestSessionStatus_Closed(t *testing.T) {
	assert.False(t, SessionStatusActive.Closed())
	assert.True(t, SessionStatusEnded.Closed())
	assert.True(t, SessionStatusRevoked.Closed())
}
