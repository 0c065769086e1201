package errs

import "strings"

// FieldError is a single field-level violation.
//
//	{ "field": "email", "reason": "invalid_format", "error": "must be a valid email address" }
//
// Reason is the stable machine-readable rule name; Error is the human text.
// Limit and Allowed are filled only for rules that carry them.
type FieldError struct {
	Field   string   `json:"field"`
	Reason  string   `json:"reason,omitempty"`
	Error   string   `json:"error"`
	Limit   *int     `json:"limit,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
}

// ActionType is a string-based enum describing what the client should do next.
type ActionType string

const (
	// ActionTypeRedirect tells the client to navigate to Action.Value.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional hint for the client about the next step.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the JSON error body used by every API route.
//
//   - Code: machine-readable code, e.g. "BAD_REQUEST" or "CUSTOMER_NOT_FOUND".
//   - Message: human-readable description.
//   - Status: HTTP status code.
//   - Override: whether the client may show Message verbatim.
//   - Errors: collected field errors (validation).
//   - Action: optional client instruction.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`

	Action *Action `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError, regardless of its contents.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// Message is the minimal `{ "message": "..." }` body. The route guard answers
// with it so clients see a fixed payload for malformed identifiers.
type Message struct {
	Message string `json:"message"`
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
