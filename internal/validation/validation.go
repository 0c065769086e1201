// Package validation holds the request validation pipeline.
//
// Field rules are plain closures collected in an ordered Schema per entity.
// A Schema is evaluated against the decoded request values and returns every
// violation at once, so clients can fix a payload in a single round trip.
package validation

import (
	"fmt"
	"strings"
)

// Reason is the machine-readable name of a failed rule.
type Reason string

const (
	ReasonRequired       Reason = "required"
	ReasonMaxLength      Reason = "max_length"
	ReasonInvalidFormat  Reason = "invalid_format"
	ReasonInvalidEnum    Reason = "invalid_enum"
	ReasonInvalidBoolean Reason = "invalid_boolean"
	ReasonMinValue       Reason = "min_value"
	ReasonMaxValue       Reason = "max_value"
	ReasonNotPositive    Reason = "not_positive"
)

// ValidationError is one violated rule on one field.
type ValidationError struct {
	Field   string
	Reason  Reason
	Limit   *int
	Allowed []string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message()
}

// Message renders the violation for humans.
func (e ValidationError) Message() string {
	switch e.Reason {
	case ReasonRequired:
		return "is required"
	case ReasonMaxLength:
		return fmt.Sprintf("must not exceed %d characters", limitOf(e.Limit))
	case ReasonInvalidFormat:
		return "has an invalid format"
	case ReasonInvalidEnum:
		return "must be one of: " + strings.Join(e.Allowed, ", ")
	case ReasonInvalidBoolean:
		return "must be a boolean"
	case ReasonMinValue:
		return fmt.Sprintf("must be at least %d", limitOf(e.Limit))
	case ReasonMaxValue:
		return fmt.Sprintf("must not exceed %d", limitOf(e.Limit))
	case ReasonNotPositive:
		return "must be greater than zero"
	default:
		return string(e.Reason)
	}
}

func limitOf(limit *int) int {
	if limit == nil {
		return 0
	}
	return *limit
}

// Errors is the ordered list of violations produced by a Schema.
type Errors []ValidationError

func (e Errors) Error() string {
	return "Validation failed"
}

// Fields returns the distinct field names, in order of first appearance.
func (e Errors) Fields() []string {
	seen := make(map[string]bool, len(e))
	fields := make([]string, 0, len(e))
	for _, v := range e {
		if !seen[v.Field] {
			seen[v.Field] = true
			fields = append(fields, v.Field)
		}
	}
	return fields
}

// Mode selects how absent fields are treated.
type Mode int

const (
	// Full evaluates every rule of every field; used by create payloads.
	Full Mode = iota
	// Partial skips fields that are absent; used by update payloads.
	Partial
)

// Values maps a field name to its decoded value. A nil value means the field
// was absent from the request or explicitly null.
type Values map[string]any

// FieldRules is the ordered rule list for one field.
type FieldRules struct {
	Name  string
	Rules []Rule
}

// Field builds a FieldRules entry.
func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{Name: name, Rules: rules}
}

// Schema is the declarative rule table of a payload, evaluated in order.
type Schema []FieldRules

// Validate evaluates the schema and returns Errors, or nil when every rule
// holds. Evaluation never stops at the first violation.
func (s Schema) Validate(values Values, mode Mode) error {
	var violations Errors

	for _, field := range s {
		value := values[field.Name]
		if mode == Partial && value == nil {
			continue
		}

		for _, rule := range field.Rules {
			if v := rule(field.Name, value); v != nil {
				violations = append(violations, *v)
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return violations
}

// Merge concatenates schemas, e.g. a shared entity table plus request-specific fields.
func Merge(schemas ...Schema) Schema {
	var merged Schema
	for _, s := range schemas {
		merged = append(merged, s...)
	}
	return merged
}

// Str boxes an optional string so that a nil pointer stays a nil Value.
func Str(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// Int boxes an optional int so that a nil pointer stays a nil Value.
func Int(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
