// Package validation holds the per-entity payload rules that run before any
// create or update reaches the database, on both the server and the client
// SDK. Rules operate on the decoded JSON object so type mismatches (a string
// where a number belongs, a fractional amount) are reported per field
// instead of failing the whole bind.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Errors maps field name to message. Empty means the payload is submittable.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation: ok"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation: " + strings.Join(parts, "; ")
}

// Rule checks a single field value. present is false when the field is
// absent from the payload entirely.
type Rule func(value interface{}, present bool) string

// Schema is a declarative field-to-rule map. Fields not named in the schema
// pass through untouched; the contract is additive.
type Schema map[string]Rule

// Apply runs every rule against the decoded payload and collects failures
// keyed by field.
func (s Schema) Apply(payload map[string]interface{}) Errors {
	errs := Errors{}
	for field, rule := range s {
		value, present := payload[field]
		if msg := rule(value, present); msg != "" {
			errs[field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ApplyTo marshals a typed payload through JSON and validates the resulting
// object. Used by the client SDK, which holds structs rather than raw maps.
func (s Schema) ApplyTo(payload interface{}) Errors {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Errors{"_payload": err.Error()}
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Errors{"_payload": "payload must be a JSON object"}
	}
	return s.Apply(decoded)
}

// ID requires a non-empty string identifier. Null and missing both fail.
func ID() Rule {
	return func(value interface{}, present bool) string {
		if !present || value == nil {
			return "is required"
		}
		s, ok := value.(string)
		if !ok {
			return "must be a string"
		}
		if s == "" {
			return "is required"
		}
		return ""
	}
}

// Date accepts an absent or null field; a present value must parse as
// RFC3339 or as a plain 2006-01-02 date.
func Date() Rule {
	return func(value interface{}, present bool) string {
		if !present || value == nil {
			return ""
		}
		s, ok := value.(string)
		if !ok {
			return "must be a date string"
		}
		if _, err := time.Parse(time.RFC3339, s); err == nil {
			return ""
		}
		if _, err := time.Parse("2006-01-02", s); err == nil {
			return ""
		}
		return fmt.Sprintf("%q is not a valid date", s)
	}
}

// Integer accepts an absent or null field; a present value must be a JSON
// number with no fractional part.
func Integer() Rule {
	return func(value interface{}, present bool) string {
		if !present || value == nil {
			return ""
		}
		f, ok := value.(float64)
		if !ok {
			return "must be a number"
		}
		if f != math.Trunc(f) {
			return "must be an integer"
		}
		return ""
	}
}

// Boolean accepts an absent or null field; a present value must be a JSON
// boolean.
func Boolean() Rule {
	return func(value interface{}, present bool) string {
		if !present || value == nil {
			return ""
		}
		if _, ok := value.(bool); !ok {
			return "must be a boolean"
		}
		return ""
	}
}

// String accepts an absent or null field; a present value must be a string.
func String() Rule {
	return func(value interface{}, present bool) string {
		if !present || value == nil {
			return ""
		}
		if _, ok := value.(string); !ok {
			return "must be a string"
		}
		return ""
	}
}
