// Request validation built on go-playground/validator. Field rules live as
// struct tags on the DTOs; the percentage-sum rule is registered as a
// struct-level validation so it reports one group error instead of three
// field errors.
package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"ai-assistant-admin-be/internal/dto"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries per-field messages plus an optional group-level
// message for rules that span several fields. It is raised before any store
// call and never crosses the service boundary as a plain 500.
type ValidationError struct {
	Fields map[string]string `json:"fields,omitempty"`
	Group  string            `json:"group,omitempty"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields)+1)
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	if e.Group != "" {
		parts = append(parts, e.Group)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type AssistantValidator struct {
	validate *validator.Validate
}

func NewAssistantValidator() *AssistantValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateResponseLengthSum, dto.ResponseLengthRequest{})
	return &AssistantValidator{validate: v}
}

func validateResponseLengthSum(sl validator.StructLevel) {
	r := sl.Current().Interface().(dto.ResponseLengthRequest)
	if r.Short+r.Medium+r.Long != 100 {
		sl.ReportError(r.Short, "responseLength", "ResponseLength", "sum100", "")
	}
}

// ValidateFull runs every rule, including the sum rule. Must pass before a
// create or update is dispatched.
func (v *AssistantValidator) ValidateFull(req *dto.AssistantRequest) error {
	return v.translate(v.validate.Struct(req))
}

// ValidateProfile checks only the step-1 fields (name, language, tone), used
// to gate the wizard's step1 -> step2 transition.
func (v *AssistantValidator) ValidateProfile(req *dto.AssistantRequest) error {
	return v.translate(v.validate.StructPartial(req, "Name", "Language", "Tone"))
}

// Struct validates any tagged DTO (chat requests etc.).
func (v *AssistantValidator) Struct(s interface{}) error {
	return v.translate(v.validate.Struct(s))
}

func (v *AssistantValidator) translate(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	res := &ValidationError{Fields: make(map[string]string)}
	for _, fe := range verrs {
		if fe.Tag() == "sum100" {
			res.Group = "response length percentages must sum to exactly 100"
			continue
		}
		key := fieldKey(fe)
		res.Fields[key] = messageFor(key, fe)
	}
	return res
}

func fieldKey(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		return "name"
	case "Language":
		return "language"
	case "Tone":
		return "tone"
	case "Short":
		return "responseLength.short"
	case "Medium":
		return "responseLength.medium"
	case "Long":
		return "responseLength.long"
	case "Content":
		return "content"
	}
	return strings.ToLower(fe.StructField())
}

func messageFor(key string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", key)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", key, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", key, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", key, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", key)
}
