package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with custom validation rules
func NewValidator() *Validator {
	v := validator.New()

	// Cross-field rule: an action must belong to the component it targets
	v.RegisterStructValidation(validateScriptStep, ScriptStepConfig{})

	return &Validator{
		validate: v,
	}
}

// validateScriptStep rejects steps pairing a component with an action it
// does not expose (component 1 has A/B, component 2 has C/D). Each field
// passes its own oneof on its own, so the pairing needs a struct-level rule.
func validateScriptStep(sl validator.StructLevel) {
	step := sl.Current().Interface().(ScriptStepConfig)

	switch step.Component {
	case 1:
		if step.Action != "A" && step.Action != "B" {
			sl.ReportError(step.Action, "Action", "Action", "action_for_component", "")
		}
	case 2:
		if step.Action != "C" && step.Action != "D" {
			sl.ReportError(step.Action, "Action", "Action", "action_for_component", "")
		}
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Field(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	return v.Validate(cfg)
}
