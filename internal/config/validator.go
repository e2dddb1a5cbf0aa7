package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tagBudgetCoversPresses reports a step budget too small for one
// full-depth DFS branch.
const tagBudgetCoversPresses = "budget_covers_presses"

// ConfigValidator validates configuration values.
type ConfigValidator interface {
	Validate(cfg *Config) error
}

type validatorImpl struct {
	validate *validator.Validate
}

// NewValidator returns a validator that reports fields by their YAML keys,
// e.g. "solver.max_presses".
func NewValidator() ConfigValidator {
	v := validator.New()
	v.RegisterTagNameFunc(yamlKey)
	v.RegisterStructValidation(validateSolver, SolverConfig{})

	return &validatorImpl{validate: v}
}

// Validate checks cfg and joins every violation into one error.
func (v *validatorImpl) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	err := v.validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation error: %w", err)
	}

	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = describe(fe)
	}

	return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// validateSolver holds the rules spanning several solver fields.
func validateSolver(sl validator.StructLevel) {
	s := sl.Current().Interface().(SolverConfig)
	if s.StepBudget > 0 && s.StepBudget < s.MaxPresses {
		sl.ReportError(s.StepBudget, "step_budget", "StepBudget", tagBudgetCoversPresses, "max_presses")
	}
}

// yamlKey names a field after its yaml tag so namespaces read as config keys.
func yamlKey(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// describe renders one violation; the leading "Config." of the namespace
// is dropped.
func describe(fe validator.FieldError) string {
	_, key, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		key = fe.Namespace()
	}

	switch fe.Tag() {
	case "required_if":
		return fmt.Sprintf("%s is required when tracing is enabled", key)
	case "min":
		return fmt.Sprintf("%s must be at least %s (got: %v)", key, fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s (got: %v)", key, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got: %v)", key, fe.Param(), fe.Value())
	case tagBudgetCoversPresses:
		return fmt.Sprintf("%s must be 0 or at least solver.%s (got: %v)", key, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q (got: %v)", key, fe.Tag(), fe.Value())
	}
}
