package config

import (
	"fmt"
	"os"

	"zhconv/variant"
)

// ValidationError is a single field-level problem found while validating a Config.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult collects every problem found by Validate, rather than failing on the first.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

func (vr *ValidationResult) addError(field, value, message, hint string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Value: value, Message: message, Hint: hint})
}

func (vr *ValidationResult) addWarning(field, value, message, hint string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Value: value, Message: message, Hint: hint})
}

// HasErrors reports whether any field failed validation.
func (vr *ValidationResult) HasErrors() bool { return len(vr.Errors) > 0 }

// Error joins all collected errors into one message, satisfying the error interface so a
// ValidationResult can be returned directly where a single error is expected.
func (vr *ValidationResult) Error() string {
	if !vr.HasErrors() {
		return ""
	}
	msg := "invalid config:"
	for _, e := range vr.Errors {
		msg += "\n  - " + e.Error()
	}
	return msg
}

// Validate checks a Config for internal consistency, collecting every problem found rather than
// stopping at the first. It returns nil if there are no errors (warnings alone do not fail).
func Validate(cfg *Config) *ValidationResult {
	vr := &ValidationResult{}

	if cfg.DefaultVariant != "" {
		if _, err := variant.Parse(cfg.DefaultVariant); err != nil {
			vr.addError("default_variant", cfg.DefaultVariant, "not a recognized variant tag",
				"use one of zh, zh-Hant, zh-Hans, zh-TW, zh-HK, zh-MO, zh-CN, zh-SG, zh-MY")
		}
	}

	for _, path := range cfg.RuleFiles {
		if _, err := os.Stat(path); err != nil {
			vr.addError("rule_files", path, "file not found or unreadable", "")
		}
	}

	switch cfg.Color {
	case "", "auto", "always", "never":
	default:
		vr.addWarning("color", cfg.Color, "not one of auto/always/never; treated as auto", "")
		cfg.Color = "auto"
	}

	if vr.HasErrors() {
		return vr
	}
	return nil
}
