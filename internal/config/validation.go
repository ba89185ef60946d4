package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("driveletters", validateDriveLetters)
	_ = validate.RegisterValidation("loglevel", validateLogLevel)
}

// Validate validates the configuration using struct tags and custom rules.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return validateCustomRules(cfg)
}

// validateCustomRules performs validation that cannot be expressed in tags.
func validateCustomRules(cfg *Config) error {
	seen := make(map[rune]bool, len(cfg.TempDrives))
	for _, r := range cfg.TempDrives {
		if seen[r] {
			return fmt.Errorf("temp_drives: duplicate drive letter %q", r)
		}
		seen[r] = true
	}
	return nil
}

// validateDriveLetters accepts a non-empty string made only of A-Z letters.
func validateDriveLetters(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "" && onlyLetters(s)
}

// validateLogLevel accepts any level name zerolog can parse, including "disabled".
func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}

func onlyLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		e := validationErrs[0]
		return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
			e.Namespace(), e.Tag(), e.Value())
	}
	return err
}
