package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/genform/internal/validation"
	apperrors "github.com/alexisbeaulieu97/genform/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validation.New()
	})
	return validateInst
}

// ValidateConfig checks field constraints, the merged catalog, and that the
// configured defaults name options that exist.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is empty", nil)
	}

	if err := validation.Convert(validatorInstance().Struct(cfg), "config"); err != nil {
		return err
	}

	merged := cfg.Catalog()
	if err := merged.Validate(); err != nil {
		return prefixField(err, "catalog")
	}

	if _, ok := merged.AspectRatio(cfg.Defaults.AspectRatio); !ok {
		return apperrors.NewValidationError(
			"defaults.aspect_ratio",
			fmt.Sprintf("unknown aspect ratio %q", cfg.Defaults.AspectRatio),
			nil,
		)
	}
	if _, ok := merged.Resolution(cfg.Defaults.Resolution); !ok {
		return apperrors.NewValidationError(
			"defaults.resolution",
			fmt.Sprintf("unknown resolution %q", cfg.Defaults.Resolution),
			nil,
		)
	}
	return nil
}

func prefixField(err error, prefix string) error {
	if ve, ok := err.(*apperrors.ValidationError); ok {
		return apperrors.NewValidationError(prefix+"."+ve.Field, ve.Message, ve.Err)
	}
	return err
}
