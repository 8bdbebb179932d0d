package catalog

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/genform/internal/validation"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validation.New()
	})
	return validateInst
}

// Validate checks that both lists are non-empty, identifiers are unique and
// resolution dimensions are positive.
func (c Catalog) Validate() error {
	return validation.Convert(validatorInstance().Struct(c), "catalog")
}
