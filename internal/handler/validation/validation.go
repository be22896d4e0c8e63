// Package validation registers the binding tags request DTOs rely on.
package validation

import (
	"sync"

	"lease-engine/internal/domain/resource"
	"lease-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	once        sync.Once
	registerErr error
)

var resourceTypes = map[string]struct{}{
	resource.TypeIronicNode: {},
	resource.TypeDummyNode:  {},
}

// Register installs the custom tags on gin's validator. Safe to call more
// than once.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if registerErr = v.RegisterValidation("resource_type", validResourceType); registerErr != nil {
			return
		}
		registerErr = v.RegisterValidation("time_filter", validTimeFilter)
	})
	return registerErr
}

func validResourceType(fl validator.FieldLevel) bool {
	_, ok := resourceTypes[fl.Field().String()]
	return ok
}

func validTimeFilter(fl validator.FieldLevel) bool {
	return shared.TimeMode(fl.Field().String()).IsValid()
}
