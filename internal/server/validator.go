package server

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var difficulties = map[string]bool{"easy": true, "medium": true, "hard": true}

var carbonCategories = map[string]bool{"Low": true, "Medium": true, "High": true}

// registerValidators installs the custom binding rules used by request
// structs. Safe to call more than once.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return difficulties[fl.Field().String()]
	}); err != nil {
		return err
	}
	return v.RegisterValidation("carboncategory", func(fl validator.FieldLevel) bool {
		return carbonCategories[fl.Field().String()]
	})
}
