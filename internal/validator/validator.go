// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("mover_kind", validateMoverKind)
		_ = v.RegisterValidation("top_sort", validateTopSort)
	}
}

// validateMoverKind restricts the movers path parameter to the known
// rankings. The category query parameter is deliberately not validated
// this way; unknown categories serve an empty list instead of a 400.
func validateMoverKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "gainers", "losers", "volume":
		return true
	}
	return false
}

func validateTopSort(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "market_cap", "volume":
		return true
	}
	return false
}
