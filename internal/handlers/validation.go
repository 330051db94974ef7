package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	registerCustomValidators()
}

// registerCustomValidators installs decimal-aware binding validations on gin's
// validator engine. Registration happens at package init so every route set,
// including the ones tests register directly, binds with the same rules.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("decimalgt0", decimalGreaterThanZero)
}

// decimalGreaterThanZero validates that a decimal.Decimal field is strictly
// positive.
func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive()
}
