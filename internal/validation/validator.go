package validation

import (
	"reflect"
	"strings"

	"labquote/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("discount_tier", validateDiscountTier)
	_ = v.RegisterValidation("quote_status", validateQuoteStatus)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("catalog_field", validateCatalogField)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateDiscountTier validates that a tier label names one of the fixed tariffs
func validateDiscountTier(fl validator.FieldLevel) bool {
	return models.IsValidTier(fl.Field().String())
}

// validateQuoteStatus validates that a status is one of the three workflow states
func validateQuoteStatus(fl validator.FieldLevel) bool {
	return models.IsValidQuoteStatus(fl.Field().String())
}

// validateMoneyAmount validates that a string amount parses, is non-negative,
// and carries at most two decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	if amount.IsNegative() {
		return false
	}

	return amount.Exponent() >= -2
}

// validateCatalogField validates that a field name appears in the catalog schema
func validateCatalogField(fl validator.FieldLevel) bool {
	_, ok := models.SchemaForField(fl.Field().String())
	return ok
}
