package validator

import (
	"classifieds_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the closed reference sets into the validator so
// bad enum values are rejected at the binding boundary.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("location", validateLocation); err != nil {
		return err
	}
	if err := v.RegisterValidation("ad_category", validateCategory); err != nil {
		return err
	}
	return nil
}

func validateLocation(fl validator.FieldLevel) bool {
	return models.Location(fl.Field().String()).Valid()
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}
