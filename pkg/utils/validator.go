package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("user_role", validateUserRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "user", "admin":
		return true
	}
	return false
}
