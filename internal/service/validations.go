package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

// InitValidator registers the custom rules used by the request structs.
// Call it once on startup before any service validates input.
func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", validateAlphanumUnderscore)
	})
}

// Usernames: letters, digits and underscore, not starting with a digit
// or underscore.
func validateAlphanumUnderscore(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for i, char := range value {
		if i == 0 && (unicode.IsDigit(char) || char == '_') {
			return false
		}
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}
	return true
}
