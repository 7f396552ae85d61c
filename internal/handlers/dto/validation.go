package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
)

// RegisterCustomValidations registra as validações de enums no binding do Gin.
// Chamar uma vez na inicialização (e no setup dos testes de handler).
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return entities.ValidGender(entities.Gender(fl.Field().String()))
	})

	_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		return entities.ValidStatus(entities.Status(fl.Field().String()))
	})
}
