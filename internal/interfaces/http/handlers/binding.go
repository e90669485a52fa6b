package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"oysterkode.backend/internal/domain/entities"
)

// Binding errors report JSON field names, e.g. "username is required".
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(entities.JSONFieldName)
	}
}
