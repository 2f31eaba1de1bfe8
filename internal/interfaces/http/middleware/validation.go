package middleware

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/stylesphere/storefront/internal/domain/checkout"
	"github.com/stylesphere/storefront/internal/interfaces/http/dto"
)

// SetupValidator configures the binding validator with custom tags
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	// Garment sizes: XS, S, M, L, XL, XXL
	_ = v.RegisterValidation("size", func(fl validator.FieldLevel) bool {
		return checkout.Size(fl.Field().String()).IsValid()
	})
}

// FormatValidationErrors formats binding errors into a standard response
func FormatValidationErrors(err error, requestID string) dto.Response {
	fields := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			fields[e.Field()] = getValidationMessage(e)
		}
	}

	return dto.NewValidationErrorResponse(
		"Request validation failed",
		requestID,
		fields,
	)
}

// HandleValidationError returns a validation error response
func HandleValidationError(c *gin.Context, err error) {
	requestID := c.GetString("request_id")
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, requestID))
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "size":
		return "Must be a valid size (XS, S, M, L, XL, XXL)"
	default:
		return "Invalid value"
	}
}
