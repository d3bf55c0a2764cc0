package utils

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/kitlog-inc/kitlog/internal/shared/errors"
)

// init registers the JSON tag name function on gin's binding engine so
// binding failures report json field names instead of Go struct names.
func init() {
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		engine.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// FieldMessages converts validator errors into a field name to message map.
// Only the first failure per field is kept. A confirmation mismatch is keyed
// on the field being confirmed, not on the confirmation input.
func FieldMessages(validationErrors validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		if fieldError.Tag() == "eqfield" {
			field = snakeCase(fieldError.Param())
		}
		if _, exists := fields[field]; exists {
			continue
		}
		fields[field] = getFieldErrorMessage(fieldError)
	}
	return fields
}

// snakeCase converts a Go field name like "PurchaseDate" into its json
// form "purchase_date".
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// humanizeField turns a snake_case field name into a readable label,
// e.g. "purchase_date" becomes "purchase date".
func humanizeField(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := humanizeField(fe.Field())
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
		return fmt.Sprintf("The %s must be at least %s.", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", field, param)
		}
		return fmt.Sprintf("The %s may not be greater than %s.", field, param)
	case "datetime":
		return fmt.Sprintf("The %s is not a valid date.", field)
	case "boolean":
		return fmt.Sprintf("The %s field must be true or false.", field)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", humanizeField(snakeCase(param)))
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}

// NewBindingError converts a gin binding failure into the API's validation
// error shape. Validator failures keep their per-field messages; malformed
// JSON collapses into a generic message.
func NewBindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		return errors.NewFieldValidationError(FieldMessages(validationErrors))
	}
	return errors.NewValidationError("Invalid request body")
}
