package middleware

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"whisper-vault/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateQuery binds query parameters into req and validates them. A
// missing required parameter yields "<name> is required".
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) && len(validationErrs) > 0 {
			fieldError := validationErrs[0]
			name := formName(req, fieldError.StructField())
			if fieldError.Tag() == "required" {
				return errors.NewBadRequestError(fmt.Sprintf("%s is required", name))
			}
			return errors.NewBadRequestError(fmt.Sprintf("%s is invalid", name))
		}
		return errors.NewBadRequestError("Invalid query parameters")
	}

	if validator, ok := req.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateForm binds a multipart or urlencoded form into req. The bind error
// is kept as the cause so callers can inspect it.
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		return errors.WrapError(err, errors.KindBadRequest, "Invalid form data")
	}
	if validator, ok := req.(Validator); ok {
		return validator.Validate()
	}
	return nil
}

// formName returns the form tag of field, falling back to the Go name.
func formName(req interface{}, field string) string {
	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return field
	}
	if f, ok := t.FieldByName(field); ok {
		if tag := strings.Split(f.Tag.Get("form"), ",")[0]; tag != "" {
			return tag
		}
	}
	return field
}
