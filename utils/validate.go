package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator/v10 tags on a request struct and flattens the
// first failure into a single user-facing message.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			fe := errs[0]
			return ValidationError(fmt.Sprintf("field %s failed on %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return ValidationError(err.Error())
	}
	return nil
}
