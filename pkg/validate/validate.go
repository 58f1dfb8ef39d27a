package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct checks the validate tags of a request DTO and reports the first failing field.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	if fe.Param() != "" {
		return fmt.Errorf("%s: failed %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Errorf("%s: failed %s", field, fe.Tag())
}
