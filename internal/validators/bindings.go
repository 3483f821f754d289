package validators

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var registerOnce sync.Once

// RegisterBindings installs the custom rules on gin's validator. It is
// safe to call more than once.
func RegisterBindings() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		err = Register(v)
	})
	return err
}

// Register installs the notblank rule and reports fields by their json name.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	return errors.Wrap(v.RegisterValidation("notblank", notBlank), "registering notblank")
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// notBlank fails strings that are empty after trimming. Nil pointers pass,
// pair with required for mandatory fields.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == 0 {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// Describe turns binding errors into a short human message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Malformed request body"
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "datetime":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
