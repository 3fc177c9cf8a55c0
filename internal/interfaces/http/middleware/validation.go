package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
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

	_ = v.RegisterValidation("nit", validateNIT)
}

// validateNIT accepts Colombian tax IDs: 6 to 12 digits, optionally
// followed by a dash and a single check digit (e.g. 900123456-7).
func validateNIT(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	base := value
	if i := strings.IndexByte(value, '-'); i >= 0 {
		base = value[:i]
		check := value[i+1:]
		if len(check) != 1 || check[0] < '0' || check[0] > '9' {
			return false
		}
	}

	if len(base) < 6 || len(base) > 12 {
		return false
	}
	for i := 0; i < len(base); i++ {
		if base[i] < '0' || base[i] > '9' {
			return false
		}
	}
	return true
}
