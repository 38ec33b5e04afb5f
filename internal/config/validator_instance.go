package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/prism/internal/bidi"
	"github.com/alexisbeaulieu97/prism/internal/colorsystem"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color_system", func(fl validator.FieldLevel) bool {
			_, err := colorsystem.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
			_, err := bidi.ParseDirection(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("style_def", func(fl validator.FieldLevel) bool {
			_, ok := style.ParseStyle(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("style_name", func(fl validator.FieldLevel) bool {
			return theme.ValidName(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_base", func(fl validator.FieldLevel) bool {
			_, err := theme.Builtin(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
