package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

var tagMessages = map[string]string{
	"color_system": "unknown color system (want auto, none, standard, 256, truecolor or windows)",
	"direction":    "unknown direction (want auto, ltr or rtl)",
	"style_def":    "not a valid style definition",
	"style_name":   "style names are lower case letters, digits, '.', '_' or '-'",
	"theme_base":   "unknown built-in theme",
	"oneof":        "must be one of: %s",
	"gte":          "must be at least %s",
	"lte":          "must be at most %s",
}

// convertValidationError normalizes validator errors into prism validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return prismerrors.NewValidationError(yamlishFieldName(fe), fmt.Sprint(fe.Value()), tagMessage(fe), err)
	}

	return prismerrors.NewValidationError("config", "", err.Error(), err)
}

func tagMessage(fe validator.FieldError) string {
	msg, ok := tagMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
	if strings.Contains(msg, "%s") {
		return fmt.Sprintf(msg, fe.Param())
	}
	return msg
}

// yamlishFieldName drops the root struct name, leaving e.g. "console.width".
func yamlishFieldName(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Namespace()
	}
	return rest
}
