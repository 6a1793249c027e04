package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ardipermana59/hbus/pkg/apiresponse"
)

var initOnce sync.Once

// Init makes gin's validator report fields by their json tag names so that
// validation errors line up with the payload the client actually sent.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

var tagMessageKeys = map[string]string{
	"required": "validationRequired",
	"min":      "validationMin",
	"max":      "validationMax",
	"email":    "validationEmail",
	"oneof":    "validationOneOf",
	"datetime": "validationDate",
	"gt":       "validationPositive",
	"gte":      "validationPositive",
	"lte":      "validationRange",
}

// FieldErrors converts a binding error into per-field messages. A malformed
// body that never reached the validator yields a single generic entry.
func FieldErrors(err error, lang string) []apiresponse.FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []apiresponse.FieldError{{
			Field:   "body",
			Message: apiresponse.Translate(apiresponse.MsgValidationError, lang),
		}}
	}

	fieldErrs := make([]apiresponse.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgKey, ok := tagMessageKeys[fe.Tag()]
		if !ok {
			msgKey = "validationInvalid"
		}
		fieldErrs = append(fieldErrs, apiresponse.FieldError{
			Field: fe.Field(),
			Message: apiresponse.TranslateData(msgKey, lang, map[string]any{
				"Field": fe.Field(),
				"Param": fe.Param(),
			}),
		})
	}
	return fieldErrs
}
