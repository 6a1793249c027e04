// Package apiresponse builds the JSON envelopes every endpoint returns:
// {success: true, message, data, meta?} on success and
// {success: false, message, errors?} on failure, with messages localized
// through the translator bundle.
package apiresponse

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/ardipermana59/hbus/pkg/translator"
)

type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Meta    any    `json:"meta,omitempty"`
}

type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// FieldError is one per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Success(msgKey, lang string, data any) Body {
	return Body{Success: true, Message: Translate(msgKey, lang), Data: data}
}

func SuccessMeta(msgKey, lang string, data, meta any) Body {
	return Body{Success: true, Message: Translate(msgKey, lang), Data: data, Meta: meta}
}

func Error(msgKey, lang string) ErrorBody {
	return ErrorBody{Success: false, Message: Translate(msgKey, lang)}
}

func ErrorWithDetails(msgKey, lang string, errs any) ErrorBody {
	return ErrorBody{Success: false, Message: Translate(msgKey, lang), Errors: errs}
}

// Translate retrieves the localized message, falling back to the key itself.
func Translate(msgKey, lang string) string {
	return TranslateData(msgKey, lang, nil)
}

// TranslateData is Translate with template data for parameterized messages.
func TranslateData(msgKey, lang string, data map[string]any) string {
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageID)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey, TemplateData: data})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
