package tests

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ardipermana59/hbus/internal/adapter/http/validation"
	"github.com/ardipermana59/hbus/pkg/apiresponse"
	"github.com/ardipermana59/hbus/pkg/translator"
)

const translationFolder = "../../../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageID, translator.LanguageEn},
	})
	validation.Init()
	os.Exit(m.Run())
}

// successEnvelope mirrors apiresponse.Body with data kept raw so each test can
// decode it into the dto it expects.
type successEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Errors  []apiresponse.FieldError `json:"errors"`
}
