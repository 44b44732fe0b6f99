package helper

import (
	"errors"
	"strings"

	"socialboard/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// EnvelopeCarrier is satisfied by models.Envelope and every typed response
// embedding it.
type EnvelopeCarrier interface {
	StatusCode() int
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{Validate: validate, Translator: translator}
}

// Send writes the response body, mirroring the envelope code onto the HTTP
// status line.
func (u *HTTPHelper) Send(c *gin.Context, body EnvelopeCarrier) {
	c.JSON(body.StatusCode(), body)
}

// CheckStruct validates a bound request against its validate tags and folds
// the translated messages into a single ValidationError.
func (u *HTTPHelper) CheckStruct(req interface{}) *models.DomainError {
	err := u.Validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(u.Translator))
		}
		return models.Validation(strings.Join(messages, "; "))
	}

	return models.Validation(err.Error())
}
