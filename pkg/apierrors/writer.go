package apierrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/pkg/translator"
)

// Kind is the closed failure taxonomy. Every error leaving a handler maps
// to exactly one kind.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnexpected
)

// Classify maps an error to its kind, in dispatch priority order.
func Classify(err error) Kind {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.Is(err, domain.ErrTaskNotFound):
		return KindNotFound
	case errors.Is(err, domain.ErrDuplicateTask):
		return KindConflict
	default:
		return KindUnexpected
	}
}

type errorResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Writer renders every failure as the one uniform envelope. The debug flag
// controls whether the 500 response carries the underlying error message.
type Writer struct {
	debug bool
}

func NewWriter(debug bool) *Writer {
	return &Writer{debug: debug}
}

// Respond translates err into an HTTP response on c. Handlers must route
// all failures here instead of building ad hoc bodies.
func (w *Writer) Respond(c *gin.Context, lang string, err error) {
	switch Classify(err) {
	case KindValidation:
		var validationErr *ValidationError
		errors.As(err, &validationErr)
		c.JSON(http.StatusBadRequest, errorResponse{
			Success: false,
			Error:   GetTransErrorMsg(MsgValidationError, lang),
			Details: validationErr.Details,
		})
	case KindNotFound:
		c.JSON(http.StatusNotFound, errorResponse{
			Success: false,
			Error:   GetTransErrorMsg(MsgResourceNotFound, lang),
		})
	case KindConflict:
		c.JSON(http.StatusConflict, errorResponse{
			Success: false,
			Error:   GetTransErrorMsg(MsgResourceConflict, lang),
		})
	default:
		zap.L().Error("unexpected error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		body := errorResponse{
			Success: false,
			Error:   GetTransErrorMsg(MsgInternalServerError, lang),
		}
		if w.debug {
			body.Message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

// GetTransErrorMsg retrieves the translated message for a key, falling
// back to the key itself when no translation exists.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
