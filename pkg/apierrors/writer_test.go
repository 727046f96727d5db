package apierrors_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"taskhub/internal/core/domain"
	"taskhub/pkg/apierrors"
	"taskhub/pkg/translator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// Minimal translator bundle for tests.
	translator.Translator = i18n.NewBundle(language.English)
	messages := map[string]string{
		apierrors.MsgValidationError:     "Validation error",
		apierrors.MsgResourceNotFound:    "Resource not found",
		apierrors.MsgResourceConflict:    "Resource already exists",
		apierrors.MsgInternalServerError: "Internal server error",
	}
	for id, other := range messages {
		if err := translator.Translator.AddMessages(language.English, &i18n.Message{ID: id, Other: other}); err != nil {
			return
		}
	}
	m.Run()
}

type errorBody struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Details []apierrors.FieldError `json:"details"`
	Message string                 `json:"message"`
}

func respond(t *testing.T, writer *apierrors.Writer, err error) (int, errorBody) {
	t.Helper()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks", nil)

	writer.Respond(c, translator.LanguageEn, err)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestWriter_Respond_Validation(t *testing.T) {
	err := &apierrors.ValidationError{Details: []apierrors.FieldError{
		{Field: "title", Message: "is required"},
		{Field: "limit", Message: "must be an integer between 1 and 100"},
	}}

	code, body := respond(t, apierrors.NewWriter(false), err)
	require.Equal(t, http.StatusBadRequest, code)
	require.False(t, body.Success)
	require.Equal(t, "Validation error", body.Error)
	require.Len(t, body.Details, 2)
	require.Equal(t, "title", body.Details[0].Field)
	require.Equal(t, "limit", body.Details[1].Field)
	require.Empty(t, body.Message)
}

func TestWriter_Respond_NotFound(t *testing.T) {
	code, body := respond(t, apierrors.NewWriter(false), domain.ErrTaskNotFound)
	require.Equal(t, http.StatusNotFound, code)
	require.False(t, body.Success)
	require.Equal(t, "Resource not found", body.Error)
	require.Empty(t, body.Details)
}

func TestWriter_Respond_Conflict(t *testing.T) {
	code, body := respond(t, apierrors.NewWriter(false), domain.ErrDuplicateTask)
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "Resource already exists", body.Error)
}

func TestWriter_Respond_UnexpectedHidesDetailByDefault(t *testing.T) {
	code, body := respond(t, apierrors.NewWriter(false), errors.New("db is down"))
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "Internal server error", body.Error)
	require.Empty(t, body.Message)
}

func TestWriter_Respond_UnexpectedExposesDetailInDebug(t *testing.T) {
	code, body := respond(t, apierrors.NewWriter(true), errors.New("db is down"))
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "Internal server error", body.Error)
	require.Equal(t, "db is down", body.Message)
}

func TestClassify(t *testing.T) {
	require.Equal(t, apierrors.KindValidation, apierrors.Classify(apierrors.NewValidationError("title", "is required")))
	require.Equal(t, apierrors.KindNotFound, apierrors.Classify(domain.ErrTaskNotFound))
	require.Equal(t, apierrors.KindConflict, apierrors.Classify(domain.ErrDuplicateTask))
	require.Equal(t, apierrors.KindUnexpected, apierrors.Classify(errors.New("anything else")))

	// Wrapped errors keep their kind.
	wrapped := fmt.Errorf("list tasks: %w", domain.ErrTaskNotFound)
	require.Equal(t, apierrors.KindNotFound, apierrors.Classify(wrapped))
}

func TestValidationError_ErrorString(t *testing.T) {
	err := &apierrors.ValidationError{Details: []apierrors.FieldError{
		{Field: "title", Message: "is required"},
		{Message: "at least one field must be provided"},
	}}
	require.Equal(t, "validation failed: title: is required; at least one field must be provided", err.Error())
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	require.Equal(t, "unknownKey", apierrors.GetTransErrorMsg("unknownKey", translator.LanguageEn))
}
