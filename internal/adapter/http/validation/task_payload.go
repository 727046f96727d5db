package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
	"taskhub/pkg/apierrors"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

const statusEnumMessage = "must be one of pending, in_progress, completed"

// DecodeTaskBody binds the JSON body into dst and returns the raw object
// so callers can distinguish absent fields from explicit nulls. Binding
// violations come back as a ValidationError listing every failed field.
func DecodeTaskBody(c *gin.Context, dst any) (map[string]json.RawMessage, error) {
	if err := c.ShouldBindBodyWith(dst, binding.JSON); err != nil {
		return nil, fieldErrorsFromBinding(err)
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		return nil, fieldErrorsFromBinding(err)
	}

	return raw, nil
}

// BuildCreateTaskInput finishes validation of a creation payload and
// normalizes it: status defaults to pending, title is stored verbatim
// (no trimming). Binding has already enforced the per-field constraints.
func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	// A null title never reaches this point: the required binding tag
	// rejects it. A null status does, since the field is omitempty.
	if isNullField(raw, "status") {
		return domain.CreateTaskInput{}, apierrors.NewValidationError("status", "must not be null")
	}

	status := domain.TaskStatusPending
	if req.Status != nil {
		// An empty status slips past the omitempty binding tag.
		status = domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.CreateTaskInput{}, apierrors.NewValidationError("status", statusEnumMessage)
		}
	}

	return domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}, nil
}

// BuildUpdateTaskInput validates a partial update. Every field is optional
// on its own, but the payload must carry at least one recognized field.
// Absent fields stay absent; a null description clears the stored value,
// while null title or status is rejected.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasUpdateFields(raw) {
		return domain.UpdateTaskInput{}, &apierrors.ValidationError{
			Details: []apierrors.FieldError{{Message: "at least one field must be provided"}},
		}
	}

	var details []apierrors.FieldError

	if isNullField(raw, "title") {
		details = append(details, apierrors.FieldError{Field: "title", Message: "must not be null"})
	} else if req.Title != nil && !titleLengthOK(*req.Title) {
		// Zero-length values bypass the omitempty binding tags.
		details = append(details, apierrors.FieldError{Field: "title", Message: "must be between 1 and 200 characters"})
	}
	if isNullField(raw, "status") {
		details = append(details, apierrors.FieldError{Field: "status", Message: "must not be null"})
	} else if req.Status != nil && !domain.TaskStatus(*req.Status).Valid() {
		details = append(details, apierrors.FieldError{Field: "status", Message: statusEnumMessage})
	}
	if len(details) > 0 {
		return domain.UpdateTaskInput{}, &apierrors.ValidationError{Details: details}
	}

	input := domain.UpdateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}

	return input, nil
}

// BuildListTasksQuery normalizes query-string parameters. Limit and offset
// are always populated on success; every invalid parameter is reported.
func BuildListTasksQuery(values url.Values) (domain.ListTasksQuery, error) {
	var details []apierrors.FieldError

	query := domain.ListTasksQuery{
		Limit:  defaultListLimit,
		Offset: 0,
	}

	if raw := values.Get("status"); raw != "" {
		status := domain.TaskStatus(raw)
		if !status.Valid() {
			details = append(details, apierrors.FieldError{Field: "status", Message: statusEnumMessage})
		} else {
			query.Status = &status
		}
	}

	if raw := values.Get("search"); raw != "" {
		search := raw
		query.Search = &search
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxListLimit {
			details = append(details, apierrors.FieldError{
				Field:   "limit",
				Message: fmt.Sprintf("must be an integer between 1 and %d", maxListLimit),
			})
		} else {
			query.Limit = limit
		}
	}

	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			details = append(details, apierrors.FieldError{Field: "offset", Message: "must be a non-negative integer"})
		} else {
			query.Offset = offset
		}
	}

	if len(details) > 0 {
		return domain.ListTasksQuery{}, &apierrors.ValidationError{Details: details}
	}

	return query, nil
}

// ParseTaskID validates a path id. Zero is rejected alongside non-integers
// since the store never assigns it.
func ParseTaskID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apierrors.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

func fieldErrorsFromBinding(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]apierrors.FieldError, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, apierrors.FieldError{
				Field:   strings.ToLower(fieldErr.Field()),
				Message: bindingMessage(fieldErr),
			})
		}
		return &apierrors.ValidationError{Details: details}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apierrors.NewValidationError(typeErr.Field, "is of the wrong type")
	}

	return apierrors.NewValidationError("body", "must be a valid JSON object")
}

func bindingMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

// titleLengthOK counts characters, not bytes. Titles are not trimmed.
func titleLengthOK(title string) bool {
	n := utf8.RuneCountInString(title)
	return n >= 1 && n <= 200
}

func hasUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isNullField(raw map[string]json.RawMessage, field string) bool {
	value, ok := raw[field]
	return ok && bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
