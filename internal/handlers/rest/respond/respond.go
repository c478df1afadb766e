package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"marketplace/internal/generated/dto"
	"marketplace/pkg/logger"
)

const (
	KindValidation        = "validation_error"
	KindInvalidTransition = "invalid_transition"
	KindPermissionDenied  = "permission_denied"
	KindUnauthorized      = "unauthorized"
	KindNotFound          = "not_found"
	KindConflict          = "conflict"
	KindUnavailable       = "store_unavailable"
	KindInternal          = "internal_error"
)

// fieldsError ошибки со списком невалидных полей запроса.
type fieldsError interface {
	InvalidFields() []string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func JSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error пишет тело ошибки {"error","message","fields"}. Для 5xx текст
// ошибки не отдаётся клиенту, только пишется в лог.
func Error(w http.ResponseWriter, log handlerLogger, status int, kind string, err error) {
	body := dto.Error{
		Error:   kind,
		Message: http.StatusText(status),
	}

	var fe fieldsError
	switch {
	case status >= http.StatusInternalServerError:
		log.With(
			logger.NewField("error", err),
			logger.NewField("status", status),
		).Error("request failed")
	case errors.As(err, &fe):
		body.Message = err.Error()
		body.Fields = fe.InvalidFields()
	case err != nil:
		body.Message = err.Error()
	}

	JSON(w, log, status, body)
}

// DecodeJSON читает тело запроса и проверяет теги validate.
// Возвращает ошибку со списком полей, подходящую для Error.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &RequestError{Message: "Malformed JSON body", Fields: []string{"body"}}
	}

	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &RequestError{Message: err.Error()}
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields = append(fields, fieldError.Field())
	}
	return &RequestError{
		Message: "Validation error: Required fields missing or invalid: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

// RequestError ошибка разбора запроса до вызова сервиса.
type RequestError struct {
	Message string
	Fields  []string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) InvalidFields() []string {
	return e.Fields
}
