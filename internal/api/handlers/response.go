package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Коды ошибок в теле ответа
const (
	CodeBadRequest     = "bad_request"
	CodeInvalidFormat  = "invalid_format"
	CodeMissingField   = "missing_field"
	CodeNameRequired   = "name_required"
	CodeTimeConflict   = "time_conflict"
	CodeTenantNotFound = "tenant_not_found"
	CodeNotFound       = "not_found"
	CodeConflict       = "conflict"
	CodeServiceInUse   = "service_in_use"
	CodeInternal       = "internal_error"
)

const maxBodyBytes = 1 << 20

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса, неизвестные поля игнорируются
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError пишет ошибку в формате {"error": code, "message": message}
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: code, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeBadRequest, message)
}

func RespondInvalidFormat(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeInvalidFormat, message)
}

func RespondMissingField(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeMissingField, message)
}

func RespondNotFound(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusNotFound, code, message)
}

func RespondConflict(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusConflict, code, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, "внутренняя ошибка сервера")
}
