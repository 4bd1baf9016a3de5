package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/hestialabs/leadgate/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUseCaseError maps the error taxonomy onto HTTP statuses. Validation
// errors carry a field->message map; technical errors never leak details.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case usecase.CodeValidation:
			fields := make(map[string]string, len(domainErr.Fields))
			for _, fe := range domainErr.Fields {
				fields[fe.Field] = fe.Message
			}
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   domainErr.Code,
				"message": "please fix the highlighted fields",
				"errors":  fields,
			})
		case usecase.CodeDuplicateEmail, usecase.CodeSeatsExhausted:
			writeErrorResponse(w, http.StatusConflict, domainErr.Code, domainErr.Message)
		case usecase.CodeNotFound:
			writeErrorResponse(w, http.StatusNotFound, domainErr.Code, domainErr.Message)
		default:
			writeErrorResponse(w, http.StatusBadRequest, domainErr.Code, domainErr.Message)
		}
		return
	}

	log.Printf("[HTTP] internal error: %v", err)
	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "something went wrong, please try again")
}
