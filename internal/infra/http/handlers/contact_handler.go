package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hestialabs/leadgate/internal/usecase"
)

type ContactHandler struct {
	IntakeUC    *usecase.ContactIntakeUseCase
	rateLimiter *RateLimiter
}

func NewContactHandler(uc *usecase.ContactIntakeUseCase) *ContactHandler {
	return &ContactHandler{
		IntakeUC:    uc,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		h.rateLimiter.reject(w)
		return
	}

	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
		return
	}

	output, err := h.IntakeUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
