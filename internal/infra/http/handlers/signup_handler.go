package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hestialabs/leadgate/internal/infra/http/middleware"
	"github.com/hestialabs/leadgate/internal/usecase"
)

type SignupHandler struct {
	IntakeUC    *usecase.SignupIntakeUseCase
	rateLimiter *RateLimiter
}

func NewSignupHandler(uc *usecase.SignupIntakeUseCase) *SignupHandler {
	return &SignupHandler{
		IntakeUC:    uc,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

func (h *SignupHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		h.rateLimiter.reject(w)
		return
	}

	var input usecase.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
		return
	}

	output, err := h.IntakeUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordSignup(output.Metro)
	writeJSON(w, http.StatusCreated, output)
}
