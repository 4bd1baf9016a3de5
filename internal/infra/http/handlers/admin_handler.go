package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hestialabs/leadgate/internal/entity"
	"github.com/hestialabs/leadgate/internal/usecase"
)

// AdminHandler serves the dashboard: applicant review and seat-capacity
// writes. Auth happens in middleware, before any of these run.
type AdminHandler struct {
	Signups entity.SignupRepositoryInterface
	Seats   entity.SeatRepositoryInterface
}

func NewAdminHandler(signups entity.SignupRepositoryInterface, seats entity.SeatRepositoryInterface) *AdminHandler {
	return &AdminHandler{Signups: signups, Seats: seats}
}

func (h *AdminHandler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	status := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))
	if status != "" && status != entity.SignupStatusPending && !entity.ValidSignupStatus(status) {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_FILTER", "status must be pending, approved or rejected")
		return
	}

	signups, err := h.Signups.List(r.Context(), status)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if signups == nil {
		signups = []*entity.Signup{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"applicants": signups})
}

type patchApplicantRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *AdminHandler) PatchApplicant(w http.ResponseWriter, r *http.Request) {
	var req patchApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
		return
	}

	if req.ID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FIELDS", "id is required")
		return
	}
	if !entity.ValidSignupStatus(req.Status) {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeInvalidStatus, "status must be approved or rejected")
		return
	}

	updated, err := h.Signups.UpdateStatus(r.Context(), req.ID, req.Status, usecase.Sanitize(req.Notes))
	if err != nil {
		if errors.Is(err, entity.ErrSignupNotFound) {
			writeErrorResponse(w, http.StatusNotFound, usecase.CodeNotFound, "applicant not found")
			return
		}
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

type setSeatsRequest struct {
	Metro string `json:"metro"`
	Seats *int   `json:"seats"`
}

func (h *AdminHandler) SetSeats(w http.ResponseWriter, r *http.Request) {
	var req setSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
		return
	}

	if req.Seats == nil || *req.Seats < 0 {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_VALUE", "seats must be a number >= 0")
		return
	}

	metro := strings.ToLower(strings.TrimSpace(req.Metro))
	if metro == "" {
		metro = entity.DefaultMetro
	}

	allocation, err := h.Seats.SetCapacity(r.Context(), metro, *req.Seats)
	if err != nil {
		if errors.Is(err, entity.ErrCapacityBelowClaimed) {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_VALUE", "seats cannot be lower than already claimed seats")
			return
		}
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"metro":   allocation.Metro,
		"seats":   allocation.Total,
		"claimed": allocation.Claimed,
	})
}
