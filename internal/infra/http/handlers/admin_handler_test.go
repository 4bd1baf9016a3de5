package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hestialabs/leadgate/internal/entity"
)

// MockSignupRepository
type MockSignupRepository struct {
	mock.Mock
}

func (m *MockSignupRepository) Create(ctx context.Context, s *entity.Signup) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSignupRepository) FindByEmail(ctx context.Context, email string) (*entity.Signup, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Signup), args.Error(1)
}

func (m *MockSignupRepository) List(ctx context.Context, status string) ([]*entity.Signup, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Signup), args.Error(1)
}

func (m *MockSignupRepository) UpdateStatus(ctx context.Context, id, status, notes string) (*entity.Signup, error) {
	args := m.Called(ctx, id, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Signup), args.Error(1)
}

func TestAdminListApplicants(t *testing.T) {
	signups := new(MockSignupRepository)
	signups.On("List", mock.Anything, "pending").Return([]*entity.Signup{
		{ID: "1", Email: "a@example.com", Status: entity.SignupStatusPending},
	}, nil)

	h := NewAdminHandler(signups, new(MockSeatRepository))

	req := httptest.NewRequest("GET", "/api/admin/applicants?status=pending", nil)
	rec := httptest.NewRecorder()
	h.ListApplicants(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@example.com")
}

func TestAdminListRejectsBogusFilter(t *testing.T) {
	h := NewAdminHandler(new(MockSignupRepository), new(MockSeatRepository))

	req := httptest.NewRequest("GET", "/api/admin/applicants?status=banana", nil)
	rec := httptest.NewRecorder()
	h.ListApplicants(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminPatchApplicant(t *testing.T) {
	signups := new(MockSignupRepository)
	signups.On("UpdateStatus", mock.Anything, "id-1", "approved", "looks solid").
		Return(&entity.Signup{ID: "id-1", Status: entity.SignupStatusApproved}, nil)

	h := NewAdminHandler(signups, new(MockSeatRepository))

	body := `{"id":"id-1","status":"approved","notes":"looks solid"}`
	req := httptest.NewRequest("PATCH", "/api/admin/applicants", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.PatchApplicant(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var updated entity.Signup
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, entity.SignupStatusApproved, updated.Status)
}

func TestAdminPatchInvalidStatus(t *testing.T) {
	h := NewAdminHandler(new(MockSignupRepository), new(MockSeatRepository))

	body := `{"id":"id-1","status":"maybe"}`
	req := httptest.NewRequest("PATCH", "/api/admin/applicants", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.PatchApplicant(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminPatchUnknownApplicant(t *testing.T) {
	signups := new(MockSignupRepository)
	signups.On("UpdateStatus", mock.Anything, "ghost", "rejected", "").
		Return(nil, entity.ErrSignupNotFound)

	h := NewAdminHandler(signups, new(MockSeatRepository))

	body := `{"id":"ghost","status":"rejected"}`
	req := httptest.NewRequest("PATCH", "/api/admin/applicants", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.PatchApplicant(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminSetSeats(t *testing.T) {
	seats := new(MockSeatRepository)
	seats.On("SetCapacity", mock.Anything, "austin", 20).
		Return(&entity.SeatAllocation{Metro: "austin", Total: 20, Claimed: 4}, nil)

	h := NewAdminHandler(new(MockSignupRepository), seats)

	body := `{"metro":"Austin","seats":20}`
	req := httptest.NewRequest("POST", "/api/admin/seats", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SetSeats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"seats":20`)
}

func TestAdminSetSeatsRejectsNegativeAndMissing(t *testing.T) {
	h := NewAdminHandler(new(MockSignupRepository), new(MockSeatRepository))

	for _, body := range []string{`{"seats":-1}`, `{}`} {
		req := httptest.NewRequest("POST", "/api/admin/seats", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.SetSeats(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestAdminSetSeatsBelowClaimed(t *testing.T) {
	seats := new(MockSeatRepository)
	seats.On("SetCapacity", mock.Anything, "austin", 2).
		Return(nil, entity.ErrCapacityBelowClaimed)

	h := NewAdminHandler(new(MockSignupRepository), seats)

	req := httptest.NewRequest("POST", "/api/admin/seats", strings.NewReader(`{"metro":"austin","seats":2}`))
	rec := httptest.NewRecorder()
	h.SetSeats(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
