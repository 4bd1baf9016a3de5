package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hestialabs/leadgate/internal/entity"
	"github.com/hestialabs/leadgate/internal/usecase"
)

const signupBody = `{
	"firstName": "Dana",
	"lastName": "Reyes",
	"email": "dana@brokerage.com",
	"phone": "(512) 555-0147",
	"brokerage": "Reyes Realty Group",
	"crm": "follow-up-boss",
	"leadVolume": "50-100",
	"metro": "austin"
}`

func newSignupHandler(signups *MockSignupRepository, seats *MockSeatRepository) *SignupHandler {
	uc := usecase.NewSignupIntakeUseCase(signups, seats, nil, nil, nil, 10)
	return NewSignupHandler(uc)
}

func TestSignupEndpointCreated(t *testing.T) {
	signups := new(MockSignupRepository)
	seats := new(MockSeatRepository)

	signups.On("FindByEmail", mock.Anything, "dana@brokerage.com").Return(nil, entity.ErrSignupNotFound)
	seats.On("EnsureRegion", mock.Anything, "austin", 10).Return(nil)
	seats.On("ClaimSeat", mock.Anything, "austin").Return(nil)
	signups.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := newSignupHandler(signups, seats)

	req := httptest.NewRequest("POST", "/api/signup", strings.NewReader(signupBody))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var output usecase.SignupOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, "dana@brokerage.com", output.Email)
	assert.Equal(t, "austin", output.Metro)
}

func TestSignupEndpointValidationMap(t *testing.T) {
	h := newSignupHandler(new(MockSignupRepository), new(MockSeatRepository))

	req := httptest.NewRequest("POST", "/api/signup", strings.NewReader(`{"email":"nope"}`))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "firstName")
	assert.Contains(t, body.Errors, "phone")
}

func TestSignupEndpointDuplicate(t *testing.T) {
	signups := new(MockSignupRepository)
	seats := new(MockSeatRepository)

	signups.On("FindByEmail", mock.Anything, "dana@brokerage.com").
		Return(&entity.Signup{ID: "existing"}, nil)

	h := newSignupHandler(signups, seats)

	req := httptest.NewRequest("POST", "/api/signup", strings.NewReader(signupBody))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
}

func TestSignupEndpointExhausted(t *testing.T) {
	signups := new(MockSignupRepository)
	seats := new(MockSeatRepository)

	signups.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrSignupNotFound)
	seats.On("EnsureRegion", mock.Anything, "austin", 10).Return(nil)
	seats.On("ClaimSeat", mock.Anything, "austin").Return(entity.ErrSeatsExhausted)

	h := newSignupHandler(signups, seats)

	req := httptest.NewRequest("POST", "/api/signup", strings.NewReader(signupBody))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "waitlist")
}

func TestSignupEndpointBadJSON(t *testing.T) {
	h := newSignupHandler(new(MockSignupRepository), new(MockSeatRepository))

	req := httptest.NewRequest("POST", "/api/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_JSON")
}

func TestSignupEndpointRateLimited(t *testing.T) {
	signups := new(MockSignupRepository)
	seats := new(MockSeatRepository)

	signups.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, entity.ErrSignupNotFound)
	seats.On("EnsureRegion", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	seats.On("ClaimSeat", mock.Anything, mock.Anything).Return(entity.ErrSeatsExhausted)

	h := newSignupHandler(signups, seats)

	var last int
	for i := 0; i < 12; i++ {
		req := httptest.NewRequest("POST", "/api/signup", strings.NewReader(signupBody))
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.Handle(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
