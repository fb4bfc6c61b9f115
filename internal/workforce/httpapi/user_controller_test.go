package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/httpapi"
	"workforce-server/internal/workforce/usecases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	var created domain.User
	service := &fakeUserService{
		createFn: func(_ context.Context, user domain.User) error {
			created = user
			return nil
		},
	}
	controller := httpapi.NewUserController(service)

	body := strings.NewReader(`{"name":"Alice","email":"alice@example.com","role":"admin","department_id":"department-1"}`)
	request := httptest.NewRequest("POST", "/v1/users", body)
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, domain.RoleAdmin, created.Role)
	assert.Equal(t, domain.UserStatusActive, created.Status)

	var response map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "alice@example.com", response["email"])
	assert.Equal(t, "active", response["status"])
}

func TestCreateUserUnknownRole(t *testing.T) {
	controller := httpapi.NewUserController(&fakeUserService{})

	body := strings.NewReader(`{"name":"Alice","email":"alice@example.com","role":"superuser"}`)
	request := httptest.NewRequest("POST", "/v1/users", body)
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateUserDuplicated(t *testing.T) {
	service := &fakeUserService{
		createFn: func(context.Context, domain.User) error {
			return usecases.ErrUserDuplicated
		},
	}
	controller := httpapi.NewUserController(service)

	body := strings.NewReader(`{"name":"Alice","email":"alice@example.com"}`)
	request := httptest.NewRequest("POST", "/v1/users", body)
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestGetUserSelfLookup(t *testing.T) {
	service := &fakeUserService{
		getFn: func(_ context.Context, id domain.ID) (domain.User, error) {
			return domain.User{ID: id, Name: "Alice", Email: "alice@example.com", Role: domain.RoleEmployee, Status: domain.UserStatusActive}, nil
		},
	}
	controller := httpapi.NewUserController(service)

	request := httptest.NewRequest("GET", "/v1/users/employee-1", nil)
	request = requestWithPrincipal(request, employeePrincipal("employee-1"))

	recorder := serve(controller, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetUserOtherEmployeeForbidden(t *testing.T) {
	controller := httpapi.NewUserController(&fakeUserService{})

	request := httptest.NewRequest("GET", "/v1/users/employee-2", nil)
	request = requestWithPrincipal(request, employeePrincipal("employee-1"))

	recorder := serve(controller, request)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAssignDuty(t *testing.T) {
	called := false
	service := &fakeUserService{
		assignFn: func(_ context.Context, userID, dutyID domain.ID) error {
			called = true
			assert.Equal(t, domain.ID("employee-1"), userID)
			assert.Equal(t, domain.ID("duty-1"), dutyID)
			return nil
		},
	}
	controller := httpapi.NewUserController(service)

	request := httptest.NewRequest("POST", "/v1/users/employee-1/duties", strings.NewReader(`{"duty_id":"duty-1"}`))
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.True(t, called)
}

func TestAssignInactiveDuty(t *testing.T) {
	service := &fakeUserService{
		assignFn: func(context.Context, domain.ID, domain.ID) error {
			return usecases.ErrDutyInactive
		},
	}
	controller := httpapi.NewUserController(service)

	request := httptest.NewRequest("POST", "/v1/users/employee-1/duties", strings.NewReader(`{"duty_id":"duty-1"}`))
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestUnassignDuty(t *testing.T) {
	service := &fakeUserService{
		unassignFn: func(_ context.Context, userID, dutyID domain.ID) error {
			assert.Equal(t, domain.ID("employee-1"), userID)
			assert.Equal(t, domain.ID("duty-1"), dutyID)
			return nil
		},
	}
	controller := httpapi.NewUserController(service)

	request := httptest.NewRequest("DELETE", "/v1/users/employee-1/duties/duty-1", nil)
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestBeginLeave(t *testing.T) {
	var until utils.Time
	service := &fakeUserService{
		beginLeaveFn: func(_ context.Context, userID domain.ID, value utils.Time) error {
			assert.Equal(t, domain.ID("employee-1"), userID)
			until = value
			return nil
		},
	}
	controller := httpapi.NewUserController(service)

	request := httptest.NewRequest("POST", "/v1/users/employee-1/leave", strings.NewReader(`{"until":"2026-09-15T00:00:00.000Z"}`))
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.False(t, until.IsZero())
}

func TestBeginLeaveRequiresUntil(t *testing.T) {
	controller := httpapi.NewUserController(&fakeUserService{})

	request := httptest.NewRequest("POST", "/v1/users/employee-1/leave", strings.NewReader(`{}`))
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestEndLeave(t *testing.T) {
	called := false
	service := &fakeUserService{
		endLeaveFn: func(_ context.Context, userID domain.ID) error {
			called = true
			assert.Equal(t, domain.ID("employee-1"), userID)
			return nil
		},
	}
	controller := httpapi.NewUserController(service)

	request := httptest.NewRequest("DELETE", "/v1/users/employee-1/leave", nil)
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.True(t, called)
}
