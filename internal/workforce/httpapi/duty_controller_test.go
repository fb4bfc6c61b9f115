package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"workforce-server/internal/infra/httpserver"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/httpapi"
	"workforce-server/internal/workforce/usecases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const createDutyBody = `{
	"department_id": "department-1",
	"title": "Daily Report",
	"description": "End of day summary",
	"priority": "high",
	"tags": ["daily"],
	"schema": {
		"title": "Daily Report",
		"fields": [
			{"name": "summary", "type": "textarea", "label": "Summary", "required": true},
			{"name": "mood", "type": "select", "label": "Mood", "options": [
				{"label": "Good", "value": "good"},
				{"label": "Bad", "value": "bad"}
			]}
		]
	}
}`

func TestCreateDuty(t *testing.T) {
	var created domain.Duty
	service := &fakeDutyService{
		createFn: func(_ context.Context, duty domain.Duty) error {
			created = duty
			return nil
		},
	}
	controller := httpapi.NewDutyController(service)

	request := httptest.NewRequest("POST", "/v1/duties", strings.NewReader(createDutyBody))
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Daily Report", created.Title)
	assert.Equal(t, domain.ID("department-1"), created.DepartmentID)
	assert.Equal(t, domain.PriorityHigh, created.Priority)
	assert.Equal(t, domain.ID("admin-1"), created.CreatedBy)
	assert.True(t, created.IsActive)
	require.Len(t, created.Schema.Fields, 2)
	assert.True(t, created.Schema.Fields[0].Required)

	var response map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Daily Report", response["title"])
	assert.Equal(t, true, response["is_active"])
}

func TestCreateDutyRequiresAdmin(t *testing.T) {
	controller := httpapi.NewDutyController(&fakeDutyService{})

	request := httptest.NewRequest("POST", "/v1/duties", strings.NewReader(createDutyBody))
	request = requestWithPrincipal(request, employeePrincipal("employee-1"))

	recorder := serve(controller, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCreateDutyInvalidSchema(t *testing.T) {
	controller := httpapi.NewDutyController(&fakeDutyService{})

	body := `{
		"department_id": "department-1",
		"title": "Broken",
		"schema": {"fields": [{"name": "choice", "type": "select"}]}
	}`
	request := httptest.NewRequest("POST", "/v1/duties", strings.NewReader(body))
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var response httpserver.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Contains(t, response.Errors, "field 'choice' of type select requires options")
}

func TestCreateDutyDuplicated(t *testing.T) {
	service := &fakeDutyService{
		createFn: func(context.Context, domain.Duty) error {
			return usecases.ErrDutyDuplicated
		},
	}
	controller := httpapi.NewDutyController(service)

	request := httptest.NewRequest("POST", "/v1/duties", strings.NewReader(createDutyBody))
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestGetDutyNotFound(t *testing.T) {
	service := &fakeDutyService{
		getFn: func(context.Context, domain.ID) (domain.Duty, error) {
			return domain.Duty{}, usecases.ErrDutyNotFound
		},
	}
	controller := httpapi.NewDutyController(service)

	request := httptest.NewRequest("GET", "/v1/duties/missing", nil)
	recorder := serve(controller, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetFormSchema(t *testing.T) {
	service := &fakeDutyService{
		getSchemaFn: func(_ context.Context, dutyID domain.ID) (domain.FormSchema, error) {
			assert.Equal(t, domain.ID("duty-1"), dutyID)
			return domain.FormSchema{
				Title: "Daily Report",
				Fields: []domain.Field{
					{Name: "summary", Type: domain.FieldTypeTextarea, Required: true},
				},
			}, nil
		},
	}
	controller := httpapi.NewDutyController(service)

	request := httptest.NewRequest("GET", "/v1/duties/duty-1/schema", nil)
	recorder := serve(controller, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Daily Report", response["title"])

	fields, ok := response["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 1)
}

func TestValidateSubmissionDryRun(t *testing.T) {
	service := &fakeDutyService{
		validateFn: func(_ context.Context, _ domain.ID, payload map[string]any) (domain.ValidationResult, error) {
			assert.Equal(t, "done", payload["summary"])
			return domain.ValidationResult{
				Valid:  false,
				Errors: []string{"Mood must be one of the available options"},
			}, nil
		},
	}
	controller := httpapi.NewDutyController(service)

	body := strings.NewReader(`{"data":{"summary":"done","mood":"meh"}}`)
	request := httptest.NewRequest("POST", "/v1/duties/duty-1/validate", body)
	recorder := serve(controller, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, false, response["valid"])
}

func TestDeactivateDuty(t *testing.T) {
	called := false
	service := &fakeDutyService{
		deactivateFn: func(_ context.Context, id domain.ID) error {
			called = true
			assert.Equal(t, domain.ID("duty-1"), id)
			return nil
		},
	}
	controller := httpapi.NewDutyController(service)

	request := httptest.NewRequest("DELETE", "/v1/duties/duty-1", nil)
	request = requestWithPrincipal(request, adminPrincipal(""))

	recorder := serve(controller, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.True(t, called)
}

func TestListDutiesByDepartmentNotFound(t *testing.T) {
	service := &fakeDutyService{
		listByDepartmentFn: func(context.Context, domain.ID, usecases.Pagination) ([]domain.Duty, int, error) {
			return nil, 0, usecases.ErrDepartmentNotFound
		},
	}
	controller := httpapi.NewDutyController(service)

	request := httptest.NewRequest("GET", "/v1/departments/missing/duties", nil)
	recorder := serve(controller, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
