package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Principal carries the identity headers the gateway would normally inject.
type Principal struct {
	UserID       string
	Role         string
	DepartmentID string
}

type APIDriver struct {
	baseURL   string
	client    *http.Client
	principal Principal
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// As switches the identity used for subsequent requests.
func (d *APIDriver) As(principal Principal) {
	d.principal = principal
}

func (d *APIDriver) do(method, path string, body any) (*http.Response, error) {
	var reader *bytes.Buffer
	if body != nil {
		reqBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewBuffer(reqBody)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", d.baseURL, path), reader)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.principal.UserID != "" {
		req.Header.Set("X-User-ID", d.principal.UserID)
		req.Header.Set("X-User-Role", d.principal.Role)
		if d.principal.DepartmentID != "" {
			req.Header.Set("X-Department-ID", d.principal.DepartmentID)
		}
	}

	return d.client.Do(req)
}

func (d *APIDriver) CreateDepartment(name, email string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/departments", map[string]any{
		"name":               name,
		"notification_email": email,
	})
}

func (d *APIDriver) GetDepartment(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/departments/%s", id), nil)
}

func (d *APIDriver) ListDepartments() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/departments", nil)
}

func (d *APIDriver) UpdateDepartment(id, newName string) (*http.Response, error) {
	return d.do(http.MethodPut, fmt.Sprintf("/v1/departments/%s", id), map[string]any{
		"name": newName,
	})
}

func (d *APIDriver) DeleteDepartment(id string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/departments/%s", id), nil)
}

func (d *APIDriver) CreateDuty(departmentID, title string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/duties", map[string]any{
		"department_id": departmentID,
		"title":         title,
		"priority":      "medium",
		"schema": map[string]any{
			"title": title,
			"fields": []map[string]any{
				{"name": "note", "type": "text", "label": "Note", "required": true},
			},
		},
	})
}

func (d *APIDriver) GetDuty(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/duties/%s", id), nil)
}

func (d *APIDriver) ListDuties() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/duties", nil)
}

func (d *APIDriver) ListDepartmentDuties(departmentID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/departments/%s/duties", departmentID), nil)
}

func (d *APIDriver) GetFormSchema(dutyID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/duties/%s/schema", dutyID), nil)
}

func (d *APIDriver) ValidateSubmission(dutyID string, data map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/duties/%s/validate", dutyID), map[string]any{
		"data": data,
	})
}

func (d *APIDriver) DeactivateDuty(id string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/duties/%s", id), nil)
}

func (d *APIDriver) CreateUser(name, email, role, departmentID string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/users", map[string]any{
		"name":          name,
		"email":         email,
		"role":          role,
		"department_id": departmentID,
	})
}

func (d *APIDriver) GetUser(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/users/%s", id), nil)
}

func (d *APIDriver) AssignDuty(userID, dutyID string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/users/%s/duties", userID), map[string]any{
		"duty_id": dutyID,
	})
}

func (d *APIDriver) UnassignDuty(userID, dutyID string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/users/%s/duties/%s", userID, dutyID), nil)
}

func (d *APIDriver) BeginLeave(userID, until string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/users/%s/leave", userID), map[string]any{
		"until": until,
	})
}

func (d *APIDriver) EndLeave(userID string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/users/%s/leave", userID), nil)
}

func (d *APIDriver) SubmitTaskLog(dutyID string, data map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/duties/%s/task-logs", dutyID), map[string]any{
		"data": data,
	})
}

func (d *APIDriver) ListTaskLogs() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/task-logs", nil)
}

func (d *APIDriver) GetTaskLog(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/task-logs/%s", id), nil)
}

func (d *APIDriver) ReviewTaskLog(id, status, feedback string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/task-logs/%s/review", id), map[string]any{
		"status":   status,
		"feedback": feedback,
	})
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.do(http.MethodGet, "/healthz", nil)
}

func (d *APIDriver) GetReadyz() (*http.Response, error) {
	return d.do(http.MethodGet, "/readyz", nil)
}
