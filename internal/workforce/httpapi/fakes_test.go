package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"workforce-server/internal/infra/httpserver"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/usecases"
)

func requestWithPrincipal(r *http.Request, principal httpserver.Principal) *http.Request {
	return r.WithContext(httpserver.ContextWithPrincipal(r.Context(), principal))
}

func adminPrincipal(departmentID string) httpserver.Principal {
	return httpserver.Principal{
		UserID:       "admin-1",
		Role:         httpserver.RoleAdmin,
		DepartmentID: departmentID,
	}
}

func employeePrincipal(userID string) httpserver.Principal {
	return httpserver.Principal{
		UserID: userID,
		Role:   httpserver.RoleEmployee,
	}
}

func serve(controller httpserver.Controller, r *http.Request) *httptest.ResponseRecorder {
	router := http.NewServeMux()
	controller.AddRoutes(router)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, r)
	return recorder
}

type fakeDepartmentService struct {
	createFn func(context.Context, domain.Department) error
	getFn    func(context.Context, domain.ID) (domain.Department, error)
	listFn   func(context.Context, usecases.Pagination) ([]domain.Department, int, error)
	updateFn func(context.Context, domain.Department) error
	deleteFn func(context.Context, domain.ID) error
}

var _ usecases.DepartmentService = (*fakeDepartmentService)(nil)

func (f *fakeDepartmentService) CreateDepartment(ctx context.Context, department domain.Department) error {
	return f.createFn(ctx, department)
}

func (f *fakeDepartmentService) GetDepartment(ctx context.Context, id domain.ID) (domain.Department, error) {
	return f.getFn(ctx, id)
}

func (f *fakeDepartmentService) ListDepartments(ctx context.Context, pagination usecases.Pagination) ([]domain.Department, int, error) {
	return f.listFn(ctx, pagination)
}

func (f *fakeDepartmentService) UpdateDepartment(ctx context.Context, department domain.Department) error {
	return f.updateFn(ctx, department)
}

func (f *fakeDepartmentService) DeleteDepartment(ctx context.Context, id domain.ID) error {
	return f.deleteFn(ctx, id)
}

type fakeDutyService struct {
	createFn           func(context.Context, domain.Duty) error
	getFn              func(context.Context, domain.ID) (domain.Duty, error)
	getSchemaFn        func(context.Context, domain.ID) (domain.FormSchema, error)
	listFn             func(context.Context, usecases.Pagination) ([]domain.Duty, int, error)
	listByDepartmentFn func(context.Context, domain.ID, usecases.Pagination) ([]domain.Duty, int, error)
	deactivateFn       func(context.Context, domain.ID) error
	validateFn         func(context.Context, domain.ID, map[string]any) (domain.ValidationResult, error)
}

var _ usecases.DutyService = (*fakeDutyService)(nil)

func (f *fakeDutyService) CreateDuty(ctx context.Context, duty domain.Duty) error {
	return f.createFn(ctx, duty)
}

func (f *fakeDutyService) GetDuty(ctx context.Context, id domain.ID) (domain.Duty, error) {
	return f.getFn(ctx, id)
}

func (f *fakeDutyService) GetFormSchema(ctx context.Context, dutyID domain.ID) (domain.FormSchema, error) {
	return f.getSchemaFn(ctx, dutyID)
}

func (f *fakeDutyService) ListDuties(ctx context.Context, pagination usecases.Pagination) ([]domain.Duty, int, error) {
	return f.listFn(ctx, pagination)
}

func (f *fakeDutyService) ListDutiesByDepartment(ctx context.Context, departmentID domain.ID, pagination usecases.Pagination) ([]domain.Duty, int, error) {
	return f.listByDepartmentFn(ctx, departmentID, pagination)
}

func (f *fakeDutyService) DeactivateDuty(ctx context.Context, id domain.ID) error {
	return f.deactivateFn(ctx, id)
}

func (f *fakeDutyService) ValidateSubmission(ctx context.Context, dutyID domain.ID, payload map[string]any) (domain.ValidationResult, error) {
	return f.validateFn(ctx, dutyID, payload)
}

type fakeUserService struct {
	createFn     func(context.Context, domain.User) error
	getFn        func(context.Context, domain.ID) (domain.User, error)
	listFn       func(context.Context, usecases.Pagination) ([]domain.User, int, error)
	assignFn     func(context.Context, domain.ID, domain.ID) error
	unassignFn   func(context.Context, domain.ID, domain.ID) error
	beginLeaveFn func(context.Context, domain.ID, utils.Time) error
	endLeaveFn   func(context.Context, domain.ID) error
}

var _ usecases.UserService = (*fakeUserService)(nil)

func (f *fakeUserService) CreateUser(ctx context.Context, user domain.User) error {
	return f.createFn(ctx, user)
}

func (f *fakeUserService) GetUser(ctx context.Context, id domain.ID) (domain.User, error) {
	return f.getFn(ctx, id)
}

func (f *fakeUserService) ListUsers(ctx context.Context, pagination usecases.Pagination) ([]domain.User, int, error) {
	return f.listFn(ctx, pagination)
}

func (f *fakeUserService) AssignDuty(ctx context.Context, userID, dutyID domain.ID) error {
	return f.assignFn(ctx, userID, dutyID)
}

func (f *fakeUserService) UnassignDuty(ctx context.Context, userID, dutyID domain.ID) error {
	return f.unassignFn(ctx, userID, dutyID)
}

func (f *fakeUserService) BeginLeave(ctx context.Context, userID domain.ID, until utils.Time) error {
	return f.beginLeaveFn(ctx, userID, until)
}

func (f *fakeUserService) EndLeave(ctx context.Context, userID domain.ID) error {
	return f.endLeaveFn(ctx, userID)
}

type fakeTaskService struct {
	submitFn           func(context.Context, domain.ID, domain.ID, map[string]any, bool) (domain.TaskLog, error)
	reviewFn           func(context.Context, domain.ID, domain.ID, domain.TaskStatus, string) (domain.TaskLog, error)
	getFn              func(context.Context, domain.ID) (domain.TaskLog, error)
	listFn             func(context.Context, usecases.Pagination) ([]domain.TaskLog, int, error)
	listByEmployeeFn   func(context.Context, domain.ID, usecases.Pagination) ([]domain.TaskLog, int, error)
	listByDepartmentFn func(context.Context, domain.ID, usecases.Pagination) ([]domain.TaskLog, int, error)
	listByDutyFn       func(context.Context, domain.ID, usecases.Pagination) ([]domain.TaskLog, int, error)
}

var _ usecases.TaskService = (*fakeTaskService)(nil)

func (f *fakeTaskService) SubmitTaskLog(ctx context.Context, employeeID, dutyID domain.ID, payload map[string]any, forceNew bool) (domain.TaskLog, error) {
	return f.submitFn(ctx, employeeID, dutyID, payload, forceNew)
}

func (f *fakeTaskService) ReviewTaskLog(ctx context.Context, reviewerID, taskLogID domain.ID, status domain.TaskStatus, feedback string) (domain.TaskLog, error) {
	return f.reviewFn(ctx, reviewerID, taskLogID, status, feedback)
}

func (f *fakeTaskService) GetTaskLog(ctx context.Context, id domain.ID) (domain.TaskLog, error) {
	return f.getFn(ctx, id)
}

func (f *fakeTaskService) ListTaskLogs(ctx context.Context, pagination usecases.Pagination) ([]domain.TaskLog, int, error) {
	return f.listFn(ctx, pagination)
}

func (f *fakeTaskService) ListTaskLogsByEmployee(ctx context.Context, employeeID domain.ID, pagination usecases.Pagination) ([]domain.TaskLog, int, error) {
	return f.listByEmployeeFn(ctx, employeeID, pagination)
}

func (f *fakeTaskService) ListTaskLogsByDepartment(ctx context.Context, departmentID domain.ID, pagination usecases.Pagination) ([]domain.TaskLog, int, error) {
	return f.listByDepartmentFn(ctx, departmentID, pagination)
}

func (f *fakeTaskService) ListTaskLogsByDuty(ctx context.Context, dutyID domain.ID, pagination usecases.Pagination) ([]domain.TaskLog, int, error) {
	return f.listByDutyFn(ctx, dutyID, pagination)
}
