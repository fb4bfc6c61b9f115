package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"workforce-server/internal/infra/httpserver"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/httpapi/internal"
	"workforce-server/internal/workforce/usecases"
)

const (
	submitTaskLogErrMessage       = "failed to submit task log"
	reviewTaskLogErrMessage       = "failed to review task log"
	taskLogNotFoundErrMessage     = "task log not found"
	taskLogValidationErrMessage   = "submission failed validation"
	dutyNotAssignedErrMessage     = "duty is not assigned to employee"
	reviewNotAllowedErrMessage    = "review not allowed"
	listTaskLogsErrMessage        = "failed to list task logs"
	getTaskLogErrMessage          = "failed to get task log"
	dutyInconsistentErrMessage    = "duty records are inconsistent"
	taskLogAccessDeniedErrMessage = "access to task log denied"
)

func NewTaskController(service usecases.TaskService) *TaskController {
	return &TaskController{
		service: service,
	}
}

var _ httpserver.Controller = &TaskController{}

type TaskController struct {
	service usecases.TaskService
}

func (c *TaskController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/duties/{id}/task-logs", c.submitTaskLog())
	router.Handle("GET /v1/task-logs", c.listTaskLogs())
	router.Handle("GET /v1/task-logs/{id}", c.getTaskLog())
	router.Handle("POST /v1/task-logs/{id}/review", c.reviewTaskLog())
}

// submitTaskLog fills the caller's submission slot for the current day. The
// same endpoint serves both first submissions and same-day amendments; the
// service decides which one applies.
func (c *TaskController) submitTaskLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		dutyID := r.PathValue("id")
		if dutyID == "" {
			http.Error(w, "duty id is required", http.StatusBadRequest)
			return
		}

		var body internal.TaskLogSubmitRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding submit task log request", slog.String("error", err.Error()))
			http.Error(w, submitTaskLogErrMessage, http.StatusBadRequest)
			return
		}

		taskLog, err := c.service.SubmitTaskLog(r.Context(), domain.ID(principal.UserID), domain.ID(dutyID), body.Data, body.ForceNew)
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, taskLogValidationErrMessage, validationErr.Errors)
			return
		}
		var lockedErr *usecases.LockedError
		if errors.As(err, &lockedErr) {
			httpserver.ReplyWithError(w, http.StatusLocked, lockedErr.Error())
			return
		}
		if errors.Is(err, usecases.ErrDutyNotAssigned) {
			http.Error(w, dutyNotAssignedErrMessage, http.StatusForbidden)
			return
		}
		if errors.Is(err, usecases.ErrDutyInactive) {
			http.Error(w, dutyInactiveErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDutyNotFound) {
			http.Error(w, dutyNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDutyInconsistent) {
			slog.Error("submitting task log", slog.String("error", err.Error()))
			http.Error(w, dutyInconsistentErrMessage, http.StatusInternalServerError)
			return
		}
		if err != nil {
			slog.Error("submitting task log", slog.String("error", err.Error()))
			http.Error(w, submitTaskLogErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToTaskLogResponse(taskLog)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *TaskController) reviewTaskLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "task log id is required", http.StatusBadRequest)
			return
		}

		var body internal.TaskLogReviewRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding review task log request", slog.String("error", err.Error()))
			http.Error(w, reviewTaskLogErrMessage, http.StatusBadRequest)
			return
		}

		taskLog, err := c.service.ReviewTaskLog(r.Context(), domain.ID(principal.UserID), domain.ID(id), domain.TaskStatus(body.Status), body.Feedback)
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, reviewTaskLogErrMessage, validationErr.Errors)
			return
		}
		if errors.Is(err, usecases.ErrReviewNotAllowed) {
			http.Error(w, reviewNotAllowedErrMessage, http.StatusForbidden)
			return
		}
		if errors.Is(err, usecases.ErrTaskLogNotFound) {
			http.Error(w, taskLogNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("reviewing task log", slog.String("error", err.Error()))
			http.Error(w, reviewTaskLogErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToTaskLogResponse(taskLog)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *TaskController) getTaskLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "task log id is required", http.StatusBadRequest)
			return
		}

		taskLog, err := c.service.GetTaskLog(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrTaskLogNotFound) {
			http.Error(w, taskLogNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting task log", slog.String("error", err.Error()))
			http.Error(w, getTaskLogErrMessage, http.StatusInternalServerError)
			return
		}

		if !canViewTaskLog(principal, taskLog) {
			http.Error(w, taskLogAccessDeniedErrMessage, http.StatusForbidden)
			return
		}

		response := internal.ToTaskLogResponse(taskLog)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

// listTaskLogs scopes results to what the caller may see: employees get their
// own logs, department admins their department, global admins everything.
// Admins can narrow further with duty_id or employee_id query parameters.
func (c *TaskController) listTaskLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		taskLogs, total, err := c.queryTaskLogs(r, principal, pagination)
		if err != nil {
			slog.Error("listing task logs", slog.String("error", err.Error()))
			http.Error(w, listTaskLogsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.TaskLogResponse, len(taskLogs))
		for i, taskLog := range taskLogs {
			responses[i] = internal.ToTaskLogResponse(taskLog)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *TaskController) queryTaskLogs(r *http.Request, principal httpserver.Principal, pagination usecases.Pagination) ([]domain.TaskLog, int, error) {
	ctx := r.Context()

	if !principal.IsAdmin() {
		return c.service.ListTaskLogsByEmployee(ctx, domain.ID(principal.UserID), pagination)
	}

	if dutyID := httpserver.GetQueryParam(r, "duty_id"); dutyID != "" {
		return c.service.ListTaskLogsByDuty(ctx, domain.ID(dutyID), pagination)
	}
	if employeeID := httpserver.GetQueryParam(r, "employee_id"); employeeID != "" {
		return c.service.ListTaskLogsByEmployee(ctx, domain.ID(employeeID), pagination)
	}

	if principal.DepartmentID != "" {
		return c.service.ListTaskLogsByDepartment(ctx, domain.ID(principal.DepartmentID), pagination)
	}

	return c.service.ListTaskLogs(ctx, pagination)
}

func canViewTaskLog(principal httpserver.Principal, taskLog domain.TaskLog) bool {
	if taskLog.EmployeeID.String() == principal.UserID {
		return true
	}
	if !principal.IsAdmin() {
		return false
	}
	if principal.DepartmentID == "" {
		return true
	}
	return principal.DepartmentID == taskLog.DepartmentID.String()
}
