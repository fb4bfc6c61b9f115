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
	createDepartmentErrMessage     = "failed to create department"
	departmentNotFoundErrMessage   = "department not found"
	departmentDuplicatedErrMessage = "department already exists"
	updateDepartmentErrMessage     = "failed to update department"
	listDepartmentsErrMessage      = "failed to list departments"
	getDepartmentErrMessage        = "failed to get department"
	deleteDepartmentErrMessage     = "failed to delete department"
)

func NewDepartmentController(service usecases.DepartmentService) *DepartmentController {
	return &DepartmentController{
		service: service,
	}
}

var _ httpserver.Controller = &DepartmentController{}

type DepartmentController struct {
	service usecases.DepartmentService
}

func (c *DepartmentController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/departments", c.listDepartments())
	router.Handle("POST /v1/departments", c.createDepartment())
	router.Handle("GET /v1/departments/{id}", c.getDepartment())
	router.Handle("PUT /v1/departments/{id}", c.updateDepartment())
	router.Handle("DELETE /v1/departments/{id}", c.deleteDepartment())
}

func (c *DepartmentController) listDepartments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		departments, total, err := c.service.ListDepartments(r.Context(), pagination)
		if err != nil {
			slog.Error("listing departments", slog.String("error", err.Error()))
			http.Error(w, listDepartmentsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.DepartmentResponse, len(departments))
		for i, department := range departments {
			responses[i] = internal.ToDepartmentResponse(department)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *DepartmentController) createDepartment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		var body internal.DepartmentCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create department request", slog.String("error", err.Error()))
			http.Error(w, createDepartmentErrMessage, http.StatusBadRequest)
			return
		}

		department, err := domain.NewDepartmentBuilder().
			WithName(body.Name).
			WithDescription(body.Description).
			WithNotificationEmail(body.NotificationEmail).
			Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.CreateDepartment(r.Context(), department)
		if errors.Is(err, usecases.ErrDepartmentDuplicated) {
			http.Error(w, departmentDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating department", slog.String("error", err.Error()))
			http.Error(w, createDepartmentErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToDepartmentResponse(department)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *DepartmentController) getDepartment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "department id is required", http.StatusBadRequest)
			return
		}

		department, err := c.service.GetDepartment(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrDepartmentNotFound) {
			http.Error(w, departmentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting department", slog.String("error", err.Error()))
			http.Error(w, getDepartmentErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToDepartmentResponse(department)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *DepartmentController) deleteDepartment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "department id is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeleteDepartment(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrDepartmentNotFound) {
			http.Error(w, departmentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting department", slog.String("error", err.Error()))
			http.Error(w, deleteDepartmentErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *DepartmentController) updateDepartment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "department id is required", http.StatusBadRequest)
			return
		}

		var body internal.DepartmentUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update department request", slog.String("error", err.Error()))
			http.Error(w, updateDepartmentErrMessage, http.StatusBadRequest)
			return
		}

		department := domain.Department{
			ID:                domain.ID(id),
			Name:              body.Name,
			Description:       body.Description,
			NotificationEmail: body.NotificationEmail,
		}

		err = c.service.UpdateDepartment(r.Context(), department)
		if errors.Is(err, usecases.ErrDepartmentNotFound) {
			http.Error(w, departmentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDepartmentDuplicated) {
			http.Error(w, departmentDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("updating department", slog.String("error", err.Error()))
			http.Error(w, updateDepartmentErrMessage, http.StatusInternalServerError)
			return
		}

		department, err = c.service.GetDepartment(r.Context(), domain.ID(id))
		if err != nil {
			slog.Error("getting updated department", slog.String("error", err.Error()))
			http.Error(w, getDepartmentErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToDepartmentResponse(department)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}
