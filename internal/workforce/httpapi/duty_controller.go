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
	createDutyErrMessage         = "failed to create duty"
	dutyNotFoundErrMessage       = "duty not found"
	dutyDuplicatedErrMessage     = "duty already exists in department"
	dutyValidationErrMessage     = "duty failed validation"
	deactivateDutyErrMessage     = "failed to deactivate duty"
	listDutiesErrMessage         = "failed to list duties"
	getDutyErrMessage            = "failed to get duty"
	getFormSchemaErrMessage      = "failed to get form schema"
	validateSubmissionErrMessage = "failed to validate submission"
)

func NewDutyController(service usecases.DutyService) *DutyController {
	return &DutyController{
		service: service,
	}
}

var _ httpserver.Controller = &DutyController{}

type DutyController struct {
	service usecases.DutyService
}

func (c *DutyController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/duties", c.listDuties())
	router.Handle("POST /v1/duties", c.createDuty())
	router.Handle("GET /v1/duties/{id}", c.getDuty())
	router.Handle("DELETE /v1/duties/{id}", c.deactivateDuty())
	router.Handle("GET /v1/duties/{id}/schema", c.getFormSchema())
	router.Handle("POST /v1/duties/{id}/validate", c.validateSubmission())
	router.Handle("GET /v1/departments/{id}/duties", c.listDutiesByDepartment())
}

func (c *DutyController) listDuties() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		duties, total, err := c.service.ListDuties(r.Context(), pagination)
		if err != nil {
			slog.Error("listing duties", slog.String("error", err.Error()))
			http.Error(w, listDutiesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.DutyResponse, len(duties))
		for i, duty := range duties {
			responses[i] = internal.ToDutyResponse(duty)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *DutyController) listDutiesByDepartment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "department id is required", http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		duties, total, err := c.service.ListDutiesByDepartment(r.Context(), domain.ID(id), pagination)
		if errors.Is(err, usecases.ErrDepartmentNotFound) {
			http.Error(w, departmentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("listing duties by department", slog.String("error", err.Error()))
			http.Error(w, listDutiesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.DutyResponse, len(duties))
		for i, duty := range duties {
			responses[i] = internal.ToDutyResponse(duty)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *DutyController) createDuty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requireAdmin(w, r)
		if !ok {
			return
		}

		var body internal.DutyCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create duty request", slog.String("error", err.Error()))
			http.Error(w, createDutyErrMessage, http.StatusBadRequest)
			return
		}

		builder := domain.NewDutyBuilder().
			WithTitle(body.Title).
			WithDescription(body.Description).
			WithDepartment(domain.ID(body.DepartmentID)).
			WithSchema(body.Schema.ToDomain()).
			WithEstimatedTime(body.EstimatedTime).
			WithCreatedBy(domain.ID(principal.UserID))
		if body.Priority != "" {
			builder = builder.WithPriority(domain.Priority(body.Priority))
		}
		if body.Deadline != nil {
			builder = builder.WithDeadline(*body.Deadline)
		}
		if len(body.Tags) > 0 {
			builder = builder.WithTags(body.Tags)
		}

		duty, err := builder.Build()
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, dutyValidationErrMessage, validationErr.Errors)
			return
		}
		if err != nil {
			slog.Error("building duty", slog.String("error", err.Error()))
			http.Error(w, createDutyErrMessage, http.StatusInternalServerError)
			return
		}

		err = c.service.CreateDuty(r.Context(), duty)
		if errors.Is(err, usecases.ErrDepartmentNotFound) {
			http.Error(w, departmentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDutyDuplicated) {
			http.Error(w, dutyDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating duty", slog.String("error", err.Error()))
			http.Error(w, createDutyErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToDutyResponse(duty)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *DutyController) getDuty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "duty id is required", http.StatusBadRequest)
			return
		}

		duty, err := c.service.GetDuty(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrDutyNotFound) {
			http.Error(w, dutyNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting duty", slog.String("error", err.Error()))
			http.Error(w, getDutyErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToDutyResponse(duty)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *DutyController) deactivateDuty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "duty id is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeactivateDuty(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrDutyNotFound) {
			http.Error(w, dutyNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deactivating duty", slog.String("error", err.Error()))
			http.Error(w, deactivateDutyErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *DutyController) getFormSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "duty id is required", http.StatusBadRequest)
			return
		}

		schema, err := c.service.GetFormSchema(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrDutyNotFound) {
			http.Error(w, dutyNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting form schema", slog.String("error", err.Error()))
			http.Error(w, getFormSchemaErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.FromFormSchema(schema)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

// validateSubmission dry-runs a payload against the duty's schema. The
// validation verdict always comes back 200; invalid payloads are a result,
// not an error.
func (c *DutyController) validateSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "duty id is required", http.StatusBadRequest)
			return
		}

		var body internal.SubmissionValidateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding validate submission request", slog.String("error", err.Error()))
			http.Error(w, validateSubmissionErrMessage, http.StatusBadRequest)
			return
		}

		result, err := c.service.ValidateSubmission(r.Context(), domain.ID(id), body.Data)
		if errors.Is(err, usecases.ErrDutyNotFound) {
			http.Error(w, dutyNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("validating submission", slog.String("error", err.Error()))
			http.Error(w, validateSubmissionErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.SubmissionValidateResponse{
			Valid:  result.Valid,
			Errors: result.Errors,
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}
