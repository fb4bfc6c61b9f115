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
	createUserErrMessage     = "failed to create user"
	userNotFoundErrMessage   = "user not found"
	userDuplicatedErrMessage = "user already exists"
	listUsersErrMessage      = "failed to list users"
	getUserErrMessage        = "failed to get user"
	assignDutyErrMessage     = "failed to assign duty"
	unassignDutyErrMessage   = "failed to unassign duty"
	dutyInactiveErrMessage   = "duty is inactive"
	beginLeaveErrMessage     = "failed to begin leave"
	endLeaveErrMessage       = "failed to end leave"
)

func NewUserController(service usecases.UserService) *UserController {
	return &UserController{
		service: service,
	}
}

var _ httpserver.Controller = &UserController{}

type UserController struct {
	service usecases.UserService
}

func (c *UserController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/users", c.listUsers())
	router.Handle("POST /v1/users", c.createUser())
	router.Handle("GET /v1/users/{id}", c.getUser())
	router.Handle("POST /v1/users/{id}/duties", c.assignDuty())
	router.Handle("DELETE /v1/users/{id}/duties/{duty_id}", c.unassignDuty())
	router.Handle("POST /v1/users/{id}/leave", c.beginLeave())
	router.Handle("DELETE /v1/users/{id}/leave", c.endLeave())
}

func (c *UserController) listUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		users, total, err := c.service.ListUsers(r.Context(), pagination)
		if err != nil {
			slog.Error("listing users", slog.String("error", err.Error()))
			http.Error(w, listUsersErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.UserResponse, len(users))
		for i, user := range users {
			responses[i] = internal.ToUserResponse(user)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *UserController) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		var body internal.UserCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create user request", slog.String("error", err.Error()))
			http.Error(w, createUserErrMessage, http.StatusBadRequest)
			return
		}

		builder := domain.NewUserBuilder().
			WithName(body.Name).
			WithEmail(body.Email).
			WithDepartment(domain.ID(body.DepartmentID))
		if body.Role != "" {
			builder = builder.WithRole(domain.Role(body.Role))
		}

		user, err := builder.Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.CreateUser(r.Context(), user)
		if errors.Is(err, usecases.ErrUserDuplicated) {
			http.Error(w, userDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating user", slog.String("error", err.Error()))
			http.Error(w, createUserErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToUserResponse(user)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *UserController) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "user id is required", http.StatusBadRequest)
			return
		}

		// employees may only look themselves up
		if !principal.IsAdmin() && principal.UserID != id {
			http.Error(w, adminAccessRequiredErrMessage, http.StatusForbidden)
			return
		}

		user, err := c.service.GetUser(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting user", slog.String("error", err.Error()))
			http.Error(w, getUserErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToUserResponse(user)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *UserController) assignDuty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "user id is required", http.StatusBadRequest)
			return
		}

		var body internal.DutyAssignmentRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding assign duty request", slog.String("error", err.Error()))
			http.Error(w, assignDutyErrMessage, http.StatusBadRequest)
			return
		}

		if body.DutyID == "" {
			http.Error(w, "duty_id is required", http.StatusBadRequest)
			return
		}

		err = c.service.AssignDuty(r.Context(), domain.ID(id), domain.ID(body.DutyID))
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDutyNotFound) {
			http.Error(w, dutyNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDutyInactive) {
			http.Error(w, dutyInactiveErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("assigning duty", slog.String("error", err.Error()))
			http.Error(w, assignDutyErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *UserController) unassignDuty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		id := r.PathValue("id")
		dutyID := r.PathValue("duty_id")
		if id == "" || dutyID == "" {
			http.Error(w, "user id and duty id are required", http.StatusBadRequest)
			return
		}

		err := c.service.UnassignDuty(r.Context(), domain.ID(id), domain.ID(dutyID))
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("unassigning duty", slog.String("error", err.Error()))
			http.Error(w, unassignDutyErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *UserController) beginLeave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "user id is required", http.StatusBadRequest)
			return
		}

		var body internal.LeaveRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding begin leave request", slog.String("error", err.Error()))
			http.Error(w, beginLeaveErrMessage, http.StatusBadRequest)
			return
		}

		if body.Until.IsZero() {
			http.Error(w, "until is required", http.StatusBadRequest)
			return
		}

		err = c.service.BeginLeave(r.Context(), domain.ID(id), body.Until)
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("beginning leave", slog.String("error", err.Error()))
			http.Error(w, beginLeaveErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *UserController) endLeave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "user id is required", http.StatusBadRequest)
			return
		}

		err := c.service.EndLeave(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("ending leave", slog.String("error", err.Error()))
			http.Error(w, endLeaveErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
