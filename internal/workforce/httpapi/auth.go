package httpapi

import (
	"net/http"
	"workforce-server/internal/infra/httpserver"
)

const (
	authenticationRequiredErrMessage = "authentication required"
	adminAccessRequiredErrMessage    = "admin access required"
)

func requirePrincipal(w http.ResponseWriter, r *http.Request) (httpserver.Principal, bool) {
	principal, ok := httpserver.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, authenticationRequiredErrMessage, http.StatusUnauthorized)
		return httpserver.Principal{}, false
	}

	return principal, true
}

func requireAdmin(w http.ResponseWriter, r *http.Request) (httpserver.Principal, bool) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return httpserver.Principal{}, false
	}

	if !principal.IsAdmin() {
		http.Error(w, adminAccessRequiredErrMessage, http.StatusForbidden)
		return httpserver.Principal{}, false
	}

	return principal, true
}
