package middleware

import (
	"net/http"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/employee"
	"github.com/bravoapp/volunteering-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireHRAdmin requires hr_admin or super_admin role
func RequireHRAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrHRAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, employee.ErrHRAccessRequired)
			return
		}

		role := employee.Role(roleStr)
		if role != employee.RoleHRAdmin && role != employee.RoleSuperAdmin {
			response.HandleError(w, employee.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSuperAdmin requires super_admin role
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrSuperAdminRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(employee.RoleSuperAdmin) {
			response.HandleError(w, employee.ErrSuperAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
