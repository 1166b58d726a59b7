package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/hireground/catalog-api/internal/domain/auth"
	"github.com/hireground/catalog-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Jobs        *service.JobService
	Locations   *service.LocationService
	Departments *service.DepartmentService
	Auth        *service.AuthService
	DB          Pinger       // Backing store probed by the health check (optional)
	Logger      *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
//
// Access levels:
//   - token issuance and job reads are public
//   - location and department reads need any valid token
//   - every write needs the Administrator role
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	jobHandlers := &JobHandlers{Svc: services.Jobs}
	locationHandlers := &LocationHandlers{Svc: services.Locations}
	departmentHandlers := &DepartmentHandlers{Svc: services.Departments}
	authHandlers := &AuthHandlers{Svc: services.Auth}
	healthHandlers := &HealthHandlers{DB: services.DB}

	authed := RequireAuth(services.Auth)
	admin := RequireRole(services.Auth, domainauth.RoleAdministrator)

	mux.Handle("POST /api/v1/auth/token", http.HandlerFunc(authHandlers.IssueToken))

	mux.Handle("GET /api/v1/jobs", http.HandlerFunc(jobHandlers.List))
	mux.Handle("GET /api/v1/jobs/{id}", http.HandlerFunc(jobHandlers.GetByID))
	mux.Handle("POST /api/v1/jobs", admin(http.HandlerFunc(jobHandlers.Create)))
	mux.Handle("PUT /api/v1/jobs/{id}", admin(http.HandlerFunc(jobHandlers.Update)))

	mux.Handle("GET /api/v1/locations", authed(http.HandlerFunc(locationHandlers.List)))
	mux.Handle("GET /api/v1/locations/{id}", authed(http.HandlerFunc(locationHandlers.GetByID)))
	mux.Handle("POST /api/v1/locations", admin(http.HandlerFunc(locationHandlers.Create)))
	mux.Handle("PUT /api/v1/locations/{id}", admin(http.HandlerFunc(locationHandlers.Update)))

	mux.Handle("GET /api/v1/departments", authed(http.HandlerFunc(departmentHandlers.List)))
	mux.Handle("GET /api/v1/departments/{id}", authed(http.HandlerFunc(departmentHandlers.GetByID)))
	mux.Handle("POST /api/v1/departments", admin(http.HandlerFunc(departmentHandlers.Create)))
	mux.Handle("PUT /api/v1/departments/{id}", admin(http.HandlerFunc(departmentHandlers.Update)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandlers.Check))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandlers.Check))

	return mux
}
