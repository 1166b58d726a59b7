package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/hireground/catalog-api/config"
	"github.com/hireground/catalog-api/internal/data"
	"github.com/hireground/catalog-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Jobs        *service.JobService
	Locations   *service.LocationService
	Departments *service.DepartmentService
	Auth        *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	DB     *sql.DB
	Logger *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	JobRepo        *data.JobRepo
	LocationRepo   *data.LocationRepo
	DepartmentRepo *data.DepartmentRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB) *serviceRepositories {
	return &serviceRepositories{
		JobRepo:        data.NewJobRepo(db),
		LocationRepo:   data.NewLocationRepo(db),
		DepartmentRepo: data.NewDepartmentRepo(db),
	}
}

// NewServices wires business services over repositories.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}

	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps.DB)

	integrity := service.NewIntegrityService(service.IntegrityServiceOptions{
		LocationRepo:   repos.LocationRepo,
		DepartmentRepo: repos.DepartmentRepo,
	})

	return ServiceContainer{
		Jobs: service.NewJobService(service.JobServiceOptions{
			JobRepo:     repos.JobRepo,
			Integrity:   integrity,
			MaxPageSize: appCfg.HTTP.MaxPageSize,
		}),
		Locations: service.NewLocationService(service.LocationServiceOptions{
			LocationRepo: repos.LocationRepo,
		}),
		Departments: service.NewDepartmentService(service.DepartmentServiceOptions{
			DepartmentRepo: repos.DepartmentRepo,
			Integrity:      integrity,
		}),
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Config: appCfg.Auth,
		}),
	}
}
