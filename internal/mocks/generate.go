// Package mocks provides mock implementations for testing the catalog services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

// Generate mock for JobRepository interface from internal/core package.
// This creates MockJobRepository with methods for all JobRepository interface methods:
// Create, GetByID, Update, List
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/hireground/catalog-api/internal/core JobRepository

// Generate mock for LocationRepository interface from internal/core package.
// This creates MockLocationRepository with methods for all LocationRepository interface methods:
// Create, GetByID, Update, List, Exists
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=location_repository_mock.go github.com/hireground/catalog-api/internal/core LocationRepository

// Generate mock for DepartmentRepository interface from internal/core package.
// This creates MockDepartmentRepository with methods for all DepartmentRepository interface methods:
// Create, GetByID, GetByTitle, Update, List, Exists
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=department_repository_mock.go github.com/hireground/catalog-api/internal/core DepartmentRepository
