// Package mocks provides mock implementations for testing the attendance UI API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// auth ports. The mocks are generated using go:generate directives and provide a
// fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	store := mocks.NewMockSessionStore(ctrl)
//	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
//
// Hand-written doubles for cases where expectation-based mocking is overkill
// live in the auth subpackage.
package mocks

// Generate mock for SessionStore interface from internal/ports.
// This creates MockSessionStore with Save, Get, Delete.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/davomat/attendance-ui-api/internal/ports SessionStore

// Generate mock for AuthProvider interface from internal/ports.
// This creates MockAuthProvider with Begin, Exchange.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=auth_provider_mock.go github.com/davomat/attendance-ui-api/internal/ports AuthProvider
