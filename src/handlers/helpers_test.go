package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/vehicle-registry/src/database"
	"github.com/khabaroff/vehicle-registry/src/middleware"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/khabaroff/vehicle-registry/src/repositories/mock"
	"github.com/khabaroff/vehicle-registry/src/services"
	"golang.org/x/crypto/bcrypt"
)

// Test helpers for handler tests

const testSecret = "test-secret-for-unit-tests-32ch!"

// testServer is the full route table backed by in-memory repositories
type testServer struct {
	router   *gin.Engine
	admins   *mock.AdministratorRepository
	vehicles *mock.VehicleRepository
	auth     *services.AuthService
	adminSvc *services.AdminService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	admins := mock.NewAdministratorRepository()
	vehicles := mock.NewVehicleRepository()
	auth := services.NewAuthService(admins, services.BcryptChecker{Cost: bcrypt.MinCost}, testSecret, time.Hour)
	adminSvc := services.NewAdminService(admins, auth)

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	RegisterRoutes(router, auth, Routes(Dependencies{
		DB:             database.NewDatabaseFromPool(nil),
		AuthService:    auth,
		AdminService:   adminSvc,
		VehicleService: services.NewVehicleService(vehicles),
		LoginRateLimit: middleware.RateLimitConfig{RequestsPerMinute: 1000},
	}))

	return &testServer{
		router:   router,
		admins:   admins,
		vehicles: vehicles,
		auth:     auth,
		adminSvc: adminSvc,
	}
}

// createAdmin stores an administrator through the service so the password is hashed
func (s *testServer) createAdmin(t *testing.T, email, password string, role models.Role) *models.Administrator {
	t.Helper()
	admin, err := s.adminSvc.Create(context.Background(), email, password, role)
	if err != nil {
		t.Fatalf("failed to create administrator: %v", err)
	}
	return admin
}

// tokenFor signs a token for role without touching the store
func (s *testServer) tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := s.auth.IssueToken(&models.Administrator{Email: string(role) + "@test.com", Role: role})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

// do performs a request against the router; body is JSON-encoded unless it is a string
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// createTestContext creates a test Gin context with recorder
func createTestContext() (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return w, c
}

// assertStatusCode checks if response status code matches expected
func assertStatusCode(t *testing.T, w *httptest.ResponseRecorder, expectedCode int) {
	t.Helper()
	if w.Code != expectedCode {
		t.Errorf("expected status %d, got %d: %s", expectedCode, w.Code, w.Body.String())
	}
}

// assertJSONError checks if response contains expected error message
func assertJSONError(t *testing.T, w *httptest.ResponseRecorder, expectedError string) {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["error"] != expectedError {
		t.Errorf("expected error '%s', got '%v'", expectedError, response["error"])
	}
}

// decodeJSON unmarshals the response body into v
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
}
