package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/careconnect-api/internal/model"
	apperrors "github.com/careconnect/careconnect-api/pkg/errors"
	"github.com/careconnect/careconnect-api/pkg/logger"
	"github.com/careconnect/careconnect-api/pkg/validator"
)

type mockService struct {
	userID      int64
	err         error
	signupCalls int
	loginCalls  int
}

func (m *mockService) Signup(_ context.Context, _ *model.SignupRequest) (int64, error) {
	m.signupCalls++
	return m.userID, m.err
}

func (m *mockService) Login(_ context.Context, _, _ string) (int64, error) {
	m.loginCalls++
	return m.userID, m.err
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validator.RegisterCustomValidations(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func setupRouter(svc *mockService) *gin.Engine {
	r := gin.New()
	NewHandler(svc, logger.NewLogger(nil)).RegisterRoutes(r.Group(""))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignup(t *testing.T) {
	svc := &mockService{userID: 7}
	r := setupRouter(svc)

	w := postJSON(r, "/signup",
		`{"username":"Jane Doe","password":"supersecret","dob":"1990-04-01","email":"jane@example.com"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully")
	assert.Equal(t, 1, svc.signupCalls)
}

func TestSignupValidation(t *testing.T) {
	cases := map[string]string{
		"missing email":  `{"username":"Jane","password":"supersecret","dob":"1990-04-01"}`,
		"invalid email":  `{"username":"Jane","password":"supersecret","dob":"1990-04-01","email":"nope"}`,
		"short password": `{"username":"Jane","password":"short","dob":"1990-04-01","email":"jane@example.com"}`,
		"invalid dob":    `{"username":"Jane","password":"supersecret","dob":"01/04/1990","email":"jane@example.com"}`,
		"empty body":     `{}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &mockService{}
			r := setupRouter(svc)

			w := postJSON(r, "/signup", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Zero(t, svc.signupCalls)
		})
	}
}

func TestSignupServiceError(t *testing.T) {
	svc := &mockService{err: apperrors.BadRequest("password too short", nil)}
	r := setupRouter(svc)

	w := postJSON(r, "/signup",
		`{"username":"Jane","password":"supersecret","dob":"1990-04-01","email":"jane@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password too short")
}

func TestLogin(t *testing.T) {
	svc := &mockService{userID: 42}
	r := setupRouter(svc)

	w := postJSON(r, "/login", `{"email":"jane@example.com","password":"supersecret"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.EqualValues(t, 42, resp.UserID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &mockService{err: apperrors.Unauthorized("Invalid credentials", nil)}
	r := setupRouter(svc)

	w := postJSON(r, "/login", `{"email":"jane@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestLoginMissingFields(t *testing.T) {
	svc := &mockService{}
	r := setupRouter(svc)

	w := postJSON(r, "/login", `{"email":"jane@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.loginCalls)
}
