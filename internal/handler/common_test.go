package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"classroom-market/config"
	"classroom-market/internal/handler"
	"classroom-market/internal/service/mocks"
	apperrors "classroom-market/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

var (
	InvalidJSON = `{"invalid": json}`
)

const validTeacherToken = "valid-token"

type testServices struct {
	purchase  *mocks.MockPurchaseService
	student   *mocks.MockStudentService
	item      *mocks.MockItemService
	cart      *mocks.MockCartService
	dashboard *mocks.MockDashboardService
	auth      *mocks.MockTeacherAuthService
}

// setupTestRouter builds the full router over mocks. Requests carrying
// validTeacherToken pass the teacher guard, every other token is rejected.
func setupTestRouter(t *testing.T) (*gin.Engine, *testServices) {
	gin.SetMode(gin.TestMode)

	s := &testServices{
		purchase:  mocks.NewMockPurchaseService(t),
		student:   mocks.NewMockStudentService(t),
		item:      mocks.NewMockItemService(t),
		cart:      mocks.NewMockCartService(t),
		dashboard: mocks.NewMockDashboardService(t),
		auth:      mocks.NewMockTeacherAuthService(t),
	}
	s.auth.EXPECT().Authenticate(mock.Anything, mock.Anything).RunAndReturn(authenticateTestToken).Maybe()

	router := handler.NewRouter(config.ServerConfig{GinMode: gin.TestMode, AllowedCORSOrigins: []string{"http://localhost:3000"}}, s.auth, handler.Handlers{
		Purchase: handler.NewPurchaseHandler(s.purchase),
		Student:  handler.NewStudentHandler(s.student),
		Item:     handler.NewItemHandler(s.item),
		Cart:     handler.NewCartHandler(s.cart),
		Teacher:  handler.NewTeacherHandler(s.auth, s.dashboard),
	})
	return router, s
}

func authenticateTestToken(_ context.Context, token string) error {
	if token != validTeacherToken {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// createTeacherRequest is createJSONHTTPRequest with a teacher session token.
func createTeacherRequest(method, url string, data interface{}) *http.Request {
	req := createJSONHTTPRequest(method, url, data)
	req.Header.Set(handler.TeacherTokenHeader, validTeacherToken)
	return req
}

func decodeBody(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON object: %v", err)
	}
	return out
}
