package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"classroom-market/internal/model"
	apperrors "classroom-market/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTeacherLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.auth.EXPECT().Login(mock.Anything, "secret", true).Return("new-token", nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/teacher/login", map[string]interface{}{
			"password":    "secret",
			"remember_me": true,
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "new-token", decodeBody(t, w.Body)["token"])
	})

	t.Run("Failed - InvalidPassword", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.auth.EXPECT().Login(mock.Anything, "wrong", false).Return("", apperrors.ErrInvalidPassword).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/teacher/login", map[string]interface{}{
			"password": "wrong",
		}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failed - MissingPassword", func(t *testing.T) {
		router, s := setupTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", "/api/v1/teacher/login", map[string]interface{}{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.auth.AssertNotCalled(t, "Login")
	})
}

func TestTeacherLogout(t *testing.T) {
	router, s := setupTestRouter(t)
	s.auth.EXPECT().Logout(mock.Anything, validTeacherToken).Return(nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createTeacherRequest("POST", "/api/v1/teacher/logout", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDashboard(t *testing.T) {
	t.Run("Grade filter", func(t *testing.T) {
		router, s := setupTestRouter(t)
		grade := model.Grade(6)
		s.dashboard.EXPECT().Get(mock.Anything, &grade).Return(&model.Dashboard{StudentCount: 20, TotalTickets: 140}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createTeacherRequest("GET", "/api/v1/teacher/dashboard?grade=6", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(140), decodeBody(t, w.Body)["total_tickets"])
	})

	t.Run("All grades", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.dashboard.EXPECT().Get(mock.Anything, (*model.Grade)(nil)).Return(&model.Dashboard{}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createTeacherRequest("GET", "/api/v1/teacher/dashboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - UnknownGrade", func(t *testing.T) {
		router, s := setupTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createTeacherRequest("GET", "/api/v1/teacher/dashboard?grade=9", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.dashboard.AssertNotCalled(t, "Get")
	})

	t.Run("Failed - NoSession", func(t *testing.T) {
		router, s := setupTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("GET", "/api/v1/teacher/dashboard", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		s.dashboard.AssertNotCalled(t, "Get")
	})
}

func TestPing(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createJSONHTTPRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decodeBody(t, w.Body)["message"])
}
