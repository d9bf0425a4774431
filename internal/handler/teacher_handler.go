package handler

import (
	"net/http"

	"classroom-market/internal/service"

	"github.com/gin-gonic/gin"
)

type TeacherHandler struct {
	auth      service.TeacherAuthService
	dashboard service.DashboardService
}

func NewTeacherHandler(auth service.TeacherAuthService, dashboard service.DashboardService) *TeacherHandler {
	return &TeacherHandler{
		auth:      auth,
		dashboard: dashboard,
	}
}

func (h *TeacherHandler) RegisterRoutes(public, teacher *gin.RouterGroup) {
	public.POST("teacher/login", h.Login)

	teacher.POST("teacher/logout", h.Logout)
	teacher.GET("teacher/dashboard", h.GetDashboard)
}

func (h *TeacherHandler) Login(c *gin.Context) {
	var req TeacherLoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	token, err := h.auth.Login(c, req.Password, req.RememberMe)
	if err != nil {
		handleError(c, err, "TeacherLogin")
		return
	}

	respond(c, gin.H{"token": token}, http.StatusOK)
}

func (h *TeacherHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c, c.GetHeader(TeacherTokenHeader)); err != nil {
		handleError(c, err, "TeacherLogout")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

func (h *TeacherHandler) GetDashboard(c *gin.Context) {
	var query GradeQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	dashboard, err := h.dashboard.Get(c, query.ModelGrade())
	if err != nil {
		handleError(c, err, "GetDashboard")
		return
	}

	respond(c, dashboard, http.StatusOK)
}
