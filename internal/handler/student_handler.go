package handler

import (
	"bytes"
	"net/http"

	"classroom-market/internal/model"
	"classroom-market/internal/service"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	service service.StudentService
}

func NewStudentHandler(service service.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

func (h *StudentHandler) RegisterRoutes(public, teacher *gin.RouterGroup) {
	public.POST("students/login", h.Login)
	public.GET("students/:id/history", h.GetStudentDetail)

	teacher.GET("students", h.GetStudents)
	teacher.GET("students/export", h.ExportStudents)
	teacher.POST("students", h.CreateStudent)
	teacher.GET("students/:id", h.GetStudentDetail)
	teacher.PUT("students/:id", h.UpdateStudent)
	teacher.DELETE("students/:id", h.DeleteStudent)
	teacher.PUT("students/:id/tickets", h.SetTicketCount)
	teacher.POST("students/:id/tickets/grant", h.GrantTickets)
	teacher.POST("students/:id/tickets/revoke", h.RevokeTickets)
	teacher.POST("grades/:grade/tickets/grant", h.GrantTicketsToGrade)
}

func (h *StudentHandler) Login(c *gin.Context) {
	var req StudentLoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	student, err := h.service.Login(c, req.StudentID, req.Password)
	if err != nil {
		handleError(c, err, "StudentLogin")
		return
	}

	respond(c, student, http.StatusOK)
}

func (h *StudentHandler) GetStudents(c *gin.Context) {
	var query GradeQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	students, err := h.service.List(c, query.ModelGrade())
	if err != nil {
		handleError(c, err, "GetStudents")
		return
	}

	respond(c, students, http.StatusOK)
}

func (h *StudentHandler) GetStudentDetail(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	detail, err := h.service.GetDetail(c, id)
	if err != nil {
		handleError(c, err, "GetStudentDetail")
		return
	}

	respond(c, detail, http.StatusOK)
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, &model.Student{
		Name:        req.Name,
		Grade:       req.Grade,
		TicketCount: req.TicketCount,
		Password:    req.Password,
	})
	if err != nil {
		handleError(c, err, "CreateStudent")
		return
	}

	respond(c, created, http.StatusCreated)
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req UpdateStudentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.Update(c, id, model.UpdateStudentParams{
		Name:     req.Name,
		Grade:    req.Grade,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, err, "UpdateStudent")
		return
	}

	respond(c, updated, http.StatusOK)
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteStudent")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

func (h *StudentHandler) SetTicketCount(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req SetTicketCountRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.SetTicketCount(c, id, *req.TicketCount)
	if err != nil {
		handleError(c, err, "SetTicketCount")
		return
	}

	respond(c, updated, http.StatusOK)
}

func (h *StudentHandler) GrantTickets(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req TicketAmountRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.GrantTickets(c, id, req.Amount)
	if err != nil {
		handleError(c, err, "GrantTickets")
		return
	}

	respond(c, updated, http.StatusOK)
}

func (h *StudentHandler) RevokeTickets(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req TicketAmountRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	updated, err := h.service.RevokeTickets(c, id, req.Amount)
	if err != nil {
		handleError(c, err, "RevokeTickets")
		return
	}

	respond(c, updated, http.StatusOK)
}

func (h *StudentHandler) GrantTicketsToGrade(c *gin.Context) {
	grade, ok := ParamID(c, "grade")
	if !ok {
		return
	}
	var req TicketAmountRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	affected, err := h.service.GrantTicketsToGrade(c, model.Grade(grade), req.Amount)
	if err != nil {
		handleError(c, err, "GrantTicketsToGrade")
		return
	}

	respond(c, gin.H{"updated": affected}, http.StatusOK)
}

func (h *StudentHandler) ExportStudents(c *gin.Context) {
	var query GradeQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(c, query.ModelGrade(), &buf); err != nil {
		handleError(c, err, "ExportStudents")
		return
	}

	writeCSVAttachment(c, "students.csv", buf.Bytes())
}

func writeCSVAttachment(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	// the BOM lets spreadsheet apps detect UTF-8
	c.Data(http.StatusOK, "text/csv; charset=utf-8", append([]byte("\ufeff"), body...))
}
