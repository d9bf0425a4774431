package handler

import (
	"classroom-market/internal/model"

	validation "github.com/go-ozzo/ozzo-validation"
)

func gradeValues() []interface{} {
	out := make([]interface{}, 0, len(model.Grades))
	for _, g := range model.Grades {
		out = append(out, g)
	}
	return out
}

type PurchaseRequest struct {
	StudentID int `json:"student_id"`
	ItemID    int `json:"item_id"`
}

func (r *PurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.StudentID, validation.Required, validation.Min(1)),
		validation.Field(&r.ItemID, validation.Required, validation.Min(1)),
	)
}

type StudentLoginRequest struct {
	StudentID int    `json:"student_id"`
	Password  string `json:"password"`
}

func (r *StudentLoginRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.StudentID, validation.Required, validation.Min(1)),
		validation.Field(&r.Password, validation.Required),
	)
}

type TeacherLoginRequest struct {
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (r *TeacherLoginRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Password, validation.Required),
	)
}

type CreateStudentRequest struct {
	Name        string      `json:"name"`
	Grade       model.Grade `json:"grade"`
	TicketCount int         `json:"ticket_count"`
	Password    string      `json:"password"`
}

func (r *CreateStudentRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Grade, validation.Required, validation.In(gradeValues()...)),
		validation.Field(&r.TicketCount, validation.Min(0)),
		validation.Field(&r.Password, validation.Length(0, 100)),
	)
}

type UpdateStudentRequest struct {
	Name     *string      `json:"name"`
	Grade    *model.Grade `json:"grade"`
	Password *string      `json:"password"`
}

func (r *UpdateStudentRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Grade, validation.NilOrNotEmpty, validation.In(gradeValues()...)),
		validation.Field(&r.Password, validation.NilOrNotEmpty),
	)
}

type SetTicketCountRequest struct {
	TicketCount *int `json:"ticket_count"`
}

func (r *SetTicketCountRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.TicketCount, validation.NotNil, validation.Min(0)),
	)
}

type TicketAmountRequest struct {
	Amount int `json:"amount"`
}

func (r *TicketAmountRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Amount, validation.Required, validation.Min(1)),
	)
}

type CreateItemRequest struct {
	Name     string  `json:"name"`
	Cost     int     `json:"cost"`
	Quantity *int    `json:"quantity"`
	Link     *string `json:"link"`
	ImageURL *string `json:"image_url"`
}

func (r *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Cost, validation.Required, validation.Min(1)),
		validation.Field(&r.Quantity, validation.Min(0)),
	)
}

type UpdateItemRequest struct {
	Name     *string `json:"name"`
	Cost     *int    `json:"cost"`
	Quantity *int    `json:"quantity"`
	Link     *string `json:"link"`
	ImageURL *string `json:"image_url"`
}

func (r *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Cost, validation.Min(1)),
		validation.Field(&r.Quantity, validation.Min(0)),
	)
}

type SetDeliveredRequest struct {
	Delivered *bool `json:"delivered"`
}

func (r *SetDeliveredRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Delivered, validation.NotNil),
	)
}

type GradeQuery struct {
	Grade *int `form:"grade"`
}

func (q *GradeQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Grade, validation.In(3, 4, 5, 6)),
	)
}

// ModelGrade returns the grade filter or nil when none was given.
func (q *GradeQuery) ModelGrade() *model.Grade {
	if q.Grade == nil {
		return nil
	}
	g := model.Grade(*q.Grade)
	return &g
}

type PurchaseListQuery struct {
	Status string `form:"status"`
}

func (q *PurchaseListQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Status, validation.In("all", "pending", "delivered")),
	)
}
