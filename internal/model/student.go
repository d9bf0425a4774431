package model

import "time"

// Grade is a school year; only the values in Grades are accepted.
type Grade int

var Grades = []Grade{3, 4, 5, 6}

func (g Grade) IsValid() bool {
	for _, v := range Grades {
		if g == v {
			return true
		}
	}
	return false
}

// Student is a roster entry holding a ticket balance.
type Student struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Grade       Grade     `json:"grade" db:"grade"`
	TicketCount int       `json:"ticket_count" db:"ticket_count"`
	Password    string    `json:"-" db:"password"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CanAfford reports whether the current balance covers cost.
func (s *Student) CanAfford(cost int) bool {
	return s.TicketCount >= cost
}

type UpdateStudentParams struct {
	Name     *string
	Grade    *Grade
	Password *string
}

// StudentDetail is a student together with their purchase history, newest first.
type StudentDetail struct {
	Student   *Student          `json:"student"`
	Purchases []*PurchaseDetail `json:"purchases"`
}
