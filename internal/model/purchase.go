package model

import "time"

// Purchase records one unit bought by a student. Cost is the ticket price
// paid at purchase time and is what a cancellation refunds.
type Purchase struct {
	ID          int       `json:"id" db:"id"`
	StudentID   int       `json:"student_id" db:"student_id"`
	ItemID      int       `json:"item_id" db:"item_id"`
	Cost        int       `json:"cost" db:"cost"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
	IsDelivered bool      `json:"is_delivered" db:"is_delivered"`
}

// PurchaseDetail joins a purchase with the names shown in history and delivery lists.
type PurchaseDetail struct {
	Purchase
	StudentName  string `json:"student_name"`
	StudentGrade Grade  `json:"student_grade"`
	ItemName     string `json:"item_name"`
	ItemCost     int    `json:"item_cost"`
}

// DeliveryFilter selects purchases by delivery state.
type DeliveryFilter string

const (
	DeliveryFilterAll       DeliveryFilter = "all"
	DeliveryFilterPending   DeliveryFilter = "pending"
	DeliveryFilterDelivered DeliveryFilter = "delivered"
)

func (f DeliveryFilter) IsValid() bool {
	switch f {
	case DeliveryFilterAll, DeliveryFilterPending, DeliveryFilterDelivered:
		return true
	}
	return false
}

// PurchaseResult is returned by a successful single-unit purchase.
type PurchaseResult struct {
	PurchaseID     int `json:"purchase_id"`
	ItemID         int `json:"item_id"`
	StudentBalance int `json:"student_balance"`
	ItemQuantity   int `json:"item_quantity"`
}

// PurchaseRequest is the body of a single-unit purchase.
type PurchaseRequest struct {
	StudentID int `json:"student_id" binding:"required"`
	ItemID    int `json:"item_id" binding:"required"`
}
