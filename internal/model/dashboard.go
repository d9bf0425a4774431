package model

type GradeStats struct {
	Grade        Grade `json:"grade"`
	StudentCount int   `json:"student_count"`
	TotalTickets int   `json:"total_tickets"`
}

type PopularItem struct {
	ItemID        int    `json:"item_id"`
	ItemName      string `json:"item_name"`
	PurchaseCount int    `json:"purchase_count"`
}

type Dashboard struct {
	StudentCount      int           `json:"student_count"`
	TotalTickets      int           `json:"total_tickets"`
	Grades            []GradeStats  `json:"grades"`
	PopularItems      []PopularItem `json:"popular_items"`
	TopStudent        *Student      `json:"top_student,omitempty"`
	TotalPurchases    int           `json:"total_purchases"`
	PendingDeliveries int           `json:"pending_deliveries"`
}
