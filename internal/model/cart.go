package model

// CartLine is one item in a cart with the number of units wanted.
type CartLine struct {
	ItemID int    `json:"item_id"`
	Name   string `json:"name"`
	Cost   int    `json:"cost"`
	Units  int    `json:"units"`
}

type Cart struct {
	StudentID int        `json:"student_id"`
	Lines     []CartLine `json:"lines"`
	TotalCost int        `json:"total_cost"`
	UnitCount int        `json:"unit_count"`
}

// Recount refreshes TotalCost and UnitCount from Lines.
func (c *Cart) Recount() {
	c.TotalCost, c.UnitCount = 0, 0
	for _, l := range c.Lines {
		c.TotalCost += l.Cost * l.Units
		c.UnitCount += l.Units
	}
}

// CheckoutResult reports how far a multi-unit checkout got. Failure is nil
// when every unit was purchased.
type CheckoutResult struct {
	Purchased      []PurchaseResult `json:"purchased"`
	StudentBalance int              `json:"student_balance"`
	Failure        *CheckoutFailure `json:"failure,omitempty"`
}

type CheckoutFailure struct {
	ItemID int    `json:"item_id"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}
