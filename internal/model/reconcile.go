package model

import "time"

type ReconcileKind string

const (
	// ReconcileKindCompensation follows a purchase whose compensating writes failed.
	ReconcileKindCompensation ReconcileKind = "purchase_compensation"
	// ReconcileKindReversal follows a cancellation that did not fully apply.
	ReconcileKindReversal ReconcileKind = "cancel_reversal"
)

type ReconcileAction string

const (
	ReconcileRestoreStock   ReconcileAction = "restore_stock"
	ReconcileRestoreTickets ReconcileAction = "restore_tickets"
	ReconcileDeletePurchase ReconcileAction = "delete_purchase"
)

// ReconcileStep is one write that still has to be applied to bring the
// ledger back in line. Amount is unused for ReconcileDeletePurchase.
type ReconcileStep struct {
	Action ReconcileAction `json:"action"`
	Amount int             `json:"amount,omitempty"`
}

// ReconcileTask carries the outstanding steps of a failed compensation or
// reversal to the reconcile worker.
type ReconcileTask struct {
	ID         string          `json:"id"`
	Kind       ReconcileKind   `json:"kind"`
	StudentID  int             `json:"student_id"`
	ItemID     int             `json:"item_id"`
	PurchaseID int             `json:"purchase_id,omitempty"`
	Steps      []ReconcileStep `json:"steps"`
	Cause      string          `json:"cause"`
	// DoubleRefund marks a reversal whose purchase was removed by someone
	// else while its refunds ran. Those refunds need a manual check.
	DoubleRefund bool      `json:"double_refund,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
