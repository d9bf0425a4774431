package repository

import (
	"context"
	"sync"
	"time"

	"classroom-market/internal/model"
	apperrors "classroom-market/pkg/app_errors"
)

// MemoryLedgerStore keeps the ledger in process memory. Every method holds
// the store mutex for its whole read-check-write, which gives the
// Conditional* methods the same compare-and-set behavior as the SQL guard.
type MemoryLedgerStore struct {
	mu sync.Mutex

	students  map[int]model.Student
	items     map[int]model.Item
	purchases map[int]model.Purchase

	nextStudentID  int
	nextItemID     int
	nextPurchaseID int
}

func NewMemoryLedgerStore() *MemoryLedgerStore {
	return &MemoryLedgerStore{
		students:  make(map[int]model.Student),
		items:     make(map[int]model.Item),
		purchases: make(map[int]model.Purchase),
	}
}

// AddStudent stores a copy of student under a new id and returns it.
func (s *MemoryLedgerStore) AddStudent(student model.Student) *model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextStudentID++
	student.ID = s.nextStudentID
	now := time.Now().UTC()
	student.CreatedAt, student.UpdatedAt = now, now
	s.students[student.ID] = student
	return &student
}

// AddItem stores a copy of item under a new id and returns it.
func (s *MemoryLedgerStore) AddItem(item model.Item) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextItemID++
	item.ID = s.nextItemID
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	s.items[item.ID] = item
	return &item
}

// SetTicketCount overwrites a balance the way a teacher edit does.
func (s *MemoryLedgerStore) SetTicketCount(studentID int, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.TicketCount = count
	s.students[studentID] = student
	return nil
}

// UpdateItem applies fn to the stored item the way a teacher edit does.
func (s *MemoryLedgerStore) UpdateItem(itemID int, fn func(*model.Item)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return apperrors.ErrItemNotFound
	}
	fn(&item)
	item.UpdatedAt = time.Now().UTC()
	s.items[itemID] = item
	return nil
}

// SetDelivered flips the delivery flag of a purchase.
func (s *MemoryLedgerStore) SetDelivered(purchaseID int, delivered bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.purchases[purchaseID]
	if !ok {
		return apperrors.ErrPurchaseNotFound
	}
	p.IsDelivered = delivered
	s.purchases[purchaseID] = p
	return nil
}

// Purchases returns a snapshot of every stored purchase.
func (s *MemoryLedgerStore) Purchases() []model.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Purchase, 0, len(s.purchases))
	for _, p := range s.purchases {
		out = append(out, p)
	}
	return out
}

func (s *MemoryLedgerStore) GetItem(_ context.Context, itemID int) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return nil, apperrors.ErrItemNotFound
	}
	return &item, nil
}

func (s *MemoryLedgerStore) GetStudent(_ context.Context, studentID int) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &student, nil
}

func (s *MemoryLedgerStore) GetPurchase(_ context.Context, purchaseID int) (*model.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.purchases[purchaseID]
	if !ok {
		return nil, apperrors.ErrPurchaseNotFound
	}
	return &p, nil
}

func (s *MemoryLedgerStore) ConditionalDecrementStock(_ context.Context, itemID int, expectedMinimum int) (*model.Item, error) {
	if expectedMinimum < 1 {
		expectedMinimum = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok || item.Quantity < expectedMinimum {
		return nil, apperrors.ErrConditionNotMet
	}
	item.Quantity--
	item.UpdatedAt = time.Now().UTC()
	s.items[itemID] = item
	return &item, nil
}

func (s *MemoryLedgerStore) ConditionalDeductTickets(_ context.Context, studentID int, amount int) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[studentID]
	if !ok || student.TicketCount < amount {
		return nil, apperrors.ErrConditionNotMet
	}
	student.TicketCount -= amount
	student.UpdatedAt = time.Now().UTC()
	s.students[studentID] = student
	return &student, nil
}

func (s *MemoryLedgerStore) RestoreStock(_ context.Context, itemID int, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return apperrors.ErrItemNotFound
	}
	item.Quantity += amount
	item.UpdatedAt = time.Now().UTC()
	s.items[itemID] = item
	return nil
}

func (s *MemoryLedgerStore) RestoreTickets(_ context.Context, studentID int, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.TicketCount += amount
	student.UpdatedAt = time.Now().UTC()
	s.students[studentID] = student
	return nil
}

func (s *MemoryLedgerStore) RecordPurchase(_ context.Context, studentID, itemID, cost int, timestamp time.Time) (*model.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[studentID]; !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if _, ok := s.items[itemID]; !ok {
		return nil, apperrors.ErrItemNotFound
	}

	s.nextPurchaseID++
	p := model.Purchase{
		ID:        s.nextPurchaseID,
		StudentID: studentID,
		ItemID:    itemID,
		Cost:      cost,
		Timestamp: timestamp.UTC(),
	}
	s.purchases[p.ID] = p
	return &p, nil
}

func (s *MemoryLedgerStore) DeletePurchase(_ context.Context, purchaseID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.purchases[purchaseID]; !ok {
		return apperrors.ErrPurchaseNotFound
	}
	delete(s.purchases, purchaseID)
	return nil
}
