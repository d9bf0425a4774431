package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"classroom-market/internal/cache"
	"classroom-market/internal/model"
	"classroom-market/internal/repository"
	apperrors "classroom-market/pkg/app_errors"
	"classroom-market/pkg/logger"

	"go.uber.org/zap"
)

type CartService interface {
	Get(ctx context.Context, studentID int) (*model.Cart, error)
	// AddItem adds one unit, never more than the item's current stock.
	AddItem(ctx context.Context, studentID, itemID int) (*model.Cart, error)
	RemoveItem(ctx context.Context, studentID, itemID int) (*model.Cart, error)
	Clear(ctx context.Context, studentID int) error
	// Checkout buys the cart one unit at a time and stops at the first
	// failure. Units already bought stay bought and leave the cart.
	Checkout(ctx context.Context, studentID int) (*model.CheckoutResult, error)
}

type CartServiceImpl struct {
	store           repository.LedgerStore
	carts           cache.CartStore
	purchaseService PurchaseService
	log             *zap.Logger
}

func NewCartService(store repository.LedgerStore, carts cache.CartStore, purchaseService PurchaseService) CartService {
	return &CartServiceImpl{
		store:           store,
		carts:           carts,
		purchaseService: purchaseService,
		log:             logger.WithComponent("cart"),
	}
}

func (s *CartServiceImpl) Get(ctx context.Context, studentID int) (*model.Cart, error) {
	if _, err := s.store.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	lines, err := s.carts.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, studentID, lines)
}

// view resolves item names and costs. Lines whose item no longer exists
// are dropped from the result.
func (s *CartServiceImpl) view(ctx context.Context, studentID int, lines map[int]int) (*model.Cart, error) {
	cart := &model.Cart{StudentID: studentID, Lines: []model.CartLine{}}
	for _, itemID := range sortedItemIDs(lines) {
		item, err := s.store.GetItem(ctx, itemID)
		if errors.Is(err, apperrors.ErrItemNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		cart.Lines = append(cart.Lines, model.CartLine{
			ItemID: item.ID,
			Name:   item.Name,
			Cost:   item.Cost,
			Units:  lines[itemID],
		})
	}
	cart.Recount()
	return cart, nil
}

func sortedItemIDs(lines map[int]int) []int {
	ids := make([]int, 0, len(lines))
	for id, units := range lines {
		if units > 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

func (s *CartServiceImpl) AddItem(ctx context.Context, studentID, itemID int) (*model.Cart, error) {
	if _, err := s.store.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.InStock() {
		return nil, apperrors.ErrSoldOut
	}

	lines, err := s.carts.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if lines[itemID]+1 > item.Quantity {
		return nil, fmt.Errorf("%w: only %d left", apperrors.ErrExceedsStock, item.Quantity)
	}
	lines[itemID]++

	if err := s.carts.Save(ctx, studentID, lines); err != nil {
		return nil, err
	}
	return s.view(ctx, studentID, lines)
}

func (s *CartServiceImpl) RemoveItem(ctx context.Context, studentID, itemID int) (*model.Cart, error) {
	lines, err := s.carts.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if lines[itemID] > 0 {
		lines[itemID]--
		if lines[itemID] == 0 {
			delete(lines, itemID)
		}
		if err := s.carts.Save(ctx, studentID, lines); err != nil {
			return nil, err
		}
	}
	return s.view(ctx, studentID, lines)
}

func (s *CartServiceImpl) Clear(ctx context.Context, studentID int) error {
	return s.carts.Clear(ctx, studentID)
}

func (s *CartServiceImpl) Checkout(ctx context.Context, studentID int) (*model.CheckoutResult, error) {
	student, err := s.store.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	lines, err := s.carts.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	cart, err := s.view(ctx, studentID, lines)
	if err != nil {
		return nil, err
	}
	if dropStaleLines(lines, cart) {
		s.saveAfterCheckout(ctx, studentID, lines, 0)
	}
	if cart.UnitCount == 0 {
		return nil, apperrors.ErrEmptyCart
	}
	if !student.CanAfford(cart.TotalCost) {
		return nil, fmt.Errorf("%w: cart costs %d, balance is %d", apperrors.ErrInsufficientTickets, cart.TotalCost, student.TicketCount)
	}

	result := &model.CheckoutResult{
		Purchased:      []model.PurchaseResult{},
		StudentBalance: student.TicketCount,
	}

checkout:
	for _, line := range cart.Lines {
		for u := 0; u < line.Units; u++ {
			res, err := s.purchaseService.Purchase(ctx, studentID, line.ItemID)
			if err != nil {
				result.Failure = &model.CheckoutFailure{
					ItemID: line.ItemID,
					Reason: err.Error(),
					Err:    err,
				}
				break checkout
			}
			result.Purchased = append(result.Purchased, *res)
			result.StudentBalance = res.StudentBalance

			lines[line.ItemID]--
			if lines[line.ItemID] <= 0 {
				delete(lines, line.ItemID)
			}
		}
	}

	if len(result.Purchased) > 0 {
		s.saveAfterCheckout(ctx, studentID, lines, len(result.Purchased))
	}
	if result.Failure != nil {
		s.log.Warn("checkout stopped early",
			zap.Int("student_id", studentID),
			zap.Int("purchased", len(result.Purchased)),
			zap.Int("item_id", result.Failure.ItemID),
			zap.Error(result.Failure.Err))
	}
	return result, nil
}

// dropStaleLines removes the lines view skipped because their item no
// longer exists, and reports whether any were removed.
func dropStaleLines(lines map[int]int, cart *model.Cart) bool {
	kept := make(map[int]bool, len(cart.Lines))
	for _, line := range cart.Lines {
		kept[line.ItemID] = true
	}
	dropped := false
	for itemID := range lines {
		if !kept[itemID] {
			delete(lines, itemID)
			dropped = true
		}
	}
	return dropped
}

func (s *CartServiceImpl) saveAfterCheckout(ctx context.Context, studentID int, lines map[int]int, purchased int) {
	if err := s.carts.Save(context.WithoutCancel(ctx), studentID, lines); err != nil {
		s.log.Error("failed to save cart after checkout",
			zap.Int("student_id", studentID),
			zap.Int("purchased", purchased),
			zap.Error(err))
	}
}
