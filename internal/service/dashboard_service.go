package service

import (
	"context"
	"errors"
	"fmt"

	"classroom-market/internal/model"
	"classroom-market/internal/repository"
	apperrors "classroom-market/pkg/app_errors"
)

const popularItemLimit = 3

type DashboardService interface {
	// Get builds the teacher overview. A non-nil grade narrows the popular
	// items and the top student to that grade.
	Get(ctx context.Context, grade *model.Grade) (*model.Dashboard, error)
}

type DashboardServiceImpl struct {
	studentRepo  repository.StudentRepository
	purchaseRepo repository.PurchaseRepository
}

func NewDashboardService(studentRepo repository.StudentRepository, purchaseRepo repository.PurchaseRepository) DashboardService {
	return &DashboardServiceImpl{
		studentRepo:  studentRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (s *DashboardServiceImpl) Get(ctx context.Context, grade *model.Grade) (*model.Dashboard, error) {
	if grade != nil && !grade.IsValid() {
		return nil, fmt.Errorf("%w: grade %d", apperrors.ErrInvalidInput, *grade)
	}

	stats, err := s.studentRepo.GradeStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("grade stats: %w", err)
	}

	d := &model.Dashboard{Grades: stats}
	for _, g := range stats {
		d.StudentCount += g.StudentCount
		d.TotalTickets += g.TotalTickets
	}

	d.PopularItems, err = s.purchaseRepo.PopularItems(ctx, grade, popularItemLimit)
	if err != nil {
		return nil, fmt.Errorf("popular items: %w", err)
	}

	top, err := s.studentRepo.TopByTickets(ctx, grade)
	switch {
	case err == nil:
		d.TopStudent = top
	case !errors.Is(err, apperrors.ErrStudentNotFound):
		return nil, fmt.Errorf("top student: %w", err)
	}

	if d.TotalPurchases, err = s.purchaseRepo.Count(ctx, model.DeliveryFilterAll); err != nil {
		return nil, fmt.Errorf("count purchases: %w", err)
	}
	if d.PendingDeliveries, err = s.purchaseRepo.Count(ctx, model.DeliveryFilterPending); err != nil {
		return nil, fmt.Errorf("count pending deliveries: %w", err)
	}
	return d, nil
}
