package service

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"classroom-market/internal/model"
	"classroom-market/internal/repository"
	apperrors "classroom-market/pkg/app_errors"
)

type StudentService interface {
	List(ctx context.Context, grade *model.Grade) ([]*model.Student, error)
	GetByID(ctx context.Context, id int) (*model.Student, error)
	GetDetail(ctx context.Context, id int) (*model.StudentDetail, error)
	Create(ctx context.Context, student *model.Student) (*model.Student, error)
	Update(ctx context.Context, id int, params model.UpdateStudentParams) (*model.Student, error)
	Delete(ctx context.Context, id int) error

	SetTicketCount(ctx context.Context, id int, count int) (*model.Student, error)
	GrantTickets(ctx context.Context, id int, amount int) (*model.Student, error)
	// RevokeTickets subtracts amount, stopping at zero.
	RevokeTickets(ctx context.Context, id int, amount int) (*model.Student, error)
	GrantTicketsToGrade(ctx context.Context, grade model.Grade, amount int) (int64, error)

	Login(ctx context.Context, id int, password string) (*model.Student, error)
	ExportCSV(ctx context.Context, grade *model.Grade, w io.Writer) error
}

type StudentServiceImpl struct {
	repo            repository.StudentRepository
	purchaseRepo    repository.PurchaseRepository
	defaultPassword string
}

func NewStudentService(repo repository.StudentRepository, purchaseRepo repository.PurchaseRepository, defaultPassword string) StudentService {
	return &StudentServiceImpl{
		repo:            repo,
		purchaseRepo:    purchaseRepo,
		defaultPassword: defaultPassword,
	}
}

func (s *StudentServiceImpl) List(ctx context.Context, grade *model.Grade) ([]*model.Student, error) {
	if grade != nil && !grade.IsValid() {
		return nil, fmt.Errorf("%w: grade %d", apperrors.ErrInvalidInput, *grade)
	}
	return s.repo.List(ctx, grade)
}

func (s *StudentServiceImpl) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentServiceImpl) GetDetail(ctx context.Context, id int) (*model.StudentDetail, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.ListByStudentID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.StudentDetail{Student: student, Purchases: purchases}, nil
}

func (s *StudentServiceImpl) Create(ctx context.Context, student *model.Student) (*model.Student, error) {
	if !student.Grade.IsValid() {
		return nil, fmt.Errorf("%w: grade %d", apperrors.ErrInvalidInput, student.Grade)
	}
	if student.TicketCount < 0 {
		return nil, fmt.Errorf("%w: ticket_count must not be negative", apperrors.ErrInvalidInput)
	}
	if student.Password == "" {
		student.Password = s.defaultPassword
	}
	return s.repo.Create(ctx, student)
}

func (s *StudentServiceImpl) Update(ctx context.Context, id int, params model.UpdateStudentParams) (*model.Student, error) {
	if params.Grade != nil && !params.Grade.IsValid() {
		return nil, fmt.Errorf("%w: grade %d", apperrors.ErrInvalidInput, *params.Grade)
	}
	return s.repo.Update(ctx, id, params)
}

func (s *StudentServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *StudentServiceImpl) SetTicketCount(ctx context.Context, id int, count int) (*model.Student, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: ticket_count must not be negative", apperrors.ErrInvalidInput)
	}
	return s.repo.SetTicketCount(ctx, id, count)
}

func (s *StudentServiceImpl) GrantTickets(ctx context.Context, id int, amount int) (*model.Student, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput)
	}
	return s.repo.AddTickets(ctx, id, amount)
}

func (s *StudentServiceImpl) RevokeTickets(ctx context.Context, id int, amount int) (*model.Student, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput)
	}
	return s.repo.RemoveTicketsClamped(ctx, id, amount)
}

func (s *StudentServiceImpl) GrantTicketsToGrade(ctx context.Context, grade model.Grade, amount int) (int64, error) {
	if !grade.IsValid() {
		return 0, fmt.Errorf("%w: grade %d", apperrors.ErrInvalidInput, grade)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput)
	}
	return s.repo.AddTicketsToGrade(ctx, grade, amount)
}

// Login compares plaintext passwords.
func (s *StudentServiceImpl) Login(ctx context.Context, id int, password string) (*model.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student.Password != password {
		return nil, apperrors.ErrInvalidPassword
	}
	return student, nil
}

var studentCSVHeader = []string{"id", "name", "grade", "ticket_count"}

func (s *StudentServiceImpl) ExportCSV(ctx context.Context, grade *model.Grade, w io.Writer) error {
	students, err := s.List(ctx, grade)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(students))
	for _, st := range students {
		rows = append(rows, []string{
			strconv.Itoa(st.ID),
			st.Name,
			strconv.Itoa(int(st.Grade)),
			strconv.Itoa(st.TicketCount),
		})
	}
	return writeCSV(w, studentCSVHeader, rows)
}
