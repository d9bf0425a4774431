package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"classroom-market/internal/model"
	apperrors "classroom-market/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) (*model.Student, error)
	List(ctx context.Context, grade *model.Grade) ([]*model.Student, error)
	FindByID(ctx context.Context, id int) (*model.Student, error)
	Update(ctx context.Context, id int, params model.UpdateStudentParams) (*model.Student, error)
	Delete(ctx context.Context, id int) error

	// Ticket balance
	SetTicketCount(ctx context.Context, id int, count int) (*model.Student, error)
	AddTickets(ctx context.Context, id int, amount int) (*model.Student, error)
	RemoveTicketsClamped(ctx context.Context, id int, amount int) (*model.Student, error)
	AddTicketsToGrade(ctx context.Context, grade model.Grade, amount int) (int64, error)
	DeductTicketsIfAvailable(ctx context.Context, id int, amount int) (*model.Student, error)

	// Stats
	GradeStats(ctx context.Context) ([]model.GradeStats, error)
	TopByTickets(ctx context.Context, grade *model.Grade) (*model.Student, error)
}

type StudentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) StudentRepository {
	return &StudentRepositoryImpl{
		pool: pool,
	}
}

const studentColumns = `id, name, grade, ticket_count, password, created_at, updated_at`

func scanStudent(row pgx.Row) (*model.Student, error) {
	var student model.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Grade,
		&student.TicketCount,
		&student.Password,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, translatePgError(err)
	}
	return &student, nil
}

func (r *StudentRepositoryImpl) Create(ctx context.Context, student *model.Student) (*model.Student, error) {
	query := `
		INSERT INTO students (name, grade, ticket_count, password)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + studentColumns

	return scanStudent(r.pool.QueryRow(ctx, query,
		student.Name, student.Grade, student.TicketCount, student.Password,
	))
}

func (r *StudentRepositoryImpl) List(ctx context.Context, grade *model.Grade) ([]*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	args := []interface{}{}
	if grade != nil {
		query += ` WHERE grade = $1 ORDER BY name`
		args = append(args, *grade)
	} else {
		query += ` ORDER BY grade, name`
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*model.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *StudentRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(r.pool.QueryRow(ctx, query, id))
}

func (r *StudentRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateStudentParams) (*model.Student, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if params.Grade != nil {
		sets = append(sets, fmt.Sprintf("grade = $%d", argPos))
		args = append(args, *params.Grade)
		argPos++
	}

	if params.Password != nil {
		sets = append(sets, fmt.Sprintf("password = $%d", argPos))
		args = append(args, *params.Password)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE students
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, studentColumns)

	return scanStudent(r.pool.QueryRow(ctx, query, args...))
}

func (r *StudentRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func (r *StudentRepositoryImpl) SetTicketCount(ctx context.Context, id int, count int) (*model.Student, error) {
	query := `
		UPDATE students
		SET ticket_count = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + studentColumns

	return scanStudent(r.pool.QueryRow(ctx, query, count, time.Now().UTC(), id))
}

// AddTickets is an unconditional additive update. It serves teacher grants
// and purchase compensation alike.
func (r *StudentRepositoryImpl) AddTickets(ctx context.Context, id int, amount int) (*model.Student, error) {
	query := `
		UPDATE students
		SET ticket_count = ticket_count + $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + studentColumns

	return scanStudent(r.pool.QueryRow(ctx, query, amount, time.Now().UTC(), id))
}

func (r *StudentRepositoryImpl) RemoveTicketsClamped(ctx context.Context, id int, amount int) (*model.Student, error) {
	query := `
		UPDATE students
		SET ticket_count = GREATEST(ticket_count - $1, 0), updated_at = $2
		WHERE id = $3
		RETURNING ` + studentColumns

	return scanStudent(r.pool.QueryRow(ctx, query, amount, time.Now().UTC(), id))
}

func (r *StudentRepositoryImpl) AddTicketsToGrade(ctx context.Context, grade model.Grade, amount int) (int64, error) {
	query := `
		UPDATE students
		SET ticket_count = ticket_count + $1, updated_at = $2
		WHERE grade = $3
	`
	result, err := r.pool.Exec(ctx, query, amount, time.Now().UTC(), grade)
	if err != nil {
		return 0, translatePgError(err)
	}
	return result.RowsAffected(), nil
}

// DeductTicketsIfAvailable subtracts amount only while the stored balance
// covers it. The guard and the write are a single statement, so concurrent
// callers can never drive the balance negative.
func (r *StudentRepositoryImpl) DeductTicketsIfAvailable(ctx context.Context, id int, amount int) (*model.Student, error) {
	query := `
		UPDATE students
		SET ticket_count = ticket_count - $1, updated_at = $2
		WHERE id = $3 AND ticket_count >= $1
		RETURNING ` + studentColumns

	student, err := scanStudent(r.pool.QueryRow(ctx, query, amount, time.Now().UTC(), id))
	if errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, apperrors.ErrConditionNotMet
	}
	return student, err
}

func (r *StudentRepositoryImpl) GradeStats(ctx context.Context) ([]model.GradeStats, error) {
	query := `
		SELECT grade, COUNT(*), COALESCE(SUM(ticket_count), 0)
		FROM students
		GROUP BY grade
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byGrade := make(map[model.Grade]model.GradeStats)
	for rows.Next() {
		var s model.GradeStats
		if err := rows.Scan(&s.Grade, &s.StudentCount, &s.TotalTickets); err != nil {
			return nil, err
		}
		byGrade[s.Grade] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// every grade is reported, empty ones with zero counts
	stats := make([]model.GradeStats, 0, len(model.Grades))
	for _, g := range model.Grades {
		s := byGrade[g]
		s.Grade = g
		stats = append(stats, s)
	}
	return stats, nil
}

func (r *StudentRepositoryImpl) TopByTickets(ctx context.Context, grade *model.Grade) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	args := []interface{}{}
	if grade != nil {
		query += ` WHERE grade = $1`
		args = append(args, *grade)
	}
	query += ` ORDER BY ticket_count DESC, name LIMIT 1`

	return scanStudent(r.pool.QueryRow(ctx, query, args...))
}
