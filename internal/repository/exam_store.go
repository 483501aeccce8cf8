package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ayush2328/Exam-Portal/internal/models"
)

// ExamStore is the single point of contact with the persistent store. It
// owns no state beyond the shared database handle, which is safe for
// concurrent use across in-flight requests.
type ExamStore struct {
	db *sqlx.DB
}

// NewExamStore creates a store bound to the shared database handle.
func NewExamStore(db *sqlx.DB) *ExamStore {
	return &ExamStore{db: db}
}

// ListSubjectsBySemester returns subjects whose sem column matches exactly.
// No rows is an empty slice, not an error. Ordering is store-native.
func (s *ExamStore) ListSubjectsBySemester(ctx context.Context, sem int) ([]models.Subject, error) {
	const query = `SELECT subject_id, subject_name, subject_code, sem FROM subjects WHERE sem = $1`
	subjects := []models.Subject{}
	if err := s.db.SelectContext(ctx, &subjects, query, sem); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// InsertExamSession performs exactly one insert, stamping id and created_at
// here at the adapter boundary. It returns false when the write reports
// zero affected rows and propagates connectivity or constraint errors.
// Duplicates are not checked.
func (s *ExamStore) InsertExamSession(ctx context.Context, subjectCode, examDate, examTime string, semester int) (bool, error) {
	session := models.ExamSession{
		ID:          uuid.NewString(),
		SubjectCode: subjectCode,
		ExamDate:    examDate,
		ExamTime:    examTime,
		Semester:    semester,
		CreatedAt:   time.Now().UTC(),
	}

	const query = `INSERT INTO exam_sessions (id, subject_code, exam_date, exam_time, semester, created_at) VALUES (:id, :subject_code, :exam_date, :exam_time, :semester, :created_at)`
	result, err := s.db.NamedExecContext(ctx, query, session)
	if err != nil {
		return false, fmt.Errorf("insert exam session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert exam session: %w", err)
	}
	return affected > 0, nil
}

// ListExamSessionsBySemester returns every session scheduled for a semester.
func (s *ExamStore) ListExamSessionsBySemester(ctx context.Context, sem int) ([]models.ExamSession, error) {
	const query = `SELECT id, subject_code, exam_date, exam_time, semester, created_at FROM exam_sessions WHERE semester = $1`
	sessions := []models.ExamSession{}
	if err := s.db.SelectContext(ctx, &sessions, query, sem); err != nil {
		return nil, fmt.Errorf("list exam sessions: %w", err)
	}
	return sessions, nil
}

// ListStudents filters students on semester and branch. Both filters are
// opaque text: the enrollment system stores sem as text for students even
// though subjects carry it as an integer, and that inconsistency is
// deliberately preserved.
func (s *ExamStore) ListStudents(ctx context.Context, semester, branch string) ([]models.Student, error) {
	const query = `SELECT student_name, reg_no, course, branch, year, sem, pic, contact_no, email_id FROM students WHERE sem = $1 AND branch = $2`
	students := []models.Student{}
	if err := s.db.SelectContext(ctx, &students, query, semester, branch); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// GetStudentByRegNo returns the first student matching reg_no, or nil when
// none exists. Uniqueness of reg_no is assumed, not enforced.
func (s *ExamStore) GetStudentByRegNo(ctx context.Context, regNo string) (*models.Student, error) {
	const query = `SELECT student_name, reg_no, course, branch, year, sem, pic, contact_no, email_id FROM students WHERE reg_no = $1 LIMIT 1`
	var student models.Student
	if err := s.db.GetContext(ctx, &student, query, regNo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &student, nil
}
