package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ayush2328/Exam-Portal/internal/models"
	appErrors "github.com/ayush2328/Exam-Portal/pkg/errors"
	"github.com/ayush2328/Exam-Portal/pkg/export"
)

type studentStore interface {
	ListStudents(ctx context.Context, semester, branch string) ([]models.Student, error)
	GetStudentByRegNo(ctx context.Context, regNo string) (*models.Student, error)
	ListExamSessionsBySemester(ctx context.Context, sem int) ([]models.ExamSession, error)
}

type admitCardRenderer interface {
	Render(data export.AdmitCardData) ([]byte, error)
}

// AdmitCardService resolves students and assembles admit cards.
type AdmitCardService struct {
	store    studentStore
	renderer admitCardRenderer
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewAdmitCardService constructs the admit-card service.
func NewAdmitCardService(store studentStore, renderer admitCardRenderer, metrics *MetricsService, logger *zap.Logger) *AdmitCardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdmitCardService{store: store, renderer: renderer, metrics: metrics, logger: logger}
}

// Students lists students for a semester/branch pair. Both filters are
// opaque text; an unknown pair is a success with an empty slice.
func (s *AdmitCardService) Students(ctx context.Context, semester, branch string) ([]models.Student, error) {
	start := time.Now()
	students, err := s.store.ListStudents(ctx, semester, branch)
	s.metrics.ObserveDBQuery("list_students", time.Since(start))
	if err != nil {
		s.logger.Error("failed to fetch students", zap.String("sem", semester), zap.String("branch", branch), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, appErrors.ErrDatabase.Message)
	}
	return students, nil
}

// StudentByRegNo resolves a single student by registration number.
func (s *AdmitCardService) StudentByRegNo(ctx context.Context, regNo string) (*models.Student, error) {
	start := time.Now()
	student, err := s.store.GetStudentByRegNo(ctx, regNo)
	s.metrics.ObserveDBQuery("get_student", time.Since(start))
	if err != nil {
		s.logger.Error("failed to fetch student", zap.String("reg_no", regNo), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, appErrors.ErrDatabase.Message)
	}
	if student == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
	}
	return student, nil
}

// AdmitCard assembles the student record and their semester's exam
// schedule. A student whose sem field does not parse as an integer gets a
// card with an empty schedule: sessions are keyed by integer semester while
// the enrollment system records student sem as free text.
func (s *AdmitCardService) AdmitCard(ctx context.Context, regNo string) (*models.AdmitCard, error) {
	student, err := s.StudentByRegNo(ctx, regNo)
	if err != nil {
		return nil, err
	}

	sessions := []models.ExamSession{}
	if sem, convErr := strconv.Atoi(student.Sem); convErr == nil {
		start := time.Now()
		sessions, err = s.store.ListExamSessionsBySemester(ctx, sem)
		s.metrics.ObserveDBQuery("list_exam_sessions", time.Since(start))
		if err != nil {
			s.logger.Error("failed to fetch exam schedule", zap.String("reg_no", regNo), zap.Error(err))
			return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, appErrors.ErrDatabase.Message)
		}
	} else {
		s.logger.Warn("student sem is not numeric, rendering empty schedule",
			zap.String("reg_no", regNo), zap.String("sem", student.Sem))
	}

	return &models.AdmitCard{Student: *student, Sessions: sessions}, nil
}

// RenderAdmitCard produces the hall-ticket PDF for a student.
func (s *AdmitCardService) RenderAdmitCard(ctx context.Context, regNo string) ([]byte, error) {
	card, err := s.AdmitCard(ctx, regNo)
	if err != nil {
		return nil, err
	}

	data := export.AdmitCardData{
		StudentName: card.Student.StudentName,
		RegNo:       card.Student.RegNo,
		Course:      card.Student.Course,
		Branch:      card.Student.Branch,
		Year:        card.Student.Year,
		Sem:         card.Student.Sem,
		Exams:       make([]export.ExamRow, 0, len(card.Sessions)),
	}
	for _, session := range card.Sessions {
		data.Exams = append(data.Exams, export.ExamRow{
			SubjectCode: session.SubjectCode,
			ExamDate:    session.ExamDate,
			ExamTime:    session.ExamTime,
		})
	}

	pdf, err := s.renderer.Render(data)
	if err != nil {
		s.logger.Error("failed to render admit card", zap.String("reg_no", regNo), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render admit card")
	}
	return pdf, nil
}
