package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ayush2328/Exam-Portal/internal/models"
	appErrors "github.com/ayush2328/Exam-Portal/pkg/errors"
)

type examStore interface {
	ListSubjectsBySemester(ctx context.Context, sem int) ([]models.Subject, error)
	InsertExamSession(ctx context.Context, subjectCode, examDate, examTime string, semester int) (bool, error)
	ListExamSessionsBySemester(ctx context.Context, sem int) ([]models.ExamSession, error)
}

// AddExamSessionRequest carries the validated parameters of one insert.
// Dates and times are opaque text, exactly as the legacy form sent them.
// Semester carries no validation tag: any parseable integer is accepted,
// zero included, and presence is checked on the raw parameter at the
// handler.
type AddExamSessionRequest struct {
	SubjectCode string `validate:"required"`
	ExamDate    string `validate:"required"`
	ExamTime    string `validate:"required"`
	Semester    int
}

// ExamService orchestrates subject lookups and exam-session writes.
type ExamService struct {
	store     examStore
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExamService constructs the exam service.
func NewExamService(store examStore, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamService{store: store, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// Subjects returns the caller-facing subject options for a semester. An
// empty semester is a success with an empty slice.
func (s *ExamService) Subjects(ctx context.Context, sem int) ([]models.SubjectOption, error) {
	cacheKey := fmt.Sprintf("subjects:sem:%d", sem)
	options := []models.SubjectOption{}
	if s.cache.Enabled() && s.cache.Get(ctx, cacheKey, &options) {
		return options, nil
	}

	start := time.Now()
	subjects, err := s.store.ListSubjectsBySemester(ctx, sem)
	s.metrics.ObserveDBQuery("list_subjects", time.Since(start))
	if err != nil {
		s.logger.Error("failed to fetch subjects", zap.Int("sem", sem), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, appErrors.ErrDatabase.Message)
	}

	options = make([]models.SubjectOption, 0, len(subjects))
	for _, subject := range subjects {
		options = append(options, models.SubjectOption{Code: subject.SubjectCode, Name: subject.SubjectName})
	}

	s.cache.Set(ctx, cacheKey, options)
	s.logger.Debug("subjects fetched", zap.Int("sem", sem), zap.Int("count", len(options)))
	return options, nil
}

// AddSession performs the single exam-session insert. Duplicates are
// permitted; two concurrent inserts of the same tuple both succeed.
func (s *ExamService) AddSession(ctx context.Context, req AddExamSessionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing parameters")
	}

	start := time.Now()
	ok, err := s.store.InsertExamSession(ctx, req.SubjectCode, req.ExamDate, req.ExamTime, req.Semester)
	s.metrics.ObserveDBQuery("insert_exam_session", time.Since(start))
	if err != nil {
		s.logger.Error("failed to add exam session", zap.String("subject_code", req.SubjectCode), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, appErrors.ErrDatabase.Message)
	}
	if !ok {
		s.logger.Error("exam session insert affected no rows", zap.String("subject_code", req.SubjectCode))
		return appErrors.ErrWriteFailed
	}

	s.logger.Info("exam session added", zap.String("subject_code", req.SubjectCode), zap.Int("semester", req.Semester))
	return nil
}

// SessionsBySemester lists the scheduled sessions for a semester.
func (s *ExamService) SessionsBySemester(ctx context.Context, sem int) ([]models.ExamSession, error) {
	start := time.Now()
	sessions, err := s.store.ListExamSessionsBySemester(ctx, sem)
	s.metrics.ObserveDBQuery("list_exam_sessions", time.Since(start))
	if err != nil {
		s.logger.Error("failed to fetch exam sessions", zap.Int("sem", sem), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, appErrors.ErrDatabase.Message)
	}
	return sessions, nil
}
