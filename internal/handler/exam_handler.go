package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ayush2328/Exam-Portal/internal/models"
	"github.com/ayush2328/Exam-Portal/internal/service"
)

// ExamService is the capability the exam endpoints require.
type ExamService interface {
	Subjects(ctx context.Context, sem int) ([]models.SubjectOption, error)
	AddSession(ctx context.Context, req service.AddExamSessionRequest) error
	SessionsBySemester(ctx context.Context, sem int) ([]models.ExamSession, error)
}

// ExamHandler serves the exam-session and subject endpoints. The response
// bodies are the legacy servlet wire contract and must not change shape.
type ExamHandler struct {
	service ExamService
}

// NewExamHandler constructs an exam handler.
func NewExamHandler(svc ExamService) *ExamHandler {
	return &ExamHandler{service: svc}
}

// AddExamSession handles POST /addExamSession.
func (h *ExamHandler) AddExamSession(c *gin.Context) {
	subjectCode := formOrQuery(c, "subjectCode")
	examDate := formOrQuery(c, "examDate")
	examTime := formOrQuery(c, "examTime")
	semesterParam := formOrQuery(c, "semester")

	if subjectCode == "" || examDate == "" || examTime == "" || semesterParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameters"})
		return
	}

	// A non-numeric semester gets the same body as an absent one; this
	// endpoint's only client-error shape is "Missing parameters".
	semester, err := strconv.Atoi(semesterParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameters"})
		return
	}

	req := service.AddExamSessionRequest{
		SubjectCode: subjectCode,
		ExamDate:    examDate,
		ExamTime:    examTime,
		Semester:    semester,
	}
	if err := h.service.AddSession(c.Request.Context(), req); err != nil {
		writeError(c, err, true)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Exam session added successfully"})
}

// GetSubjects handles GET /getSubjects?sem=<int>. An empty result is a
// success with an empty array.
func (h *ExamHandler) GetSubjects(c *gin.Context) {
	sem, err := strconv.Atoi(c.Query("sem"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sem parameter"})
		return
	}

	subjects, err := h.service.Subjects(c.Request.Context(), sem)
	if err != nil {
		writeError(c, err, false)
		return
	}

	c.JSON(http.StatusOK, subjects)
}

// GetExamSessions handles GET /getExamSessions?sem=<int>.
func (h *ExamHandler) GetExamSessions(c *gin.Context) {
	sem, err := strconv.Atoi(c.Query("sem"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sem parameter"})
		return
	}

	sessions, err := h.service.SessionsBySemester(c.Request.Context(), sem)
	if err != nil {
		writeError(c, err, false)
		return
	}

	c.JSON(http.StatusOK, sessions)
}
