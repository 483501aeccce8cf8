package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ayush2328/Exam-Portal/internal/models"
)

// StudentService is the capability the student endpoints require.
type StudentService interface {
	Students(ctx context.Context, semester, branch string) ([]models.Student, error)
	StudentByRegNo(ctx context.Context, regNo string) (*models.Student, error)
}

// StudentHandler serves read-only student lookups backing the admit-card
// form.
type StudentHandler struct {
	service StudentService
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(svc StudentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// GetStudents handles GET /getStudents?semester=<text>&branch=<text>.
// Both filters are opaque text, matching the enrollment records exactly.
func (h *StudentHandler) GetStudents(c *gin.Context) {
	semester := c.Query("semester")
	branch := c.Query("branch")
	if semester == "" || branch == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameters"})
		return
	}

	students, err := h.service.Students(c.Request.Context(), semester, branch)
	if err != nil {
		writeError(c, err, false)
		return
	}

	c.JSON(http.StatusOK, students)
}

// GetStudent handles GET /getStudent?regNo=<text>.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	regNo := c.Query("regNo")
	if regNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing regNo parameter"})
		return
	}

	student, err := h.service.StudentByRegNo(c.Request.Context(), regNo)
	if err != nil {
		writeError(c, err, false)
		return
	}

	c.JSON(http.StatusOK, student)
}
