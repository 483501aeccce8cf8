package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/ayush2328/Exam-Portal/pkg/errors"
)

type admitCardServiceMock struct {
	pdf   []byte
	err   error
	calls int
}

func (m *admitCardServiceMock) RenderAdmitCard(_ context.Context, regNo string) ([]byte, error) {
	m.calls++
	return m.pdf, m.err
}

func TestAdmitCardSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &admitCardServiceMock{pdf: []byte("%PDF-1.3 fake")}
	h := NewAdmitCardHandler(mockSvc)

	c, w := newGetContext("/admitCard?regNo=RA221100")
	h.AdmitCard(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "admit_card_RA221100.pdf")
	assert.Equal(t, "%PDF-1.3 fake", w.Body.String())
}

func TestAdmitCardMissingRegNo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &admitCardServiceMock{}
	h := NewAdmitCardHandler(mockSvc)

	c, w := newGetContext("/admitCard")
	h.AdmitCard(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing regNo parameter"}`, w.Body.String())
	assert.Zero(t, mockSvc.calls)
}

func TestAdmitCardStudentNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &admitCardServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "Student not found")}
	h := NewAdmitCardHandler(mockSvc)

	c, w := newGetContext("/admitCard?regNo=NOPE")
	h.AdmitCard(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Student not found"}`, w.Body.String())
}
