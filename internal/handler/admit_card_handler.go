package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdmitCardService is the capability the admit-card endpoint requires.
type AdmitCardService interface {
	RenderAdmitCard(ctx context.Context, regNo string) ([]byte, error)
}

// AdmitCardHandler streams the rendered hall ticket.
type AdmitCardHandler struct {
	service AdmitCardService
}

// NewAdmitCardHandler constructs an admit-card handler.
func NewAdmitCardHandler(svc AdmitCardService) *AdmitCardHandler {
	return &AdmitCardHandler{service: svc}
}

// AdmitCard handles GET /admitCard?regNo=<text>.
func (h *AdmitCardHandler) AdmitCard(c *gin.Context) {
	regNo := c.Query("regNo")
	if regNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing regNo parameter"})
		return
	}

	pdf, err := h.service.RenderAdmitCard(c.Request.Context(), regNo)
	if err != nil {
		writeError(c, err, false)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="admit_card_`+regNo+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
