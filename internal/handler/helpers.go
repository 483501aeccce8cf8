package handler

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/ayush2328/Exam-Portal/pkg/errors"
)

// formOrQuery mirrors the servlet container's getParameter: form fields
// first, query string as fallback.
func formOrQuery(c *gin.Context, name string) string {
	if v, ok := c.GetPostForm(name); ok {
		return v
	}
	return c.Query(name)
}

// writeError maps a service error onto the legacy {"error": ...} body.
// When includeCause is set, a store failure carries its underlying cause
// the way the original backend echoed exception messages.
func writeError(c *gin.Context, err error, includeCause bool) {
	appErr := appErrors.FromError(err)
	message := appErr.Message
	if includeCause && appErr.Code == appErrors.ErrDatabase.Code && appErr.Err != nil {
		message = appErr.Message + ": " + appErr.Err.Error()
	}
	c.JSON(appErr.Status, gin.H{"error": message})
}
