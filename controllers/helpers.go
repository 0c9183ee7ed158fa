package controllers

import (
	"errors"
	"net/http"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps an application error onto its HTTP status. Unknown
// errors are reported as 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
