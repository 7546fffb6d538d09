package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-portfolio/internal/logging"
)

const (
	successMessage = "Email sent successfully"
	failureMessage = "Failed to send email"
)

// HTTPHandler exposes the relay as a JSON endpoint. Every failure in the
// delegation chain (malformed body, missing credentials, transport error)
// produces the same generic 500 body; the cause is logged server-side only.
func HTTPHandler(handler *SubmitHandler, logger logging.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = logging.NoOp()
	}

	return func(c *gin.Context) {
		var msg SubmitMessage
		if err := c.ShouldBindJSON(&msg); err != nil {
			logger.Error("contact.http.decode_failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": failureMessage})
			return
		}

		if err := handler.Execute(c.Request.Context(), msg); err != nil {
			logger.Error("contact.http.relay_failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": failureMessage})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": successMessage})
	}
}
