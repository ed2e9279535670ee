package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusClientClosedRequest is the nginx convention for a request the
// client abandoned. net/http has no name for it.
const StatusClientClosedRequest = 499

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}
