package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"nexora.lk/campuscore/pkg/apperror"
)

// Envelope is the wire shape every endpoint answers with.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK writes a success envelope with an optional message.
func OK(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Envelope{Success: true, Message: message, Data: data})
}

// List writes a success envelope carrying a collection and its count.
func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Count: &count, Data: data})
}

// Error writes a failure envelope with the status derived from the error.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, Envelope{Success: false, Message: err.Error()})
}

// BadRequest writes a failure envelope with an explicit message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

// GetAccountID retrieves the authenticated account ID from the context
func GetAccountID(c *gin.Context) (uuid.UUID, error) {
	idStr, exists := c.Get("account_id")
	if !exists {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	accountID, err := uuid.Parse(idStr.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	return accountID, nil
}
