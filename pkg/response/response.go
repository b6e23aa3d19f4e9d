package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends 400 with the error message. errs carries per-field details.
func Error(c *gin.Context, err error, errs map[string]string) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ErrorCodeBadRequest,
		Message:   err.Error(),
		Errors:    errs,
	})
}

// TooManyRequests sends 429 and aborts the handler chain.
func TooManyRequests(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: ErrorCodeTooManyRequests,
		Message:   err.Error(),
	})
}

// InternalError sends 500 without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 and aborts the handler chain.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}
