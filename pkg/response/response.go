package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusCoder is implemented by errors that know their HTTP status
// (see pkg/errors.HTTPError).
type statusCoder interface {
	StatusCode() int
}

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

// Error sends an error response. The status code is taken from the error
// when it implements StatusCode(); otherwise 400 is used.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	status := http.StatusBadRequest
	if sc, ok := err.(statusCoder); ok {
		status = sc.StatusCode()
	}

	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error without leaking details.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// NotFound sends 404 response.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: 404,
		Message:   message,
	})
}
