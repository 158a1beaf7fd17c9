package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "poster-events/pkg/errors"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends the error envelope. An *errors.HTTPError in the chain decides the
// status and message; anything else is reported as an internal error.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = pkgErrors.ErrInternalServerError
	}

	c.JSON(httpErr.Code, ErrorResp{Error: httpErr.Message})
}

// InternalError sends 500 without exposing err.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}
