package response

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"polaris-api/pkg/discord"
	"polaris-api/pkg/errors"
)

func NewOKResp(data any) Resp {
	return Resp{
		Message: MessageSuccess,
		Data:    data,
	}
}

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

func Unauthorized(c *gin.Context) {
	HttpError(c, errors.NewUnauthorizedHTTPError())
}

// Error answers err. Unknown errors become a 500 and, when d is set, a bug
// report.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	c.JSON(parseError(err, c, d))
}

func HttpError(c *gin.Context, err *errors.HTTPError) {
	c.JSON(parseError(err, c, nil))
}

// ErrorWithMap answers the mapped HTTPError for err, or falls back to Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			HttpError(c, httpErr)
			return
		}
	}
	Error(c, err, d)
}

// PanicError answers a recovered panic value.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	c.JSON(parseError(err, c, d))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	var (
		validationErr *errors.ValidationError
		collector     *errors.ValidationErrorCollector
		httpErr       *errors.HTTPError
	)

	switch {
	case stderrors.As(err, &validationErr):
		return http.StatusBadRequest, Resp{
			ErrorCode: validationErr.Code,
			Message:   validationErr.Error(),
		}
	case stderrors.As(err, &collector):
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    collector.Errors(),
		}
	case stderrors.As(err, &httpErr):
		status := httpErr.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		return status, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		}
	default:
		if d != nil && err != nil {
			reportBug(c, d, buildReport(c, err.Error(), captureStackTrace()))
		}
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}
