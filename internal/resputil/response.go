package resputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Response is the envelope of every JSON answer.
type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data"`
	Msg  string    `json:"msg"`
}

func wrapResponse(c *gin.Context, httpCode int, msg string, data any, code ErrorCode) {
	c.JSON(httpCode, Response[any]{
		Code: code,
		Data: data,
		Msg:  msg,
	})
}

func Success(c *gin.Context, data any) {
	wrapResponse(c, http.StatusOK, "", data, OK)
}

// Error answers with status 500 unless the code says otherwise.
func Error(c *gin.Context, msg string, errorCode ErrorCode) {
	wrapResponse(c, statusOf(errorCode), msg, nil, errorCode)
}

func HTTPError(c *gin.Context, httpCode int, msg string, errorCode ErrorCode) {
	wrapResponse(c, httpCode, msg, nil, errorCode)
}

func BadRequestError(c *gin.Context, msg string) {
	wrapResponse(c, http.StatusBadRequest, msg, nil, InvalidRequest)
}

func NotFoundError(c *gin.Context, msg string) {
	wrapResponse(c, http.StatusNotFound, msg, nil, NotFound)
}

// DBError maps a missing record to 404 and everything else to 500.
func DBError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFoundError(c, err.Error())
		return
	}
	Error(c, err.Error(), ServiceError)
}

func statusOf(code ErrorCode) int {
	switch code {
	case OK:
		return http.StatusOK
	case InvalidRequest:
		return http.StatusBadRequest
	case TokenExpired, TokenInvalid:
		return http.StatusUnauthorized
	case UserNotAllowed:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
