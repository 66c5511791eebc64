package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondAppError memetakan jenis AppError ke HTTP status code.
// Mapping status code dimiliki oleh layer routing, bukan service.
func RespondAppError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch KindOf(err) {
	case KindValidation:
		code = http.StatusBadRequest
	case KindNotFound:
		code = http.StatusNotFound
	case KindVerification, KindStore:
		code = http.StatusInternalServerError
	}
	RespondError(c, code, err)
}
