package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// envelopeError is the error object inside the wire envelope.
type envelopeError struct {
	Code    ErrorCode   `json:"code"`
	Details interface{} `json:"details"`
}

// ErrorEnvelope is the body every failed request answers with:
// {success:false, code, message, error:{code, details}}.
type ErrorEnvelope struct {
	Success bool          `json:"success"`
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Error   envelopeError `json:"error"`
}

// GinErrorHandler serializes AppErrors into the envelope. Debug controls
// whether internal error messages leak to the client.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	message := appErr.Message
	details := appErr.Details
	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", err.Error(), "path", c.Request.URL.Path)
		if !h.Debug {
			message = "Internal server error"
			details = nil
		} else if details == nil && appErr.Err != nil {
			details = appErr.Err.Error()
		}
	}

	c.JSON(appErr.HTTPCode, ErrorEnvelope{
		Success: false,
		Code:    appErr.HTTPCode,
		Message: message,
		Error: envelopeError{
			Code:    appErr.Code,
			Details: details,
		},
	})
}

var defaultHandler = &GinErrorHandler{}

// SetDebug flips detail exposure for the package-level handler; called
// once at boot from the config.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

// HandleError writes err through the package-level handler.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}
