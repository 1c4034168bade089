package handlers

import (
	"net/http"

	"biotrack/internal/service"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch service.KindOf(err) {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindAuthentication:
		return http.StatusUnauthorized
	case service.KindConflict:
		return http.StatusConflict
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// logFailure logs server-side failures as errors and client mistakes as info.
func (h *Handler) logFailure(status int, logKey string, err error, kv ...interface{}) {
	fields := append([]interface{}{"err", err}, kv...)
	if status >= http.StatusInternalServerError {
		h.log.Errorw(logKey, fields...)
		return
	}
	h.log.Infow(logKey, fields...)
}

// renderError writes the HTML error page for err.
func (h *Handler) renderError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	status := statusFor(err)
	h.logFailure(status, logKey, err, kv...)
	h.renderErrorPage(c, status, service.PublicMessage(err))
}

func (h *Handler) renderErrorPage(c *gin.Context, status int, msg string) {
	h.render(c, status, "error.tmpl", gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": msg,
	})
}

// logAndJSONError is the JSON counterpart of renderError.
func (h *Handler) logAndJSONError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	status := statusFor(err)
	h.logFailure(status, logKey, err, kv...)
	c.JSON(status, gin.H{"error": service.PublicMessage(err)})
}

// render executes an HTML template, adding the current session for the nav bar.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if s, ok := currentSession(c); ok {
		data["Session"] = s
	}
	c.HTML(status, name, data)
}
