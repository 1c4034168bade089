package handlers

import (
	"net/http"
	"time"

	"biotrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"

	ctxRequestID = "requestId"
	ctxSession   = "session"
)

// requestID tags each request with an id (reusing a valid incoming one) and
// writes an access log line once the request is done.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(requestIDHeader, id)

	start := time.Now()
	c.Next()

	h.log.Infow("http_request",
		"request_id", id,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}

// loadSession parses the session cookie, if any, and stores the session in the
// gin context. It never rejects a request.
func (h *Handler) loadSession(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Name)
	if err != nil || token == "" {
		c.Next()
		return
	}

	s, err := h.services.ParseSession(token)
	if err != nil {
		h.log.Debugw("session_rejected", "err", err)
		c.Next()
		return
	}

	// store in Gin context
	c.Set(ctxSession, s)
	c.Next()
}

func currentSession(c *gin.Context) (service.Session, bool) {
	v, ok := c.Get(ctxSession)
	if !ok {
		return service.Session{}, false
	}
	s, ok := v.(service.Session)
	return s, ok
}

// requireSession sends anonymous visitors to the login page.
func (h *Handler) requireSession(c *gin.Context) {
	if _, ok := currentSession(c); !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// requireSessionAPI is requireSession for JSON and websocket clients.
func (h *Handler) requireSessionAPI(c *gin.Context) {
	if _, ok := currentSession(c); !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
		})
		return
	}
	c.Next()
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}
