package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) reportsPage(c *gin.Context) {
	s, _ := currentSession(c)

	report, err := h.services.GetReport(c.Request.Context(), s.UserID)
	if err != nil {
		h.renderError(c, "report_load_failed", err, "user_id", s.UserID)
		return
	}

	h.render(c, http.StatusOK, "reports.tmpl", gin.H{
		"Title":  "Reports",
		"Report": report,
	})
}

// @Summary      Recent activity report
// @Description  Biometrics and the five most recent meals of the session user.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  models.Report
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reports [get]
// @Security     SessionCookie
func (h *Handler) getReport(c *gin.Context) {
	s, _ := currentSession(c)

	report, err := h.services.GetReport(c.Request.Context(), s.UserID)
	if err != nil {
		h.logAndJSONError(c, "report_load_failed", err, "user_id", s.UserID)
		return
	}
	c.JSON(http.StatusOK, report)
}
