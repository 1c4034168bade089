package handlers

import (
	"net/http"

	"biotrack/internal/service"

	"github.com/gin-gonic/gin"
)

const errBiometricsForm = "height_cm and weight_kg must be positive numbers"

type biometricsForm struct {
	HeightCm float64 `form:"height_cm" binding:"required"`
	WeightKg float64 `form:"weight_kg" binding:"required"`
	Goal     string  `form:"goal"`
}

func (h *Handler) biometricsPage(c *gin.Context) {
	h.render(c, http.StatusOK, "biometrics.tmpl", gin.H{"Title": "Biometrics"})
}

func (h *Handler) saveBiometrics(c *gin.Context) {
	s, _ := currentSession(c)

	var form biometricsForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Infow("biometrics_bad_request_body", "user_id", s.UserID, "err", err)
		h.renderBiometrics(c, http.StatusBadRequest, errBiometricsForm)
		return
	}

	err := h.services.SaveBiometrics(c.Request.Context(), s.UserID, service.BiometricsInput{
		HeightCm: form.HeightCm,
		WeightKg: form.WeightKg,
		Goal:     form.Goal,
	})
	if err != nil {
		if service.KindOf(err) == service.KindValidation {
			h.logFailure(http.StatusBadRequest, "biometrics_save_failed", err, "user_id", s.UserID)
			h.renderBiometrics(c, http.StatusBadRequest, service.PublicMessage(err))
			return
		}
		h.renderError(c, "biometrics_save_failed", err, "user_id", s.UserID)
		return
	}

	c.Redirect(http.StatusFound, "/reports")
}

func (h *Handler) renderBiometrics(c *gin.Context, status int, msg string) {
	h.render(c, status, "biometrics.tmpl", gin.H{
		"Title": "Biometrics",
		"Error": msg,
	})
}
