package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

func (h *Handler) index(c *gin.Context) {
	h.render(c, http.StatusOK, "index.tmpl", gin.H{"Title": "BioTrack"})
}

func (h *Handler) dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "dashboard.tmpl", gin.H{"Title": "Dashboard"})
}
