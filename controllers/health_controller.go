package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const healthMessage = "Servidor de OpenAI Backend funcionando."

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Status answers the liveness probe on GET /
func (h *HealthController) Status(c *gin.Context) {
	c.String(http.StatusOK, healthMessage)
}
