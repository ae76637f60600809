package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"print-kiosk-backend/internal/models"
)

const rootMessage = "Print kiosk backend is running"

// RootHandler godoc
// @Summary     Liveness string
// @Description Plain-text liveness check used by the kiosk and the hosting platform
// @Tags        health
// @Produce     plain
// @Success     200 {string} string "Print kiosk backend is running"
// @Router      / [get]
func RootHandler(c *gin.Context) {
	c.String(http.StatusOK, rootMessage)
}

// HealthHandler godoc
// @Summary     Health check
// @Description Returns the health status of the API
// @Tags        health
// @Accept      json
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(c *gin.Context) {
	response := models.HealthResponse{
		Status: "ok",
	}
	c.JSON(http.StatusOK, response)
}
