package api

import (
	"freight-dispatch-service/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// NewRouter wires HTTP handlers with their dependencies.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc handlers.SimulationService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), logging())

	simHandler := &handlers.SimulationHandler{Service: svc}

	r.GET("/health", handlers.Health)
	r.POST("/simulations", simHandler.Run)
	r.GET("/simulations/:id", simHandler.Get)

	return r
}
