package routes

import (
	"net/http"

	"solar_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathStages   = "/stages"
	PathPipeline = "/pipeline"
	PathClients  = "/clients"
	PathProducts = "/products"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, ping)
}

// ping godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addPipelineRoutes(rg *gin.RouterGroup, h *handlers.PipelineHandler) {
	rg.GET(PathStages, h.ListStages)

	board := rg.Group(PathPipeline)
	{
		board.GET("", h.GetBoard)
		board.GET("/export", h.ExportBoard)
	}
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler, visits *handlers.VisitHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.ListClients)
		clients.POST("", h.CreateClient)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.PATCH("/:id/stage", h.TransitionClient)
		clients.PUT("/:id/notes/:stage", h.UpdateStageNotes)
		clients.PUT("/:id/line-items/:key/product", h.SelectProduct)
		clients.GET("/:id/total", h.GetTotal)

		clients.POST("/:id/visits", visits.LogVisit)
		clients.GET("/:id/visits", visits.ListVisits)
	}
}

func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}
