package handlers

import (
	"net/http"

	request "solar_pipeline/internal/adapter/http/dto/request"
	response "solar_pipeline/internal/adapter/http/dto/response"
	"solar_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// VisitHandler serves the site-visit log nested under a client.
type VisitHandler struct {
	usecase usecase.IVisitUseCase
}

func NewVisitHandler(uc usecase.IVisitUseCase) *VisitHandler {
	return &VisitHandler{usecase: uc}
}

// LogVisit godoc
// @Summary      Log a site visit
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        id     path      string                true  "Client id"
// @Param        visit  body      request.VisitRequest  true  "Visit"
// @Success      201    {object}  response.VisitResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /clients/{id}/visits [post]
func (h *VisitHandler) LogVisit(c *gin.Context) {
	var payload request.VisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c)
		return
	}

	v, err := h.usecase.Log(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		abortWithError(c, "LogVisit", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromVisit(v))
}

// ListVisits godoc
// @Summary      List a client's site visits, oldest first
// @Tags         visits
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {array}   response.VisitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /clients/{id}/visits [get]
func (h *VisitHandler) ListVisits(c *gin.Context) {
	visits, err := h.usecase.ListByClientID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, "ListVisits", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVisits(visits))
}
