package handlers

import (
	"net/http"

	request "solar_pipeline/internal/adapter/http/dto/request"
	response "solar_pipeline/internal/adapter/http/dto/response"
	"solar_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the lead form, the stage screens and the price
// summary of a client.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient godoc
// @Summary      Create a client from the lead form
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      request.ClientRequest  true  "Lead form"
// @Success      201     {object}  response.ClientResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		abortWithError(c, "CreateClient", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(created))
}

// ListClients godoc
// @Summary      List clients, optionally by stage
// @Tags         clients
// @Produce      json
// @Param        stage  query     string  false  "Stage"
// @Success      200    {array}   response.ClientResponse
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context(), c.Query("stage"))
	if err != nil {
		abortWithError(c, "ListClients", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// GetClient godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  response.ClientResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, "GetClient", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// UpdateClient replaces the editable fields. Stage and notes are untouched.
//
// @Summary      Update a client from the lead form
// @Description  Replaces the editable fields. Stage and notes are untouched.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Client id"
// @Param        client  body      request.ClientRequest  true  "Lead form"
// @Success      200     {object}  response.ClientResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		abortWithError(c, "UpdateClient", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(updated))
}

// TransitionClient godoc
// @Summary      Move a client to another stage
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id     path      string                true  "Client id"
// @Param        stage  body      request.StageRequest  true  "Target stage"
// @Success      200    {object}  response.ClientResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /clients/{id}/stage [patch]
func (h *ClientHandler) TransitionClient(c *gin.Context) {
	var payload request.StageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c)
		return
	}

	moved, err := h.usecase.Transition(c.Request.Context(), c.Param("id"), payload.Stage)
	if err != nil {
		abortWithError(c, "TransitionClient", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(moved))
}

// UpdateStageNotes godoc
// @Summary      Save the start and final notes of a stage
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id     path      string                true  "Client id"
// @Param        stage  path      string                true  "Stage"
// @Param        notes  body      request.NotesRequest  true  "Notes to merge"
// @Success      200    {object}  response.ClientResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /clients/{id}/notes/{stage} [put]
func (h *ClientHandler) UpdateStageNotes(c *gin.Context) {
	var payload request.NotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c)
		return
	}

	saved, err := h.usecase.UpdateStageNotes(c.Request.Context(), c.Param("id"), c.Param("stage"), payload.ToPatch())
	if err != nil {
		abortWithError(c, "UpdateStageNotes", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(saved))
}

// SelectProduct godoc
// @Summary      Pick a catalog product for a system part
// @Description  Copies the product price into the line item. An empty product_id clears the selection.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Client id"
// @Param        key      path      string                        true  "inverter, panels or battery"
// @Param        product  body      request.SelectProductRequest  true  "Product"
// @Success      200      {object}  response.ClientResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /clients/{id}/line-items/{key}/product [put]
func (h *ClientHandler) SelectProduct(c *gin.Context) {
	var payload request.SelectProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c)
		return
	}

	saved, err := h.usecase.SelectProduct(c.Request.Context(), c.Param("id"), c.Param("key"), payload.ProductID)
	if err != nil {
		abortWithError(c, "SelectProduct", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(saved))
}

// GetTotal godoc
// @Summary      Price breakdown and total of a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  response.TotalResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /clients/{id}/total [get]
func (h *ClientHandler) GetTotal(c *gin.Context) {
	total, err := h.usecase.Total(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, "GetTotal", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTotal(total))
}
