package handlers

import (
	"net/http"

	request "solar_pipeline/internal/adapter/http/dto/request"
	response "solar_pipeline/internal/adapter/http/dto/response"
	"solar_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts godoc
// @Summary      List catalog products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "inverter, panel or battery"
// @Success      200       {array}   response.ProductResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		abortWithError(c, "ListProducts", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetProduct godoc
// @Summary      Get a catalog product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  response.ProductResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, "GetProduct", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// CreateProduct godoc
// @Summary      Add a product to the catalog
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      request.ProductRequest  true  "Product"
// @Success      201      {object}  response.ProductResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		abortWithError(c, "CreateProduct", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(created))
}

// UpdateProduct godoc
// @Summary      Update a catalog product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Product id"
// @Param        product  body      request.ProductRequest  true  "Product"
// @Success      200      {object}  response.ProductResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		abortWithError(c, "UpdateProduct", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(updated))
}

// DeleteProduct godoc
// @Summary      Remove a product from the catalog
// @Tags         products
// @Param        id   path  string  true  "Product id"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, "DeleteProduct", err)
		return
	}
	c.Status(http.StatusNoContent)
}
