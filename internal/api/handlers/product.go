package handlers

import (
	"net/http"
	"strings"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles HTTP requests for the product catalogue
type ProductHandler struct {
	service service.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(service service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// CreateProduct handles POST /api/v1/products
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body service.CreateProductRequest true "Product data"
// @Success 201 {object} service.ProductResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "SKU already in use"
// @Security BearerAuth
// @Router /api/v1/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// SearchProducts handles GET /api/v1/products
// @Summary Search products
// @Tags products
// @Produce json
// @Param q query string false "Search term (name or SKU)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ProductListResponse
// @Security BearerAuth
// @Router /api/v1/products [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	products, err := h.service.Search(orgID, strings.TrimSpace(c.Query("q")), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to search products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} service.ProductResponse
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Security BearerAuth
// @Router /api/v1/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "product")
	if !ok {
		return
	}

	product, err := h.service.GetByID(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /api/v1/products/:id
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body service.UpdateProductRequest true "Updated product data"
// @Success 200 {object} service.ProductResponse
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Failure 409 {object} map[string]interface{} "SKU already in use"
// @Security BearerAuth
// @Router /api/v1/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "product")
	if !ok {
		return
	}

	var req service.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.service.Update(orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
// @Summary Delete product
// @Tags products
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Successfully deleted product"
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Security BearerAuth
// @Router /api/v1/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "product")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}
