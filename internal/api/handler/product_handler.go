package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type addProductRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
	Unit  string          `json:"unit" validate:"required"`
}

type updateProductRequest struct {
	Price decimal.Decimal `json:"price"`
	Unit  string          `json:"unit" validate:"required"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// List returns the whole catalog, seeding defaults on first use.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {object}  map[string]object
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	catalog, err := h.catalog.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalog)
}

// Create adds a new product.
//
// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      addProductRequest  true  "Product details"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.catalog.Add(c.Request().Context(), req.Name, req.Price, req.Unit); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Update overwrites price and unit of an existing product.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        name  path      string                true  "Product name"
// @Param        body  body      updateProductRequest  true  "New price and unit"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{name} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.catalog.Update(c.Request().Context(), c.Param("name"), req.Price, req.Unit); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        name  path      string  true  "Product name"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  map[string]string
// @Router       /products/{name} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
