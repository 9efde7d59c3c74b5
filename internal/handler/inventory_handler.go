package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 在庫のHTTP
type InventoryHandler struct {
	uc *usecase.InventoryUsecase
}

// DI
func NewInventoryHandler(uc *usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

type UpsertInventoryRequest struct {
	Quantity *int64 `json:"quantity"`
	Location string `json:"location"`
}

type UpdateInventoryRequest struct {
	Quantity *int64  `json:"quantity"`
	Location *string `json:"location"`
}

func (h *InventoryHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/products/:productId/inventory", h.upsert)
	g.GET("/products/:productId/inventory", h.getByProduct)
	g.PUT("/inventory/:inventoryId", h.update)
	g.DELETE("/inventory/:inventoryId", h.delete)
}

// 作成なら201、既存の上書きなら200
func (h *InventoryHandler) upsert(c echo.Context) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpsertInventoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, created, err := h.uc.UpsertInventory(c.Request().Context(), productID, usecase.UpsertInventoryInput{
		Quantity: req.Quantity,
		Location: req.Location,
	})
	if err != nil {
		return writeError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, out)
}

func (h *InventoryHandler) getByProduct(c echo.Context) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetInventoryByProduct(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryHandler) update(c echo.Context) error {
	id, err := parseID(c, "inventoryId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateInventory(c.Request().Context(), id, usecase.UpdateInventoryInput{
		Quantity: req.Quantity,
		Location: req.Location,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryHandler) delete(c echo.Context) error {
	id, err := parseID(c, "inventoryId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteInventory(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
