package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /variants と /size のHTTP
type VariantHandler struct {
	uc *usecase.VariantUsecase
}

// DI
func NewVariantHandler(uc *usecase.VariantUsecase) *VariantHandler {
	return &VariantHandler{uc: uc}
}

type CreateVariantRequest struct {
	ProductID int64    `json:"product_id"`
	SizeID    *int64   `json:"size_id"`
	Color     string   `json:"color"`
	SKU       string   `json:"sku"`
	Price     *float64 `json:"price"`
	Stock     *int64   `json:"stock"`
}

type UpdateVariantRequest struct {
	SizeID *int64   `json:"size_id"`
	Color  *string  `json:"color"`
	SKU    *string  `json:"sku"`
	Price  *float64 `json:"price"`
	Stock  *int64   `json:"stock"`
}

type SizeRequest struct {
	SizeName string `json:"size_name"`
}

type UpdateSizeRequest struct {
	SizeName *string `json:"size_name"`
}

func (h *VariantHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/variants", h.create)
	g.GET("/variants", h.list)
	g.GET("/variants/:id", h.get)
	g.PUT("/variants/:id", h.update)
	g.DELETE("/variants/:id", h.delete)

	g.POST("/size", h.createSize)
	g.GET("/size", h.listSizes)
	g.GET("/size/:id", h.getSize)
	g.PUT("/size/:id", h.updateSize)
	g.DELETE("/size/:id", h.deleteSize)
}

func (h *VariantHandler) create(c echo.Context) error {
	var req CreateVariantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateVariant(c.Request().Context(), usecase.CreateVariantInput{
		ProductID: req.ProductID,
		SizeID:    req.SizeID,
		Color:     req.Color,
		SKU:       req.SKU,
		Price:     req.Price,
		Stock:     req.Stock,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *VariantHandler) list(c echo.Context) error {
	out, err := h.uc.ListVariants(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *VariantHandler) get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetVariant(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *VariantHandler) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateVariantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateVariant(c.Request().Context(), id, usecase.UpdateVariantInput{
		SizeID: req.SizeID,
		Color:  req.Color,
		SKU:    req.SKU,
		Price:  req.Price,
		Stock:  req.Stock,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *VariantHandler) delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteVariant(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *VariantHandler) createSize(c echo.Context) error {
	var req SizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateSize(c.Request().Context(), req.SizeName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *VariantHandler) listSizes(c echo.Context) error {
	out, err := h.uc.ListSizes(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *VariantHandler) getSize(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetSize(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *VariantHandler) updateSize(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateSizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateSize(c.Request().Context(), id, req.SizeName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *VariantHandler) deleteSize(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteSize(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
