package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /unitType /unit /productUnit のHTTP
type UnitHandler struct {
	uc *usecase.UnitUsecase
}

// DI
func NewUnitHandler(uc *usecase.UnitUsecase) *UnitHandler {
	return &UnitHandler{uc: uc}
}

type UnitTypeRequest struct {
	TypeName string `json:"type_name"`
}

type UpdateUnitTypeRequest struct {
	TypeName *string `json:"type_name"`
}

type CreateUnitRequest struct {
	UnitTypeID       int64    `json:"unit_type_id"`
	UnitName         string   `json:"unit_name"`
	Abbreviation     string   `json:"abbreviation"`
	ConversionToBase *float64 `json:"conversion_to_base"`
}

type UpdateUnitRequest struct {
	UnitTypeID       *int64   `json:"unit_type_id"`
	UnitName         *string  `json:"unit_name"`
	Abbreviation     *string  `json:"abbreviation"`
	ConversionToBase *float64 `json:"conversion_to_base"`
}

type CreateProductUnitRequest struct {
	ProductID int64    `json:"product_id"`
	UnitID    *int64   `json:"unit_id"`
	Quantity  *float64 `json:"quantity"`
}

type UpdateProductUnitRequest struct {
	UnitID   *int64   `json:"unit_id"`
	Quantity *float64 `json:"quantity"`
}

func (h *UnitHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/unitType", h.createUnitType)
	g.GET("/unitType", h.listUnitTypes)
	g.GET("/unitType/:id", h.getUnitType)
	g.PUT("/unitType/:id", h.updateUnitType)
	g.DELETE("/unitType/:id", h.deleteUnitType)

	g.POST("/unit", h.createUnit)
	g.GET("/unit", h.listUnits)
	g.GET("/unit/:id", h.getUnit)
	g.PUT("/unit/:id", h.updateUnit)
	g.DELETE("/unit/:id", h.deleteUnit)

	g.POST("/productUnit", h.createProductUnit)
	g.GET("/productUnit", h.listProductUnits)
	g.GET("/productUnit/:id", h.getProductUnit)
	g.PUT("/productUnit/:id", h.updateProductUnit)
	g.DELETE("/productUnit/:id", h.deleteProductUnit)
}

func (h *UnitHandler) createUnitType(c echo.Context) error {
	var req UnitTypeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateUnitType(c.Request().Context(), req.TypeName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *UnitHandler) listUnitTypes(c echo.Context) error {
	out, err := h.uc.ListUnitTypes(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) getUnitType(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetUnitType(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) updateUnitType(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateUnitTypeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateUnitType(c.Request().Context(), id, req.TypeName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) deleteUnitType(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteUnitType(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UnitHandler) createUnit(c echo.Context) error {
	var req CreateUnitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateUnit(c.Request().Context(), usecase.CreateUnitInput{
		UnitTypeID:       req.UnitTypeID,
		UnitName:         req.UnitName,
		Abbreviation:     req.Abbreviation,
		ConversionToBase: req.ConversionToBase,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *UnitHandler) listUnits(c echo.Context) error {
	out, err := h.uc.ListUnits(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) getUnit(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetUnit(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) updateUnit(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateUnitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateUnit(c.Request().Context(), id, usecase.UpdateUnitInput{
		UnitTypeID:       req.UnitTypeID,
		UnitName:         req.UnitName,
		Abbreviation:     req.Abbreviation,
		ConversionToBase: req.ConversionToBase,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) deleteUnit(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteUnit(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UnitHandler) createProductUnit(c echo.Context) error {
	var req CreateProductUnitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateProductUnit(c.Request().Context(), usecase.CreateProductUnitInput{
		ProductID: req.ProductID,
		UnitID:    req.UnitID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *UnitHandler) listProductUnits(c echo.Context) error {
	out, err := h.uc.ListProductUnits(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) getProductUnit(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetProductUnit(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) updateProductUnit(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateProductUnitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateProductUnit(c.Request().Context(), id, usecase.UpdateProductUnitInput{
		UnitID:   req.UnitID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UnitHandler) deleteProductUnit(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteProductUnit(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
