package handler

import (
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ShippingHandler struct {
	uc *usecase.ShippingUsecase
}

// DI
func NewShippingHandler(uc *usecase.ShippingUsecase) *ShippingHandler {
	return &ShippingHandler{uc: uc}
}

type CreateShippingRequest struct {
	OrderID               int64      `json:"order_id"`
	Carrier               string     `json:"carrier"`
	TrackingNumber        string     `json:"tracking_number"`
	Status                *string    `json:"status"`
	ShippedDate           *time.Time `json:"shipped_date"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
}

type UpdateShippingRequest struct {
	Carrier               *string    `json:"carrier"`
	TrackingNumber        *string    `json:"tracking_number"`
	Status                *string    `json:"status"`
	ShippedDate           *time.Time `json:"shipped_date"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
}

func (h *ShippingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/shippings", h.create)
	g.GET("/shippings", h.list)
	g.GET("/shippings/:id", h.get)
	g.PUT("/shippings/:id", h.update)
	g.DELETE("/shippings/:id", h.delete)
}

func (h *ShippingHandler) create(c echo.Context) error {
	var req CreateShippingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.CreateShippingInput{
		OrderID:               req.OrderID,
		Carrier:               req.Carrier,
		TrackingNumber:        req.TrackingNumber,
		ShippedDate:           req.ShippedDate,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
	}
	if req.Status != nil {
		s := model.ShippingStatus(*req.Status)
		in.Status = &s
	}

	out, err := h.uc.CreateShipping(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ShippingHandler) list(c echo.Context) error {
	out, err := h.uc.ListShippings(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShippingHandler) get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetShipping(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShippingHandler) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateShippingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.UpdateShippingInput{
		Carrier:               req.Carrier,
		TrackingNumber:        req.TrackingNumber,
		ShippedDate:           req.ShippedDate,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
	}
	if req.Status != nil {
		s := model.ShippingStatus(*req.Status)
		in.Status = &s
	}

	out, err := h.uc.UpdateShipping(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShippingHandler) delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteShipping(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
