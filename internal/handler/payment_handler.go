package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

// DI
func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type CreatePaymentRequest struct {
	OrderID       int64    `json:"order_id"`
	PaymentMethod string   `json:"payment_method"`
	Amount        *float64 `json:"amount"`
	Status        *string  `json:"status"`
}

type UpdatePaymentRequest struct {
	PaymentMethod *string  `json:"payment_method"`
	Amount        *float64 `json:"amount"`
	Status        *string  `json:"status"`
}

func (h *PaymentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/payments", h.create)
	g.GET("/payments", h.list)
	g.GET("/payments/:id", h.get)
	g.PUT("/payments/:id", h.update)
	g.DELETE("/payments/:id", h.delete)
}

func (h *PaymentHandler) create(c echo.Context) error {
	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.CreatePaymentInput{
		OrderID:       req.OrderID,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		Amount:        req.Amount,
	}
	if req.Status != nil {
		s := model.PaymentStatus(*req.Status)
		in.Status = &s
	}

	out, err := h.uc.CreatePayment(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PaymentHandler) list(c echo.Context) error {
	out, err := h.uc.ListPayments(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetPayment(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.UpdatePaymentInput{Amount: req.Amount}
	if req.PaymentMethod != nil {
		m := model.PaymentMethod(*req.PaymentMethod)
		in.PaymentMethod = &m
	}
	if req.Status != nil {
		s := model.PaymentStatus(*req.Status)
		in.Status = &s
	}

	out, err := h.uc.UpdatePayment(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeletePayment(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
