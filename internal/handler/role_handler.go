package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /roles と /userrole のHTTP
type RoleHandler struct {
	uc *usecase.RoleUsecase
}

// DI
func NewRoleHandler(uc *usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

type RoleRequest struct {
	RoleName string `json:"role_name"`
}

type UpdateRoleRequest struct {
	RoleName *string `json:"role_name"`
}

type UserRoleRequest struct {
	UserID int64 `json:"user_id"`
	RoleID int64 `json:"role_id"`
}

func (h *RoleHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/roles", h.create)
	g.GET("/roles", h.list)
	g.GET("/roles/:id", h.get)
	g.PUT("/roles/:id", h.update)
	g.DELETE("/roles/:id", h.delete)

	g.POST("/userrole/assign", h.assign)
	g.POST("/userrole/remove", h.remove)
	g.GET("/userrole/user/:userId/roles", h.rolesByUser)
	g.GET("/userrole/role/:roleId/users", h.usersByRole)
}

func (h *RoleHandler) create(c echo.Context) error {
	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateRole(c.Request().Context(), req.RoleName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *RoleHandler) list(c echo.Context) error {
	out, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RoleHandler) get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetRole(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RoleHandler) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateRole(c.Request().Context(), id, req.RoleName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RoleHandler) delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteRole(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RoleHandler) assign(c echo.Context) error {
	var req UserRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.AssignRole(c.Request().Context(), req.UserID, req.RoleID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "role assigned"})
}

func (h *RoleHandler) remove(c echo.Context) error {
	var req UserRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.RemoveRole(c.Request().Context(), req.UserID, req.RoleID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "role removed"})
}

func (h *RoleHandler) rolesByUser(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListRolesByUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RoleHandler) usersByRole(c echo.Context) error {
	roleID, err := parseID(c, "roleId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListUsersByRole(c.Request().Context(), roleID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
