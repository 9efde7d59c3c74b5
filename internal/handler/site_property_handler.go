package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /siteProperty と /auditLog のHTTP
type SitePropertyHandler struct {
	uc *usecase.SitePropertyUsecase
}

// DI
func NewSitePropertyHandler(uc *usecase.SitePropertyUsecase) *SitePropertyHandler {
	return &SitePropertyHandler{uc: uc}
}

type SetSitePropertyRequest struct {
	PropertyKey   string `json:"property_key"`
	PropertyValue string `json:"property_value"`
	Description   string `json:"description"`
	ChangedBy     string `json:"changed_by"`
}

func (h *SitePropertyHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/siteProperty", h.set)
	g.GET("/siteProperty", h.list)
	g.GET("/siteProperty/:key", h.get)

	g.GET("/auditLog", h.listLogs)
	g.GET("/auditLog/property/:propertyKey", h.listLogsByKey)
	g.GET("/auditLog/changedBy/:changedBy", h.listLogsByChangedBy)
}

// 新規キーなら201、既存キーの上書きなら200（監査ログ付き）
func (h *SitePropertyHandler) set(c echo.Context) error {
	var req SetSitePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, created, err := h.uc.SetProperty(c.Request().Context(), usecase.SetSitePropertyInput{
		PropertyKey:   req.PropertyKey,
		PropertyValue: req.PropertyValue,
		Description:   req.Description,
		ChangedBy:     req.ChangedBy,
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

func (h *SitePropertyHandler) list(c echo.Context) error {
	out, err := h.uc.ListProperties(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SitePropertyHandler) get(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid key"})
	}

	out, err := h.uc.GetProperty(c.Request().Context(), key)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SitePropertyHandler) listLogs(c echo.Context) error {
	out, err := h.uc.ListAuditLogs(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SitePropertyHandler) listLogsByKey(c echo.Context) error {
	out, err := h.uc.ListAuditLogsByKey(c.Request().Context(), c.Param("propertyKey"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SitePropertyHandler) listLogsByChangedBy(c echo.Context) error {
	out, err := h.uc.ListAuditLogsByChangedBy(c.Request().Context(), c.Param("changedBy"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
